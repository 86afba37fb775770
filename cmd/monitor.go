package cmd

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// monitor serves live sampler progress as prometheus metrics. All methods
// are safe on a nil monitor so callers need not check whether one was asked for.
type monitor struct {
	addr     string
	registry *prometheus.Registry
	listener net.Listener
	server   *http.Server
	stopped  chan struct{}

	Steps      prometheus.Counter
	Accepted   prometheus.Counter
	LogProb    prometheus.Gauge
	AcceptRate prometheus.Gauge
}

func newMonitor(addr string) *monitor {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &monitor{
		addr:     addr,
		registry: reg,

		Steps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mhsample",
			Name:      "steps_total",
			Help:      "Number of sampler steps taken.",
		}),
		Accepted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "mhsample",
			Name:      "accepted_total",
			Help:      "Number of accepted proposals.",
		}),
		LogProb: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mhsample",
			Name:      "log_prob",
			Help:      "Log density of the current state.",
		}),
		AcceptRate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "mhsample",
			Name:      "acceptance_rate",
			Help:      "Acceptance rate over the recent window of steps.",
		}),
	}
}

// Start begins serving the metrics endpoint
func (m *monitor) Start(out *log.Logger) error {
	if m.server != nil {
		return errors.Errorf("BUG: You may only start the process monitor once")
	}

	ln, err := net.Listen("tcp", m.addr)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %s", m.addr)
	}
	m.listener = ln

	// Help the user and redirect to the only thing currently available
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/metrics", http.StatusTemporaryRedirect)
	})

	m.server = &http.Server{Handler: mux}
	m.stopped = make(chan struct{})

	go func() {
		defer close(m.stopped)
		m.server.Serve(ln)
	}()

	out.Printf("HTTP now available at %v (see /metrics)\n", m.Addr())
	return nil
}

// Addr is the address actually being served
func (m *monitor) Addr() string {
	if m == nil || m.listener == nil {
		return ""
	}
	return m.listener.Addr().String()
}

// Observe records one sampler step
func (m *monitor) Observe(accepted bool, logProb float64, rate float64) {
	if m == nil {
		return
	}

	m.Steps.Inc()
	if accepted {
		m.Accepted.Inc()
	}
	m.LogProb.Set(logProb)
	m.AcceptRate.Set(rate)
}

// Stop shuts the HTTP server down
func (m *monitor) Stop(out *log.Logger) {
	if m == nil || m.server == nil {
		return
	}

	m.server.Close()

	select {
	case <-m.stopped:
		out.Printf("HTTP Info Stopped\n")
	case <-time.After(2 * time.Second):
		out.Printf("HTTP would NOT stop: just continuing on\n")
	}
}
