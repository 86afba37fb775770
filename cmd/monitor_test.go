package cmd

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorServesMetrics(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	out := log.New(buf, "", 0)

	mon := newMonitor("127.0.0.1:0")
	require.NoError(t, mon.Start(out))
	defer mon.Stop(out)

	assert.Error(mon.Start(out)) // only once
	assert.NotEmpty(mon.Addr())
	assert.Contains(buf.String(), "HTTP now available")

	mon.Observe(true, -1.5, 0.5)
	mon.Observe(false, -1.5, 0.25)
	assert.Equal(2.0, testutil.ToFloat64(mon.Steps))
	assert.Equal(1.0, testutil.ToFloat64(mon.Accepted))
	assert.Equal(-1.5, testutil.ToFloat64(mon.LogProb))
	assert.Equal(0.25, testutil.ToFloat64(mon.AcceptRate))

	resp, err := http.Get("http://" + mon.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Contains(string(body), "mhsample_steps_total 2")
	assert.Contains(string(body), "mhsample_accepted_total 1")
}

func TestNilMonitor(t *testing.T) {
	var mon *monitor
	out := log.New(io.Discard, "", 0)

	mon.Observe(true, 0, 1)
	mon.Stop(out)
	assert.Equal(t, "", mon.Addr())
}
