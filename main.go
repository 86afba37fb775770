package main

import "github.com/CraigKelly/mhsample/cmd"

func main() {
	cmd.Execute()
}
