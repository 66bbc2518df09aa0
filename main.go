package main

import (
	"os"

	"github.com/ngthanh/engmaster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
