package main

import (
	"os"

	"github.com/mitesh699/dealflow/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
