package main

import (
	"os"

	"github.com/adhdflow/adhdflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
