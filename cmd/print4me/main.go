package main

import (
	"os"

	"print4me/cmd/print4me/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
