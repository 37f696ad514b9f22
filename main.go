package main

import (
	"os"

	"github.com/awasilew/mowa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
