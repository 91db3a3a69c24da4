package main

import (
	"os"

	"github.com/mmynk/billsplit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
