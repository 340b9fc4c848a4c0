package main

import (
	"os"

	"github.com/lugondev/solores-go/cmd/solores/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
