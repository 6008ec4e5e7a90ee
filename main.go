package main

import (
	"os"

	"github.com/automoto/chain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
