package main

import (
	"os"

	"github.com/mkobayashi/kanjidrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
