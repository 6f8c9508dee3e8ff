package main

import (
	"os"

	"github.com/voodooEntity/algebrain/cmd/algebrain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
