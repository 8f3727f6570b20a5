package main

import (
	"os"

	"github.com/msto63/argspect/cmd/argspect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
