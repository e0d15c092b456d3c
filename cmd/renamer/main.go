package main

import (
	"fmt"
	"os"

	"github.com/sokinpui/renamer"
)

func main() {
	if err := renamer.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
