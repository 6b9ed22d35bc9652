package main

import (
	"eoatracker/cmd"
	"fmt"
	"os"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "eoatracker run into an error: %s\n", err)
		os.Exit(1)
	}
}
