package main

import (
	"os"

	"github.com/tagkeep/tagkeep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// cobra already printed the error to stderr
		os.Exit(1)
	}
}
