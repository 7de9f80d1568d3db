package main

import (
	"fmt"
	"os"

	"speech-summarizer/cmd/v2s/cmd"
	"speech-summarizer/internal/config"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	cmd.Execute()
}
