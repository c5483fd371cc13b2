package main

import (
	"fmt"
	"os"

	"github.com/prepdeck/prepdeck/internal/api"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Command completed
	ExitRemoteError = 1 // The interview service could not be reached or rejected the request
	ExitError       = 2 // Configuration, input, or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		if api.IsTransport(err) {
			os.Exit(ExitRemoteError)
		}

		// All other errors are configuration/input/runtime errors
		os.Exit(ExitError)
	}
}
