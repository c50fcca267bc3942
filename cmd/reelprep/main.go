package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// errIncomplete signals a non-zero exit after the command already reported
// the reason itself.
var errIncomplete = errors.New("incomplete")

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, errIncomplete) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
