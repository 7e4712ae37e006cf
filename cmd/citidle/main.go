// Command citidle is the daily guess-the-US-city game. It bundles the HTTP
// API server, an interactive terminal game, and a dataset validation tool.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
