// Command spendly is the local-first client: it edits the on-device data
// set and pushes or pulls it against the sync API.
package main

import (
	"fmt"
	"os"

	"spendly/internal/logger"
)

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
