// Command waresmart runs the warehouse console, the development mock
// backend, and a handful of session commands that share the console's
// durable store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
