package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[%s] Error: %v\n", appName, err)
		os.Exit(1)
	}
}
