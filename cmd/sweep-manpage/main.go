package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sweep/cmd/sweep"
	"github.com/arthur-debert/sweep/internal/version"
)

func main() {
	rootCmd := sweep.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SWEEP",
		Section: "1",
		Source:  "sweep " + version.Version,
		Manual:  "sweep manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
