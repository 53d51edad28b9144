package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sweep/cmd/sweep"
	"github.com/arthur-debert/sweep/pkg/config"
	"github.com/arthur-debert/sweep/pkg/style"
	"github.com/arthur-debert/sweep/pkg/ui"
)

func main() {
	rootCmd := sweep.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		printer := style.NewPrinter(os.Stderr, ui.ColorEnabled(os.Stderr) && config.Get().Output.Color)
		printer.Println("%s", printer.Styles().Error.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
