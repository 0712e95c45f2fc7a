package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kutbudev/gorevce/internal/cli/commands"
)

// Version will be set during build with ldflags
var Version = "0.3.0"

func main() {
	var rootCmd = &cobra.Command{
		Use:     "gorevce",
		Short:   "gorevce - a personal to-do list with tags, deadlines and priorities",
		Version: Version,
		Long: `gorevce is a command-line interface to your personal to-do list.
Tasks carry tags (inline #tags in titles are picked up automatically),
optional due dates and priorities, and can be filtered and searched.`,
	}

	rootCmd.AddCommand(commands.NewTaskCmd())
	rootCmd.AddCommand(commands.NewTagCmd())
	rootCmd.AddCommand(commands.NewOverviewCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, so we just need to exit.
		os.Exit(1)
	}
}
