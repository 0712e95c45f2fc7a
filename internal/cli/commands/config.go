package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kutbudev/gorevce/internal/config"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("api-url") {
				cfg.APIBaseURL, _ = cmd.Flags().GetString("api-url")
				changed = true
			}
			if cmd.Flags().Changed("default-due") {
				cfg.DefaultDueFilter, _ = cmd.Flags().GetString("default-due")
				changed = true
			}

			if changed {
				if err := config.Save(cfg); err != nil {
					return err
				}
				fmt.Println("✅ Configuration saved")
			}

			fmt.Printf("API base URL:       %s\n", cfg.APIBaseURL)
			if cfg.DefaultDueFilter != "" {
				fmt.Printf("Default due filter: %s\n", cfg.DefaultDueFilter)
			} else {
				fmt.Printf("Default due filter: (none)\n")
			}
			return nil
		},
	}

	cmd.Flags().String("api-url", "", "Set the API server base URL")
	cmd.Flags().String("default-due", "", "Set the default due filter for 'task list'")

	return cmd
}
