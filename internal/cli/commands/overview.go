package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kutbudev/gorevce/internal/api"
)

// NewOverviewCmd creates the overview command.
func NewOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show a summary of your tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient()

			all, err := client.ListTasks(api.ListFilter{})
			if err != nil {
				return err
			}
			overdue, err := client.ListTasks(api.ListFilter{Due: "overdue", Status: "false"})
			if err != nil {
				return err
			}
			today, err := client.ListTasks(api.ListFilter{Due: "today"})
			if err != nil {
				return err
			}
			week, err := client.ListTasks(api.ListFilter{Due: "week"})
			if err != nil {
				return err
			}
			tags, err := client.ListTags()
			if err != nil {
				return err
			}

			var md strings.Builder
			md.WriteString("# Task Overview\n\n")
			fmt.Fprintf(&md, "**%d** tasks — **%d** open, **%d** done\n\n",
				all.Stats.Total, all.Stats.Incomplete, all.Stats.Completed)

			md.WriteString("## Deadlines\n\n")
			fmt.Fprintf(&md, "- Overdue: **%d**\n", overdue.Stats.Total)
			fmt.Fprintf(&md, "- Due today: **%d**\n", today.Stats.Total)
			fmt.Fprintf(&md, "- Due this week: **%d**\n\n", week.Stats.Total)

			if len(overdue.Tasks) > 0 {
				md.WriteString("## Overdue tasks\n\n")
				for _, t := range overdue.Tasks {
					fmt.Fprintf(&md, "- %s (due %s)\n", t.Title, *t.DueDate)
				}
				md.WriteString("\n")
			}

			if len(tags) > 0 {
				md.WriteString("## Tags\n\n")
				names := make([]string, 0, len(tags))
				for _, tag := range tags {
					names = append(names, "`#"+tag.Name+"`")
				}
				md.WriteString(strings.Join(names, " ") + "\n")
			}

			out, err := glamour.Render(md.String(), "dark")
			if err != nil {
				// Fall back to raw markdown if rendering fails.
				fmt.Println(md.String())
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
}
