package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kutbudev/gorevce/internal/api"
)

// NewTagCmd creates the tag command with all subcommands
func NewTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag management commands",
		Long:  "Create, list, rename and delete tags",
	}

	cmd.AddCommand(newTagListCmd())
	cmd.AddCommand(newTagAddCmd())
	cmd.AddCommand(newTagRenameCmd())
	cmd.AddCommand(newTagDeleteCmd())

	return cmd
}

func newTagListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List all tags",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient()
			tags, err := client.ListTags()
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				fmt.Println("No tags yet.")
				return nil
			}
			for _, tag := range tags {
				fmt.Printf("%4d  %s\n", tag.ID, tagStyle.Render("#"+tag.Name))
			}
			return nil
		},
	}
}

func newTagAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <name>",
		Short:   "Create a new tag",
		Aliases: []string{"create"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient()
			tag, err := client.CreateTag(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("✅ Created tag #%s (id %d)\n", tag.Name, tag.ID)
			return nil
		},
	}
}

func newTagRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <tag-id> <new-name>",
		Short: "Rename a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			client := api.NewClient()
			tag, err := client.RenameTag(id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("✅ Renamed tag %d to #%s\n", tag.ID, tag.Name)
			return nil
		},
	}
}

func newTagDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <tag-id>",
		Short:   "Delete a tag and detach it from every task",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			client := api.NewClient()
			if err := client.DeleteTag(id); err != nil {
				return err
			}
			fmt.Printf("🗑️  Deleted tag %d (tasks are left intact)\n", id)
			return nil
		},
	}
}
