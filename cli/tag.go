package cli

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

// NewTagCommand creates all subcommands for the 'tag' command group.
func NewTagCommand() *cli.Command {
	return &cli.Command{
		Name:  "tag",
		Usage: "Manage tags against the local database",
		Subcommands: []*cli.Command{
			tagListCmd(),
			tagDeleteCmd(),
		},
	}
}

func tagListCmd() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "List all tags by name",
		Action: func(c *cli.Context) error {
			_, tags, err := openStores()
			if err != nil {
				return err
			}
			all, err := tags.ListAll()
			if err != nil {
				return err
			}
			if len(all) == 0 {
				fmt.Println("No tags yet.")
				return nil
			}
			for _, tag := range all {
				fmt.Printf("%4d  #%s\n", tag.ID, tag.Name)
			}
			return nil
		},
	}
}

func tagDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a tag; tasks that carried it are kept",
		ArgsUsage: "[tag-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("a tag id is required")
			}
			id, err := strconv.ParseUint(c.Args().First(), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", c.Args().First())
			}

			_, tags, err := openStores()
			if err != nil {
				return err
			}
			deleted, err := tags.Delete(uint(id))
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("tag %d not found", id)
			}
			fmt.Printf("🗑️  Deleted tag %d\n", id)
			return nil
		},
	}
}
