package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/kutbudev/gorevce/internal/store"
	"github.com/kutbudev/gorevce/internal/titletag"
	"github.com/kutbudev/gorevce/pkg/models"
)

// NewTaskCommand creates all subcommands for the 'task' command group.
func NewTaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage tasks against the local database",
		Subcommands: []*cli.Command{
			taskAddCmd(),
			taskListCmd(),
			taskDoneCmd(),
			taskDeleteCmd(),
		},
	}
}

func taskAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Create a task; an inline #tag in the title is extracted",
		ArgsUsage: "[title]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "due", Aliases: []string{"d"}, Usage: "Due date (YYYY-MM-DD)"},
			&cli.StringFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Priority (none, low, medium, high)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("a task title is required")
			}
			raw := strings.Join(c.Args().Slice(), " ")

			tasks, tags, err := openStores()
			if err != nil {
				return err
			}

			title, tagName, hasTag := titletag.Extract(raw)
			if title == "" {
				return fmt.Errorf("title cannot be empty")
			}

			var tagIDs []uint
			if hasTag {
				tag, err := tags.GetOrCreate(tagName)
				if err != nil {
					return err
				}
				tagIDs = append(tagIDs, tag.ID)
			}

			task, err := tasks.Create(title, c.String("due"), models.ParsePriority(c.String("priority")), tagIDs)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Created task #%d: %s\n", task.ID, task.DisplayTitle())
			return nil
		},
	}
}

func taskListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List tasks, optionally filtered",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "keyword", Aliases: []string{"k"}, Usage: "Title keyword"},
			&cli.StringFlag{Name: "status", Aliases: []string{"s"}, Usage: "open or done"},
			&cli.StringFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Exact priority"},
			&cli.StringFlag{Name: "due", Aliases: []string{"d"}, Usage: "Due filter (today, tomorrow, week, none, overdue, future or YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			tasks, _, err := openStores()
			if err != nil {
				return err
			}

			filter := store.Filter{
				Keyword: c.String("keyword"),
				DueDate: c.String("due"),
			}
			switch c.String("status") {
			case "done", "completed":
				v := true
				filter.Status = &v
			case "open", "incomplete":
				v := false
				filter.Status = &v
			}
			if s := c.String("priority"); s != "" {
				p := models.ParsePriority(s)
				filter.Priority = &p
			}

			out, stats, err := tasks.List(filter)
			if err != nil {
				return err
			}

			for i := range out {
				t := &out[i]
				mark := "[ ]"
				if t.Completed {
					mark = "[x]"
				}
				line := fmt.Sprintf("%s %4d  %s", mark, t.ID, t.DisplayTitle())
				if due := t.DueDateString(); due != "" {
					line += "  due " + due
				}
				if t.Priority != models.PriorityNone {
					line += "  " + t.Priority.String()
				}
				fmt.Println(line)
			}
			fmt.Printf("\n%d tasks (%d open, %d done)\n", stats.Total, stats.Incomplete(), stats.Completed)
			return nil
		},
	}
}

func taskDoneCmd() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Toggle a task's completion flag",
		ArgsUsage: "[task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("a task id is required")
			}
			id, err := strconv.ParseUint(c.Args().First(), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", c.Args().First())
			}

			tasks, _, err := openStores()
			if err != nil {
				return err
			}
			task, err := tasks.ToggleCompleted(uint(id))
			if err != nil {
				return err
			}
			if task == nil {
				return fmt.Errorf("task %d not found", id)
			}
			if task.Completed {
				fmt.Printf("✅ Completed: %s\n", task.Title)
			} else {
				fmt.Printf("🔄 Reopened: %s\n", task.Title)
			}
			return nil
		},
	}
}

func taskDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a task",
		ArgsUsage: "[task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("a task id is required")
			}
			id, err := strconv.ParseUint(c.Args().First(), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", c.Args().First())
			}

			tasks, _, err := openStores()
			if err != nil {
				return err
			}
			deleted, err := tasks.Delete(uint(id))
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("task %d not found", id)
			}
			fmt.Printf("🗑️  Deleted task #%d\n", id)
			return nil
		},
	}
}
