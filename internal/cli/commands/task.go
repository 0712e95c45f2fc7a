package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kutbudev/gorevce/internal/api"
	"github.com/kutbudev/gorevce/internal/cli/interactive"
	"github.com/kutbudev/gorevce/internal/config"
	"github.com/kutbudev/gorevce/pkg/models"
)

var (
	completedStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	dueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#9370DB"))
	priorityStyles = map[string]lipgloss.Style{}
)

func init() {
	for _, p := range []models.Priority{
		models.PriorityNone, models.PriorityLow, models.PriorityMedium, models.PriorityHigh,
	} {
		priorityStyles[p.String()] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color()))
	}
}

// NewTaskCmd creates the task command with all subcommands
func NewTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Task management commands",
		Long:  "Create, list, update, and manage tasks",
	}

	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskShowCmd())
	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskModifyCmd())
	cmd.AddCommand(newTaskDeleteCmd())
	cmd.AddCommand(newTaskBrowseCmd())

	return cmd
}

// task add
func newTaskAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [title]",
		Short:   "Create a new task",
		Long:    "Create a new task. An inline #tag in the title is extracted and attached.",
		Aliases: []string{"create"},
		RunE: func(cmd *cobra.Command, args []string) error {
			isInteractive, _ := cmd.Flags().GetBool("interactive")
			priority, _ := cmd.Flags().GetString("priority")
			due, _ := cmd.Flags().GetString("due")
			title := strings.Join(args, " ")

			if isInteractive {
				answers, err := interactive.CreateTaskInteractive()
				if err != nil {
					return err
				}
				title = answers.Title
				priority = answers.Priority
				due = answers.DueDate
			} else if title == "" {
				fmt.Println("❌ Title is required when not in interactive mode.")
				fmt.Println("💡 Use 'gorevce task add \"Buy milk #shopping\"' or 'gorevce task add -i'")
				return nil
			}

			client := api.NewClient()
			task, err := client.CreateTask(title, due, priority, nil)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Created task #%d: %s\n", task.ID, task.DisplayTitle)
			if task.DueDate != nil {
				fmt.Printf("   Due: %s\n", *task.DueDate)
			}
			return nil
		},
	}

	cmd.Flags().BoolP("interactive", "i", false, "Use interactive mode for task creation")
	cmd.Flags().StringP("priority", "p", "", "Task priority (none, low, medium, high)")
	cmd.Flags().StringP("due", "d", "", "Due date (YYYY-MM-DD)")

	return cmd
}

// task list
func newTaskListCmd() *cobra.Command {
	var (
		keyword  string
		status   string
		priority string
		tagIDs   []uint
		due      string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List tasks",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if due == "" {
				if cfg, err := config.Load(); err == nil {
					due = cfg.DefaultDueFilter
				}
			}

			filter := api.ListFilter{
				Keyword:  keyword,
				Priority: priority,
				TagIDs:   tagIDs,
				Due:      due,
			}
			switch status {
			case "done", "completed":
				filter.Status = "true"
			case "open", "incomplete":
				filter.Status = "false"
			}

			client := api.NewClient()
			listing, err := client.ListTasks(filter)
			if err != nil {
				return err
			}

			printTaskList(listing)
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Filter by title keyword")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (open, done)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Filter by priority (none, low, medium, high)")
	cmd.Flags().UintSliceVarP(&tagIDs, "tags", "t", nil, "Filter by tag ids (comma separated)")
	cmd.Flags().StringVarP(&due, "due", "d", "", "Filter by due date (today, tomorrow, week, none, overdue, future or YYYY-MM-DD)")

	return cmd
}

func printTaskList(listing *api.Listing) {
	if len(listing.Tasks) == 0 {
		if listing.HasFilter {
			fmt.Println("No tasks match the current filter.")
		} else {
			fmt.Println("No tasks yet. Add one with 'gorevce task add'.")
		}
		return
	}

	titleWidth := terminalWidth() - 40
	if titleWidth < 20 {
		titleWidth = 20
	}

	for _, t := range listing.Tasks {
		mark := "[ ]"
		title := truncateString(t.Title, titleWidth)
		if t.Completed {
			mark = "[x]"
			title = completedStyle.Render(title)
		}

		line := fmt.Sprintf("%s %4d  %s", mark, t.ID, title)
		if t.DueDate != nil {
			line += "  " + dueStyle.Render("due "+*t.DueDate)
		}
		if t.Priority != "none" {
			line += "  " + priorityStyles[t.Priority].Render(t.Priority)
		}
		for _, tag := range t.Tags {
			line += "  " + tagStyle.Render("#"+tag.Name)
		}
		fmt.Println(line)
	}

	fmt.Println()
	if listing.HasFilter {
		fmt.Printf("%d matching tasks (%d open, %d done)\n",
			listing.Stats.Total, listing.Stats.Incomplete, listing.Stats.Completed)
	} else {
		fmt.Printf("%d tasks (%d open, %d done)\n",
			listing.Stats.Total, listing.Stats.Incomplete, listing.Stats.Completed)
	}
}

// task show
func newTaskShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			client := api.NewClient()
			task, err := client.GetTask(id)
			if err != nil {
				return err
			}

			status := "open"
			if task.Completed {
				status = "done"
			}
			fmt.Printf("Task #%d\n", task.ID)
			fmt.Printf("  Title:    %s\n", task.Title)
			fmt.Printf("  Status:   %s\n", status)
			fmt.Printf("  Priority: %s\n", priorityStyles[task.Priority].Render(task.Priority))
			if task.DueDate != nil {
				fmt.Printf("  Due:      %s\n", *task.DueDate)
			} else {
				fmt.Printf("  Due:      no deadline\n")
			}
			if len(task.Tags) > 0 {
				names := make([]string, 0, len(task.Tags))
				for _, tag := range task.Tags {
					names = append(names, "#"+tag.Name)
				}
				fmt.Printf("  Tags:     %s\n", tagStyle.Render(strings.Join(names, " ")))
			}
			fmt.Printf("  Created:  %s\n", task.CreatedAt)

			if copyTitle, _ := cmd.Flags().GetBool("copy"); copyTitle {
				if err := clipboard.WriteAll(task.DisplayTitle); err != nil {
					fmt.Printf("⚠️  Could not copy to clipboard: %v\n", err)
				} else {
					fmt.Println("📋 Title copied to clipboard")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolP("copy", "c", false, "Copy the task title to the clipboard")

	return cmd
}

// task done
func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "done <task-id>",
		Short:   "Toggle a task's completion flag",
		Aliases: []string{"toggle"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			client := api.NewClient()
			task, err := client.ToggleTask(id)
			if err != nil {
				return err
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

// task modify
func newTaskModifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "modify <task-id>",
		Short:   "Update fields of a task",
		Long:    "Update any of title, due date, priority or tags. Omitted flags leave the field unchanged; --clear-tags removes all tags.",
		Aliases: []string{"update"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			fields := map[string]any{}
			if cmd.Flags().Changed("title") {
				title, _ := cmd.Flags().GetString("title")
				fields["title"] = title
			}
			if cmd.Flags().Changed("due") {
				due, _ := cmd.Flags().GetString("due")
				fields["due_date"] = due
			}
			if cmd.Flags().Changed("priority") {
				priority, _ := cmd.Flags().GetString("priority")
				fields["priority"] = priority
			}
			if clear, _ := cmd.Flags().GetBool("clear-tags"); clear {
				fields["tag_ids"] = []uint{}
			} else if cmd.Flags().Changed("tags") {
				tagIDs, _ := cmd.Flags().GetUintSlice("tags")
				fields["tag_ids"] = tagIDs
			}

			if len(fields) == 0 {
				fmt.Println("Nothing to change. Pass --title, --due, --priority, --tags or --clear-tags.")
				return nil
			}

			client := api.NewClient()
			task, err := client.UpdateTask(id, fields)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Updated task #%d: %s\n", task.ID, task.DisplayTitle)
			return nil
		},
	}

	cmd.Flags().String("title", "", "New title (inline #tag is extracted)")
	cmd.Flags().StringP("due", "d", "", "New due date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringP("priority", "p", "", "New priority (none, low, medium, high)")
	cmd.Flags().UintSliceP("tags", "t", nil, "Replace the tag set with these tag ids")
	cmd.Flags().Bool("clear-tags", false, "Remove all tags from the task")

	return cmd
}

// task rm
func newTaskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task-id>",
		Short:   "Delete a task",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			client := api.NewClient()
			if err := client.DeleteTask(id); err != nil {
				return err
			}
			fmt.Printf("🗑️  Deleted task #%d\n", id)
			return nil
		},
	}
}
