package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kutbudev/gorevce/internal/api"
)

// newTaskBrowseCmd creates the interactive task browser.
func newTaskBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse tasks interactively",
		Long:  "Open an interactive list of all tasks. Enter toggles completion, / filters, q quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient()
			listing, err := client.ListTasks(api.ListFilter{})
			if err != nil {
				return err
			}

			items := make([]list.Item, 0, len(listing.Tasks))
			for _, t := range listing.Tasks {
				items = append(items, taskItem{task: t})
			}

			delegate := list.NewDefaultDelegate()
			m := browseModel{
				client: client,
				list:   list.New(items, delegate, 0, 0),
			}
			m.list.Title = "Tasks"

			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type taskItem struct {
	task api.Task
}

func (i taskItem) Title() string {
	mark := "[ ]"
	if i.task.Completed {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s", mark, i.task.Title)
}

func (i taskItem) Description() string {
	parts := []string{"priority: " + i.task.Priority}
	if i.task.DueDate != nil {
		parts = append(parts, "due "+*i.task.DueDate)
	}
	for _, tag := range i.task.Tags {
		parts = append(parts, "#"+tag.Name)
	}
	return strings.Join(parts, "  ")
}

func (i taskItem) FilterValue() string {
	return i.task.Title
}

type toggleResultMsg struct {
	index int
	task  *api.Task
	err   error
}

type browseModel struct {
	client *api.Client
	list   list.Model
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		frame := lipgloss.NewStyle().Margin(1, 2)
		h, v := frame.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// Keys are handled by the list while its filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			item, ok := m.list.SelectedItem().(taskItem)
			if !ok {
				break
			}
			index := m.list.Index()
			client := m.client
			return m, func() tea.Msg {
				task, err := client.ToggleTask(item.task.ID)
				return toggleResultMsg{index: index, task: task, err: err}
			}
		}

	case toggleResultMsg:
		if msg.err != nil {
			return m, m.list.NewStatusMessage("toggle failed: " + msg.err.Error())
		}
		cmd := m.list.SetItem(msg.index, taskItem{task: *msg.task})
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	return lipgloss.NewStyle().Margin(1, 2).Render(m.list.View())
}
