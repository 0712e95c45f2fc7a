// Package interactive holds the survey-based prompts used by the CLI.
package interactive

import (
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
)

// TaskAnswers holds the answers of the interactive task creation prompt.
type TaskAnswers struct {
	Title    string
	Priority string
	DueDate  string
}

// CreateTaskInteractive walks the user through creating a task.
func CreateTaskInteractive() (*TaskAnswers, error) {
	answers := &TaskAnswers{}

	if err := survey.AskOne(&survey.Input{
		Message: "Task title (an inline #tag is extracted):",
	}, &answers.Title, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Select{
		Message: "Priority:",
		Options: []string{"none", "low", "medium", "high"},
		Default: "none",
	}, &answers.Priority); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Due date (YYYY-MM-DD, empty for none):",
	}, &answers.DueDate, survey.WithValidator(dueDateValidator)); err != nil {
		return nil, err
	}

	return answers, nil
}

func dueDateValidator(ans interface{}) error {
	s, ok := ans.(string)
	if !ok || s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD or leave empty")
	}
	return nil
}
