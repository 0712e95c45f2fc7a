// Package api is the HTTP client used by the cobra CLI to talk to the
// gorevce API server.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kutbudev/gorevce/internal/config"
)

// Client talks to the gorevce API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client from the CLI config. A missing config falls
// back to the default local server address.
func NewClient() *Client {
	base := "http://localhost:8080"
	if cfg, err := config.Load(); err == nil && cfg.APIBaseURL != "" {
		base = cfg.APIBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Tag mirrors the server's tag wire form.
type Tag struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Task mirrors the server's task wire form.
type Task struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	DisplayTitle string  `json:"display_title"`
	Completed    bool    `json:"completed"`
	CreatedAt    string  `json:"created_at"`
	DueDate      *string `json:"due_date"`
	Priority     string  `json:"priority"`
	Tags         []Tag   `json:"tags"`
}

// Stats mirrors the server's listing statistics.
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
}

// Listing is the response of the task list endpoint.
type Listing struct {
	Tasks     []Task `json:"tasks"`
	Stats     Stats  `json:"stats"`
	HasFilter bool   `json:"has_filter"`
}

// ListFilter holds the optional query parameters for ListTasks.
type ListFilter struct {
	Keyword  string
	Status   string // "true", "false" or ""
	Priority string
	TagIDs   []uint
	Due      string
}

type apiError struct {
	Error string `json:"error"`
}

func (c *Client) do(method, path string, body any, out any) error {
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s (status %s)", apiErr.Error, resp.Status)
		}
		return fmt.Errorf("API returned status %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode API response: %w", err)
		}
	}
	return nil
}

// ListTasks fetches the filtered, ordered task listing.
func (c *Client) ListTasks(f ListFilter) (*Listing, error) {
	q := url.Values{}
	if f.Keyword != "" {
		q.Set("keyword", f.Keyword)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if len(f.TagIDs) > 0 {
		parts := make([]string, 0, len(f.TagIDs))
		for _, id := range f.TagIDs {
			parts = append(parts, strconv.FormatUint(uint64(id), 10))
		}
		q.Set("tags", strings.Join(parts, ","))
	}
	if f.Due != "" {
		q.Set("due", f.Due)
	}

	path := "/v1/tasks"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var listing Listing
	if err := c.do(http.MethodGet, path, nil, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// CreateTask creates a task. The server extracts any inline #tag.
func (c *Client) CreateTask(title, dueDate, priority string, tagIDs []uint) (*Task, error) {
	body := map[string]any{"title": title}
	if dueDate != "" {
		body["due_date"] = dueDate
	}
	if priority != "" {
		body["priority"] = priority
	}
	if len(tagIDs) > 0 {
		body["tag_ids"] = tagIDs
	}

	var task Task
	if err := c.do(http.MethodPost, "/v1/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask fetches a single task.
func (c *Client) GetTask(id uint) (*Task, error) {
	var task Task
	if err := c.do(http.MethodGet, fmt.Sprintf("/v1/tasks/%d", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update. Keys absent from fields stay
// unchanged server-side.
func (c *Client) UpdateTask(id uint, fields map[string]any) (*Task, error) {
	var task Task
	if err := c.do(http.MethodPut, fmt.Sprintf("/v1/tasks/%d", id), fields, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToggleTask flips a task's completion flag.
func (c *Client) ToggleTask(id uint) (*Task, error) {
	var task Task
	if err := c.do(http.MethodPut, fmt.Sprintf("/v1/tasks/%d/toggle", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/v1/tasks/%d", id), nil, nil)
}

// ListTags fetches all tags ordered by name.
func (c *Client) ListTags() ([]Tag, error) {
	var tags []Tag
	if err := c.do(http.MethodGet, "/v1/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a tag.
func (c *Client) CreateTag(name string) (*Tag, error) {
	var tag Tag
	if err := c.do(http.MethodPost, "/v1/tags", map[string]string{"name": name}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// RenameTag renames a tag.
func (c *Client) RenameTag(id uint, name string) (*Tag, error) {
	var tag Tag
	if err := c.do(http.MethodPut, fmt.Sprintf("/v1/tags/%d", id), map[string]string{"name": name}, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag and detaches it from every task.
func (c *Client) DeleteTag(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/v1/tags/%d", id), nil, nil)
}
