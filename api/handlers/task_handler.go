package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/gorevce/internal/dispatch"
	"github.com/kutbudev/gorevce/internal/store"
	"github.com/kutbudev/gorevce/internal/titletag"
	"github.com/kutbudev/gorevce/pkg/models"
)

// Handler bundles the stores and the read dispatch pool behind the routes.
type Handler struct {
	Tasks *store.TaskStore
	Tags  *store.TagStore
	Pool  *dispatch.Pool
}

// New creates a handler set over the given stores.
func New(tasks *store.TaskStore, tags *store.TagStore, pool *dispatch.Pool) *Handler {
	return &Handler{Tasks: tasks, Tags: tags, Pool: pool}
}

// TagResponse is the wire form of a tag.
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TaskResponse is the wire form of a task. DueDate is YYYY-MM-DD or null;
// the legacy placeholder date surfaces as null too.
type TaskResponse struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	DisplayTitle string        `json:"display_title"`
	Completed    bool          `json:"completed"`
	CreatedAt    string        `json:"created_at"`
	DueDate      *string       `json:"due_date"`
	Priority     string        `json:"priority"`
	Tags         []TagResponse `json:"tags"`
}

// StatsResponse summarizes a filtered listing.
type StatsResponse struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
}

// ListTasksResponse is the body of GET /v1/tasks.
type ListTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	Stats     StatsResponse  `json:"stats"`
	HasFilter bool           `json:"has_filter"`
}

func toTaskResponse(t *models.Task) TaskResponse {
	resp := TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		DisplayTitle: t.DisplayTitle(),
		Completed:    t.Completed,
		CreatedAt:    t.CreatedAt.Format("2006-01-02 15:04:05"),
		Priority:     t.Priority.String(),
		Tags:         make([]TagResponse, 0, len(t.Tags)),
	}
	if s := t.DueDateString(); s != "" {
		resp.DueDate = &s
	}
	for _, tag := range t.Tags {
		resp.Tags = append(resp.Tags, TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return resp
}

// ListTasks handles GET /v1/tasks. The query runs on the dispatch pool;
// the handler waits for the completion callback.
func (h *Handler) ListTasks(c *gin.Context) {
	filter := store.Filter{
		Keyword:  c.Query("keyword"),
		Status:   parseStatusFilter(c.Query("status")),
		Priority: parsePriorityFilter(c.Query("priority")),
		TagIDs:   parseTagIDs(c.Query("tags")),
		DueDate:  c.Query("due"),
	}

	type listing struct {
		tasks []models.Task
		stats store.Stats
	}
	done := make(chan dispatch.Result, 1)
	err := h.Pool.Submit(c.Request.Context(), func(ctx context.Context) (any, error) {
		tasks, stats, err := h.Tasks.List(filter)
		if err != nil {
			return nil, err
		}
		return listing{tasks: tasks, stats: stats}, nil
	}, func(r dispatch.Result) { done <- r })
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Server is shutting down"})
		return
	}

	r := <-done
	if r.Err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks"})
		return
	}
	l := r.Value.(listing)

	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(l.tasks)),
		Stats: StatsResponse{
			Total:      l.stats.Total,
			Completed:  l.stats.Completed,
			Incomplete: l.stats.Incomplete(),
		},
		HasFilter: filter.HasCriteria(),
	}
	for i := range l.tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(&l.tasks[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTaskInput DTO for creating a new task
type CreateTaskInput struct {
	Title    string `json:"title" binding:"required"`
	DueDate  string `json:"due_date"`
	Priority string `json:"priority"`
	TagIDs   []uint `json:"tag_ids"`
}

// CreateTask creates a new task. An inline #tag in the title is extracted
// and resolved through tag get-or-create before the task is stored.
func (h *Handler) CreateTask(c *gin.Context) {
	var input CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, tagName, hasTag := titletag.Extract(input.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
		return
	}

	tagIDs := input.TagIDs
	if hasTag {
		tag, err := h.Tags.GetOrCreate(tagName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tag"})
			return
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	task, err := h.Tasks.Create(title, input.DueDate, models.ParsePriority(input.Priority), tagIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// GetTask retrieves a single task by its ID.
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	done := make(chan dispatch.Result, 1)
	err := h.Pool.Submit(c.Request.Context(), func(ctx context.Context) (any, error) {
		return h.Tasks.GetByID(id)
	}, func(r dispatch.Result) { done <- r })
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Server is shutting down"})
		return
	}

	r := <-done
	if r.Err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get task"})
		return
	}
	task := r.Value.(*models.Task)
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// UpdateTaskInput DTO for updating a task. Omitted fields stay unchanged;
// tag_ids, when present, replaces the whole tag set.
type UpdateTaskInput struct {
	Title     *string `json:"title"`
	DueDate   *string `json:"due_date"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority"`
	TagIDs    *[]uint `json:"tag_ids"`
}

// UpdateTask updates an existing task.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var input UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := store.TaskUpdate{
		DueDate:   input.DueDate,
		Completed: input.Completed,
		TagIDs:    input.TagIDs,
	}
	if input.Priority != nil {
		p := models.ParsePriority(*input.Priority)
		upd.Priority = &p
	}
	if input.Title != nil {
		title, tagName, hasTag := titletag.Extract(*input.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		upd.Title = &title
		if hasTag {
			tag, err := h.Tags.GetOrCreate(tagName)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve tag"})
				return
			}
			if upd.TagIDs != nil {
				ids := append(*upd.TagIDs, tag.ID)
				upd.TagIDs = &ids
			} else if existing, err := h.Tasks.GetByID(id); err == nil && existing != nil {
				ids := append(existing.TagIDs(), tag.ID)
				upd.TagIDs = &ids
			}
		}
	}

	task, err := h.Tasks.Update(id, upd)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

// DeleteTask deletes a task from the database.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	deleted, err := h.Tasks.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// ToggleTask flips a task's completion flag.
func (h *Handler) ToggleTask(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	task, err := h.Tasks.ToggleCompleted(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}
