package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/kutbudev/gorevce/pkg/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskStore owns the Task lifecycle, including the task_tags association.
// Tags are attached and detached only through task operations, never the
// other way around.
type TaskStore struct {
	db *gorm.DB
}

// NewTaskStore creates a task store over the given database handle.
func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// TaskUpdate carries a partial update. Nil fields are left unchanged.
// TagIDs distinguishes "omitted" (nil) from "clear all" (empty slice);
// when present it replaces the task's whole tag set.
type TaskUpdate struct {
	Title     *string
	DueDate   *string
	Completed *bool
	Priority  *models.Priority
	TagIDs    *[]uint
}

// Create persists a new task. dueDate is a YYYY-MM-DD string; an empty or
// unparseable value means no deadline. Tag ids that do not resolve to an
// existing tag are silently dropped.
func (s *TaskStore) Create(title string, dueDate string, priority models.Priority, tagIDs []uint) (*models.Task, error) {
	task := models.Task{
		Title:    title,
		DueDate:  parseDueDate(dueDate),
		Priority: priority,
		Tags:     []*models.Tag{},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		tags, err := resolveTags(tx, tagIDs)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&task).Association("Tags").Append(tags); err != nil {
				return err
			}
			task.Tags = tags
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// GetByID returns the task with its tags preloaded, or nil if it does not
// exist.
func (s *TaskStore) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.Preload("Tags").First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return &task, nil
}

// Update applies the supplied fields to a task. Returns nil for unknown ids.
func (s *TaskStore) Update(id uint, upd TaskUpdate) (*models.Task, error) {
	task, err := s.GetByID(id)
	if err != nil || task == nil {
		return nil, err
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.DueDate != nil {
		task.DueDate = parseDueDate(*upd.DueDate)
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(task).Select("title", "due_date", "completed", "priority").Updates(map[string]interface{}{
			"title":     task.Title,
			"due_date":  task.DueDate,
			"completed": task.Completed,
			"priority":  task.Priority,
		}).Error; err != nil {
			return err
		}
		if upd.TagIDs != nil {
			tags, err := resolveTags(tx, *upd.TagIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(task).Association("Tags").Replace(tags); err != nil {
				return err
			}
			task.Tags = tags
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return task, nil
}

// Delete hard-deletes a task and its tag associations. Returns false for
// unknown ids.
func (s *TaskStore) Delete(id uint) (bool, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if task == nil {
		return false, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(task).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return true, nil
}

// ToggleCompleted flips the completion flag. Returns nil for unknown ids.
func (s *TaskStore) ToggleCompleted(id uint) (*models.Task, error) {
	task, err := s.GetByID(id)
	if err != nil || task == nil {
		return nil, err
	}

	task.Completed = !task.Completed
	if err := s.db.Model(task).Update("completed", task.Completed).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle task %d: %w", id, err)
	}
	return task, nil
}

// List loads all tasks with their tags and runs the filter/sort engine
// over them, anchored at the current day.
func (s *TaskStore) List(f Filter) ([]models.Task, Stats, error) {
	var tasks []models.Task
	if err := s.db.Preload("Tags").Find(&tasks).Error; err != nil {
		return nil, Stats{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	out, stats := Apply(tasks, f, time.Now())
	return out, stats, nil
}

// resolveTags loads the tags for the given ids, skipping ids that do not
// exist. Referential integrity is kept by construction: only rows present
// in the tag table come back.
func resolveTags(tx *gorm.DB, ids []uint) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return []*models.Tag{}, nil
	}
	var tags []*models.Tag
	if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// parseDueDate parses a YYYY-MM-DD string. Empty or malformed input means
// no deadline, mirroring the write-time degradation rule.
func parseDueDate(s string) *datatypes.Date {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	d := datatypes.Date(t)
	return &d
}
