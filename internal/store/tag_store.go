// Package store holds the persistence layer for tasks and tags plus the
// in-memory filter/sort engine applied on top of it.
package store

import (
	"errors"
	"fmt"

	"github.com/kutbudev/gorevce/pkg/models"
	"gorm.io/gorm"
)

// TagStore owns the Tag lifecycle. Not-found and name conflicts are
// signaled with nil results, not errors; errors are reserved for the
// database itself failing.
type TagStore struct {
	db *gorm.DB
}

// NewTagStore creates a tag store over the given database handle.
func NewTagStore(db *gorm.DB) *TagStore {
	return &TagStore{db: db}
}

// ListAll returns all tags ordered by name ascending.
func (s *TagStore) ListAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// GetByID returns the tag with the given id, or nil if it does not exist.
func (s *TagStore) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := s.db.First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %d: %w", id, err)
	}
	return &tag, nil
}

// GetByName returns the tag with the exact name, or nil if it does not exist.
func (s *TagStore) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := s.db.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %q: %w", name, err)
	}
	return &tag, nil
}

// Create persists a new tag. It returns nil when a tag with that name
// already exists.
func (s *TagStore) Create(name string) (*models.Tag, error) {
	existing, err := s.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	tag := models.Tag{Name: name}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return &tag, nil
}

// Rename changes a tag's name. It returns nil when the id is unknown or
// the new name collides with a different existing tag.
func (s *TagStore) Rename(id uint, newName string) (*models.Tag, error) {
	tag, err := s.GetByID(id)
	if err != nil || tag == nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Tag{}).
		Where("name = ? AND id <> ?", newName, id).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check tag name %q: %w", newName, err)
	}
	if count > 0 {
		return nil, nil
	}

	tag.Name = newName
	if err := s.db.Save(tag).Error; err != nil {
		return nil, fmt.Errorf("failed to rename tag %d: %w", id, err)
	}
	return tag, nil
}

// Delete removes a tag and its associations from every task that carried
// it. The tasks themselves are left intact. Returns false for unknown ids.
func (s *TagStore) Delete(id uint) (bool, error) {
	tag, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if tag == nil {
		return false, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tag).Association("Tasks").Clear(); err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	return true, nil
}

// GetOrCreate returns the existing tag with the given name, creating it
// first if needed.
func (s *TagStore) GetOrCreate(name string) (*models.Tag, error) {
	tag, err := s.GetByName(name)
	if err != nil {
		return nil, err
	}
	if tag != nil {
		return tag, nil
	}

	created := models.Tag{Name: name}
	if err := s.db.Create(&created).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return &created, nil
}
