package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CreateTagInput DTO for creating a tag
type CreateTagInput struct {
	Name string `json:"name" binding:"required"`
}

// ListTags returns all tags ordered by name.
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.Tags.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tags"})
		return
	}
	resp := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		resp = append(resp, TagResponse{ID: tag.ID, Name: tag.Name})
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTag creates a new tag. A name collision is a conflict, not an error.
func (h *Handler) CreateTag(c *gin.Context) {
	var input CreateTagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name cannot be empty"})
		return
	}

	tag, err := h.Tags.Create(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tag"})
		return
	}
	if tag == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Tag already exists"})
		return
	}
	c.JSON(http.StatusCreated, TagResponse{ID: tag.ID, Name: tag.Name})
}

// RenameTagInput DTO for renaming a tag
type RenameTagInput struct {
	Name string `json:"name" binding:"required"`
}

// RenameTag renames a tag, refusing names taken by a different tag.
func (h *Handler) RenameTag(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	var input RenameTagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tag name cannot be empty"})
		return
	}

	// Distinguish unknown id from a name conflict for the response code.
	existing, err := h.Tags.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename tag"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	tag, err := h.Tags.Rename(id, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename tag"})
		return
	}
	if tag == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Tag name already in use"})
		return
	}
	c.JSON(http.StatusOK, TagResponse{ID: tag.ID, Name: tag.Name})
}

// DeleteTag deletes a tag and detaches it from every task.
func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}

	deleted, err := h.Tags.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tag"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tag not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}
