package handlers

import (
	"errors"
	"io"
	"net/http"

	"taskboard/internal/domain"

	"github.com/gin-gonic/gin"
)

type createTaskRequest struct {
	Title    string          `json:"title"`
	Category domain.Category `json:"category"`
	IsToday  *bool           `json:"isToday"`
}

// updateTaskRequest covers edit, move and completion; absent fields are kept.
type updateTaskRequest struct {
	Title       *string          `json:"title"`
	Category    *domain.Category `json:"category"`
	IsToday     *bool            `json:"isToday"`
	IsCompleted *bool            `json:"isCompleted"`
}

func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	lists, err := h.Tasks.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), userID, req.Title, req.Category, req.IsToday)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	task, err := h.Tasks.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	// an empty body is an empty patch
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), userID, c.Param("id"), domain.TaskPatch{
		Title:       req.Title,
		Category:    req.Category,
		IsToday:     req.IsToday,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
