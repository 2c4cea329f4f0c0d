package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studybuddy/study-planning/internal/domain"
)

type AssignmentHandler struct {
	assignmentRepo domain.AssignmentRepository
}

func NewAssignmentHandler(assignmentRepo domain.AssignmentRepository) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentRepo: assignmentRepo,
	}
}

func (h *AssignmentHandler) HandleCreate(c *gin.Context) {
	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid deadline format, expected YYYY-MM-DD")
		return
	}

	status := domain.AssignmentStatus(req.Status)
	if status == "" {
		status = domain.AssignmentStatusPending
	}

	assignment := &domain.Assignment{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Type:        domain.AssignmentType(req.Type),
		Deadline:    deadline,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.assignmentRepo.SaveAssignment(c.Request.Context(), assignment); err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *AssignmentHandler) HandleList(c *gin.Context) {
	assignments, err := h.assignmentRepo.ListAssignments(c.Request.Context())
	if err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

func (h *AssignmentHandler) HandleGet(c *gin.Context) {
	assignment, err := h.assignmentRepo.GetAssignment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *AssignmentHandler) HandleUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := h.assignmentRepo.GetAssignment(ctx, c.Param("id"))
	if err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid deadline format, expected YYYY-MM-DD")
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Type = domain.AssignmentType(req.Type)
	existing.Deadline = deadline
	if req.Status != "" {
		existing.Status = domain.AssignmentStatus(req.Status)
	}

	if err := h.assignmentRepo.SaveAssignment(ctx, existing); err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, existing)
}

func (h *AssignmentHandler) HandleDelete(c *gin.Context) {
	if err := h.assignmentRepo.DeleteAssignment(c.Request.Context(), c.Param("id")); err != nil {
		h.respondAssignmentError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AssignmentHandler) respondAssignmentError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrAssignmentNotFound) {
		respondError(c, http.StatusNotFound, "assignment not found")
		return
	}

	slog.ErrorContext(c.Request.Context(), "assignment request failed",
		slog.String("error", err.Error()),
	)
	respondError(c, http.StatusInternalServerError, "internal error")
}
