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

type UnitHandler struct {
	unitRepo domain.UnitRepository
}

func NewUnitHandler(unitRepo domain.UnitRepository) *UnitHandler {
	return &UnitHandler{
		unitRepo: unitRepo,
	}
}

func (h *UnitHandler) HandleCreate(c *gin.Context) {
	var req UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CompletedTopics > req.TotalTopics {
		respondError(c, http.StatusBadRequest, "completed_topics cannot exceed total_topics")
		return
	}

	unit := &domain.Unit{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		Color:           req.Color,
		Icon:            req.Icon,
		TotalTopics:     req.TotalTopics,
		CompletedTopics: req.CompletedTopics,
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.unitRepo.SaveUnit(c.Request.Context(), unit); err != nil {
		h.respondUnitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, unit)
}

func (h *UnitHandler) HandleList(c *gin.Context) {
	units, err := h.unitRepo.ListUnits(c.Request.Context())
	if err != nil {
		h.respondUnitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"units": units})
}

func (h *UnitHandler) HandleGet(c *gin.Context) {
	unit, err := h.unitRepo.GetUnit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondUnitError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

func (h *UnitHandler) HandleUpdate(c *gin.Context) {
	ctx := c.Request.Context()

	existing, err := h.unitRepo.GetUnit(ctx, c.Param("id"))
	if err != nil {
		h.respondUnitError(c, err)
		return
	}

	var req UnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CompletedTopics > req.TotalTopics {
		respondError(c, http.StatusBadRequest, "completed_topics cannot exceed total_topics")
		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Color = req.Color
	existing.Icon = req.Icon
	existing.TotalTopics = req.TotalTopics
	existing.CompletedTopics = req.CompletedTopics

	if err := h.unitRepo.SaveUnit(ctx, existing); err != nil {
		h.respondUnitError(c, err)
		return
	}

	c.JSON(http.StatusOK, existing)
}

func (h *UnitHandler) HandleDelete(c *gin.Context) {
	if err := h.unitRepo.DeleteUnit(c.Request.Context(), c.Param("id")); err != nil {
		h.respondUnitError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UnitHandler) respondUnitError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrUnitNotFound) {
		respondError(c, http.StatusNotFound, "unit not found")
		return
	}

	slog.ErrorContext(c.Request.Context(), "unit request failed",
		slog.String("error", err.Error()),
	)
	respondError(c, http.StatusInternalServerError, "internal error")
}
