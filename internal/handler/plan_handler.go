package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy/study-planning/internal/config"
	"github.com/studybuddy/study-planning/internal/domain"
	"github.com/studybuddy/study-planning/internal/service/plan"
	"github.com/studybuddy/study-planning/internal/service/stats"
)

const dateLayout = "2006-01-02"

type PlanHandler struct {
	planService  *plan.Service
	statsService *stats.Service
	planner      *config.PlannerConfig
}

func NewPlanHandler(planService *plan.Service, statsService *stats.Service, plannerCfg *config.PlannerConfig) *PlanHandler {
	return &PlanHandler{
		planService:  planService,
		statsService: statsService,
		planner:      plannerCfg,
	}
}

// HandleGenerate builds and stores the plan for the requested date,
// replacing any existing plan for that date.
func (h *PlanHandler) HandleGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	// An empty body generates today's plan with the configured defaults.
	var req GeneratePlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	pace := h.planner.DefaultLearningPace
	if req.LearningPace != nil {
		pace = *req.LearningPace
	}
	hours := h.planner.DefaultAvailableHours
	if req.AvailableHours != nil {
		hours = *req.AvailableHours
	}

	generated, err := h.planService.Generate(ctx, plan.GenerateParams{
		Date:           date,
		LearningPace:   pace,
		AvailableHours: hours,
	})
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusCreated, generated)
}

// HandleRefresh is the callback target for queued refresh tasks. The body
// carries the parameters captured when the task was scheduled.
func (h *PlanHandler) HandleRefresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req RefreshPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}

	pace := req.LearningPace
	if pace == 0 {
		pace = h.planner.DefaultLearningPace
	}
	hours := req.AvailableHours
	if hours == 0 {
		hours = h.planner.DefaultAvailableHours
	}

	slog.InfoContext(ctx, "handling scheduled plan refresh",
		slog.String("date", req.Date),
	)

	generated, err := h.planService.Generate(ctx, plan.GenerateParams{
		Date:           date,
		LearningPace:   pace,
		AvailableHours: hours,
	})
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, generated)
}

func (h *PlanHandler) HandleList(c *gin.Context) {
	plans, err := h.planService.List(c.Request.Context())
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PlanHandler) HandleGetByDate(c *gin.Context) {
	date, ok := h.parseDateParam(c)
	if !ok {
		return
	}

	stored, err := h.planService.GetByDate(c.Request.Context(), date)
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, stored)
}

func (h *PlanHandler) HandleDelete(c *gin.Context) {
	date, ok := h.parseDateParam(c)
	if !ok {
		return
	}

	if err := h.planService.Delete(c.Request.Context(), date); err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PlanHandler) HandleCompleteTopic(c *gin.Context) {
	date, ok := h.parseDateParam(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		respondError(c, http.StatusBadRequest, "topic index must be a non-negative integer")
		return
	}

	var req CompleteTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "actual_minutes must be a positive integer")
		return
	}

	updated, err := h.planService.CompleteTopic(c.Request.Context(), plan.CompleteTopicParams{
		Date:          date,
		TopicIndex:    index,
		ActualMinutes: req.ActualMinutes,
	})
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *PlanHandler) HandleSuggestions(c *gin.Context) {
	date, ok := h.parseDateParam(c)
	if !ok {
		return
	}

	suggestion, err := h.planService.SuggestAdjustments(c.Request.Context(), date)
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

func (h *PlanHandler) HandleStats(c *gin.Context) {
	summary, err := h.statsService.Summary(c.Request.Context(), time.Now().UTC())
	if err != nil {
		h.respondPlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// parseDateParam resolves the :date path segment. The literal "today" maps
// to the current UTC date.
func (h *PlanHandler) parseDateParam(c *gin.Context) (time.Time, bool) {
	raw := c.Param("date")
	if raw == "today" {
		return time.Now().UTC(), true
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD or today")
		return time.Time{}, false
	}
	return date, true
}

func (h *PlanHandler) respondPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPlanNotFound):
		respondError(c, http.StatusNotFound, "no plan stored for this date")
	case errors.Is(err, domain.ErrTopicIndexOutOfRange):
		respondError(c, http.StatusBadRequest, "topic index out of range")
	case errors.Is(err, domain.ErrInvalidPace):
		respondError(c, http.StatusBadRequest, "learning pace must be positive")
	case errors.Is(err, domain.ErrInvalidHours):
		respondError(c, http.StatusBadRequest, "available hours must be positive")
	default:
		slog.ErrorContext(c.Request.Context(), "plan request failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
