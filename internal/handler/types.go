package handler

import "github.com/gin-gonic/gin"

type GeneratePlanRequest struct {
	Date           string `json:"date"`
	LearningPace   *int   `json:"learning_pace"`
	AvailableHours *int   `json:"available_hours"`
}

type RefreshPlanRequest struct {
	Date           string `json:"date" binding:"required"`
	LearningPace   int    `json:"learning_pace"`
	AvailableHours int    `json:"available_hours"`
}

type CompleteTopicRequest struct {
	ActualMinutes int `json:"actual_minutes" binding:"required,gt=0"`
}

type UnitRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
	TotalTopics     int    `json:"total_topics" binding:"required,gt=0"`
	CompletedTopics int    `json:"completed_topics" binding:"gte=0"`
}

type AssignmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type" binding:"required,oneof=assignment cat"`
	Deadline    string `json:"deadline" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error":   "request_error",
		"message": message,
	})
}
