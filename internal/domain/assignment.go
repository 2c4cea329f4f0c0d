package domain

import "time"

// AssignmentType distinguishes regular assignments from continuous
// assessment tests (CATs), which need longer preparation.
type AssignmentType string

const (
	AssignmentTypeAssignment AssignmentType = "assignment"
	AssignmentTypeCAT        AssignmentType = "cat"
)

func (t AssignmentType) String() string {
	return string(t)
}

type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusInProgress AssignmentStatus = "in_progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

type Assignment struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Type        AssignmentType   `json:"type"`
	Deadline    time.Time        `json:"deadline"`
	Status      AssignmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (a *Assignment) IsCompleted() bool {
	return a.Status == AssignmentStatusCompleted
}
