package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studybuddy/study-planning/internal/domain"
	"github.com/studybuddy/study-planning/internal/testutil"
)

func TestUnitRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)

	repo := NewUnitRepository(client)

	unit := &domain.Unit{
		ID:              "u1",
		Name:            "anatomy",
		Description:     "Human anatomy fundamentals",
		Color:           "#e74c3c",
		Icon:            "skeleton",
		TotalTopics:     12,
		CompletedTopics: 3,
		CreatedAt:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("save and get round trip", func(t *testing.T) {
		if err := repo.SaveUnit(ctx, unit); err != nil {
			t.Fatalf("SaveUnit() error = %v", err)
		}

		got, err := repo.GetUnit(ctx, "u1")
		if err != nil {
			t.Fatalf("GetUnit() error = %v", err)
		}
		if got.Name != unit.Name || got.TotalTopics != unit.TotalTopics || got.CompletedTopics != unit.CompletedTopics {
			t.Errorf("GetUnit() = %+v, want %+v", got, unit)
		}
	})

	t.Run("save updates progress in place", func(t *testing.T) {
		updated := *unit
		updated.CompletedTopics = 5
		if err := repo.SaveUnit(ctx, &updated); err != nil {
			t.Fatalf("SaveUnit() error = %v", err)
		}

		got, err := repo.GetUnit(ctx, "u1")
		if err != nil {
			t.Fatalf("GetUnit() error = %v", err)
		}
		if got.CompletedTopics != 5 {
			t.Errorf("CompletedTopics = %d, want 5", got.CompletedTopics)
		}
	})

	t.Run("list sorts by creation time", func(t *testing.T) {
		later := &domain.Unit{
			ID:        "u2",
			Name:      "immunology",
			CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		}
		if err := repo.SaveUnit(ctx, later); err != nil {
			t.Fatalf("SaveUnit() error = %v", err)
		}

		got, err := repo.ListUnits(ctx)
		if err != nil {
			t.Fatalf("ListUnits() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("ListUnits() = %d units, want 2", len(got))
		}
		if got[0].ID != "u1" || got[1].ID != "u2" {
			t.Errorf("ListUnits() order = [%s, %s], want [u1, u2]", got[0].ID, got[1].ID)
		}
	})

	t.Run("get missing unit", func(t *testing.T) {
		if _, err := repo.GetUnit(ctx, "nope"); !errors.Is(err, domain.ErrUnitNotFound) {
			t.Errorf("GetUnit() error = %v, want %v", err, domain.ErrUnitNotFound)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.DeleteUnit(ctx, "u2"); err != nil {
			t.Fatalf("DeleteUnit() error = %v", err)
		}
		if _, err := repo.GetUnit(ctx, "u2"); !errors.Is(err, domain.ErrUnitNotFound) {
			t.Errorf("GetUnit() after delete error = %v, want %v", err, domain.ErrUnitNotFound)
		}
	})
}

func TestAssignmentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client := testutil.SetupRedisContainer(ctx, t)

	repo := NewAssignmentRepository(client)

	early := &domain.Assignment{
		ID:        "a1",
		Title:     "Lab report",
		Type:      domain.AssignmentTypeAssignment,
		Deadline:  time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:    domain.AssignmentStatusPending,
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	late := &domain.Assignment{
		ID:        "a2",
		Title:     "Pharmacology CAT",
		Type:      domain.AssignmentTypeCAT,
		Deadline:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Status:    domain.AssignmentStatusInProgress,
		CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}

	t.Run("save and get round trip", func(t *testing.T) {
		if err := repo.SaveAssignment(ctx, early); err != nil {
			t.Fatalf("SaveAssignment() error = %v", err)
		}

		got, err := repo.GetAssignment(ctx, "a1")
		if err != nil {
			t.Fatalf("GetAssignment() error = %v", err)
		}
		if got.Title != early.Title || got.Type != early.Type || got.Status != early.Status {
			t.Errorf("GetAssignment() = %+v, want %+v", got, early)
		}
		if !got.Deadline.Equal(early.Deadline) {
			t.Errorf("Deadline = %v, want %v", got.Deadline, early.Deadline)
		}
	})

	t.Run("list sorts by deadline", func(t *testing.T) {
		if err := repo.SaveAssignment(ctx, late); err != nil {
			t.Fatalf("SaveAssignment() error = %v", err)
		}

		got, err := repo.ListAssignments(ctx)
		if err != nil {
			t.Fatalf("ListAssignments() error = %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("ListAssignments() = %d assignments, want 2", len(got))
		}
		if got[0].ID != "a1" || got[1].ID != "a2" {
			t.Errorf("ListAssignments() order = [%s, %s], want [a1, a2]", got[0].ID, got[1].ID)
		}
	})

	t.Run("get missing assignment", func(t *testing.T) {
		if _, err := repo.GetAssignment(ctx, "nope"); !errors.Is(err, domain.ErrAssignmentNotFound) {
			t.Errorf("GetAssignment() error = %v, want %v", err, domain.ErrAssignmentNotFound)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.DeleteAssignment(ctx, "a1"); err != nil {
			t.Fatalf("DeleteAssignment() error = %v", err)
		}
		if _, err := repo.GetAssignment(ctx, "a1"); !errors.Is(err, domain.ErrAssignmentNotFound) {
			t.Errorf("GetAssignment() after delete error = %v, want %v", err, domain.ErrAssignmentNotFound)
		}
	})
}
