package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
)

func TestServiceCreate_ValidatesCriteria(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	bad := &Job{Title: "SDE", Company: "Acme", EligibilityCriteria: EligibilityCriteria{CGPA: f(-2)}}
	if _, err := svc.Create(ctx, "c1", bad); !errors.Is(err, guard.ErrValidation) {
		t.Fatalf("expected ErrValidation for negative cgpa threshold, got %v", err)
	}

	missing := &Job{Company: "Acme"}
	if _, err := svc.Create(ctx, "c1", missing); !errors.Is(err, guard.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing title, got %v", err)
	}
}

func TestServiceCreate_AssignsIDAndCollege(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	j, err := svc.Create(context.Background(), "c1", &Job{Title: "SDE", Company: "Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.ID == "" {
		t.Fatal("expected generated id")
	}
	if j.CollegeID != "c1" {
		t.Fatalf("expected collegeId c1, got %q", j.CollegeID)
	}
	if j.TotalApplications != 0 {
		t.Fatalf("new posting should start with zero applications, got %d", j.TotalApplications)
	}
}

func TestServiceListEligible_FiltersByProfileAndCollege(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	mk := func(college string, c EligibilityCriteria) *Job {
		j, err := svc.Create(ctx, college, &Job{Title: "T", Company: "Co", EligibilityCriteria: c})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return j
	}
	open := mk("c1", EligibilityCriteria{})
	mk("c1", EligibilityCriteria{Branches: []string{"ME"}})
	mk("c2", EligibilityCriteria{}) // other college, never listed
	csOnly := mk("c1", EligibilityCriteria{Branches: []string{"CS"}})

	got, err := svc.ListEligible(ctx, "c1", csProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 eligible jobs, got %d", len(got))
	}
	ids := map[string]bool{got[0].ID: true, got[1].ID: true}
	if !ids[open.ID] || !ids[csOnly.ID] {
		t.Fatalf("unexpected eligible set: %+v", got)
	}
}

func TestServiceApply(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	j, err := svc.Create(ctx, "c1", &Job{Title: "SDE", Company: "Acme", EligibilityCriteria: EligibilityCriteria{Branches: []string{"CS"}}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Apply(ctx, j.ID, csProfile())
	if err != nil {
		t.Fatalf("eligible student should be able to apply: %v", err)
	}
	if got.TotalApplications != 1 {
		t.Fatalf("expected 1 application, got %d", got.TotalApplications)
	}

	me := &models.StudentProfile{Branch: "ME"}
	if _, err := svc.Apply(ctx, j.ID, me); !errors.Is(err, guard.ErrForbidden) {
		t.Fatalf("ineligible student must be rejected with Forbidden, got %v", err)
	}

	if _, err := svc.Apply(ctx, "missing", csProfile()); !errors.Is(err, guard.ErrNotFound) {
		t.Fatalf("unknown job must be NotFound, got %v", err)
	}
}
