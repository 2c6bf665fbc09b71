package jobs

import (
	"context"
	"fmt"

	"github.com/segmentio/ksuid"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
	"github.com/campusbridge/campusbridge/pkg/metrics"
)

// Service encapsulates job-posting business logic.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create validates the criteria at authoring time and stores the posting
// under the given college.
func (s *Service) Create(ctx context.Context, collegeID string, j *Job) (*Job, error) {
	if j.Title == "" || j.Company == "" {
		return nil, fmt.Errorf("%w: title and company are required", guard.ErrValidation)
	}
	if err := ValidateCriteria(j.EligibilityCriteria); err != nil {
		return nil, err
	}
	j.ID = ksuid.New().String()
	j.CollegeID = collegeID
	j.TotalApplications = 0
	if _, err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Job, error) {
	return s.repo.Get(ctx, id)
}

// ListByCollege returns the college's postings, newest first.
func (s *Service) ListByCollege(ctx context.Context, collegeID string) ([]Job, error) {
	return s.repo.ListByCollege(ctx, collegeID)
}

// ListEligible returns the subset of the college's postings the student
// qualifies for, in listing order.
func (s *Service) ListEligible(ctx context.Context, collegeID string, profile *models.StudentProfile) ([]Job, error) {
	all, err := s.repo.ListByCollege(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	eligible := FilterEligible(profile, all)
	metrics.EligibilityEvaluations.Add(float64(len(all)))
	return eligible, nil
}

// Apply records one application for the job. The student must qualify; an
// ineligible student is rejected with Forbidden, not silently counted.
func (s *Service) Apply(ctx context.Context, id string, profile *models.StudentProfile) (*Job, error) {
	j, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	metrics.EligibilityEvaluations.Inc()
	if !IsEligible(profile, j.EligibilityCriteria) {
		return nil, fmt.Errorf("%w: student does not meet the job's eligibility criteria", guard.ErrForbidden)
	}
	if err := s.repo.IncrementApplications(ctx, id); err != nil {
		return nil, err
	}
	j.TotalApplications++
	return j, nil
}

// SetLogoKey records the object-storage key of the job's company logo.
func (s *Service) SetLogoKey(ctx context.Context, id, key string) error {
	return s.repo.SetLogoKey(ctx, id, key)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
