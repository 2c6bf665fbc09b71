package colleges

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
)

// Service wraps repository operations. Its main job in the request path is
// the subscription gate lookup.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Get(ctx context.Context, id string) (*models.College, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, c *models.College) (*models.College, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("%w: college name is required", guard.ErrValidation)
	}
	if c.ID == "" {
		c.ID = ksuid.New().String()
	}
	return s.repo.Create(ctx, c)
}

// SetSubscription replaces the college's subscription term.
func (s *Service) SetSubscription(ctx context.Context, collegeID string, sub models.Subscription) error {
	return s.repo.SetSubscription(ctx, collegeID, sub)
}

// CheckSubscription loads the college and applies the pure subscription
// check. Callers must only invoke this after authorization has passed so a
// role failure never leaks billing state.
func (s *Service) CheckSubscription(ctx context.Context, collegeID string) error {
	c, err := s.repo.Get(ctx, collegeID)
	if err != nil {
		return err
	}
	return guard.CheckSubscription(c.Subscription, time.Now().UTC())
}
