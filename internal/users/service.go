package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/ksuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/jobs"
	"github.com/campusbridge/campusbridge/internal/models"
)

// NewAccount is the input for creating a TNP admin or student account.
type NewAccount struct {
	Email    string
	Name     string
	Password string
	Profile  *models.StudentProfile // students only
}

// Service encapsulates account business logic.
type Service struct {
	repo       UserRepository
	bcryptCost int
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r, bcryptCost: bcrypt.DefaultCost}
}

// Authenticate resolves an email/password pair to an account. Every failure
// mode (unknown email, wrong password) collapses into ErrUnauthorized so the
// caller cannot probe which part was wrong.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, guard.ErrNotFound) {
			return nil, guard.ErrUnauthorized
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, guard.ErrUnauthorized
	}
	return u, nil
}

// CreateTnpAdmin registers a per-college admin account.
func (s *Service) CreateTnpAdmin(ctx context.Context, collegeID string, in NewAccount) (*models.User, error) {
	if collegeID == "" {
		return nil, fmt.Errorf("%w: collegeId is required", guard.ErrValidation)
	}
	return s.create(ctx, models.RoleTnpAdmin, collegeID, in)
}

// CreateStudent registers a student under a college. The academic profile is
// validated up front; the subscription gate has already run by the time this
// is called.
func (s *Service) CreateStudent(ctx context.Context, collegeID string, in NewAccount) (*models.User, error) {
	if collegeID == "" {
		return nil, fmt.Errorf("%w: collegeId is required", guard.ErrValidation)
	}
	if in.Profile != nil {
		if err := jobs.ValidateProfile(*in.Profile); err != nil {
			return nil, err
		}
	}
	return s.create(ctx, models.RoleStudent, collegeID, in)
}

func (s *Service) create(ctx context.Context, role models.Role, collegeID string, in NewAccount) (*models.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", guard.ErrValidation)
	}
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", guard.ErrValidation)
	} else if !errors.Is(err, guard.ErrNotFound) {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		ID:           ksuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: string(hash),
		Role:         role,
		CollegeID:    collegeID,
		Profile:      in.Profile,
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStudentProfile replaces the academic profile of the given student.
func (s *Service) UpdateStudentProfile(ctx context.Context, studentID string, p *models.StudentProfile) (*models.User, error) {
	target, err := s.repo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if target.Role != models.RoleStudent {
		return nil, fmt.Errorf("%w: account %s is not a student", guard.ErrValidation, studentID)
	}
	if p != nil {
		if err := jobs.ValidateProfile(*p); err != nil {
			return nil, err
		}
	}
	return s.repo.UpdateProfile(ctx, studentID, p)
}

// DeleteStudent removes a student account. Non-student accounts cannot be
// deleted through this path.
func (s *Service) DeleteStudent(ctx context.Context, studentID string) error {
	target, err := s.repo.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if target.Role != models.RoleStudent {
		return fmt.Errorf("%w: account %s is not a student", guard.ErrValidation, studentID)
	}
	return s.repo.Delete(ctx, studentID)
}

// ListByCollege returns every account belonging to the college.
func (s *Service) ListByCollege(ctx context.Context, collegeID string) ([]models.User, error) {
	return s.repo.ListByCollege(ctx, collegeID)
}

// StudentSeatCount reports how many student seats a college currently uses.
func (s *Service) StudentSeatCount(ctx context.Context, collegeID string) (int64, error) {
	return s.repo.CountByCollegeAndRole(ctx, collegeID, models.RoleStudent)
}
