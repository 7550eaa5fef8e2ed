package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mechfinder/internal/domain/entities"
	"mechfinder/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrB2BApplicationNotFound = errors.New("partnership application not found")
	ErrInvalidB2BInput        = errors.New("invalid partnership application input")
	ErrB2BAlreadyDecided      = errors.New("partnership application already decided")
)

type B2BApplyInput struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Message     string
}

// IB2BUseCase handles partnership intake. Apply is public; review operations
// are admin-only, enforced at the routing layer.
type IB2BUseCase interface {
	Apply(ctx context.Context, input B2BApplyInput) (entities.B2BApplication, error)
	GetByID(ctx context.Context, id string) (entities.B2BApplication, error)
	List(ctx context.Context, status entities.B2BStatus) ([]entities.B2BApplication, error)
	Decide(ctx context.Context, id string, approved bool) (entities.B2BApplication, error)
}

type B2BUseCase struct {
	applications interfaces.IB2BRepository
	log          *zap.SugaredLogger
}

var _ IB2BUseCase = (*B2BUseCase)(nil)

func NewB2BUseCase(applications interfaces.IB2BRepository, log *zap.SugaredLogger) *B2BUseCase {
	return &B2BUseCase{applications: applications, log: log}
}

func (u *B2BUseCase) Apply(ctx context.Context, input B2BApplyInput) (entities.B2BApplication, error) {
	company := strings.TrimSpace(input.CompanyName)
	contact := strings.TrimSpace(input.ContactName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if company == "" || contact == "" || email == "" || !strings.Contains(email, "@") {
		return entities.B2BApplication{}, ErrInvalidB2BInput
	}

	now := time.Now().UTC()
	a := entities.B2BApplication{
		ID:          uuid.NewString(),
		CompanyName: company,
		ContactName: contact,
		Email:       email,
		Phone:       strings.TrimSpace(input.Phone),
		Message:     strings.TrimSpace(input.Message),
		Status:      entities.B2BStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.applications.Create(ctx, a)
	if err != nil {
		return entities.B2BApplication{}, err
	}
	u.log.Infow("partnership application received", "application_id", created.ID, "company", created.CompanyName)
	return created, nil
}

func (u *B2BUseCase) GetByID(ctx context.Context, id string) (entities.B2BApplication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.B2BApplication{}, ErrInvalidB2BInput
	}
	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		return entities.B2BApplication{}, err
	}
	if a.ID == "" {
		return entities.B2BApplication{}, ErrB2BApplicationNotFound
	}
	return a, nil
}

// List returns applications, optionally filtered by status. An empty status
// means all.
func (u *B2BUseCase) List(ctx context.Context, status entities.B2BStatus) ([]entities.B2BApplication, error) {
	return u.applications.List(ctx, status)
}

func (u *B2BUseCase) Decide(ctx context.Context, id string, approved bool) (entities.B2BApplication, error) {
	a, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.B2BApplication{}, err
	}
	if a.Status != entities.B2BStatusPending {
		return entities.B2BApplication{}, ErrB2BAlreadyDecided
	}

	next := entities.B2BStatusRejected
	if approved {
		next = entities.B2BStatusApproved
	}
	updated, err := u.applications.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.B2BApplication{}, err
	}
	u.log.Infow("partnership application decided", "application_id", id, "status", next)
	return updated, nil
}
