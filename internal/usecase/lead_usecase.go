package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrInvalidLead       = errors.New("invalid lead")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

// CreateLeadInput is the inbound contact-form submission.
type CreateLeadInput struct {
	Name          string
	Email         string
	Phone         string
	EventType     string
	EventDate     *time.Time
	EventLocation string
	Message       string
}

// ILeadUseCase exposes lead operations. Leads are read-only except for their
// status.
type ILeadUseCase interface {
	Create(ctx context.Context, in CreateLeadInput) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
	feed interfaces.IChangeFeed
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

var leadLog = logging.For("lead.usecase")

func NewLeadUseCase(repo interfaces.ILeadRepository, feed interfaces.IChangeFeed) *LeadUseCase {
	return &LeadUseCase{repo: repo, feed: feed}
}

func (u *LeadUseCase) Create(ctx context.Context, in CreateLeadInput) (entities.Lead, error) {
	l := entities.Lead{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		EventType:     in.EventType,
		EventDate:     in.EventDate,
		EventLocation: in.EventLocation,
		Message:       strings.TrimSpace(in.Message),
		Status:        entities.LeadStatusNovo,
		CreatedAt:     utcNow(),
	}.Normalize()
	if err := validate.Struct(l); err != nil {
		return entities.Lead{}, fmt.Errorf("%w: %v", ErrInvalidLead, err)
	}

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		leadLog.WithError(err).Error("create failed")
		return entities.Lead{}, err
	}
	leadLog.WithField("lead_id", created.ID).Info("lead created")
	publishChange(ctx, u.feed, CollectionLeads, created.ID)
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.repo.List(ctx)
}

func (u *LeadUseCase) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	status = entities.LeadStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if status == "" {
		return entities.Lead{}, ErrInvalidLeadStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Lead{}, err
	}
	if updated.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	leadLog.WithFields(logrus.Fields{"lead_id": id, "status": status}).Info("lead status updated")
	publishChange(ctx, u.feed, CollectionLeads, id)
	return updated, nil
}
