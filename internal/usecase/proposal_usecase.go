package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/integrity"
	"console_comercial/internal/domain/template"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrInvalidProposalValue  = errors.New("invalid proposal value")
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
	ErrInvalidProposalClient = errors.New("proposal needs a client name")
)

var proposalStatuses = map[entities.ProposalStatus]bool{
	entities.ProposalStatusDraft:      true,
	entities.ProposalStatusRascunho:   true,
	entities.ProposalStatusEnviado:    true,
	entities.ProposalStatusNegociacao: true,
	entities.ProposalStatusAprovado:   true,
	entities.ProposalStatusRecusado:   true,
}

type ProposalInput struct {
	QuoteRequestID string
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	EventType      string
	EventDate      *time.Time
	EventLocation  string
	TotalPrice     float64
	Body           string
}

// ProposalUpdate carries editable fields; nil means unchanged.
type ProposalUpdate struct {
	ClientName    *string
	ClientEmail   *string
	ClientPhone   *string
	EventType     *string
	EventDate     *time.Time
	EventLocation *string
	Status        *entities.ProposalStatus
	TotalPrice    *float64
	Body          *string
}

type IProposalUseCase interface {
	Create(ctx context.Context, in ProposalInput) (entities.Proposal, error)
	Update(ctx context.Context, id string, upd ProposalUpdate) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	Render(ctx context.Context, id string) (string, error)
}

type ProposalUseCase struct {
	repo     interfaces.IProposalRepository
	leadRepo interfaces.ILeadRepository
	feed     interfaces.IChangeFeed
	tmplCtx  template.Context
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

var proposalLog = logging.For("proposal.usecase")

func NewProposalUseCase(repo interfaces.IProposalRepository, leadRepo interfaces.ILeadRepository, feed interfaces.IChangeFeed, tmplCtx template.Context) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, leadRepo: leadRepo, feed: feed, tmplCtx: tmplCtx}
}

// Create registers a proposal. When it references a lead, blank client and
// event fields are filled from that lead.
func (u *ProposalUseCase) Create(ctx context.Context, in ProposalInput) (entities.Proposal, error) {
	if in.TotalPrice < 0 {
		return entities.Proposal{}, ErrInvalidProposalValue
	}
	now := utcNow()
	p := entities.Proposal{
		ID:             uuid.NewString(),
		QuoteRequestID: in.QuoteRequestID,
		ClientName:     in.ClientName,
		ClientEmail:    in.ClientEmail,
		ClientPhone:    in.ClientPhone,
		EventType:      in.EventType,
		EventDate:      in.EventDate,
		EventLocation:  in.EventLocation,
		Status:         entities.ProposalStatusRascunho,
		TotalPrice:     in.TotalPrice,
		Body:           in.Body,
		CreatedAt:      now,
		UpdatedAt:      now,
	}.Normalize()

	if p.QuoteRequestID != "" {
		lead, err := u.leadRepo.GetByID(ctx, p.QuoteRequestID)
		if err != nil {
			return entities.Proposal{}, err
		}
		if lead.ID == "" {
			return entities.Proposal{}, ErrLeadNotFound
		}
		fillFromLead(&p, lead.Normalize())
	}
	if p.ClientName == "" {
		return entities.Proposal{}, ErrInvalidProposalClient
	}
	p.ContentHash = integrity.ProposalDigest(p)

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		proposalLog.WithError(err).Error("create failed")
		return entities.Proposal{}, err
	}
	proposalLog.WithFields(logrus.Fields{"proposal_id": created.ID, "lead_id": created.QuoteRequestID}).Info("proposal created")
	publishChange(ctx, u.feed, CollectionProposals, created.ID)
	return created, nil
}

func fillFromLead(p *entities.Proposal, l entities.Lead) {
	if p.ClientName == "" {
		p.ClientName = l.Name
	}
	if p.ClientEmail == "" {
		p.ClientEmail = l.Email
	}
	if p.ClientPhone == "" {
		p.ClientPhone = l.Phone
	}
	if p.EventType == "" {
		p.EventType = l.EventType
	}
	if p.EventDate == nil {
		p.EventDate = l.EventDate
	}
	if p.EventLocation == "" {
		p.EventLocation = l.EventLocation
	}
}

func (u *ProposalUseCase) Update(ctx context.Context, id string, upd ProposalUpdate) (entities.Proposal, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	if upd.TotalPrice != nil {
		if *upd.TotalPrice < 0 {
			return entities.Proposal{}, ErrInvalidProposalValue
		}
		p.TotalPrice = *upd.TotalPrice
	}
	if upd.Status != nil {
		st := entities.ProposalStatus(strings.ToLower(strings.TrimSpace(string(*upd.Status))))
		if !proposalStatuses[st] {
			return entities.Proposal{}, ErrInvalidProposalStatus
		}
		p.Status = st
	}
	setIfPresent(&p.ClientName, upd.ClientName)
	setIfPresent(&p.ClientEmail, upd.ClientEmail)
	setIfPresent(&p.ClientPhone, upd.ClientPhone)
	setIfPresent(&p.EventType, upd.EventType)
	setIfPresent(&p.EventLocation, upd.EventLocation)
	setIfPresent(&p.Body, upd.Body)
	if upd.EventDate != nil {
		d := *upd.EventDate
		p.EventDate = &d
	}
	p = p.Normalize()
	if p.ClientName == "" {
		return entities.Proposal{}, ErrInvalidProposalClient
	}
	p.ContentHash = integrity.ProposalDigest(p)
	p.UpdatedAt = utcNow()

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	if saved.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	proposalLog.WithFields(logrus.Fields{"proposal_id": saved.ID, "status": saved.Status}).Info("proposal updated")
	publishChange(ctx, u.feed, CollectionProposals, saved.ID)
	return saved, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	return u.repo.List(ctx)
}

// Render materializes the proposal body with its token table.
func (u *ProposalUseCase) Render(ctx context.Context, id string) (string, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	tctx := u.tmplCtx
	tctx.Now = utcNow()
	return template.Render(p.Body, template.ProposalTokens(p, tctx)), nil
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
