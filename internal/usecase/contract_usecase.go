package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/template"
	"console_comercial/internal/domain/versioning"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrContractNotFound          = errors.New("contract not found")
	ErrInvalidContractID         = errors.New("invalid contract id")
	ErrProposalNotApproved       = errors.New("proposal not approved")
	ErrInvalidContractTransition = errors.New("invalid contract status transition")
	ErrInvalidContractValue      = errors.New("invalid contract value")
	ErrContractConflict          = errors.New("contract changed concurrently")
)

// CreateContractInput carries what the operator adds on top of the proposal.
type CreateContractInput struct {
	ProposalID          string
	Body                string
	ClientAddress       string
	ClientProfession    string
	ClientMaritalStatus string
	EventTime           string
	DownPayment         float64
	DownPaymentDate     *time.Time
	RemainingDueDate    *time.Time
	Notes               string
}

type IContractUseCase interface {
	CreateFromProposal(ctx context.Context, in CreateContractInput) (entities.Contract, error)
	UpdateTerms(ctx context.Context, id string, upd versioning.TermsUpdate) (entities.Contract, error)
	Send(ctx context.Context, id string) (entities.Contract, error)
	Cancel(ctx context.Context, id string) (entities.Contract, error)
	Amend(ctx context.Context, id string, upd versioning.TermsUpdate) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetPublic(ctx context.Context, identifier string) (entities.Contract, error)
	Render(ctx context.Context, id string) (string, error)
	List(ctx context.Context) ([]entities.Contract, error)
}

type ContractUseCase struct {
	repo         interfaces.IContractRepository
	proposalRepo interfaces.IProposalRepository
	cache        interfaces.IContractViewCache
	feed         interfaces.IChangeFeed
	store        *versioning.Store
}

var _ IContractUseCase = (*ContractUseCase)(nil)

var contractLog = logging.For("contract.usecase")

func NewContractUseCase(repo interfaces.IContractRepository, proposalRepo interfaces.IProposalRepository, cache interfaces.IContractViewCache, feed interfaces.IChangeFeed, store *versioning.Store) *ContractUseCase {
	return &ContractUseCase{repo: repo, proposalRepo: proposalRepo, cache: cache, feed: feed, store: store}
}

// CreateFromProposal drafts version 1 of a contract from an approved proposal.
func (u *ContractUseCase) CreateFromProposal(ctx context.Context, in CreateContractInput) (entities.Contract, error) {
	proposalID := strings.TrimSpace(in.ProposalID)
	if proposalID == "" {
		return entities.Contract{}, ErrInvalidProposalID
	}
	if in.DownPayment < 0 {
		return entities.Contract{}, ErrInvalidContractValue
	}
	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Contract{}, err
	}
	if p.ID == "" {
		return entities.Contract{}, ErrProposalNotFound
	}
	p = p.Normalize()
	if p.Status != entities.ProposalStatusAprovado {
		contractLog.WithFields(logrus.Fields{"proposal_id": p.ID, "status": p.Status}).Warn("proposal not approved")
		return entities.Contract{}, ErrProposalNotApproved
	}
	if in.DownPayment > p.TotalPrice {
		return entities.Contract{}, ErrInvalidContractValue
	}

	now := u.store.Clock()
	c := entities.Contract{
		ID:                  uuid.NewString(),
		ProposalID:          p.ID,
		QuoteRequestID:      p.QuoteRequestID,
		Slug:                contractSlug(p.ClientName, p.EventType),
		PublicToken:         uuid.NewString(),
		ClientName:          p.ClientName,
		ClientEmail:         p.ClientEmail,
		ClientPhone:         p.ClientPhone,
		ClientAddress:       strings.TrimSpace(in.ClientAddress),
		ClientProfession:    strings.TrimSpace(in.ClientProfession),
		ClientMaritalStatus: strings.TrimSpace(in.ClientMaritalStatus),
		EventType:           p.EventType,
		EventDate:           p.EventDate,
		EventTime:           strings.TrimSpace(in.EventTime),
		EventLocation:       p.EventLocation,
		TotalPrice:          p.TotalPrice,
		DownPayment:         in.DownPayment,
		DownPaymentDate:     in.DownPaymentDate,
		RemainingAmount:     p.TotalPrice - in.DownPayment,
		RemainingDueDate:    in.RemainingDueDate,
		Notes:               in.Notes,
		Body:                in.Body,
		Status:              entities.ContractStatusDraft,
		Version:             1,
		VersionTimestamp:    now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}.Normalize()
	u.store.Stamp(&c)

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		contractLog.WithError(err).WithField("proposal_id", p.ID).Error("create failed")
		return entities.Contract{}, err
	}
	contractLog.WithFields(logrus.Fields{"contract_id": created.ID, "proposal_id": p.ID, "slug": created.Slug}).Info("contract drafted")
	publishChange(ctx, u.feed, CollectionContracts, created.ID)
	return created, nil
}

func (u *ContractUseCase) UpdateTerms(ctx context.Context, id string, upd versioning.TermsUpdate) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if err := validateTerms(upd); err != nil {
		return entities.Contract{}, err
	}
	expected := c.Revision
	ch, err := u.store.ApplyTerms(&c, upd)
	if err != nil {
		return entities.Contract{}, err
	}
	if !ch.Changed() {
		return c, nil
	}
	saved, err := u.save(ctx, c, expected)
	if err != nil {
		return entities.Contract{}, err
	}
	contractLog.WithFields(logrus.Fields{
		"contract_id":       saved.ID,
		"fields":            strings.Join(ch.Fields, ","),
		"version":           saved.Version,
		"bumped":            ch.Bumped,
		"preview_discarded": ch.PreviewDiscarded,
	}).Info("terms updated")
	return saved, nil
}

func validateTerms(upd versioning.TermsUpdate) error {
	for _, v := range []*float64{upd.TotalPrice, upd.DownPayment, upd.RemainingAmount} {
		if v != nil && *v < 0 {
			return ErrInvalidContractValue
		}
	}
	return nil
}

// Send publishes a draft to the client.
func (u *ContractUseCase) Send(ctx context.Context, id string) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.Status != entities.ContractStatusDraft {
		return entities.Contract{}, ErrInvalidContractTransition
	}
	expected := c.Revision
	now := u.store.Clock()
	c.Status = entities.ContractStatusSent
	c.SentAt = &now
	c.UpdatedAt = now
	u.store.Stamp(&c)
	saved, err := u.save(ctx, c, expected)
	if err != nil {
		return entities.Contract{}, err
	}
	log := contractLog.WithFields(logrus.Fields{"contract_id": saved.ID, "hash": saved.ContentHash})
	if left := template.Unresolved(saved.Content); len(left) > 0 {
		log.WithField("unresolved", left).Warn("contract sent with unresolved placeholders")
	}
	log.Info("contract sent")
	return saved, nil
}

func (u *ContractUseCase) Cancel(ctx context.Context, id string) (entities.Contract, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.IsLocked() {
		return entities.Contract{}, ErrInvalidContractTransition
	}
	expected := c.Revision
	c.Status = entities.ContractStatusCancelled
	c.UpdatedAt = u.store.Clock()
	saved, err := u.save(ctx, c, expected)
	if err != nil {
		return entities.Contract{}, err
	}
	contractLog.WithField("contract_id", saved.ID).Info("contract cancelled")
	return saved, nil
}

// Amend drafts the successor of a signed contract. The signed record is left
// as it is.
func (u *ContractUseCase) Amend(ctx context.Context, id string, upd versioning.TermsUpdate) (entities.Contract, error) {
	prev, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if err := validateTerms(upd); err != nil {
		return entities.Contract{}, err
	}
	next, err := u.store.Amend(prev, uuid.NewString(), uuid.NewString(), upd)
	if err != nil {
		return entities.Contract{}, err
	}
	created, err := u.repo.Create(ctx, next)
	if err != nil {
		contractLog.WithError(err).WithField("contract_id", prev.ID).Error("amend failed")
		return entities.Contract{}, err
	}
	contractLog.WithFields(logrus.Fields{
		"contract_id":   created.ID,
		"supersedes_id": prev.ID,
		"version":       created.Version,
	}).Info("contract amended")
	publishChange(ctx, u.feed, CollectionContracts, created.ID)
	return created, nil
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c.Normalize(), nil
}

// GetPublic resolves /contrato/{identifier}. Views are served from the cache
// while fresh.
func (u *ContractUseCase) GetPublic(ctx context.Context, identifier string) (entities.Contract, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if u.cache != nil {
		if raw, ok := u.cache.Get(ctx, identifier); ok {
			var c entities.Contract
			if err := json.Unmarshal(raw, &c); err == nil {
				return c, nil
			}
			u.cache.Invalidate(ctx, identifier)
		}
	}

	c, err := u.repo.GetByPublicIdentifier(ctx, identifier)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	c = c.Normalize()
	if c.Status == entities.ContractStatusCancelled {
		return entities.Contract{}, ErrContractNotFound
	}
	if u.cache != nil {
		if raw, err := json.Marshal(c); err == nil {
			u.cache.Set(ctx, identifier, raw)
		}
	}
	return c, nil
}

// Render returns the materialized content, refreshing it when the stored
// copy is missing.
func (u *ContractUseCase) Render(ctx context.Context, id string) (string, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if c.Content != "" {
		return c.Content, nil
	}
	tctx := u.store.Context
	tctx.Now = u.store.Clock()
	return template.Render(c.Body, template.ContractTokens(c, tctx)), nil
}

func (u *ContractUseCase) List(ctx context.Context) ([]entities.Contract, error) {
	return u.repo.List(ctx)
}

func (u *ContractUseCase) save(ctx context.Context, c entities.Contract, expected int64) (entities.Contract, error) {
	saved, err := u.repo.Save(ctx, c, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleRevision) {
			contractLog.WithFields(logrus.Fields{"contract_id": c.ID, "revision": expected}).Warn("stale revision")
			return entities.Contract{}, ErrContractConflict
		}
		return entities.Contract{}, fmt.Errorf("save contract %s: %w", c.ID, err)
	}
	invalidateViews(ctx, u.cache, c)
	publishChange(ctx, u.feed, CollectionContracts, saved.ID)
	return saved, nil
}

func invalidateViews(ctx context.Context, cache interfaces.IContractViewCache, c entities.Contract) {
	if cache == nil {
		return
	}
	keys := make([]string, 0, 2)
	if c.Slug != "" {
		keys = append(keys, c.Slug)
	}
	if c.PublicToken != "" {
		keys = append(keys, c.PublicToken)
	}
	if len(keys) > 0 {
		cache.Invalidate(ctx, keys...)
	}
}
