package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/integrity"
	"console_comercial/internal/domain/versioning"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/badoux/checkmail"
	"github.com/sirupsen/logrus"
)

// UnknownOrigin replaces the signer's origin when the lookup fails.
const UnknownOrigin = "unknown"

const DefaultOriginLookupTimeout = 3 * time.Second

var (
	ErrMissingSignatureDrawing = errors.New("signature drawing is missing")
	ErrInvalidSignatureDrawing = errors.New("signature drawing could not be decoded")
	ErrMissingSignerName       = errors.New("signer name is missing")
	ErrInvalidSignerEmail      = errors.New("signer email is missing or invalid")

	ErrSignatureConflict  = errors.New("contract state changed, reload before signing")
	ErrAlreadySigned      = errors.New("contract already signed")
	ErrIntegrityMismatch  = errors.New("contract content does not match its digest")
	ErrFinalizationFailed = errors.New("signature finalization failed")
)

// SignatureValidationError names the precondition a signer did not meet.
type SignatureValidationError struct {
	Field string
	Err   error
}

func (e *SignatureValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *SignatureValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error) error {
	return &SignatureValidationError{Field: field, Err: err}
}

// SignatureInput is what the signing page submits. Drawing is either a stored
// image URL or a data URL produced by the drawing surface.
type SignatureInput struct {
	Drawing     string
	SignerName  string
	SignerEmail string
}

// ConfirmInput may carry a fresh drawing; without one the persisted preview is
// used.
type ConfirmInput struct {
	SignatureInput
	ClientHint  string
	AgentString string
}

type ISignatureUseCase interface {
	CapturePreview(ctx context.Context, identifier string, in SignatureInput) (entities.Contract, error)
	Confirm(ctx context.Context, identifier string, in ConfirmInput) (entities.Contract, error)
	EditSignature(ctx context.Context, identifier string) (entities.Contract, error)
}

type SignatureUseCase struct {
	repo          interfaces.IContractRepository
	finalizer     interfaces.ISignatureFinalizer
	origin        interfaces.IOriginResolver
	images        interfaces.ISignatureImageStore
	cache         interfaces.IContractViewCache
	feed          interfaces.IChangeFeed
	store         *versioning.Store
	originTimeout time.Duration
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

var signatureLog = logging.For("signature.usecase")

type SignatureDeps struct {
	Repo          interfaces.IContractRepository
	Finalizer     interfaces.ISignatureFinalizer
	Origin        interfaces.IOriginResolver
	Images        interfaces.ISignatureImageStore
	Cache         interfaces.IContractViewCache
	Feed          interfaces.IChangeFeed
	Store         *versioning.Store
	OriginTimeout time.Duration
}

func NewSignatureUseCase(d SignatureDeps) *SignatureUseCase {
	if d.OriginTimeout <= 0 {
		d.OriginTimeout = DefaultOriginLookupTimeout
	}
	return &SignatureUseCase{
		repo:          d.Repo,
		finalizer:     d.Finalizer,
		origin:        d.Origin,
		images:        d.Images,
		cache:         d.Cache,
		feed:          d.Feed,
		store:         d.Store,
		originTimeout: d.OriginTimeout,
	}
}

// CapturePreview moves a sent (or draft) contract to draft_signed holding the
// drawn signature and the signer identity.
func (u *SignatureUseCase) CapturePreview(ctx context.Context, identifier string, in SignatureInput) (entities.Contract, error) {
	c, err := u.load(ctx, identifier)
	if err != nil {
		return entities.Contract{}, err
	}
	return u.capture(ctx, c, in)
}

func (u *SignatureUseCase) capture(ctx context.Context, c entities.Contract, in SignatureInput) (entities.Contract, error) {
	if err := signable(c); err != nil {
		return entities.Contract{}, err
	}
	name, email, err := validateSigner(in)
	if err != nil {
		return entities.Contract{}, err
	}
	ref, err := u.storeDrawing(ctx, c.ID, in.Drawing)
	if err != nil {
		return entities.Contract{}, err
	}

	expected := c.Revision
	now := u.store.Clock()
	c.PreviewSignatureURL = ref
	c.SignatureDrawnAt = &now
	c.SignerName = name
	c.SignerEmail = email
	c.Status = entities.ContractStatusDraftSigned
	c.UpdatedAt = now
	u.store.Stamp(&c)

	saved, err := u.save(ctx, c, expected)
	if err != nil {
		return entities.Contract{}, err
	}
	signatureLog.WithFields(logrus.Fields{"contract_id": saved.ID, "signer": email}).Info("signature preview captured")
	return saved, nil
}

// Confirm hands a draft_signed contract to the finalizer and returns the
// re-fetched result.
func (u *SignatureUseCase) Confirm(ctx context.Context, identifier string, in ConfirmInput) (entities.Contract, error) {
	c, err := u.load(ctx, identifier)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.IsSigned() {
		return entities.Contract{}, ErrAlreadySigned
	}

	if strings.TrimSpace(in.Drawing) != "" {
		if c, err = u.capture(ctx, c, in.SignatureInput); err != nil {
			return entities.Contract{}, err
		}
	}
	switch c.Status {
	case entities.ContractStatusDraftSigned:
		if strings.TrimSpace(c.PreviewSignatureURL) == "" {
			return entities.Contract{}, invalid("drawing", ErrMissingSignatureDrawing)
		}
	case entities.ContractStatusSent, entities.ContractStatusDraft, entities.ContractStatusEnviado:
		return entities.Contract{}, invalid("drawing", ErrMissingSignatureDrawing)
	default:
		return entities.Contract{}, ErrSignatureConflict
	}

	origin := u.resolveOrigin(ctx, in.ClientHint)
	agent := strings.TrimSpace(in.AgentString)
	now := u.store.Clock()

	digest := c.ContentHash
	if digest == "" {
		digest = integrity.ContractDigest(c)
	} else if !integrity.Verify(integrity.ContractSnapshot(c), digest) {
		signatureLog.WithField("contract_id", c.ID).Error("digest mismatch before signing")
		return entities.Contract{}, ErrIntegrityMismatch
	}

	current, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Contract{}, err
	}
	if current.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	if current.Status != entities.ContractStatusDraftSigned || current.Revision != c.Revision {
		signatureLog.WithFields(logrus.Fields{"contract_id": c.ID, "status": current.Status}).Warn("contract changed before confirm")
		return entities.Contract{}, ErrSignatureConflict
	}

	h := interfaces.SignatureHandoff{
		ContractID:       c.ID,
		ExpectedRevision: current.Revision,
		SignatureImage:   c.PreviewSignatureURL,
		SignerName:       c.SignerName,
		SignerEmail:      c.SignerEmail,
		OriginIdentifier: origin,
		AgentString:      agent,
		Timestamp:        now,
		ContentHash:      digest,
	}
	if err := u.finalizer.Finalize(ctx, h); err != nil {
		invalidateViews(ctx, u.cache, c)
		if errors.Is(err, interfaces.ErrStaleRevision) {
			return entities.Contract{}, ErrSignatureConflict
		}
		if errors.Is(err, interfaces.ErrDigestMismatch) {
			signatureLog.WithField("contract_id", c.ID).Error("digest mismatch at finalization")
			return entities.Contract{}, ErrIntegrityMismatch
		}
		signatureLog.WithError(err).WithField("contract_id", c.ID).Error("finalization failed")
		return entities.Contract{}, fmt.Errorf("%w: %v", ErrFinalizationFailed, err)
	}
	invalidateViews(ctx, u.cache, c)
	publishChange(ctx, u.feed, CollectionContracts, c.ID)

	signed, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Contract{}, err
	}
	signatureLog.WithFields(logrus.Fields{
		"contract_id": c.ID,
		"status":      signed.Status,
		"origin":      origin,
	}).Info("signature confirmed")
	return signed.Normalize(), nil
}

// EditSignature discards the preview and returns the contract to sent.
func (u *SignatureUseCase) EditSignature(ctx context.Context, identifier string) (entities.Contract, error) {
	c, err := u.load(ctx, identifier)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.IsSigned() {
		return entities.Contract{}, ErrAlreadySigned
	}
	if c.Status != entities.ContractStatusDraftSigned {
		return entities.Contract{}, ErrSignatureConflict
	}

	expected := c.Revision
	c.PreviewSignatureURL = ""
	c.SignatureDrawnAt = nil
	c.Status = entities.ContractStatusSent
	c.UpdatedAt = u.store.Clock()

	saved, err := u.save(ctx, c, expected)
	if err != nil {
		return entities.Contract{}, err
	}
	signatureLog.WithField("contract_id", saved.ID).Info("signature preview discarded")
	return saved, nil
}

func (u *SignatureUseCase) load(ctx context.Context, identifier string) (entities.Contract, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.repo.GetByPublicIdentifier(ctx, identifier)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c.Normalize(), nil
}

func (u *SignatureUseCase) save(ctx context.Context, c entities.Contract, expected int64) (entities.Contract, error) {
	saved, err := u.repo.Save(ctx, c, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleRevision) {
			return entities.Contract{}, ErrSignatureConflict
		}
		return entities.Contract{}, fmt.Errorf("save contract %s: %w", c.ID, err)
	}
	invalidateViews(ctx, u.cache, c)
	publishChange(ctx, u.feed, CollectionContracts, saved.ID)
	return saved, nil
}

// resolveOrigin never fails: any error or timeout yields UnknownOrigin.
func (u *SignatureUseCase) resolveOrigin(ctx context.Context, hint string) string {
	if u.origin == nil {
		if h := strings.TrimSpace(hint); h != "" {
			return h
		}
		return UnknownOrigin
	}
	lookupCtx, cancel := context.WithTimeout(ctx, u.originTimeout)
	defer cancel()

	origin, err := u.origin.Resolve(lookupCtx, strings.TrimSpace(hint))
	if err != nil || strings.TrimSpace(origin) == "" {
		signatureLog.WithError(err).Warn("origin lookup failed")
		return UnknownOrigin
	}
	return strings.TrimSpace(origin)
}

// storeDrawing uploads data URLs and passes stored references through.
func (u *SignatureUseCase) storeDrawing(ctx context.Context, contractID, drawing string) (string, error) {
	drawing = strings.TrimSpace(drawing)
	if drawing == "" {
		return "", invalid("drawing", ErrMissingSignatureDrawing)
	}
	if !strings.HasPrefix(drawing, "data:") {
		return drawing, nil
	}
	contentType, data, err := decodeDataURL(drawing)
	if err != nil || len(data) == 0 {
		return "", invalid("drawing", ErrInvalidSignatureDrawing)
	}
	if u.images == nil {
		return drawing, nil
	}
	ref, err := u.images.Put(ctx, contractID, contentType, data)
	if err != nil {
		return "", fmt.Errorf("store signature image: %w", err)
	}
	return ref, nil
}

// decodeDataURL reads "data:<type>;base64,<payload>".
func decodeDataURL(s string) (string, []byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return "", nil, errors.New("malformed data url")
	}
	contentType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, errors.New("data url is not base64")
	}
	if contentType == "" {
		contentType = "image/png"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return contentType, data, nil
}

func signable(c entities.Contract) error {
	if c.IsSigned() {
		return ErrAlreadySigned
	}
	switch c.Status {
	case entities.ContractStatusDraft, entities.ContractStatusSent, entities.ContractStatusDraftSigned,
		entities.ContractStatusEnviado:
		return nil
	}
	return ErrSignatureConflict
}

func validateSigner(in SignatureInput) (string, string, error) {
	if strings.TrimSpace(in.Drawing) == "" {
		return "", "", invalid("drawing", ErrMissingSignatureDrawing)
	}
	name := strings.TrimSpace(in.SignerName)
	if name == "" {
		return "", "", invalid("signer_name", ErrMissingSignerName)
	}
	email := entities.NormalizeEmail(in.SignerEmail)
	if email == "" || checkmail.ValidateFormat(email) != nil {
		return "", "", invalid("signer_email", ErrInvalidSignerEmail)
	}
	return name, email, nil
}
