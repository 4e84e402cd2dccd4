// Package versioning keeps a contract's materialized content, version counter
// and tamper-evidence digest in step with its terms.
package versioning

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/integrity"
	"console_comercial/internal/domain/template"
)

var (
	ErrDocumentLocked = errors.New("document is locked for editing")
	ErrNotAmendable   = errors.New("only signed documents can be amended")
)

// TermsUpdate carries the fields an operator may change. Nil means "keep".
type TermsUpdate struct {
	ClientName          *string
	ClientEmail         *string
	ClientPhone         *string
	ClientAddress       *string
	ClientProfession    *string
	ClientMaritalStatus *string

	EventType     *string
	EventDate     *time.Time
	EventTime     *string
	EventLocation *string

	TotalPrice       *float64
	DownPayment      *float64
	DownPaymentDate  *time.Time
	RemainingAmount  *float64
	RemainingDueDate *time.Time

	Body  *string
	Notes *string
}

// Change describes what ApplyTerms did.
type Change struct {
	Fields   []string
	Material bool
	Bumped   bool
	// PreviewDiscarded is set when the edit dropped a pending signature
	// preview and sent the contract back to the signer.
	PreviewDiscarded bool
}

func (c Change) Changed() bool {
	return len(c.Fields) > 0
}

// Store is the document version keeper. Now defaults to time.Now.
type Store struct {
	Now     func() time.Time
	Context template.Context
}

func New(ctx template.Context) *Store {
	return &Store{Now: time.Now, Context: ctx}
}

// Clock is the store's current time in UTC.
func (s *Store) Clock() time.Time {
	return s.now()
}

func (s *Store) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// BumpVersion increments the version and moves the version timestamp forward.
// The timestamp never goes backwards even if the clock does.
func (s *Store) BumpVersion(c *entities.Contract) {
	if c.Version < 1 {
		c.Version = 1
	}
	c.Version++
	now := s.now()
	if now.Before(c.VersionTimestamp) {
		now = c.VersionTimestamp
	}
	c.VersionTimestamp = now
}

// Stamp recomputes the digest and re-materializes the content.
func (s *Store) Stamp(c *entities.Contract) {
	c.ContentHash = integrity.ContractDigest(*c)
	ctx := s.Context
	if ctx.Now.IsZero() {
		ctx.Now = s.now()
	}
	c.Content = template.Render(c.Body, template.ContractTokens(*c, ctx))
}

// ApplyTerms edits a contract in place. A material change (price, dates,
// scope) on a contract that already left draft bumps the version. Any change
// discards a pending signature preview and returns the contract to sent.
// Locked contracts must be amended instead.
func (s *Store) ApplyTerms(c *entities.Contract, u TermsUpdate) (Change, error) {
	if c.IsLocked() {
		return Change{}, ErrDocumentLocked
	}
	ch := apply(c, u)
	if !ch.Changed() {
		return ch, nil
	}
	if ch.Material && c.Status != entities.ContractStatusDraft {
		s.BumpVersion(c)
		ch.Bumped = true
	}
	if c.Status == entities.ContractStatusDraftSigned {
		discardPreview(c)
		ch.PreviewDiscarded = true
	}
	c.UpdatedAt = s.now()
	s.Stamp(c)
	return ch, nil
}

func discardPreview(c *entities.Contract) {
	c.Status = entities.ContractStatusSent
	c.PreviewSignatureURL = ""
	c.SignatureDrawnAt = nil
	c.SignerName = ""
	c.SignerEmail = ""
}

// Amend creates the successor of a signed contract. The signed record itself is
// never touched.
func (s *Store) Amend(prev entities.Contract, id, publicToken string, u TermsUpdate) (entities.Contract, error) {
	if !prev.IsSigned() {
		return entities.Contract{}, ErrNotAmendable
	}
	now := s.now()
	next := prev
	next.ID = id
	next.PublicToken = publicToken
	next.SupersedesID = prev.ID
	if prev.Slug != "" {
		next.Slug = baseSlug(prev.Slug) + "-v" + strconv.Itoa(prev.Version+1)
	}
	next.Status = entities.ContractStatusDraft
	next.Revision = 0
	next.PreviewSignatureURL = ""
	next.SignatureDrawnAt = nil
	next.SignerName = ""
	next.SignerEmail = ""
	next.SignerIP = ""
	next.SignerUserAgent = ""
	next.SignedAt = nil
	next.SentAt = nil
	next.CreatedAt = now
	next.UpdatedAt = now

	apply(&next, u)
	next.VersionTimestamp = prev.VersionTimestamp
	next.Version = prev.Version
	s.BumpVersion(&next)
	s.Stamp(&next)
	return next, nil
}

// baseSlug strips a previous "-vN" suffix so amendments do not stack them.
func baseSlug(slug string) string {
	i := strings.LastIndex(slug, "-v")
	if i <= 0 {
		return slug
	}
	if _, err := strconv.Atoi(slug[i+2:]); err != nil {
		return slug
	}
	return slug[:i]
}

func apply(c *entities.Contract, u TermsUpdate) Change {
	var ch Change
	setStr := func(name string, dst *string, v *string, material bool) {
		if v == nil || *dst == *v {
			return
		}
		*dst = *v
		ch.Fields = append(ch.Fields, name)
		ch.Material = ch.Material || material
	}
	setMoney := func(name string, dst *float64, v *float64) {
		if v == nil || sameCents(*dst, *v) {
			return
		}
		*dst = *v
		ch.Fields = append(ch.Fields, name)
		ch.Material = true
	}
	setDate := func(name string, dst **time.Time, v *time.Time) {
		if v == nil {
			return
		}
		if *dst != nil && entities.DateKey(*dst) == entities.DateKey(v) {
			return
		}
		d := *v
		*dst = &d
		ch.Fields = append(ch.Fields, name)
		ch.Material = true
	}

	setStr("client_name", &c.ClientName, u.ClientName, false)
	if u.ClientEmail != nil {
		email := entities.NormalizeEmail(*u.ClientEmail)
		setStr("client_email", &c.ClientEmail, &email, false)
	}
	setStr("client_phone", &c.ClientPhone, u.ClientPhone, false)
	setStr("client_address", &c.ClientAddress, u.ClientAddress, false)
	setStr("client_profession", &c.ClientProfession, u.ClientProfession, false)
	setStr("client_marital_status", &c.ClientMaritalStatus, u.ClientMaritalStatus, false)

	setStr("event_type", &c.EventType, u.EventType, true)
	setDate("event_date", &c.EventDate, u.EventDate)
	setStr("event_time", &c.EventTime, u.EventTime, true)
	setStr("event_location", &c.EventLocation, u.EventLocation, true)

	setMoney("total_price", &c.TotalPrice, u.TotalPrice)
	setMoney("down_payment", &c.DownPayment, u.DownPayment)
	setDate("down_payment_date", &c.DownPaymentDate, u.DownPaymentDate)
	setDate("remaining_due_date", &c.RemainingDueDate, u.RemainingDueDate)
	if u.RemainingAmount != nil {
		setMoney("remaining_amount", &c.RemainingAmount, u.RemainingAmount)
	} else if u.TotalPrice != nil || u.DownPayment != nil {
		remaining := math.Max(c.TotalPrice-c.DownPayment, 0)
		setMoney("remaining_amount", &c.RemainingAmount, &remaining)
	}

	setStr("body", &c.Body, u.Body, true)
	setStr("notes", &c.Notes, u.Notes, false)
	return ch
}

func sameCents(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}
