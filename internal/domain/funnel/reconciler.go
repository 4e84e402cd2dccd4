// Package funnel merges leads, proposals and contracts into one reconciled
// sales pipeline. Everything here is pure: no I/O, no shared state, safe to
// re-run on every refresh.
package funnel

import (
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
)

// OrphanPolicy decides what happens to proposals and contracts that cannot be
// traced back to a lead.
type OrphanPolicy string

const (
	// OrphanDrop hides untraceable records from the pipeline (they are still
	// counted in Result.Orphans).
	OrphanDrop OrphanPolicy = "drop"
	// OrphanStandalone shows each untraceable record as its own entry.
	OrphanStandalone OrphanPolicy = "standalone"
)

func ParseOrphanPolicy(v string) OrphanPolicy {
	if OrphanPolicy(strings.ToLower(strings.TrimSpace(v))) == OrphanStandalone {
		return OrphanStandalone
	}
	return OrphanDrop
}

type Options struct {
	OrphanPolicy OrphanPolicy
}

type Result struct {
	Pipeline entities.Pipeline    `json:"pipeline"`
	Orphans  entities.OrphanStats `json:"orphans"`
}

const noDate = "no-date"

// IdentityKey is the reconciliation key of a client/event.
func IdentityKey(email, eventType string, eventDate *time.Time) string {
	date := entities.DateKey(eventDate)
	if date == "" {
		date = noDate
	}
	return email + "-" + eventType + "-" + date
}

// Reconcile builds the pipeline from raw record sets. It never fails: records
// missing optional data degrade to empty fields.
func Reconcile(leads []entities.Lead, proposals []entities.Proposal, contracts []entities.Contract, opts Options) Result {
	r := newReconciler(opts)
	for _, l := range leads {
		r.addLead(l.Normalize())
	}
	for _, p := range proposals {
		r.addProposal(p.Normalize())
	}
	for _, c := range contracts {
		r.addContract(c.Normalize())
	}
	return Result{Pipeline: Group(r.list()), Orphans: r.orphans}
}

type reconciler struct {
	opts        Options
	items       map[string]*entities.FunnelItem
	order       []string
	leads       map[string]entities.Lead
	proposals   map[string]entities.Proposal
	proposalKey map[string]string
	orphans     entities.OrphanStats
}

func newReconciler(opts Options) *reconciler {
	return &reconciler{
		opts:        opts,
		items:       map[string]*entities.FunnelItem{},
		leads:       map[string]entities.Lead{},
		proposals:   map[string]entities.Proposal{},
		proposalKey: map[string]string{},
	}
}

func (r *reconciler) put(key string, item *entities.FunnelItem) {
	r.items[key] = item
	r.order = append(r.order, key)
}

func (r *reconciler) list() []entities.FunnelItem {
	out := make([]entities.FunnelItem, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *r.items[key])
	}
	return out
}

func (r *reconciler) addLead(l entities.Lead) {
	if l.ID == "" {
		return
	}
	if _, seen := r.leads[l.ID]; !seen {
		r.leads[l.ID] = l
	}
	key := IdentityKey(l.Email, l.EventType, l.EventDate)
	if _, exists := r.items[key]; exists {
		// The first lead with this key owns the entry.
		return
	}
	r.put(key, &entities.FunnelItem{
		ID:            "quote-" + l.ID,
		OriginalID:    l.ID,
		LeadID:        l.ID,
		Name:          l.Name,
		Email:         l.Email,
		Phone:         l.Phone,
		EventType:     l.EventType,
		EventDate:     l.EventDate,
		EventLocation: l.EventLocation,
		Status:        string(l.Status),
		LeadStatus:    string(l.Status),
		Type:          entities.FunnelTypeQuote,
		CreatedAt:     l.CreatedAt,
	})
}

// leadKey resolves a lead reference to the key of its seeded entry.
func (r *reconciler) leadKey(leadID string) (string, bool) {
	if leadID == "" {
		return "", false
	}
	l, ok := r.leads[leadID]
	if !ok {
		return "", false
	}
	key := IdentityKey(l.Email, l.EventType, l.EventDate)
	_, ok = r.items[key]
	return key, ok
}

func (r *reconciler) addProposal(p entities.Proposal) {
	if p.ID == "" {
		return
	}
	r.proposals[p.ID] = p

	key, ok := r.leadKey(p.QuoteRequestID)
	if !ok {
		r.orphans.Proposals++
		if r.opts.OrphanPolicy != OrphanStandalone {
			return
		}
		key = "proposal:" + p.ID
		r.put(key, &entities.FunnelItem{
			Name:          p.ClientName,
			Email:         p.ClientEmail,
			Phone:         p.ClientPhone,
			EventType:     p.EventType,
			EventDate:     p.EventDate,
			EventLocation: p.EventLocation,
		})
		r.orphans.Standalone++
	}
	r.proposalKey[p.ID] = key
	mergeProposal(r.items[key], p)
}

func (r *reconciler) addContract(c entities.Contract) {
	if c.ID == "" {
		return
	}

	key, ok := "", false
	if p, found := r.proposals[c.ProposalID]; found && c.ProposalID != "" {
		key, ok = r.leadKey(p.QuoteRequestID)
	}
	if !ok {
		key, ok = r.leadKey(c.QuoteRequestID)
	}
	if !ok {
		r.orphans.Contracts++
		if r.opts.OrphanPolicy != OrphanStandalone {
			return
		}
		if k, found := r.proposalKey[c.ProposalID]; found && c.ProposalID != "" {
			key = k
		} else {
			key = "contract:" + c.ID
			r.put(key, &entities.FunnelItem{
				EventType:     c.EventType,
				EventDate:     c.EventDate,
				EventLocation: c.EventLocation,
			})
			r.orphans.Standalone++
		}
	}
	mergeContract(r.items[key], c)
}

func mergeProposal(item *entities.FunnelItem, p entities.Proposal) {
	if item.Type.Rank() > entities.FunnelTypeProposal.Rank() {
		return
	}
	price := p.TotalPrice
	item.ID = "proposal-" + p.ID
	item.OriginalID = p.ID
	item.Type = entities.FunnelTypeProposal
	item.Status = string(p.Status)
	item.TotalPrice = &price
	item.CreatedAt = p.CreatedAt
	overwriteIdentity(item, p.ClientName, p.ClientEmail, p.ClientPhone)
}

func mergeContract(item *entities.FunnelItem, c entities.Contract) {
	price := c.TotalPrice
	item.ID = "contract-" + c.ID
	item.OriginalID = c.ID
	item.Type = entities.FunnelTypeContract
	item.Status = string(c.Status)
	item.TotalPrice = &price
	item.CreatedAt = c.CreatedAt
	overwriteIdentity(item, c.ClientName, c.ClientEmail, c.ClientPhone)
}

// overwriteIdentity takes the latest non-empty contact data. LeadID is never
// touched here.
func overwriteIdentity(item *entities.FunnelItem, name, email, phone string) {
	if name != "" {
		item.Name = name
	}
	if email != "" {
		item.Email = email
	}
	if phone != "" {
		item.Phone = phone
	}
}
