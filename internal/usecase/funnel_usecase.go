package usecase

import (
	"context"
	"errors"
	"time"

	"console_comercial/internal/domain/entities"
	"console_comercial/internal/domain/funnel"
	"console_comercial/internal/domain/metrics"
	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one read of the three source collections.
type Snapshot struct {
	Leads     []entities.Lead
	Proposals []entities.Proposal
	Contracts []entities.Contract
}

// FunnelView is what a refresh produces.
type FunnelView struct {
	Result      funnel.Result             `json:"result"`
	Metrics     entities.FinancialMetrics `json:"metrics"`
	GeneratedAt time.Time                 `json:"generated_at"`
}

var ErrChangeFeedUnavailable = errors.New("change feed not configured")

type IFunnelUseCase interface {
	Pipeline(ctx context.Context) (funnel.Result, error)
	Metrics(ctx context.Context) (entities.FinancialMetrics, error)
	Watch(ctx context.Context, onChange func(FunnelView)) error
}

type FunnelUseCase struct {
	leads     interfaces.ILeadRepository
	proposals interfaces.IProposalRepository
	contracts interfaces.IContractRepository
	feed      interfaces.IChangeFeed
	opts      funnel.Options
}

var _ IFunnelUseCase = (*FunnelUseCase)(nil)

var funnelLog = logging.For("funnel.usecase")

func NewFunnelUseCase(leads interfaces.ILeadRepository, proposals interfaces.IProposalRepository, contracts interfaces.IContractRepository, feed interfaces.IChangeFeed, opts funnel.Options) *FunnelUseCase {
	return &FunnelUseCase{leads: leads, proposals: proposals, contracts: contracts, feed: feed, opts: opts}
}

// fetch reads the three collections in parallel. Aggregation only runs over a
// complete snapshot.
func (u *FunnelUseCase) fetch(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		s.Leads, err = u.leads.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		s.Proposals, err = u.proposals.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		s.Contracts, err = u.contracts.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		funnelLog.WithError(err).Error("snapshot fetch failed")
		return Snapshot{}, err
	}
	return s, nil
}

func (u *FunnelUseCase) Pipeline(ctx context.Context) (funnel.Result, error) {
	s, err := u.fetch(ctx)
	if err != nil {
		return funnel.Result{}, err
	}
	res := funnel.Reconcile(s.Leads, s.Proposals, s.Contracts, u.opts)
	if res.Orphans.Total() > 0 {
		funnelLog.WithFields(logrus.Fields{
			"orphan_proposals": res.Orphans.Proposals,
			"orphan_contracts": res.Orphans.Contracts,
			"policy":           u.opts.OrphanPolicy,
		}).Warn("records without a lead")
	}
	return res, nil
}

func (u *FunnelUseCase) Metrics(ctx context.Context) (entities.FinancialMetrics, error) {
	s, err := u.fetch(ctx)
	if err != nil {
		return entities.FinancialMetrics{}, err
	}
	return metrics.Aggregate(s.Leads, s.Proposals, s.Contracts), nil
}

func (u *FunnelUseCase) view(ctx context.Context) (FunnelView, error) {
	s, err := u.fetch(ctx)
	if err != nil {
		return FunnelView{}, err
	}
	return FunnelView{
		Result:      funnel.Reconcile(s.Leads, s.Proposals, s.Contracts, u.opts),
		Metrics:     metrics.Aggregate(s.Leads, s.Proposals, s.Contracts),
		GeneratedAt: utcNow(),
	}, nil
}

// Watch emits a fresh view right away and again after every change on one of
// the funnel collections, until ctx is done. A failed refresh is logged and
// the previous view stays current.
func (u *FunnelUseCase) Watch(ctx context.Context, onChange func(FunnelView)) error {
	if u.feed == nil {
		return ErrChangeFeedUnavailable
	}
	events, err := u.feed.Subscribe(ctx)
	if err != nil {
		return err
	}
	if v, err := u.view(ctx); err == nil {
		onChange(v)
	} else {
		funnelLog.WithError(err).Warn("initial refresh failed")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !funnelCollection(ev.Collection) {
				continue
			}
			v, err := u.view(ctx)
			if err != nil {
				funnelLog.WithError(err).WithField("collection", ev.Collection).Warn("refresh failed")
				continue
			}
			onChange(v)
		}
	}
}

func funnelCollection(c string) bool {
	switch c {
	case CollectionLeads, CollectionProposals, CollectionContracts:
		return true
	}
	return false
}
