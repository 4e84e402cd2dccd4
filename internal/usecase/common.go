package usecase

import (
	"context"
	"time"

	"console_comercial/internal/infrastructure/logging"
	"console_comercial/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

const (
	CollectionLeads     = "leads"
	CollectionProposals = "proposals"
	CollectionContracts = "contracts"
)

var validate = validator.New()

func utcNow() time.Time {
	return time.Now().UTC()
}

// publishChange notifies listeners that a collection changed. Delivery is
// best effort: the backing store already holds the truth.
func publishChange(ctx context.Context, feed interfaces.IChangeFeed, collection, id string) {
	if feed == nil {
		return
	}
	ev := interfaces.ChangeEvent{Collection: collection, ID: id, At: utcNow()}
	if err := feed.Publish(ctx, ev); err != nil {
		logging.For("changefeed").WithError(err).WithField("collection", collection).Warn("publish failed")
	}
}
