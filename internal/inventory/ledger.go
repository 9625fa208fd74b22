package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Ledger applies signed quantity deltas to a restaurant's stock and
// fires the notifier when a write lands at or below the minimum.
type Ledger struct {
	repo     Repository
	notifier Notifier
}

func NewLedger(repo Repository, notifier Notifier) *Ledger {
	return &Ledger{repo: repo, notifier: notifier}
}

// Apply processes each entry independently, in sorted ingredient order.
// A failed entry does not roll back its siblings; every entry error is
// collected and returned joined after the whole batch has been walked.
func (l *Ledger) Apply(
	ctx context.Context,
	restaurantID string,
	updates map[string]Update,
) error {

	if restaurantID == "" {
		return errors.New("missing restaurant id")
	}

	ingredientIDs := make([]string, 0, len(updates))
	for id := range updates {
		ingredientIDs = append(ingredientIDs, id)
	}
	sort.Strings(ingredientIDs)

	var errs []error
	for _, ingredientID := range ingredientIDs {
		if err := l.applyOne(ctx, restaurantID, ingredientID, updates[ingredientID]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ingredientID, err))
		}
	}
	return errors.Join(errs...)
}

func (l *Ledger) applyOne(
	ctx context.Context,
	restaurantID, ingredientID string,
	update Update,
) error {

	if update.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}

	var delta float64
	switch update.Action {
	case ActionAdd:
		delta = update.Quantity
	case ActionRemove:
		delta = -update.Quantity
	default:
		return fmt.Errorf("unknown action %q", update.Action)
	}

	item, err := l.repo.ApplyDelta(ctx, restaurantID, ingredientID, delta)
	if err != nil {
		return err
	}

	// Every breach is independently actionable: no de-duplication even
	// while stock stays below the threshold.
	if item.Quantity <= item.MinQuantity && l.notifier != nil {
		if err := l.notifier.NotifyLowStock(ctx, restaurantID, ingredientID); err != nil {
			return err
		}
	}
	return nil
}
