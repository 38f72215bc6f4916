package commands

import (
	"context"

	"digital-menu/internal/infra"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/usecase/shared"

	"github.com/google/uuid"
)

// ownedRestaurant resolves the restaurant every owner mutation is scoped to.
func ownedRestaurant(ctx context.Context, tx shared.Tx, ownerID uuid.UUID) (shared.RestaurantRef, error) {
	ref, err := tx.Restaurants().FindRefByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return shared.RestaurantRef{}, errs.Mark(err, errs.ErrRestaurantNotFound)
		}
		return shared.RestaurantRef{}, err
	}
	return ref, nil
}

// markNotFound maps a scoped repository miss onto the usecase sentinel.
func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

// publish runs after commit so subscribers never observe rolled-back state.
func publish(ctx context.Context, p eventbus.Publisher, topic eventbus.Topic, ref shared.RestaurantRef) {
	p.Publish(ctx, eventbus.Event{
		Topic:        topic,
		RestaurantID: ref.ID,
		Slug:         ref.Slug,
	})
}
