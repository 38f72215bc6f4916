package commands

import (
	"context"
	"strings"

	"digital-menu/internal/domain/restaurant"
	"digital-menu/internal/infra"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/pkg/pgconv"
	"digital-menu/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestaurantCommands interface {
	// CreateRestaurant stores the restaurant together with its default customization.
	CreateRestaurant(ctx context.Context, ownerID uuid.UUID, p restaurant.Params) (uuid.UUID, error)
	UpdateCustomization(ctx context.Context, ownerID uuid.UUID, p restaurant.CustomizationParams) error
}

type restaurantCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher eventbus.Publisher
}

func NewRestaurantCommands(uow shared.UnitOfWork, clk clock.Clock, publisher eventbus.Publisher) RestaurantCommands {
	return &restaurantCommandsImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
	}
}

func (uc *restaurantCommandsImpl) CreateRestaurant(ctx context.Context, ownerID uuid.UUID, p restaurant.Params) (uuid.UUID, error) {
	now := uc.clock.Now()
	r, err := restaurant.NewRestaurant(&ownerID, p, now)
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}
	c := restaurant.DefaultCustomization(r.ID(), now)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Restaurants().FindRefByOwner(ctx, ownerID); err == nil {
			return errs.ErrRestaurantExists
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if err := tx.Restaurants().Create(ctx, r); err != nil {
			return err
		}
		return tx.Customizations().Upsert(ctx, c)
	})
	if err != nil {
		return uuid.Nil, mapCreateConflict(err)
	}

	publish(ctx, uc.publisher, eventbus.TopicRestaurantUpdated, shared.RestaurantRef{ID: r.ID(), Slug: r.Slug().Value()})
	return r.ID(), nil
}

func (uc *restaurantCommandsImpl) UpdateCustomization(ctx context.Context, ownerID uuid.UUID, p restaurant.CustomizationParams) error {
	var ref shared.RestaurantRef
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}

		c, err := restaurant.NewCustomization(ref.ID, p, uc.clock.Now())
		if err != nil {
			return errs.Validation(err)
		}
		if err := tx.Customizations().Upsert(ctx, c); err != nil {
			return err
		}
		return tx.Restaurants().Touch(ctx, ref.ID)
	})
	if err != nil {
		return err
	}

	publish(ctx, uc.publisher, eventbus.TopicRestaurantUpdated, ref)
	return nil
}

// The owner_id unique index backs up the explicit check under concurrent creates.
func mapCreateConflict(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	if strings.Contains(pgconv.PgConstraintName(err), "owner") {
		return errs.Mark(err, errs.ErrRestaurantExists)
	}
	return errs.Mark(err, errs.ErrSlugTaken)
}
