package commands

import (
	"context"

	"digital-menu/internal/domain/offer"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferCommands interface {
	CreateOffer(ctx context.Context, ownerID uuid.UUID, p offer.Params) (uuid.UUID, error)
	UpdateOffer(ctx context.Context, ownerID, offerID uuid.UUID, p offer.Params) error
	DeleteOffer(ctx context.Context, ownerID, offerID uuid.UUID) error
}

type offerCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher eventbus.Publisher
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock, publisher eventbus.Publisher) OfferCommands {
	return &offerCommandsImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
	}
}

func (uc *offerCommandsImpl) CreateOffer(ctx context.Context, ownerID uuid.UUID, p offer.Params) (uuid.UUID, error) {
	var (
		ref shared.RestaurantRef
		id  uuid.UUID
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}

		o, err := offer.NewOffer(ref.ID, p, uc.clock.Now())
		if err != nil {
			return errs.Validation(err)
		}
		id = o.ID()
		return tx.Offers().Create(ctx, o)
	})
	if err != nil {
		return uuid.Nil, err
	}

	publish(ctx, uc.publisher, eventbus.TopicOffersUpdated, ref)
	return id, nil
}

func (uc *offerCommandsImpl) UpdateOffer(ctx context.Context, ownerID, offerID uuid.UUID, p offer.Params) error {
	var ref shared.RestaurantRef
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}

		o, err := offer.NewOffer(ref.ID, p, uc.clock.Now())
		if err != nil {
			return errs.Validation(err)
		}
		return markNotFound(tx.Offers().Update(ctx, ref.ID, offerID, o), errs.ErrOfferNotFound)
	})
	if err != nil {
		return err
	}

	publish(ctx, uc.publisher, eventbus.TopicOffersUpdated, ref)
	return nil
}

func (uc *offerCommandsImpl) DeleteOffer(ctx context.Context, ownerID, offerID uuid.UUID) error {
	var ref shared.RestaurantRef
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		return markNotFound(tx.Offers().Delete(ctx, ref.ID, offerID), errs.ErrOfferNotFound)
	})
	if err != nil {
		return err
	}

	publish(ctx, uc.publisher, eventbus.TopicOffersUpdated, ref)
	return nil
}
