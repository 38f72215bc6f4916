package commands

import (
	"context"

	"digital-menu/internal/domain/menu"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/pkg/i18n"
	"digital-menu/internal/usecase/shared"

	"github.com/google/uuid"
)

// MenuCommands manage the owner's categories and items. A nil sortOrder
// appends on create and keeps the current position on update.
type MenuCommands interface {
	CreateCategory(ctx context.Context, ownerID uuid.UUID, name i18n.Text, sortOrder *int) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, ownerID, categoryID uuid.UUID, name i18n.Text, sortOrder *int) error
	DeleteCategory(ctx context.Context, ownerID, categoryID uuid.UUID) error
	CreateMenuItem(ctx context.Context, ownerID, categoryID uuid.UUID, p menu.ItemParams, sortOrder *int) (uuid.UUID, error)
	UpdateMenuItem(ctx context.Context, ownerID, itemID uuid.UUID, p menu.ItemParams, sortOrder *int) error
	ToggleSoldOut(ctx context.Context, ownerID, itemID uuid.UUID) (bool, error)
}

type menuCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	publisher eventbus.Publisher
}

func NewMenuCommands(uow shared.UnitOfWork, clk clock.Clock, publisher eventbus.Publisher) MenuCommands {
	return &menuCommandsImpl{
		uow:       uow,
		clock:     clk,
		publisher: publisher,
	}
}

func (uc *menuCommandsImpl) CreateCategory(ctx context.Context, ownerID uuid.UUID, name i18n.Text, sortOrder *int) (uuid.UUID, error) {
	if _, err := menu.NewName(name); err != nil {
		return uuid.Nil, errs.Validation(err)
	}

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

		pos, err := uc.categoryPosition(ctx, tx, ref.ID, sortOrder)
		if err != nil {
			return err
		}
		c, err := menu.NewCategory(ref.ID, name, pos, uc.clock.Now())
		if err != nil {
			return errs.Validation(err)
		}
		id = c.ID()
		return tx.Categories().Create(ctx, c)
	})
	if err != nil {
		return uuid.Nil, err
	}

	publish(ctx, uc.publisher, eventbus.TopicMenuUpdated, ref)
	return id, nil
}

func (uc *menuCommandsImpl) UpdateCategory(ctx context.Context, ownerID, categoryID uuid.UUID, name i18n.Text, sortOrder *int) error {
	name, err := menu.NewName(name)
	if err != nil {
		return errs.Validation(err)
	}

	var ref shared.RestaurantRef
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		err = tx.Categories().Update(ctx, ref.ID, categoryID, name, clampSort(sortOrder))
		return markNotFound(err, errs.ErrCategoryNotFound)
	})
	if err != nil {
		return err
	}

	publish(ctx, uc.publisher, eventbus.TopicMenuUpdated, ref)
	return nil
}

// DeleteCategory removes the category and, by cascade, its items.
func (uc *menuCommandsImpl) DeleteCategory(ctx context.Context, ownerID, categoryID uuid.UUID) error {
	var ref shared.RestaurantRef
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		return markNotFound(tx.Categories().Delete(ctx, ref.ID, categoryID), errs.ErrCategoryNotFound)
	})
	if err != nil {
		return err
	}

	publish(ctx, uc.publisher, eventbus.TopicMenuUpdated, ref)
	return nil
}

func (uc *menuCommandsImpl) CreateMenuItem(ctx context.Context, ownerID, categoryID uuid.UUID, p menu.ItemParams, sortOrder *int) (uuid.UUID, error) {
	now := uc.clock.Now()
	it, err := menu.NewItem(categoryID, p, 0, now)
	if err != nil {
		return uuid.Nil, errs.Validation(err)
	}

	var ref shared.RestaurantRef
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}

		if sortOrder != nil {
			it.SetSortOrder(*sortOrder)
		} else {
			next, err := tx.MenuItems().NextSortOrder(ctx, ref.ID, categoryID)
			if err != nil {
				return markNotFound(err, errs.ErrCategoryNotFound)
			}
			it.SetSortOrder(next)
		}
		return markNotFound(tx.MenuItems().Create(ctx, ref.ID, it), errs.ErrCategoryNotFound)
	})
	if err != nil {
		return uuid.Nil, err
	}

	publish(ctx, uc.publisher, eventbus.TopicMenuUpdated, ref)
	return it.ID(), nil
}

func (uc *menuCommandsImpl) UpdateMenuItem(ctx context.Context, ownerID, itemID uuid.UUID, p menu.ItemParams, sortOrder *int) error {
	// the category is irrelevant here; the update is scoped by item and restaurant
	it, err := menu.NewItem(uuid.New(), p, 0, uc.clock.Now())
	if err != nil {
		return errs.Validation(err)
	}

	var ref shared.RestaurantRef
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		err = tx.MenuItems().Update(ctx, ref.ID, itemID, it, clampSort(sortOrder))
		return markNotFound(err, errs.ErrMenuItemNotFound)
	})
	if err != nil {
		return err
	}

	publish(ctx, uc.publisher, eventbus.TopicMenuUpdated, ref)
	return nil
}

func (uc *menuCommandsImpl) ToggleSoldOut(ctx context.Context, ownerID, itemID uuid.UUID) (bool, error) {
	var (
		ref     shared.RestaurantRef
		soldOut bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ref, err = ownedRestaurant(ctx, tx, ownerID)
		if err != nil {
			return err
		}
		soldOut, err = tx.MenuItems().ToggleSoldOut(ctx, ref.ID, itemID)
		return markNotFound(err, errs.ErrMenuItemNotFound)
	})
	if err != nil {
		return false, err
	}

	publish(ctx, uc.publisher, eventbus.TopicMenuUpdated, ref)
	return soldOut, nil
}

func (uc *menuCommandsImpl) categoryPosition(ctx context.Context, tx shared.Tx, restaurantID uuid.UUID, sortOrder *int) (int, error) {
	if sortOrder != nil {
		return *sortOrder, nil
	}
	return tx.Categories().NextSortOrder(ctx, restaurantID)
}

func clampSort(sortOrder *int) *int {
	if sortOrder == nil || *sortOrder >= 0 {
		return sortOrder
	}
	zero := 0
	return &zero
}
