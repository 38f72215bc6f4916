//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"digital-menu/internal/domain/restaurant"
	"digital-menu/internal/infra"
	"digital-menu/internal/pkg/clock"
	"digital-menu/internal/pkg/errs"
	"digital-menu/internal/pkg/eventbus"
	"digital-menu/internal/usecase/commands"
	"digital-menu/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type commandsFixture struct {
	store     *fakeStore
	uow       *fakeUoW
	publisher *recordingPublisher
	clock     *clock.MockClock
}

func newCommandsFixture() commandsFixture {
	store := newFakeStore()
	return commandsFixture{
		store:     store,
		uow:       &fakeUoW{store: store},
		publisher: &recordingPublisher{},
		clock:     clock.NewMockClock(fixedNow),
	}
}

func duplicateKey(constraint string) error {
	return infra.WrapRepoErr("failed to create restaurant", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: constraint,
	})
}

func TestCreateRestaurant(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	params := builder.NewRestaurantBuilder().WithSlug("bella-vista").BuildParams()

	t.Run("stores restaurant with default customization and publishes", func(t *testing.T) {
		f := newCommandsFixture()
		uc := commands.NewRestaurantCommands(f.uow, f.clock, f.publisher)

		id, err := uc.CreateRestaurant(ctx, ownerID, params)
		require.NoError(t, err)

		ref := f.store.restaurants[ownerID]
		assert.Equal(t, id, ref.ID)
		assert.Equal(t, "bella-vista", ref.Slug)

		c := f.store.customizations[id]
		require.NotNil(t, c)
		assert.Equal(t, restaurant.DefaultCustomization(id, fixedNow).FontStyle(), c.FontStyle())

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, eventbus.TopicRestaurantUpdated, f.publisher.events[0].Topic)
		assert.Equal(t, "bella-vista", f.publisher.events[0].Slug)
	})

	t.Run("owner already has a restaurant", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.withRestaurant(ownerID, "existing")
		uc := commands.NewRestaurantCommands(f.uow, f.clock, f.publisher)

		_, err := uc.CreateRestaurant(ctx, ownerID, params)
		assert.True(t, errs.Is(err, errs.ErrRestaurantExists))
		assert.Empty(t, f.publisher.events)
	})

	t.Run("unique violations map by constraint", func(t *testing.T) {
		cases := []struct {
			constraint string
			want       error
		}{
			{constraint: "restaurants_slug_key", want: errs.ErrSlugTaken},
			{constraint: "restaurants_owner_id_key", want: errs.ErrRestaurantExists},
		}
		for _, tc := range cases {
			t.Run(tc.constraint, func(t *testing.T) {
				f := newCommandsFixture()
				f.store.errRestaurantCreate = duplicateKey(tc.constraint)
				uc := commands.NewRestaurantCommands(f.uow, f.clock, f.publisher)

				_, err := uc.CreateRestaurant(ctx, ownerID, params)
				assert.True(t, errs.Is(err, tc.want))
				assert.Empty(t, f.publisher.events)
			})
		}
	})

	t.Run("lookup failure is not treated as a missing restaurant", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.errFindRef = infra.WrapRepoErr("failed to find restaurant", errors.New("connection reset"))
		uc := commands.NewRestaurantCommands(f.uow, f.clock, f.publisher)

		_, err := uc.CreateRestaurant(ctx, ownerID, params)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Empty(t, f.store.restaurants)
	})

	t.Run("invalid slug is a validation error before any transaction", func(t *testing.T) {
		f := newCommandsFixture()
		uc := commands.NewRestaurantCommands(f.uow, f.clock, f.publisher)

		_, err := uc.CreateRestaurant(ctx, ownerID, builder.NewRestaurantBuilder().WithSlug("Not A Slug").BuildParams())
		assert.True(t, errs.IsValidation(err))
		assert.True(t, errs.Is(err, restaurant.ErrInvalidSlug))
		assert.Zero(t, f.uow.calls)
	})
}

func TestUpdateCustomization(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("upserts, touches the restaurant and publishes", func(t *testing.T) {
		f := newCommandsFixture()
		ref := f.store.withRestaurant(ownerID, "bella-vista")
		uc := commands.NewRestaurantCommands(f.uow, f.clock, f.publisher)

		p := builder.NewRestaurantBuilder().WithColors("#112233", "#445566", "#778899").WithFontStyle("elegant").
			BuildCustomizationParams()
		require.NoError(t, uc.UpdateCustomization(ctx, ownerID, p))

		c := f.store.customizations[ref.ID]
		require.NotNil(t, c)
		assert.Equal(t, "#112233", c.PrimaryColor().Value())
		assert.Equal(t, restaurant.FontStyle("elegant"), c.FontStyle())
		assert.Equal(t, []uuid.UUID{ref.ID}, f.store.touched)
		assert.Equal(t, []eventbus.Topic{eventbus.TopicRestaurantUpdated}, f.publisher.topics())
	})

	t.Run("owner without restaurant", func(t *testing.T) {
		f := newCommandsFixture()
		uc := commands.NewRestaurantCommands(f.uow, f.clock, f.publisher)

		err := uc.UpdateCustomization(ctx, ownerID, builder.NewRestaurantBuilder().BuildCustomizationParams())
		assert.True(t, errs.Is(err, errs.ErrRestaurantNotFound))
		assert.Empty(t, f.publisher.events)
	})

	t.Run("invalid color", func(t *testing.T) {
		f := newCommandsFixture()
		f.store.withRestaurant(ownerID, "bella-vista")
		uc := commands.NewRestaurantCommands(f.uow, f.clock, f.publisher)

		p := builder.NewRestaurantBuilder().WithColors("red", "#445566", "#778899").BuildCustomizationParams()
		err := uc.UpdateCustomization(ctx, ownerID, p)
		assert.True(t, errs.IsValidation(err))
		assert.Empty(t, f.store.touched)
		assert.Empty(t, f.publisher.events)
	})
}
