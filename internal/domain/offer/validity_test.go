//go:build unit

package offer_test

import (
	"testing"
	"time"

	"digital-menu/internal/domain/offer"
	"digital-menu/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-02 is a Sunday.
func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, 2+day, hour, minute, 30, 0, time.UTC)
}

func TestIsCurrentlyValid(t *testing.T) {
	happyHour := builder.NewOfferBuilder().BuildStored()

	cases := []struct {
		name  string
		offer *offer.Offer
		now   time.Time
		want  bool
	}{
		{name: "wednesday inside window", offer: happyHour, now: at(3, 18, 0), want: true},
		{name: "wednesday after window", offer: happyHour, now: at(3, 19, 1), want: false},
		{name: "saturday inside hours but wrong day", offer: happyHour, now: at(6, 18, 0), want: false},
		{name: "start minute is inclusive", offer: happyHour, now: at(3, 17, 0), want: true},
		{name: "end minute is inclusive regardless of seconds", offer: happyHour, now: at(3, 19, 0), want: true},
		{name: "one minute before start", offer: happyHour, now: at(3, 16, 59), want: false},
		{
			name:  "start equals end matches only that minute",
			offer: builder.NewOfferBuilder().WithHours("12:00", "12:00").BuildStored(),
			now:   at(1, 12, 0),
			want:  true,
		},
		{
			name:  "start equals end misses the next minute",
			offer: builder.NewOfferBuilder().WithHours("12:00", "12:00").BuildStored(),
			now:   at(1, 12, 1),
			want:  false,
		},
		{
			name:  "overnight window never matches inside the intended span",
			offer: builder.NewOfferBuilder().WithHours("22:00", "02:00").BuildStored(),
			now:   at(1, 23, 30),
			want:  false,
		},
		{
			name:  "sunday is weekday zero",
			offer: builder.NewOfferBuilder().WithValidDays(0).BuildStored(),
			now:   at(0, 18, 0),
			want:  true,
		},
		{
			name:  "out of range stored day never matches",
			offer: builder.NewOfferBuilder().WithValidDays(7, -1).BuildStored(),
			now:   at(0, 18, 0),
			want:  false,
		},
		{
			name:  "malformed stored hours are not valid",
			offer: builder.NewOfferBuilder().WithHours("", "").BuildStored(),
			now:   at(1, 18, 0),
			want:  false,
		},
		{name: "nil offer", offer: nil, now: at(1, 18, 0), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.offer.IsCurrentlyValid(tc.now))
		})
	}
}

func TestIsCurrentlyValid_Properties(t *testing.T) {
	everyMinuteOfWeek := func(fn func(now time.Time)) {
		for day := 0; day < 7; day++ {
			for minute := 0; minute < 24*60; minute += 7 {
				fn(at(day, minute/60, minute%60))
			}
		}
	}

	t.Run("inactive offers are never valid", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithValidDays(0, 1, 2, 3, 4, 5, 6).WithHours("00:00", "23:59").AsInactive().BuildStored()
		everyMinuteOfWeek(func(now time.Time) {
			require.False(t, o.IsCurrentlyValid(now), now)
		})
	})

	t.Run("offers without days are never valid", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithValidDays().WithHours("00:00", "23:59").BuildStored()
		everyMinuteOfWeek(func(now time.Time) {
			require.False(t, o.IsCurrentlyValid(now), now)
		})
	})

	t.Run("full week and full day is always valid", func(t *testing.T) {
		o := builder.NewOfferBuilder().WithValidDays(0, 1, 2, 3, 4, 5, 6).WithHours("00:00", "23:59").BuildStored()
		everyMinuteOfWeek(func(now time.Time) {
			require.True(t, o.IsCurrentlyValid(now), now)
		})
	})
}

func TestFilters(t *testing.T) {
	happyHour := builder.NewOfferBuilder().WithTitle("Happy Hour", "Happy Hour").BuildStored()
	lunch := builder.NewOfferBuilder().WithTitle("Lunch", "Mittag").WithHours("11:30", "14:00").BuildStored()
	paused := builder.NewOfferBuilder().WithTitle("Paused", "Pausiert").AsInactive().BuildStored()
	all := []*offer.Offer{happyHour, nil, lunch, paused}

	t.Run("displayable keeps active offers in order", func(t *testing.T) {
		got := offer.FilterDisplayable(all)
		assert.Equal(t, []*offer.Offer{happyHour, lunch}, got)
	})

	t.Run("currently valid applies day and hour windows", func(t *testing.T) {
		got := offer.FilterCurrentlyValid(all, at(2, 12, 15))
		assert.Equal(t, []*offer.Offer{lunch}, got)
	})

	t.Run("bella-vista happy hour under both filters", func(t *testing.T) {
		offers := []*offer.Offer{happyHour}

		tuesdayEvening := at(2, 18, 30)
		assert.Equal(t, offers, offer.SelectStrict.Select(offers, tuesdayEvening))
		assert.Equal(t, offers, offer.SelectActive.Select(offers, tuesdayEvening))

		tuesdayNight := at(2, 20, 0)
		assert.Empty(t, offer.SelectStrict.Select(offers, tuesdayNight))
		assert.Equal(t, offers, offer.SelectActive.Select(offers, tuesdayNight))
	})

	t.Run("selector parsing", func(t *testing.T) {
		s, err := offer.ParseSelector("")
		require.NoError(t, err)
		assert.Equal(t, offer.SelectActive, s)

		s, err = offer.ParseSelector("strict")
		require.NoError(t, err)
		assert.Equal(t, offer.SelectStrict, s)

		_, err = offer.ParseSelector("sometimes")
		require.ErrorIs(t, err, offer.ErrInvalidSelector)
	})
}
