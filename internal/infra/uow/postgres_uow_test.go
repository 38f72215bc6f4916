//go:build unit

package uow

import (
	"testing"
	"time"

	"digital-menu/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "commit"), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry_StopsAtMax(t *testing.T) {
	err := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	assert.True(t, shouldRetry(err, 0, 3))
	assert.True(t, shouldRetry(err, 2, 3))
	assert.False(t, shouldRetry(err, 3, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)

		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}
