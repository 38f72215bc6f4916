//go:build unit

package infra

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []RepositoryErrorKind
		want RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: KindCheckViolated},
		{name: "anything else", err: assert.AnError, want: KindDBFailure},
		{name: "explicit kind wins", err: assert.AnError, kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "op failed")
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, IsKind(assert.AnError, KindDBFailure))
	assert.False(t, IsKind(nil, KindNotFound))
}
