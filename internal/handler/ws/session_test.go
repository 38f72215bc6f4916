//go:build unit

package ws

import (
	"fmt"
	"testing"

	"digital-menu/internal/presentation/carousel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDrain(t *testing.T) {
	t.Run("error reply keeps the pending state", func(t *testing.T) {
		s := newSession(nil, nil, nil, "bella-vista", uuid.New(), ContextWelcome)

		s.enqueue(carousel.View{Mode: carousel.ModeFull, Index: 1, Count: 2})
		s.sendError("unknown message type \"dance\"")

		msgs := s.drain()
		require.Len(t, msgs, 2)
		assert.Equal(t, "error", msgs[0].Type)
		assert.Equal(t, "state", msgs[1].Type)
		assert.Equal(t, 1, msgs[1].View.Index)
		assert.Empty(t, s.drain())
	})

	t.Run("states collapse to the newest", func(t *testing.T) {
		s := newSession(nil, nil, nil, "bella-vista", uuid.New(), ContextMenu)

		s.enqueue(carousel.View{Index: 0, Count: 3})
		s.enqueue(carousel.View{Index: 2, Count: 3})

		msgs := s.drain()
		require.Len(t, msgs, 1)
		assert.Equal(t, 2, msgs[0].View.Index)
		assert.Equal(t, ContextMenu, msgs[0].Context)
	})

	t.Run("error backlog is bounded", func(t *testing.T) {
		s := newSession(nil, nil, nil, "bella-vista", uuid.New(), ContextWelcome)

		for i := range maxPendingErrors + 2 {
			s.sendError(fmt.Sprintf("bad %d", i))
		}

		msgs := s.drain()
		require.Len(t, msgs, maxPendingErrors)
		assert.Equal(t, "bad 2", msgs[0].Error)
	})
}
