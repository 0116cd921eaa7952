package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeParticipants(t *testing.T) {
	caller := uuid.New()
	a := uuid.New()
	b := uuid.New()

	t.Run("caller always included", func(t *testing.T) {
		got := NormalizeParticipants(caller, []uuid.UUID{a, b})
		assert.Len(t, got, 3)
		assert.Contains(t, got, caller)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		got := NormalizeParticipants(caller, []uuid.UUID{a, a, caller, b, b})
		assert.Len(t, got, 3)
	})

	t.Run("order is canonical", func(t *testing.T) {
		first := NormalizeParticipants(caller, []uuid.UUID{a, b})
		second := NormalizeParticipants(caller, []uuid.UUID{b, a})
		assert.Equal(t, first, second)
	})

	t.Run("caller alone", func(t *testing.T) {
		got := NormalizeParticipants(caller, nil)
		assert.Equal(t, []uuid.UUID{caller}, got)
	})
}

func TestSameParticipants(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	assert.True(t, SameParticipants([]uuid.UUID{a, b}, []uuid.UUID{b, a}))
	assert.False(t, SameParticipants([]uuid.UUID{a, b}, []uuid.UUID{a, c}))
	assert.False(t, SameParticipants([]uuid.UUID{a, b}, []uuid.UUID{a, b, c}))
	assert.False(t, SameParticipants([]uuid.UUID{a, a, b}, []uuid.UUID{a, b, b}))
	assert.True(t, SameParticipants(nil, nil))
}
