package models_test

import (
	"testing"

	"pairgogo/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair_OrdersAscending(t *testing.T) {
	a, b := models.CanonicalPair(7, 3)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(7), b)

	a, b = models.CanonicalPair(3, 7)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(7), b)
}

func TestCanonicalPair_SymmetricArguments(t *testing.T) {
	a1, b1 := models.CanonicalPair(12, 99)
	a2, b2 := models.CanonicalPair(99, 12)
	assert.Equal(t, a1, a2, "pair must be identical regardless of swipe order")
	assert.Equal(t, b1, b2)
}

func TestMatchHasUser(t *testing.T) {
	m := &models.Match{UserAID: 1, UserBID: 2}

	assert.True(t, m.HasUser(1))
	assert.True(t, m.HasUser(2))
	assert.False(t, m.HasUser(3))
}

func TestMatchOtherUserID(t *testing.T) {
	m := &models.Match{UserAID: 1, UserBID: 2}

	other, ok := m.OtherUserID(1)
	assert.True(t, ok)
	assert.Equal(t, uint(2), other)

	other, ok = m.OtherUserID(2)
	assert.True(t, ok)
	assert.Equal(t, uint(1), other)

	_, ok = m.OtherUserID(5)
	assert.False(t, ok)
}
