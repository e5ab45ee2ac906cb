package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusNext(t *testing.T) {
	next, ok := StatusPending.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusPreparing, next)

	next, ok = StatusPreparing.Next()
	assert.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	_, ok = StatusCompleted.Next()
	assert.False(t, ok)
	_, ok = StatusCancelled.Next()
	assert.False(t, ok)
}

func TestStatusTransitions(t *testing.T) {
	all := []OrderStatus{StatusPending, StatusPreparing, StatusCompleted, StatusCancelled}

	allowed := map[OrderStatus]map[OrderStatus]bool{
		StatusPending:   {StatusPreparing: true, StatusCancelled: true},
		StatusPreparing: {StatusCompleted: true, StatusCancelled: true},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equalf(t, allowed[from][to], from.CanTransition(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestTerminalStatesOfferNoAction(t *testing.T) {
	for _, s := range []OrderStatus{StatusCompleted, StatusCancelled} {
		assert.True(t, s.Terminal())
		assert.False(t, s.CanCancel())
		_, ok := s.Next()
		assert.False(t, ok)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
}
