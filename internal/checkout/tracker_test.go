package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_ConsumeWithoutBegin(t *testing.T) {
	tr := NewTracker()

	assert.False(t, tr.Consume(1))
}

func TestTracker_BeginThenConsume(t *testing.T) {
	tr := NewTracker()

	tr.Begin(1)
	assert.True(t, tr.Waiting(1))

	assert.True(t, tr.Consume(1))
	assert.False(t, tr.Waiting(1))
}

func TestTracker_ConsumeClearsFlag(t *testing.T) {
	tr := NewTracker()

	tr.Begin(1)
	assert.True(t, tr.Consume(1))
	// Second consume sees no active checkout.
	assert.False(t, tr.Consume(1))
}

func TestTracker_UsersAreIndependent(t *testing.T) {
	tr := NewTracker()

	tr.Begin(1)

	assert.False(t, tr.Waiting(2))
	assert.False(t, tr.Consume(2))
	assert.True(t, tr.Consume(1))
}

func TestTracker_BeginIsIdempotent(t *testing.T) {
	tr := NewTracker()

	tr.Begin(1)
	tr.Begin(1)

	assert.True(t, tr.Consume(1))
	assert.False(t, tr.Consume(1))
}
