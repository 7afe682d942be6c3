package kernel_test

import (
	"testing"

	"bakery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterIncremented struct {
	By int
}

func (counterIncremented) EventType() string { return "CounterIncremented" }

type counter struct {
	kernel.BaseAggregate
	value int
}

func (c *counter) apply(e kernel.DomainEvent) {
	if inc, ok := e.(counterIncremented); ok {
		c.value += inc.By
	}
}

func (c *counter) increment(by int) {
	c.Raise(counterIncremented{By: by}, c.apply)
}

func TestBaseAggregate(t *testing.T) {
	t.Run("raise applies and records", func(t *testing.T) {
		// Given
		c := &counter{BaseAggregate: kernel.NewBaseAggregate(kernel.NewUUID())}

		// When
		c.increment(2)
		c.increment(3)

		// Then
		assert.Equal(t, 5, c.value)
		assert.Equal(t, 0, c.Version())
		require.Len(t, c.Changes(), 2)
		assert.True(t, c.HasChanges())
	})

	t.Run("mark committed advances version", func(t *testing.T) {
		c := &counter{BaseAggregate: kernel.NewBaseAggregate(kernel.NewUUID())}
		c.increment(1)
		c.increment(1)

		c.MarkCommitted()

		assert.Equal(t, 2, c.Version())
		assert.Empty(t, c.Changes())
		assert.False(t, c.HasChanges())
	})

	t.Run("replay folds history", func(t *testing.T) {
		c := &counter{BaseAggregate: kernel.NewBaseAggregate(kernel.NewUUID())}

		c.Replay([]kernel.DomainEvent{
			counterIncremented{By: 4},
			counterIncremented{By: 6},
		}, c.apply)

		assert.Equal(t, 10, c.value)
		assert.Equal(t, 2, c.Version())
		assert.Empty(t, c.Changes())
	})

	t.Run("changes are a copy", func(t *testing.T) {
		c := &counter{BaseAggregate: kernel.NewBaseAggregate(kernel.NewUUID())}
		c.increment(1)

		changes := c.Changes()
		changes[0] = counterIncremented{By: 100}

		assert.Equal(t, counterIncremented{By: 1}, c.Changes()[0])
	})
}

func TestMoney(t *testing.T) {
	m, err := kernel.NewMoney(250)
	require.NoError(t, err)

	assert.Equal(t, kernel.Money(750), m.Times(3))
	assert.Equal(t, "2.50", m.String())
	assert.Equal(t, int64(250), m.Cents())

	_, err = kernel.NewMoney(-1)
	require.Error(t, err)
}
