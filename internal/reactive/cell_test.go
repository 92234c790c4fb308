package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellGetReturnsInitial(t *testing.T) {
	t.Parallel()

	c := NewCell(42)
	assert.Equal(t, 42, c.Get())
}

func TestCellSetNotifiesOnlyOnChange(t *testing.T) {
	t.Parallel()

	c := NewCell("a")
	var seen []string
	c.Subscribe(func(v string) { seen = append(seen, v) })

	require.True(t, c.Set("b"))
	require.False(t, c.Set("b"))
	require.True(t, c.Set("c"))

	assert.Equal(t, []string{"b", "c"}, seen)
	assert.Equal(t, "c", c.Get())
}

func TestCellSubscribersRunInOrder(t *testing.T) {
	t.Parallel()

	c := NewCell(0)
	var order []string
	c.Subscribe(func(int) { order = append(order, "first") })
	c.Subscribe(func(int) { order = append(order, "second") })
	c.Subscribe(func(int) { order = append(order, "third") })

	c.Set(1)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestCellCancelIsIdempotent(t *testing.T) {
	t.Parallel()

	c := NewCell(0)
	calls := 0
	cancel := c.Subscribe(func(int) { calls++ })
	require.Equal(t, 1, c.Subscribers())

	cancel()
	cancel()
	c.Set(5)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, c.Subscribers())
}

func TestCellSubscriberMayCancelDuringNotify(t *testing.T) {
	t.Parallel()

	c := NewCell(0)
	var cancel func()
	calls := 0
	cancel = c.Subscribe(func(int) {
		calls++
		cancel()
	})

	c.Set(1)
	c.Set(2)
	assert.Equal(t, 1, calls)
}

func TestCellNilSubscriberIgnored(t *testing.T) {
	t.Parallel()

	c := NewCell(0)
	cancel := c.Subscribe(nil)
	require.NotNil(t, cancel)
	cancel()
	assert.Equal(t, 0, c.Subscribers())
}
