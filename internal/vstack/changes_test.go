package vstack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsChanged_InsertAboveShiftsWindowAndOffset(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.layout()
	before := f.realized()

	values := make([]string, 10)
	for i := range values {
		values[i] = "inserted"
	}
	require.NoError(t, f.rows.insert(0, values...))

	first, last := f.panel.Window()
	assert.Equal(t, 10, first)
	assert.Equal(t, 15, last)
	assert.Equal(t, 200.0, f.viewport.offset.Y)
	assert.True(t, f.panel.NeedsLayout())

	f.panel.Observe()
	f.layout()
	first, last = f.panel.Window()
	assert.Equal(t, 10, first)
	assert.Equal(t, 15, last)
	assert.Equal(t, 6, f.factory.created)
	for index, c := range f.realized() {
		assert.Same(t, before[index-10], c)
	}
	checkInvariants(t, f)
}

func TestItemsChanged_InsertInsideWindowAddsLazySlots(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.layout()

	require.NoError(t, f.rows.insert(2, "x", "y"))

	first, last := f.panel.Window()
	assert.Equal(t, 0, first)
	assert.Equal(t, 7, last)
	assert.Nil(t, f.panel.win.slots[2])
	assert.Nil(t, f.panel.win.slots[3])
	assert.Equal(t, 0.0, f.viewport.offset.Y)

	f.layout()
	first, last = f.panel.Window()
	assert.Equal(t, 0, first)
	assert.Equal(t, 5, last)
	checkInvariants(t, f)
}

func TestItemsChanged_InsertBelowWindowIsNoop(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.layout()

	require.NoError(t, f.rows.insert(6, "tail"))
	require.NoError(t, f.rows.insert(500, "far"))

	first, last := f.panel.Window()
	assert.Equal(t, 0, first)
	assert.Equal(t, 5, last)
	assert.Equal(t, 0, f.viewport.writes)
	checkInvariants(t, f)
}

func TestItemsChanged_RemoveInsideWindow(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.layout()
	before := f.realized()

	require.NoError(t, f.rows.remove(2, 3))

	first, last := f.panel.Window()
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, last)
	assert.Equal(t, 3, f.panel.Pooled("row"))
	after := f.realized()
	assert.Same(t, before[0], after[0])
	assert.Same(t, before[1], after[1])
	assert.Same(t, before[5], after[2])
	checkInvariants(t, f)
}

func TestItemsChanged_RemoveAboveWindowNudgesBack(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.viewport.offset.Y = 500
	f.layout()

	require.NoError(t, f.rows.remove(3, 4))

	first, last := f.panel.Window()
	assert.Equal(t, 21, first)
	assert.Equal(t, 26, last)
	assert.Equal(t, 420.0, f.viewport.offset.Y)
	checkInvariants(t, f)
}

func TestItemsChanged_RemoveStraddlingFrontShiftsFirst(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.viewport.offset.Y = 500
	f.layout()
	before := f.realized()

	// Removes 23..27: two rows above the window, three inside it.
	require.NoError(t, f.rows.remove(23, 5))

	first, last := f.panel.Window()
	assert.Equal(t, 23, first)
	assert.Equal(t, 25, last)
	assert.Equal(t, 460.0, f.viewport.offset.Y)
	after := f.realized()
	assert.Same(t, before[28], after[23])
	assert.Same(t, before[30], after[25])
	checkInvariants(t, f)
}

func TestItemsChanged_RemoveCoveringWindowClears(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.viewport.offset.Y = 100
	f.layout()

	require.NoError(t, f.rows.remove(0, 20))

	first, last := f.panel.Window()
	assert.Equal(t, -1, first)
	assert.Equal(t, -1, last)
	assert.Equal(t, 6, f.panel.Pooled("row"))
	checkInvariants(t, f)
}

func TestItemsChanged_OffsetNudgeClampsAtZero(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.viewport.offset.Y = 500
	f.layout()
	f.viewport.offset.Y = 10

	require.NoError(t, f.rows.remove(0, 3))

	assert.Equal(t, 0.0, f.viewport.offset.Y)
}

func TestItemsChanged_InsertRemoveRoundTrip(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.viewport.offset.Y = 240
	f.layout()
	first0, last0 := f.panel.Window()
	before := f.realized()

	require.NoError(t, f.rows.insert(5, "a", "b", "c", "d"))
	require.NoError(t, f.rows.remove(5, 4))

	first, last := f.panel.Window()
	assert.Equal(t, first0, first)
	assert.Equal(t, last0, last)
	assert.Equal(t, 240.0, f.viewport.offset.Y)
	assert.Equal(t, before, f.realized())
	checkInvariants(t, f)
}

func TestItemsChanged_ReplacePartialMakesSlotsLazy(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.layout()
	before := f.realized()

	require.NoError(t, f.rows.replace(4, "four", "five", "six"))

	first, last := f.panel.Window()
	assert.Equal(t, 0, first)
	assert.Equal(t, 5, last)
	assert.Nil(t, f.panel.win.slots[4])
	assert.Nil(t, f.panel.win.slots[5])
	assert.Same(t, before[3], f.panel.win.slots[3])
	assert.Equal(t, 2, f.panel.Pooled("row"))

	c := f.panel.ContainerFromIndex(4)
	require.NotNil(t, c)
	assert.Equal(t, "four", c.(*fakeContainer).item)

	f.layout()
	assert.Equal(t, "five", f.realized()[5].item)
	assert.Equal(t, 6, f.factory.created)
	checkInvariants(t, f)
}

func TestItemsChanged_ReplaceOutsideWindowIsNoop(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.viewport.offset.Y = 200
	f.layout()

	require.NoError(t, f.rows.replace(0, "a", "b"))
	require.NoError(t, f.rows.replace(100, "c"))

	assert.Equal(t, 0, f.panel.Pooled("row"))
	assert.NotContains(t, f.panel.win.slots, nil)
}

func TestItemsChanged_ReplaceCoveringWindowClears(t *testing.T) {
	f := newFixture(10, 20, 100)
	f.layout()

	require.NoError(t, f.rows.replace(0, "a", "b", "c", "d", "e", "f", "g"))

	first, _ := f.panel.Window()
	assert.Equal(t, -1, first)
	assert.Equal(t, 6, f.panel.Pooled("row"))
}

func TestItemsChanged_ResetRecyclesEverything(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.layout()

	require.NoError(t, f.panel.ItemsChanged(Change{Action: ActionReset}))

	first, last := f.panel.Window()
	assert.Equal(t, -1, first)
	assert.Equal(t, -1, last)
	assert.Equal(t, 6, f.panel.Pooled("row"))
	checkInvariants(t, f)

	f.layout()
	assert.Equal(t, 6, f.factory.created)
	assert.Equal(t, 6, f.observer.reused)
}

func TestItemsChanged_MoveIsRejectedWithoutMutation(t *testing.T) {
	f := newFixture(1000, 20, 100)
	f.layout()
	before := f.realized()
	f.panel.invalid = false

	err := f.panel.ItemsChanged(Change{Action: ActionMove, Start: 1, Count: 1, OldIndex: 1, NewIndex: 4})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMoveUnsupported))
	first, last := f.panel.Window()
	assert.Equal(t, 0, first)
	assert.Equal(t, 5, last)
	assert.Equal(t, before, f.realized())
	assert.False(t, f.panel.NeedsLayout())
	assert.Equal(t, 0, f.viewport.writes)
}

func TestItemsChanged_InvalidRanges(t *testing.T) {
	f := newFixture(10, 20, 100)
	f.layout()

	for _, ch := range []Change{
		{Action: ActionAdd, Start: -1, Count: 1},
		{Action: ActionRemove, Start: 0, Count: -2},
		{Action: Action(42)},
	} {
		err := f.panel.ItemsChanged(ch)
		assert.ErrorIs(t, err, ErrInvalidChange, "change %+v", ch)
	}
	first, last := f.panel.Window()
	assert.Equal(t, 0, first)
	assert.Equal(t, 5, last)
}

func TestItemsChanged_EmptyWindowIgnoresChanges(t *testing.T) {
	f := newFixture(100, 20, 100)

	require.NoError(t, f.rows.insert(0, "a"))
	require.NoError(t, f.rows.remove(0, 1))

	first, _ := f.panel.Window()
	assert.Equal(t, -1, first)
	assert.Equal(t, 0, f.viewport.writes)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "add", ActionAdd.String())
	assert.Equal(t, "move", ActionMove.String())
	assert.Equal(t, "action(9)", Action(9).String())
}
