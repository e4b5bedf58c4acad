package cart

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coldCoffee() Entry {
	return Entry{Ref: ItemRef("it-1"), Name: "Cold Coffee", UnitPrice: decimal.NewFromInt(120)}
}

func TestAddExistingIncrements(t *testing.T) {
	c := New()
	c.Add(coldCoffee())
	c.Add(coldCoffee())

	entry := coldCoffee()
	entry.Quantity = 3
	c.Add(entry)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, c.TotalItems())
	assert.True(t, decimal.NewFromInt(600).Equal(c.TotalPrice()))
}

func TestAddNewLineStartsAtOne(t *testing.T) {
	c := New()
	entry := coldCoffee()
	entry.Quantity = 4
	c.Add(entry)

	line, ok := c.Line("it-1")
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	c := New()
	c.Add(coldCoffee())
	c.Add(Entry{Ref: AddonRef("ing-1"), Name: "Extra Shot", UnitPrice: decimal.NewFromInt(30)})

	c.UpdateQuantity("it-1", 0)

	_, ok := c.Line("it-1")
	assert.False(t, ok)
	assert.Equal(t, 1, c.TotalItems())
	assert.True(t, decimal.NewFromInt(30).Equal(c.TotalPrice()))

	c.UpdateQuantity("ing-1", -2)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantitySets(t *testing.T) {
	c := New()
	c.Add(coldCoffee())
	c.UpdateQuantity("it-1", 7)
	assert.Equal(t, 7, c.TotalItems())

	// id inconnu: rien ne change
	c.UpdateQuantity("nope", 3)
	assert.Len(t, c.Lines(), 1)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(coldCoffee())
	c.Add(Entry{Ref: AddonRef("ing-1"), Name: "Extra Shot", UnitPrice: decimal.NewFromInt(30)})
	c.Clear()

	assert.Equal(t, 0, c.TotalItems())
	assert.True(t, c.TotalPrice().IsZero())
}

func TestTotalPriceRounds(t *testing.T) {
	c := New()
	c.Add(Entry{Ref: ItemRef("a"), Name: "A", UnitPrice: decimal.RequireFromString("0.105")})
	assert.Equal(t, "0.11", c.TotalPrice().StringFixed(2))
}

func TestRandomSequencesKeepTotals(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"a", "b", "c", "d"}
	prices := map[string]decimal.Decimal{
		"a": decimal.RequireFromString("12.50"),
		"b": decimal.NewFromInt(40),
		"c": decimal.RequireFromString("3.25"),
		"d": decimal.NewFromInt(99),
	}

	c := New()
	for i := 0; i < 500; i++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(3) {
		case 0:
			c.Add(Entry{Ref: ItemRef(id), Name: id, UnitPrice: prices[id], Quantity: rng.Intn(3)})
		case 1:
			c.UpdateQuantity(id, rng.Intn(5)-1)
		case 2:
			c.Remove(id)
		}

		seen := map[string]bool{}
		items := 0
		total := decimal.Zero
		for _, l := range c.Lines() {
			require.False(t, seen[l.ID], "duplicate line %s", l.ID)
			seen[l.ID] = true
			require.GreaterOrEqual(t, l.Quantity, 1)
			items += l.Quantity
			total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		require.Equal(t, items, c.TotalItems())
		require.True(t, total.Round(2).Equal(c.TotalPrice()))
	}
}

func TestOrderItemsUsesKind(t *testing.T) {
	c := New()
	c.Add(coldCoffee())
	c.Add(Entry{Ref: AddonRef("ing-1"), Name: "Extra Shot", UnitPrice: decimal.NewFromInt(30)})
	c.UpdateQuantity("it-1", 2)

	items := c.OrderItems()
	require.Len(t, items, 2)

	assert.Equal(t, "it-1", items[0].ItemID)
	assert.Empty(t, items[0].AddonID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 120.0, items[0].Price)

	assert.Equal(t, "ing-1", items[1].AddonID)
	assert.Empty(t, items[1].ItemID)
}

func TestSubscribe(t *testing.T) {
	c := New()
	var events []Event
	unsubscribe := c.Subscribe(func(ev Event) { events = append(events, ev) })

	c.Add(coldCoffee())
	c.UpdateQuantity("it-1", 3)
	c.Remove("it-1")

	require.Len(t, events, 3)
	assert.Equal(t, OpAdd, events[0].Op)
	assert.Equal(t, 3, events[1].TotalItems)
	assert.True(t, decimal.NewFromInt(360).Equal(events[1].TotalPrice))
	assert.Equal(t, OpRemove, events[2].Op)

	unsubscribe()
	c.Add(coldCoffee())
	assert.Len(t, events, 3)
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := New()
	c.Add(coldCoffee())
	c.Add(coldCoffee())
	c.Add(Entry{Ref: AddonRef("ing-1"), Name: "Extra Shot", UnitPrice: decimal.NewFromInt(30)})

	restored := FromSnapshot(c.Snapshot())
	assert.Equal(t, c.Lines(), restored.Lines())
	assert.True(t, c.TotalPrice().Equal(restored.TotalPrice()))

	// les lignes vides sont ignorées
	s := Snapshot{Lines: []Line{{Ref: ItemRef("x"), Name: "X", Quantity: 0}}}
	assert.True(t, FromSnapshot(s).IsEmpty())
}
