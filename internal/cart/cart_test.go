package cart

import (
	"testing"

	"github.com/shashiranjanraj/laziz/app/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func product(title string, price float64) models.Product {
	return models.Product{
		ID:             primitive.NewObjectID(),
		TitlePrimary:   title,
		TitleSecondary: title + " ar",
		Price:          price,
	}
}

// checkInvariants verifies the derived values always equal what the line list
// implies.
func checkInvariants(t *testing.T, c *Cart) {
	t.Helper()

	count := 0
	total := 0.0
	for _, l := range c.Lines {
		count += l.Quantity
		total += l.Price * float64(l.Quantity)
	}
	if c.ItemCount != count {
		t.Errorf("ItemCount = %d, lines sum to %d", c.ItemCount, count)
	}
	if c.Total != total {
		t.Errorf("Total = %v, lines sum to %v", c.Total, total)
	}
}

func TestAddSameProductTwiceMergesLines(t *testing.T) {
	c := New()
	p := product("Kebab", 10)

	c.AddItem(p)
	c.AddItem(p)

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", c.Lines[0].Quantity)
	}
	if c.ItemCount != 2 || c.Total != 20 {
		t.Errorf("itemCount=%d total=%v, want 2 and 20", c.ItemCount, c.Total)
	}
	checkInvariants(t, c)
}

func TestAddCapturesDisplayFields(t *testing.T) {
	c := New()
	p := product("Lemonade", 12)
	p.Image = "/uploads/lemonade.webp"

	c.AddItem(p)

	l := c.Lines[0]
	if l.TitlePrimary != "Lemonade" || l.TitleSecondary != "Lemonade ar" || l.Image != p.Image {
		t.Errorf("display fields not captured: %+v", l)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	p := product("Kebab", 10)
	c.AddItem(p)

	c.UpdateQuantity(p.ID.Hex(), 0)

	if len(c.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(c.Lines))
	}
	if c.ItemCount != 0 || c.Total != 0 {
		t.Errorf("itemCount=%d total=%v, want zeros", c.ItemCount, c.Total)
	}
	checkInvariants(t, c)
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	c := New()
	p := product("Kebab", 10)
	c.AddItem(p)

	c.UpdateQuantity(p.ID.Hex(), 5)

	if c.Lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", c.Lines[0].Quantity)
	}
	if c.Total != 50 {
		t.Errorf("total = %v, want 50", c.Total)
	}
	checkInvariants(t, c)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(product("Kebab", 10))

	c.UpdateQuantity(primitive.NewObjectID().Hex(), 3)

	if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
		t.Errorf("state changed by unknown-id update: %+v", c.Lines)
	}
	checkInvariants(t, c)
}

func TestRemoveItemUnknownIDIsNoOp(t *testing.T) {
	c := New()
	p := product("Kebab", 10)
	c.AddItem(p)

	c.RemoveItem("no-such-line")

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.ItemCount != 1 || c.Total != 10 {
		t.Errorf("totals changed: itemCount=%d total=%v", c.ItemCount, c.Total)
	}
	checkInvariants(t, c)
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(product("Kebab", 10))
	c.AddItem(product("Lemonade", 12))

	c.Clear()

	if len(c.Lines) != 0 || c.ItemCount != 0 || c.Total != 0 {
		t.Errorf("cart not cleared: %+v", c)
	}
	checkInvariants(t, c)
}

func TestInvariantsAcrossActionSequence(t *testing.T) {
	c := New()
	p1 := product("Kebab", 10)
	p2 := product("Lemonade", 12.5)
	p3 := product("Shish", 45)

	c.AddItem(p1)
	checkInvariants(t, c)
	c.AddItem(p2)
	checkInvariants(t, c)
	c.AddItem(p1)
	checkInvariants(t, c)
	c.UpdateQuantity(p2.ID.Hex(), 4)
	checkInvariants(t, c)
	c.AddItem(p3)
	checkInvariants(t, c)
	c.RemoveItem(p1.ID.Hex())
	checkInvariants(t, c)
	c.UpdateQuantity(p3.ID.Hex(), -1)
	checkInvariants(t, c)

	if c.ItemCount != 4 || c.Total != 50 {
		t.Errorf("itemCount=%d total=%v, want 4 and 50", c.ItemCount, c.Total)
	}
}

func TestStoreOneCartPerSession(t *testing.T) {
	s := NewStore()

	a := s.Get("session-a")
	b := s.Get("session-b")
	if a == b {
		t.Fatal("sessions share a cart")
	}

	a.AddItem(product("Kebab", 10))
	if got := s.Get("session-a"); got.ItemCount != 1 {
		t.Errorf("cart not kept between lookups: %+v", got)
	}
	if got := s.Get("session-b"); got.ItemCount != 0 {
		t.Errorf("cross-session leak: %+v", got)
	}

	s.Drop("session-a")
	if s.Len() != 1 {
		t.Errorf("Len = %d after drop, want 1", s.Len())
	}
}
