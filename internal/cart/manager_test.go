package cart

import (
	"context"
	"reflect"
	"testing"

	"trendify-storefront/internal/domain"
)

var (
	tee    = domain.Product{ID: "P1", Name: "Tee", Price: 500, Sizes: []string{"M", "L"}}
	hoodie = domain.Product{ID: "P2", Name: "Hoodie", Price: 5.49}
)

func TestAddItemMergesSameVariant(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)

	for i := 0; i < 5; i++ {
		m.AddItem(tee, "M")
	}

	lines := m.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}
	if m.LineCount() != 1 {
		t.Fatalf("line count tracks distinct lines, got %d", m.LineCount())
	}
}

func TestAddItemKeepsVariantsDistinct(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)

	m.AddItem(tee, "M")
	m.AddItem(tee, "L")

	if m.LineCount() != 2 {
		t.Fatalf("expected 2 lines, got %d", m.LineCount())
	}
}

func TestAddItemWithoutVariantUsesSentinel(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)

	m.AddItem(hoodie, "")

	lines := m.Lines()
	if len(lines) != 1 || lines[0].SelectedVariant != domain.NoVariant {
		t.Fatalf("expected sentinel variant, got %+v", lines)
	}

	// The sentinel and the empty variant address the same line.
	m.SetQuantity(hoodie.ID, "", 0)
	if m.LineCount() != 0 {
		t.Fatalf("expected empty cart, got %d lines", m.LineCount())
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	viaSet := NewManager(NewMemoryStore(), nil)
	viaRemove := NewManager(NewMemoryStore(), nil)

	for _, m := range []*Manager{viaSet, viaRemove} {
		m.AddItem(tee, "M")
		m.AddItem(tee, "L")
	}

	viaSet.SetQuantity("P1", "M", 0)
	viaRemove.RemoveItem("P1", "M")

	if !reflect.DeepEqual(viaSet.Lines(), viaRemove.Lines()) {
		t.Fatalf("setQuantity(0) and removeItem diverged: %+v vs %+v", viaSet.Lines(), viaRemove.Lines())
	}
	if viaSet.LineCount() != 1 || viaSet.Lines()[0].SelectedVariant != "L" {
		t.Fatalf("unexpected remaining lines: %+v", viaSet.Lines())
	}
}

func TestSetQuantityLeavesOtherLinesUntouched(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)
	m.AddItem(tee, "M")
	m.AddItem(tee, "L")

	m.SetQuantity("P1", "M", 7)

	lines := m.Lines()
	if lines[0].Quantity != 7 || lines[1].Quantity != 1 {
		t.Fatalf("unexpected quantities: %+v", lines)
	}
}

func TestCheckoutScenario(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)

	m.AddItem(tee, "M")
	if m.Total() != 500 || m.LineCount() != 1 {
		t.Fatalf("after first add: total=%v count=%d", m.Total(), m.LineCount())
	}

	m.AddItem(tee, "M")
	if m.Total() != 1000 || m.LineCount() != 1 {
		t.Fatalf("after second add: total=%v count=%d", m.Total(), m.LineCount())
	}
	if m.Lines()[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", m.Lines()[0].Quantity)
	}

	m.SetQuantity("P1", "M", 0)
	if m.LineCount() != 0 || m.Total() != 0 {
		t.Fatalf("after removal: total=%v count=%d", m.Total(), m.LineCount())
	}
}

func TestAddThenRemoveRestoresTotalExactly(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)
	m.AddItem(domain.Product{ID: "P3", Name: "Socks", Price: 19.99}, "M")
	m.AddItem(domain.Product{ID: "P3", Name: "Socks", Price: 19.99}, "M")
	before := m.Total()

	m.AddItem(hoodie, "M")
	m.RemoveItem(hoodie.ID, "M")

	if after := m.Total(); after != before {
		t.Fatalf("total drifted: before=%v after=%v", before, after)
	}
}

func TestEveryMutationPersists(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store, nil)

	m.AddItem(tee, "M")
	stored, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 || stored[0].Quantity != 1 {
		t.Fatalf("add not persisted: %+v", stored)
	}

	m.SetQuantity("P1", "M", 3)
	stored, _ = store.Load(context.Background())
	if len(stored) != 1 || stored[0].Quantity != 3 {
		t.Fatalf("quantity change not persisted: %+v", stored)
	}

	m.Clear()
	stored, _ = store.Load(context.Background())
	if len(stored) != 0 {
		t.Fatalf("clear not persisted: %+v", stored)
	}
}

func TestReloadRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	first := NewManager(store, nil)
	first.AddItem(tee, "M")
	first.AddItem(tee, "L")
	first.AddItem(hoodie, "")
	first.SetQuantity("P1", "M", 4)

	second := NewManager(store, nil)
	if !reflect.DeepEqual(first.Lines(), second.Lines()) {
		t.Fatalf("reload diverged:\n%+v\n%+v", first.Lines(), second.Lines())
	}
	if second.Total() != first.Total() {
		t.Fatalf("total diverged: %v vs %v", first.Total(), second.Total())
	}
}

func TestSubscribersSeeEveryMutation(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)

	var seen [][]domain.CartLine
	unsubscribe := m.Subscribe(func(lines []domain.CartLine) {
		seen = append(seen, lines)
	})

	m.AddItem(tee, "M")
	m.AddItem(tee, "M")
	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if seen[1][0].Quantity != 2 {
		t.Fatalf("notification carries stale state: %+v", seen[1])
	}

	unsubscribe()
	m.Clear()
	if len(seen) != 2 {
		t.Fatalf("unsubscribed observer still notified")
	}
}

type failingStore struct{}

func (failingStore) Load(context.Context) ([]domain.CartLine, error) {
	return nil, context.DeadlineExceeded
}

func (failingStore) Save(context.Context, []domain.CartLine) error {
	return context.DeadlineExceeded
}

func TestStoreFailuresNeverSurface(t *testing.T) {
	m := NewManager(failingStore{}, nil)

	if m.LineCount() != 0 {
		t.Fatalf("unreadable store must yield an empty cart")
	}

	// Mutations still succeed in memory when persistence is broken.
	m.AddItem(tee, "M")
	if m.LineCount() != 1 {
		t.Fatalf("mutation lost on store failure")
	}
}
