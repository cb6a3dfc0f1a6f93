package cart

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"trendify-storefront/internal/domain"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileStore(path)
	ctx := context.Background()

	lines := []domain.CartLine{
		{ProductID: "P1", Name: "Tee", Price: 19.99, Quantity: 2, SelectedVariant: "M"},
		{ProductID: "P2", Name: "Hoodie", Price: 49.5, Quantity: 1, SelectedVariant: domain.NoVariant},
	}
	if err := store.Save(ctx, lines); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, lines) {
		t.Fatalf("round trip diverged:\n%+v\n%+v", lines, got)
	}
}

func TestFileStoreMissingFileIsEmptyCart(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "cart.json"))

	lines, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines != nil {
		t.Fatalf("expected nil lines, got %+v", lines)
	}
}

func TestFileStoreCorruptFileReportsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewFileStore(path).Load(context.Background()); err == nil {
		t.Fatalf("expected decode error for corrupt store")
	}
}

func TestFileStoreSaveReplacesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := NewFileStore(path)
	ctx := context.Background()

	if err := store.Save(ctx, []domain.CartLine{{ProductID: "P1", Quantity: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}
