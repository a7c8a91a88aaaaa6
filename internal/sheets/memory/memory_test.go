package memory

import (
	"context"
	"errors"
	"testing"

	"opyta/internal/core"
	ports "opyta/internal/sheets"
)

func TestReadSnapshotReturnsCopies(t *testing.T) {
	store := NewSeeded()

	first, err := store.ReadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	first.Projects[0][core.ColProjectCode] = "mutated"

	second, err := store.ReadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if second.Projects[0][core.ColProjectCode] == "mutated" {
		t.Fatal("snapshot reads must not share row maps")
	}
}

func TestReplaceTaxTableOverwrites(t *testing.T) {
	store := New(core.RawTables{})
	ctx := context.Background()

	rows := []core.TaxRow{{ID: "a"}, {ID: "b"}}
	if err := store.ReplaceTaxTable(ctx, nil, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.ReplaceTaxTable(ctx, nil, []core.TaxRow{{ID: "c"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := store.TaxTable()
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("replace must overwrite, not append: %+v", got)
	}
}

func TestFaultInjection(t *testing.T) {
	store := NewSeeded()
	store.FailReads(ports.ErrNotConnected)

	if _, err := store.ReadSnapshot(context.Background()); !errors.Is(err, ports.ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}

	boom := errors.New("boom")
	store.FailWrites(boom)
	if err := store.ReplaceTaxTable(context.Background(), nil, nil); !errors.Is(err, boom) {
		t.Fatalf("expected injected write error, got %v", err)
	}
}
