package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

func testHeader() Header {
	return Header{
		RunID:   "3f1c",
		Variant: "spacytrade",
		Seed:    42,
		Started: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	w, err := Create(dir, testHeader())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if want := filepath.Join(dir, "spacytrade-3f1c.jsonl.zst"); w.Path() != want {
		t.Errorf("Path() = %q, expected %q", w.Path(), want)
	}

	events := []core.Event{
		{Tick: 3, Kind: "harvest", Fields: map[string]any{"kind": "gold", "hold": 1}},
		{Tick: 90, Kind: "sell", Fields: map[string]any{"kind": "gold", "price": 4200}},
		{Tick: 900, Kind: "upkeep"},
	}
	if err := w.Write(events[:2]...); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Write(events[2]); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	h, got, err := Read(w.Path())
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if h.RunID != "3f1c" || h.Seed != 42 || !h.Started.Equal(testHeader().Started) {
		t.Errorf("header = %+v", h)
	}
	if len(got) != len(events) {
		t.Fatalf("read %d events, expected %d", len(got), len(events))
	}
	for i := range events {
		if got[i].Tick != events[i].Tick || got[i].Kind != events[i].Kind {
			t.Errorf("event %d = %+v, expected %+v", i, got[i], events[i])
		}
	}
	// JSON numbers come back as float64
	if got[1].Fields["price"] != float64(4200) {
		t.Errorf("price field = %v", got[1].Fields["price"])
	}
}

func TestFileIsCompressed(t *testing.T) {
	w, err := Create(t.TempDir(), testHeader())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	for i := 0; i < 500; i++ {
		w.Write(core.Event{Tick: int64(i), Kind: "market_tick", Fields: map[string]any{"gold": 4200}})
	}
	w.Close()

	raw, err := os.ReadFile(w.Path())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	// zstd frame magic
	if len(raw) < 4 || raw[0] != 0x28 || raw[1] != 0xB5 || raw[2] != 0x2F || raw[3] != 0xFD {
		t.Fatalf("file does not start with a zstd frame: % x", raw[:4])
	}
	if len(raw) > 500*20 {
		t.Errorf("journal of %d bytes looks uncompressed", len(raw))
	}
}

func TestCreateRefusesExisting(t *testing.T) {
	dir := t.TempDir()
	w, err := Create(dir, testHeader())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	w.Close()

	if _, err := Create(dir, testHeader()); err == nil {
		t.Error("Create() should not overwrite an existing run journal")
	}
}

func TestWriteAfterClose(t *testing.T) {
	w, err := Create(t.TempDir(), testHeader())
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v, expected nil", err)
	}
	if err := w.Write(core.Event{Kind: "sell"}); err == nil {
		t.Error("Write() after Close() should fail")
	}
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Read(filepath.Join(dir, "missing.jsonl.zst")); err == nil {
		t.Error("Read() of a missing file should fail")
	}

	plain := filepath.Join(dir, "plain.jsonl.zst")
	os.WriteFile(plain, []byte("{\"run_id\":\"x\"}\n"), 0o644)
	if _, _, err := Read(plain); err == nil {
		t.Error("Read() of an uncompressed file should fail")
	}
}
