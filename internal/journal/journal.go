// Package journal appends the economy events of a run to a zstd-compressed
// JSON Lines file, one file per run.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/spacy-trade/internal/core"
)

// Header is the first line of every journal.
type Header struct {
	RunID   string    `json:"run_id"`
	Variant string    `json:"variant"`
	Seed    int64     `json:"seed"`
	Started time.Time `json:"started"`
}

// Writer is a JSONL+zstd journal for one run. Safe for concurrent use.
type Writer struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// FileName returns the journal file name for a run.
func FileName(variant, runID string) string {
	return fmt.Sprintf("%s-%s.jsonl.zst", variant, runID)
}

// Create opens a new journal under dir and writes its header.
func Create(dir string, h Header) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: cannot create directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName(h.Variant, h.RunID))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot create %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("journal: cannot start encoder: %w", err)
	}

	w := &Writer{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 64*1024),
	}
	if err := w.writeLine(h); err != nil {
		_ = w.Close()
		return nil, err
	}
	return w, nil
}

// Path returns the journal file path.
func (w *Writer) Path() string {
	return w.path
}

// Write appends events. Events are buffered; Flush or Close persists them.
func (w *Writer) Write(events ...core.Event) error {
	for _, ev := range events {
		if err := w.writeLine(ev); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeLine(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("journal: cannot encode entry: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return errors.New("journal: writer closed")
	}
	if _, err := w.w.Write(b); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("journal: write: %w", err)
	}
	return nil
}

// Flush pushes buffered lines through the encoder to the file.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return nil
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("journal: flush: %w", err)
	}
	if err := w.enc.Flush(); err != nil {
		return fmt.Errorf("journal: flush: %w", err)
	}
	return nil
}

// Close flushes and closes the journal. Closing twice is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.w != nil {
		err = w.w.Flush()
		w.w = nil
	}
	if w.enc != nil {
		if cerr := w.enc.Close(); err == nil {
			err = cerr
		}
		w.enc = nil
	}
	if w.f != nil {
		if cerr := w.f.Close(); err == nil {
			err = cerr
		}
		w.f = nil
	}
	if err != nil {
		return fmt.Errorf("journal: close: %w", err)
	}
	return nil
}

// Read decodes a journal file into its header and events.
func Read(path string) (Header, []core.Event, error) {
	var h Header

	f, err := os.Open(path)
	if err != nil {
		return h, nil, fmt.Errorf("journal: open: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return h, nil, fmt.Errorf("journal: cannot start decoder: %w", err)
	}
	defer dec.Close()

	return decode(dec)
}

func decode(r io.Reader) (Header, []core.Event, error) {
	var h Header
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return h, nil, fmt.Errorf("journal: read: %w", err)
		}
		return h, nil, errors.New("journal: empty file")
	}
	if err := json.Unmarshal(sc.Bytes(), &h); err != nil {
		return h, nil, fmt.Errorf("journal: bad header: %w", err)
	}

	var events []core.Event
	for sc.Scan() {
		var ev core.Event
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			return h, events, fmt.Errorf("journal: bad line %d: %w", len(events)+2, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return h, events, fmt.Errorf("journal: read: %w", err)
	}
	return h, events, nil
}
