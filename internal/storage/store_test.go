package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/trace"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	st := New(dir).WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	clock := time.Date(2024, 8, 12, 17, 48, 0, 0, time.UTC)
	st.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return st, dir
}

func mustTrace(t *testing.T, id algorithms.ID, values []int, target *int) *trace.Trace {
	t.Helper()
	tr, err := algorithms.Run(id, values, target)
	if err != nil {
		t.Fatalf("run %s: %v", id, err)
	}
	return tr
}

func TestStoreSaveLoad(t *testing.T) {
	st, _ := newTestStore(t)
	input := []int{64, 34, 25, 12, 22}
	tr := mustTrace(t, algorithms.Bubble, input, nil)

	runID, err := st.Save(tr, input, 42)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Algorithm != "bubble" {
		t.Errorf("expected algorithm 'bubble', got '%s'", meta.Algorithm)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Steps != 20 || meta.Comparisons != 10 || meta.Swaps != 9 {
		t.Errorf("unexpected counters: steps=%d comparisons=%d swaps=%d", meta.Steps, meta.Comparisons, meta.Swaps)
	}
	if meta.Target != nil {
		t.Error("sorting run should have no target")
	}
	if meta.TraceBytes <= 0 {
		t.Error("expected a non-empty compressed trace")
	}

	loaded, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if loaded.Len() != tr.Len() {
		t.Fatalf("expected %d steps, got %d", tr.Len(), loaded.Len())
	}
	for i := 0; i < tr.Len(); i++ {
		want, got := tr.At(i), loaded.At(i)
		if want.Description != got.Description || want.Comparisons != got.Comparisons {
			t.Fatalf("step %d differs: %+v vs %+v", i, want, got)
		}
		for k := range want.Elements {
			if want.Elements[k] != got.Elements[k] {
				t.Fatalf("step %d element %d differs", i, k)
			}
		}
	}
}

func TestStoreSave_SearchTarget(t *testing.T) {
	st, _ := newTestStore(t)
	target := 8
	tr := mustTrace(t, algorithms.Linear, []int{5, 3, 8, 1}, &target)

	runID, err := st.Save(tr, []int{5, 3, 8, 1}, 0)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	meta, _ := st.Load(runID)
	if meta.Target == nil || *meta.Target != 8 {
		t.Errorf("expected target 8, got %v", meta.Target)
	}

	loaded, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if v, ok := loaded.Target(); !ok || v != 8 {
		t.Errorf("expected trace target 8, got %d (%v)", v, ok)
	}
}

func TestStoreList(t *testing.T) {
	st, _ := newTestStore(t)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	first, err := st.Save(mustTrace(t, algorithms.Quick, []int{3, 1, 2}, nil), []int{3, 1, 2}, 1)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, err := st.Save(mustTrace(t, algorithms.Merge, []int{3, 1, 2}, nil), []int{3, 1, 2}, 1)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("expected newest first, got %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreSave_SameSecond(t *testing.T) {
	st, _ := newTestStore(t)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return fixed }

	tr := mustTrace(t, algorithms.Bubble, []int{2, 1}, nil)
	a, err := st.Save(tr, []int{2, 1}, 0)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	b, err := st.Save(tr, []int{2, 1}, 0)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if a == b {
		t.Errorf("expected distinct run ids, got %s twice", a)
	}
}

func TestStoreFileStructure(t *testing.T) {
	st, dir := newTestStore(t)

	runID, err := st.Save(mustTrace(t, algorithms.Bubble, []int{2, 1}, nil), []int{2, 1}, 42)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(dir, runID)
	if _, err := os.Stat(filepath.Join(runDir, metadataFile)); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, traceFile)); os.IsNotExist(err) {
		t.Error("trace.json.lz4 not created")
	}
}

func TestStoreSave_FailedWriteLeavesNoRun(t *testing.T) {
	st, dir := newTestStore(t)
	diskFull := errors.New("disk full")
	st.writeTrace = func(path string, tr *trace.Trace) (int64, error) {
		if err := os.WriteFile(path, []byte("partial"), 0644); err != nil {
			return 0, err
		}
		return 0, diskFull
	}

	_, err := st.Save(mustTrace(t, algorithms.Bubble, []int{3, 1, 2}, nil), []int{3, 1, 2}, 1)
	if !errors.Is(err, diskFull) {
		t.Fatalf("expected disk full error, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no run directories, found %d", len(entries))
	}

	st.writeTrace = writeTrace
	runID, err := st.Save(mustTrace(t, algorithms.Bubble, []int{3, 1, 2}, nil), []int{3, 1, 2}, 1)
	if err != nil {
		t.Fatalf("save after failure: %v", err)
	}
	runs, _ := st.List()
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("expected only %s, got %v", runID, runs)
	}
}

func TestStoreLoad_NotFound(t *testing.T) {
	st, _ := newTestStore(t)
	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadTrace("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	tr := mustTrace(t, algorithms.Bubble, []int{2, 1}, nil)
	meta := RunMetadata{ID: "bubble_1", Algorithm: "bubble", Steps: tr.Len()}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, tr); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var decoded struct {
		Run   RunMetadata `json:"run"`
		Trace trace.Trace `json:"trace"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Run.ID != "bubble_1" {
		t.Errorf("expected run id bubble_1, got %s", decoded.Run.ID)
	}
	if decoded.Trace.Len() != tr.Len() {
		t.Errorf("expected %d steps, got %d", tr.Len(), decoded.Trace.Len())
	}
}

func TestExportCSV(t *testing.T) {
	tr := mustTrace(t, algorithms.Bubble, []int{2, 1}, nil)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, tr); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv parse failed: %v", err)
	}
	if len(records) != tr.Len()+1 {
		t.Fatalf("expected %d rows, got %d", tr.Len()+1, len(records))
	}
	if records[0][0] != "step" || records[0][5] != "comparing" {
		t.Errorf("unexpected header %v", records[0])
	}

	// comparing 0,1 ; swapped 0,1 ; all sorted
	if records[1][4] != "2 1" || records[1][5] != "0 1" {
		t.Errorf("unexpected first row %v", records[1])
	}
	last := records[len(records)-1]
	if last[4] != "1 2" || last[8] != "0 1" {
		t.Errorf("unexpected last row %v", last)
	}
}
