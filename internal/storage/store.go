// Package storage persists finished runs under a base directory, one
// directory per run holding metadata.json and the lz4-compressed trace.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pierrec/lz4/v4"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/stats"
	"github.com/san-kum/algoviz/internal/trace"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.json.lz4"
)

// ErrRunNotFound is returned when a run id has no directory in the store.
var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir    string
	logger     *slog.Logger
	now        func() time.Time
	writeTrace func(path string, t *trace.Trace) (int64, error)
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, logger: slog.Default(), now: time.Now, writeTrace: writeTrace}
}

func (s *Store) WithLogger(logger *slog.Logger) *Store {
	s.logger = logger
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Name        string    `json:"name"`
	Complexity  string    `json:"complexity"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	Input       []int     `json:"input"`
	Target      *int      `json:"target,omitempty"`
	Steps       int       `json:"steps"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
	Message     string    `json:"message"`
	TraceBytes  int64     `json:"trace_bytes"`
}

// Save writes t and its metadata under a fresh run id. input is the array
// the run started from.
func (s *Store) Save(t *trace.Trace, input []int, seed int64) (string, error) {
	info, ok := algorithms.Lookup(algorithms.ID(t.Algorithm()))
	if !ok {
		return "", trace.Invalid(fmt.Sprintf("unknown algorithm %q", t.Algorithm()))
	}
	if err := s.Init(); err != nil {
		return "", err
	}

	now := s.now()
	runID, runDir, err := s.makeRunDir(fmt.Sprintf("%s_%d", info.ID, now.Unix()))
	if err != nil {
		return "", err
	}

	if err := s.writeRun(runID, runDir, t, info, now, input, seed); err != nil {
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			s.logger.Warn("remove incomplete run", "id", runID, "err", rmErr)
		}
		return "", err
	}
	return runID, nil
}

// writeRun fills runDir with the compressed trace and its metadata.
func (s *Store) writeRun(runID, runDir string, t *trace.Trace, info algorithms.Info, now time.Time, input []int, seed int64) error {
	size, err := s.writeTrace(filepath.Join(runDir, traceFile), t)
	if err != nil {
		return fmt.Errorf("write trace: %w", err)
	}

	final := stats.Final(t, info)
	meta := RunMetadata{
		ID:          runID,
		Algorithm:   string(info.ID),
		Name:        info.Name,
		Complexity:  info.Complexity,
		Timestamp:   now,
		Seed:        seed,
		Input:       append([]int{}, input...),
		Steps:       t.Len(),
		Comparisons: final.Comparisons,
		Swaps:       final.Swaps,
		Message:     t.Last().Description,
		TraceBytes:  size,
	}
	if v, ok := t.Target(); ok {
		meta.Target = &v
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(runDir, metadataFile), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}

	s.logger.Info("run saved", "id", runID, "algorithm", info.ID, "steps", t.Len(), "bytes", size)
	return nil
}

// makeRunDir creates base, or base_1, base_2... when runs share a second.
func (s *Store) makeRunDir(base string) (string, string, error) {
	id := base
	for i := 1; ; i++ {
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
}

func writeTrace(path string, t *trace.Trace) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	zw := lz4.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(t); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}

	st, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return st.Size(), nil
}

// List returns every readable run, newest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Debug("skipping run directory", "dir", entry.Name(), "err", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID > runs[j].ID
		}
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode metadata %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadTrace(runID string) (*trace.Trace, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decompress trace %s: %w", runID, err)
	}

	var t trace.Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode trace %s: %w", runID, err)
	}
	return &t, nil
}
