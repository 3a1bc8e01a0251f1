package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/trace"
)

type ExportData struct {
	Run   RunMetadata  `json:"run"`
	Trace *trace.Trace `json:"trace"`
}

func ExportJSON(w io.Writer, meta RunMetadata, t *trace.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Run: meta, Trace: t})
}

var csvFlags = []trace.Flag{trace.Comparing, trace.Swapping, trace.Pivot, trace.Sorted, trace.Found}

// ExportCSV writes one row per step: counters, description, the values
// space-separated, then for each flag the space-separated indices carrying it.
func ExportCSV(w io.Writer, t *trace.Trace) error {
	cw := csv.NewWriter(w)

	header := []string{"step", "comparisons", "swaps", "description", "values"}
	for _, f := range csvFlags {
		header = append(header, f.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, step := range t.Steps() {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(step.Comparisons),
			strconv.Itoa(step.Swaps),
			step.Description,
			joinInts(step.Values()),
		}
		for _, f := range csvFlags {
			row = append(row, joinInts(step.Flagged(f)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
