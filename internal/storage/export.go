package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/twinpal/internal/twin"
)

// ExportData is a self-contained JSON view of a run.
type ExportData struct {
	Run         RunMetadata    `json:"run"`
	Proportions []ExportLength `json:"proportions"`
	Middles     []ExportMiddle `json:"middles"`
}

type ExportLength struct {
	Length   int     `json:"length"`
	Fraction float64 `json:"fraction"`
}

type ExportMiddle struct {
	Bits  string `json:"bits"`
	Value string `json:"value"`
}

// Export gathers a stored run for ExportJSON and ExportCSV.
func (s *Store) Export(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	p, err := s.LoadProportions(runID)
	if err != nil {
		return nil, err
	}
	// An aborted run has no primes file yet.
	var middles []twin.Middle
	if meta.Complete {
		if middles, err = s.LoadMiddles(runID); err != nil {
			return nil, err
		}
	}

	data := &ExportData{
		Run:         *meta,
		Proportions: make([]ExportLength, 0, len(p)),
		Middles:     make([]ExportMiddle, len(middles)),
	}
	for _, n := range p.Lengths() {
		data.Proportions = append(data.Proportions, ExportLength{Length: n, Fraction: p[n]})
	}
	for i, m := range middles {
		data.Middles[i] = ExportMiddle{Bits: m.Bits, Value: m.Value.String()}
	}
	return data, nil
}

func ExportJSON(w io.Writer, data *ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes one row per middle, in stored order.
func ExportCSV(w io.Writer, data *ExportData) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"index", "length", "bits", "value"}); err != nil {
		return err
	}
	for i, m := range data.Middles {
		row := []string{strconv.Itoa(i), strconv.Itoa(len(m.Bits)), m.Bits, m.Value}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
