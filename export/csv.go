package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// SummaryHeader is the header row of the summary CSV.
var SummaryHeader = []string{
	"Total cost of network in €",
	"Total annual flow of network in GWh",
	"Cost per flow in investment period in ct/kWh",
}

// WriteSummaryCSV writes the header and one summary row.
func WriteSummaryCSV(w io.Writer, s Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return err
	}
	row := []string{
		strconv.FormatFloat(s.TotalCostEUR, 'f', -1, 64),
		strconv.FormatFloat(s.TotalFlowGWh, 'f', -1, 64),
		strconv.FormatFloat(s.CostPerFlowCtKWh, 'f', -1, 64),
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteFiles writes <prefix>.geojson and <prefix>.csv, creating the
// parent directory if needed.
func WriteFiles(prefix string, lines []Line, s Summary) error {
	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	if err := writeFile(prefix+".geojson", func(w io.Writer) error { return WriteGeoJSON(w, lines) }); err != nil {
		return err
	}
	return writeFile(prefix+".csv", func(w io.Writer) error { return WriteSummaryCSV(w, s) })
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: close %s: %w", path, cerr)
		}
	}()
	if err = write(f); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
