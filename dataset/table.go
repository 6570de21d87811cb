package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// table is a CSV reader with named column access.
type table struct {
	r       *csv.Reader
	columns map[string]int
	line    int
}

// openTable sniffs the delimiter from the header line and checks that all
// required columns are present.
func openTable(r io.Reader, required ...string) (*table, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	head, err := br.Peek(4096)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	first := string(head)
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffDelimiter(first)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = cr.Comma != '\t'

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	t := &table{r: cr, columns: make(map[string]int, len(header)), line: 1}
	for i, name := range header {
		t.columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range required {
		if _, ok := t.columns[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return t, nil
}

// sniffDelimiter picks the most frequent of ',', ';' and '\t' in line.
func sniffDelimiter(line string) rune {
	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// next returns the following record, or io.EOF.
func (t *table) next() ([]string, error) {
	rec, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("dataset: line %d: %w", t.line+1, err)
	}
	t.line++
	return rec, nil
}

// get returns the trimmed cell of column name, or "" if the row is short.
func (t *table) get(rec []string, name string) string {
	i, ok := t.columns[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// float parses column name; empty cells report ok == false.
func (t *table) float(rec []string, name string) (v float64, ok bool, err error) {
	s := t.get(rec, name)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: line %d column %q: %q", ErrBadValue, t.line, name, s)
	}
	return v, true, nil
}
