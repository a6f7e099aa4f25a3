package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-hrv/hrv"
	"github.com/cwbudde/algo-hrv/rr"
)

// Header returns the canonical matrix column order: row identifiers,
// the 11 feature columns, demographics, label.
func Header() []string {
	cols := make([]string, 0, 16)
	cols = append(cols, "subject", "window")
	cols = append(cols, hrv.FeatureNames()...)

	return append(cols, "age", "gender_enc", "label")
}

// ReadRR parses a one-column RR CSV in milliseconds. A non-numeric
// first line is treated as a header and skipped; columns beyond the
// first and blank lines are ignored.
func ReadRR(r io.Reader) (rr.Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read rr: %w", err)
	}

	out := make(rr.Series, 0, len(records))

	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}

		field := strings.TrimSpace(rec[0])
		if field == "" {
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			if i == 0 {
				continue
			}

			return nil, fmt.Errorf("dataset: rr line %d: %w", i+1, err)
		}

		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, ErrNoSamples
	}

	return out, nil
}

// ReadRRFile reads a one-column RR CSV from disk.
func ReadRRFile(path string) (rr.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return ReadRR(f)
}

// WriteMatrix writes rows in the canonical column order. Floats are
// formatted in the shortest form that survives a round trip.
func WriteMatrix(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}

	record := make([]string, 0, 16)

	for _, r := range rows {
		record = record[:0]
		record = append(record, r.Subject, strconv.Itoa(r.Window))

		for _, v := range r.Features.Values() {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}

		record = append(record,
			strconv.Itoa(r.Age),
			strconv.Itoa(r.GenderEnc),
			strconv.Itoa(r.Label))

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("dataset: write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteMatrixFile writes rows to path, creating or truncating it.
func WriteMatrixFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	if err := WriteMatrix(f, rows); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadMatrix parses a matrix written by WriteMatrix. The header is
// checked against the canonical column order. SpectralOK is not part
// of the schema and is false on all returned rows.
func ReadMatrix(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read matrix: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: missing matrix header")
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)

	for i, rec := range records[1:] {
		row, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("dataset: row %d: %w", i+1, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// ReadMatrixFile reads a matrix CSV from disk.
func ReadMatrixFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return ReadMatrix(f)
}

func checkHeader(got []string) error {
	want := Header()
	if len(got) != len(want) {
		return fmt.Errorf("dataset: header has %d columns, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("dataset: header column %d is %q, want %q", i, got[i], want[i])
		}
	}

	return nil
}

func parseRow(rec []string) (Row, error) {
	want := len(Header())
	if len(rec) != want {
		return Row{}, fmt.Errorf("has %d columns, want %d", len(rec), want)
	}

	window, err := strconv.Atoi(rec[1])
	if err != nil {
		return Row{}, fmt.Errorf("window: %w", err)
	}

	names := hrv.FeatureNames()
	vals := make([]float64, len(names))

	for i := range names {
		v, err := strconv.ParseFloat(rec[2+i], 64)
		if err != nil {
			return Row{}, fmt.Errorf("%s: %w", names[i], err)
		}

		vals[i] = v
	}

	features, err := hrv.FeaturesFromValues(vals)
	if err != nil {
		return Row{}, err
	}

	age, err := strconv.Atoi(rec[2+len(names)])
	if err != nil {
		return Row{}, fmt.Errorf("age: %w", err)
	}

	genderEnc, err := strconv.Atoi(rec[3+len(names)])
	if err != nil {
		return Row{}, fmt.Errorf("gender_enc: %w", err)
	}

	lbl, err := strconv.Atoi(rec[4+len(names)])
	if err != nil {
		return Row{}, fmt.Errorf("label: %w", err)
	}

	return Row{
		Subject:   rec[0],
		Window:    window,
		Features:  features,
		Age:       age,
		GenderEnc: genderEnc,
		Label:     lbl,
	}, nil
}
