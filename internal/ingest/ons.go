package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// Known names of the load column across operator CSV vintages. The operator
// has renamed (and misspelled) it several times.
var loadColumnCandidates = []string{
	"val_cargaenergiamw",
	"val_cargaenergiamediamw",
	"val_cargaeneergiamwmed",
	"val_cargaenergiammwmed",
	"val_cargaenergiamwmed",
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

// FindLoadColumn picks the load column from a normalized header, preferring
// exact known names and falling back to any "val_carga" prefix.
func FindLoadColumn(columns []string) (int, bool) {
	for _, name := range loadColumnCandidates {
		for i, col := range columns {
			if col == name {
				return i, true
			}
		}
	}
	for i, col := range columns {
		if strings.HasPrefix(col, "val_carga") {
			return i, true
		}
	}
	return 0, false
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, col := range header {
		out[i] = strings.ToLower(strings.TrimSpace(col))
	}
	return out
}

func columnIndex(columns []string, names ...string) (int, bool) {
	for _, name := range names {
		for i, col := range columns {
			if col == name {
				return i, true
			}
		}
	}
	return 0, false
}

// ParseTimestamp parses the timestamp formats seen across the source CSVs.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// parseDecimal handles comma-decimal values ("1234,5") alongside plain ones.
func parseDecimal(value string) (float64, error) {
	value = strings.TrimSpace(strings.ReplaceAll(value, ",", "."))
	return strconv.ParseFloat(value, 64)
}

// ParseLoadCSV reads an operator load CSV (semicolon-separated, comma
// decimals) into load samples, de-duplicated on (time, region). Malformed
// rows are skipped and collected into the returned error; the good rows are
// returned regardless, so a non-nil error with non-empty samples means a
// partially dirty file, not a failed parse.
func ParseLoadCSV(r io.Reader) ([]models.LoadSample, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read load CSV header: %w", err)
	}
	columns := normalizeHeader(header)

	timeIdx, ok := columnIndex(columns, "din_instante", "time")
	if !ok {
		return nil, fmt.Errorf("load CSV has no timestamp column: %v", columns)
	}
	regionIdx, ok := columnIndex(columns, "nom_subsistema", "subsistema")
	if !ok {
		return nil, fmt.Errorf("load CSV has no subsystem column: %v", columns)
	}
	loadIdx, ok := FindLoadColumn(columns)
	if !ok {
		return nil, fmt.Errorf("load CSV has no load column: %v", columns)
	}

	var rowErrs *multierror.Error
	seen := make(map[string]bool)
	var samples []models.LoadSample

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if loadIdx >= len(record) || timeIdx >= len(record) || regionIdx >= len(record) {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: short record", line))
			continue
		}

		ts, err := ParseTimestamp(record[timeIdx])
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		loadMW, err := parseDecimal(record[loadIdx])
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: bad load value: %w", line, err))
			continue
		}

		region := strings.TrimSpace(record[regionIdx])
		key := ts.Format(time.RFC3339) + "|" + region
		if seen[key] {
			continue
		}
		seen[key] = true

		samples = append(samples, models.LoadSample{
			Timestamp: ts,
			Region:    region,
			LoadMW:    loadMW,
		})
	}

	return samples, rowErrs.ErrorOrNil()
}
