package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// ParseWeatherCSV reads hourly weather rows: time;subsystem;irradiance_wm2
// with an optional temperature_c column. Bad rows are skipped and collected
// into the returned error.
func ParseWeatherCSV(r io.Reader) ([]models.IrradianceSample, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read weather CSV header: %w", err)
	}
	columns := normalizeHeader(header)

	timeIdx, ok := columnIndex(columns, "time")
	if !ok {
		return nil, fmt.Errorf("weather CSV has no time column: %v", columns)
	}
	regionIdx, ok := columnIndex(columns, "subsistema", "subsystem")
	if !ok {
		return nil, fmt.Errorf("weather CSV has no subsystem column: %v", columns)
	}
	irrIdx, ok := columnIndex(columns, "irradiancia_wm2", "irradiance_wm2")
	if !ok {
		return nil, fmt.Errorf("weather CSV has no irradiance column: %v", columns)
	}
	tempIdx, hasTemp := columnIndex(columns, "temperatura_c", "temperature_c")

	var rowErrs *multierror.Error
	var samples []models.IrradianceSample

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if irrIdx >= len(record) || timeIdx >= len(record) || regionIdx >= len(record) {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: short record", line))
			continue
		}

		ts, err := ParseTimestamp(record[timeIdx])
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		irr, err := parseDecimal(record[irrIdx])
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: bad irradiance value: %w", line, err))
			continue
		}

		sample := models.IrradianceSample{
			Timestamp:     ts,
			Region:        strings.TrimSpace(record[regionIdx]),
			IrradianceWM2: irr,
		}
		if hasTemp && tempIdx < len(record) && strings.TrimSpace(record[tempIdx]) != "" {
			if temp, err := parseDecimal(record[tempIdx]); err == nil {
				sample.TemperatureC = &temp
			}
		}

		samples = append(samples, sample)
	}

	return samples, rowErrs.ErrorOrNil()
}
