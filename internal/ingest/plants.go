package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// ParsePlantsCSV reads the regulator's generation-plant registry CSV
// (semicolon separated, pt-BR decimals). Rows missing coordinates or
// capacity are skipped silently, matching the registry's sparse geodata;
// structurally bad rows are collected into the returned error.
func ParsePlantsCSV(r io.Reader) ([]models.Plant, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read plant CSV header: %w", err)
	}
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	nameIdx, ok := columnIndex(columns, "NomEmpreendimento")
	if !ok {
		return nil, fmt.Errorf("plant CSV has no NomEmpreendimento column")
	}
	sourceIdx, ok := columnIndex(columns, "SigTipoGeracao")
	if !ok {
		return nil, fmt.Errorf("plant CSV has no SigTipoGeracao column")
	}
	kwIdx, ok := columnIndex(columns, "MdaPotenciaOutorgadaKw")
	if !ok {
		return nil, fmt.Errorf("plant CSV has no MdaPotenciaOutorgadaKw column")
	}
	latIdx, ok := columnIndex(columns, "NumCoordNEmpreendimento")
	if !ok {
		return nil, fmt.Errorf("plant CSV has no NumCoordNEmpreendimento column")
	}
	lonIdx, ok := columnIndex(columns, "NumCoordEEmpreendimento")
	if !ok {
		return nil, fmt.Errorf("plant CSV has no NumCoordEEmpreendimento column")
	}

	var rowErrs *multierror.Error
	var plants []models.Plant

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if lonIdx >= len(record) || latIdx >= len(record) || kwIdx >= len(record) {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: short record", line))
			continue
		}

		if strings.TrimSpace(record[latIdx]) == "" || strings.TrimSpace(record[lonIdx]) == "" {
			continue
		}

		kw, err := parseDecimal(record[kwIdx])
		if err != nil {
			continue
		}
		lat, err := parseDecimal(record[latIdx])
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: bad latitude: %w", line, err))
			continue
		}
		lon, err := parseDecimal(record[lonIdx])
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: bad longitude: %w", line, err))
			continue
		}

		plants = append(plants, models.Plant{
			Name:       strings.TrimSpace(record[nameIdx]),
			Source:     strings.TrimSpace(record[sourceIdx]),
			CapacityKW: kw,
			Latitude:   lat,
			Longitude:  lon,
		})
	}

	return plants, rowErrs.ErrorOrNil()
}
