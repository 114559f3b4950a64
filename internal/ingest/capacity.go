package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/suellenlima/energy-netload-monitor/internal/models"
)

// SolarSourceLabel is the source recorded for aggregated DG capacity rows.
const SolarSourceLabel = "Solar Radiation"

// NormalizeKW converts the registry's pt-BR numeric format ("1.234,56") to
// a float64 kW value.
func NormalizeKW(value string) (float64, error) {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, ".", "")
	value = strings.ReplaceAll(value, ",", ".")
	return strconv.ParseFloat(value, 64)
}

type capacityKey struct {
	utility string
	class   string
	state   string
}

// ParseCapacityCSV reads the regulator's DG registry CSV (semicolon
// separated, pt-BR decimals), keeps only solar-source rows, and aggregates
// installed kW by (utility, class, state). Output is in MW, ordered by
// capacity descending for deterministic loads. Bad rows are skipped and
// collected into the returned error.
func ParseCapacityCSV(r io.Reader) ([]models.CapacityRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read capacity CSV header: %w", err)
	}
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	utilityIdx, ok := columnIndex(columns, "NomAgente")
	if !ok {
		return nil, fmt.Errorf("capacity CSV has no NomAgente column")
	}
	classIdx, ok := columnIndex(columns, "DscClasseConsumo")
	if !ok {
		return nil, fmt.Errorf("capacity CSV has no DscClasseConsumo column")
	}
	stateIdx, ok := columnIndex(columns, "SigUF")
	if !ok {
		return nil, fmt.Errorf("capacity CSV has no SigUF column")
	}
	sourceIdx, ok := columnIndex(columns, "DscFonteGeracao")
	if !ok {
		return nil, fmt.Errorf("capacity CSV has no DscFonteGeracao column")
	}
	kwIdx, ok := columnIndex(columns, "MdaPotenciaInstaladaKW")
	if !ok {
		return nil, fmt.Errorf("capacity CSV has no MdaPotenciaInstaladaKW column")
	}

	var rowErrs *multierror.Error
	aggregated := make(map[capacityKey]float64)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		maxIdx := kwIdx
		for _, idx := range []int{sourceIdx, utilityIdx, classIdx, stateIdx} {
			if idx > maxIdx {
				maxIdx = idx
			}
		}
		if maxIdx >= len(record) {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: short record", line))
			continue
		}

		if !strings.Contains(strings.ToLower(record[sourceIdx]), "solar") {
			continue
		}

		kw, err := NormalizeKW(record[kwIdx])
		if err != nil {
			rowErrs = multierror.Append(rowErrs, fmt.Errorf("line %d: bad kW value: %w", line, err))
			continue
		}

		key := capacityKey{
			utility: strings.ToUpper(strings.TrimSpace(record[utilityIdx])),
			class:   strings.ToUpper(strings.TrimSpace(record[classIdx])),
			state:   strings.ToUpper(strings.TrimSpace(record[stateIdx])),
		}
		aggregated[key] += kw
	}

	records := make([]models.CapacityRecord, 0, len(aggregated))
	for key, kw := range aggregated {
		records = append(records, models.CapacityRecord{
			Utility:    key.utility,
			Class:      key.class,
			StateCode:  key.state,
			Source:     SolarSourceLabel,
			CapacityMW: kw / 1000,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CapacityMW > records[j].CapacityMW
	})

	return records, rowErrs.ErrorOrNil()
}
