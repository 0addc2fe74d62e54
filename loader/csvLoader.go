package loader

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"titkee.com/techradar/model"
)

// Undefined is stored for any field whose column is absent from a row.
const Undefined = "undefined"

const bom = "\ufeff"

// LoadRecords reads the tech radar CSV at filePath. The whole file is consumed
// before anything is returned.
func LoadRecords(filePath string) ([]model.TechRecord, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, model.NewError(model.KindIO, "open tech radar csv", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse maps CSV rows to records by header name. Headers and values are
// trimmed; an empty input yields an empty slice.
func Parse(r io.Reader) ([]model.TechRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records := make([]model.TechRecord, 0)
	var header []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, model.NewError(model.KindParse, "parse tech radar csv", err)
			}
			return nil, model.NewError(model.KindIO, "read tech radar csv", err)
		}

		if header == nil {
			header = normalizeHeader(row)
			continue
		}
		records = append(records, toRecord(header, row))
	}
	return records, nil
}

func normalizeHeader(row []string) []string {
	header := make([]string, len(row))
	for i, h := range row {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		header[i] = strings.TrimSpace(h)
	}
	return header
}

func toRecord(header, row []string) model.TechRecord {
	values := make(map[string]string, len(header))
	for i, h := range header {
		if i >= len(row) {
			break
		}
		values[h] = strings.TrimSpace(row[i])
	}

	field := func(name string) string {
		if v, ok := values[name]; ok {
			return v
		}
		return Undefined
	}

	return model.TechRecord{
		Name:       field("Name"),
		Status:     field("Status"),
		Category:   field("Category"),
		Dependency: field("Dependency"),
		Mentor:     field("Mentor"),
	}
}
