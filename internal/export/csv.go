// Package export reads the input lead table and writes the enriched output
// table as CSV or XLSX.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-enrich/internal/model"
)

// ReadInputCSV parses an input table. The header must contain a linkedin_url
// column; name and company_domain are optional. Rows without a linkedin_url
// are skipped.
func ReadInputCSV(path string) ([]model.InputRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "export: open input csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "export: read input header")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	urlCol, ok := cols["linkedin_url"]
	if !ok {
		return nil, eris.New("export: input csv is missing a linkedin_url column")
	}
	nameCol, hasName := cols["name"]
	domainCol, hasDomain := cols["company_domain"]

	var records []model.InputRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "export: read input row")
		}

		rec := model.InputRecord{LinkedinURL: strings.TrimSpace(cell(row, urlCol))}
		if rec.LinkedinURL == "" {
			continue
		}
		if hasName {
			rec.Name = cell(row, nameCol)
		}
		if hasDomain {
			rec.CompanyDomain = cell(row, domainCol)
		}
		records = append(records, rec)
	}

	return records, nil
}

// WriteCSV writes leads with the canonical twelve-column header.
func WriteCSV(leads []model.Lead, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "export: create output csv")
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(model.LeadColumns); err != nil {
		return eris.Wrap(err, "export: write header")
	}
	for _, lead := range leads {
		if err := w.Write(lead.Row()); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}

	return nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
