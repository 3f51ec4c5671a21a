package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/lead-enrich/internal/model"
)

func TestWriteXLSX(t *testing.T) {
	leads := []model.Lead{
		{
			FirstName:   "Jane",
			LastName:    "Doe",
			CompanyName: "Example",
			LinkedinURL: "li/x",
			Source:      model.SourceSearchFallback,
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(leads, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	require.Len(t, f.Sheets, 1)
	sheet := f.Sheets[0]
	assert.Equal(t, "Leads", sheet.Name)
	require.Len(t, sheet.Rows, 2)

	header := sheet.Rows[0]
	require.Len(t, header.Cells, len(model.LeadColumns))
	assert.Equal(t, "first_name", header.Cells[0].String())
	assert.Equal(t, "source", header.Cells[11].String())

	row := sheet.Rows[1]
	assert.Equal(t, "Jane", row.Cells[0].String())
	assert.Equal(t, "search_fallback", row.Cells[11].String())
}

func TestWriteXLSXEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteXLSX(nil, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets[0].Rows, 1)
}
