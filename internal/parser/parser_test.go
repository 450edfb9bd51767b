package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/boxoffice-cli/internal/parser"
)

func writeXLSX(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	p := filepath.Join(t.TempDir(), "box.xlsx")
	require.NoError(t, f.SaveAs(p))
	return p
}

func TestParseFileXLSX(t *testing.T) {
	p := writeXLSX(t, "Sheet1", [][]any{
		{"rank", "title", "totalGross", "maxTheaters", "openingDate"},
		{1, "American Sniper", 350126372, 3885, "12/25/14"},
		{2, "Boyhood", 25379975, 775},
	})
	tab, err := parser.ParseFile(p, parser.Options{})
	require.NoError(t, err)
	require.Len(t, tab.Rows, 2)
	assert.Equal(t, "American Sniper", tab.Rows[0]["title"])
	assert.Equal(t, "350126372", tab.Rows[0]["totalGross"])
	assert.Equal(t, "", tab.Rows[1]["openingDate"])
}

func TestParseXLSXNamedSheet(t *testing.T) {
	p := writeXLSX(t, "Box", [][]any{
		{"title", "maxTheaters"},
		{"Ida", 72},
	})
	tab, err := parser.ParseFile(p, parser.Options{Sheet: "Box"})
	require.NoError(t, err)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, "72", tab.Rows[0]["maxTheaters"])

	_, err = parser.ParseFile(p, parser.Options{Sheet: "Missing"})
	assert.Error(t, err)
}

func TestCSVAndXLSXAgree(t *testing.T) {
	xp := writeXLSX(t, "Sheet1", [][]any{
		{"rank", "title", "totalGross", "maxTheaters", "openingDate"},
		{1, "American Sniper", 350126372, 3885, "12/25/14"},
		{2, "Boyhood", 25379975, 775},
	})
	cp := filepath.Join(t.TempDir(), "box.csv")
	require.NoError(t, os.WriteFile(cp, []byte("rank,title,totalGross,maxTheaters,openingDate\n"+
		"1,American Sniper,350126372,3885,12/25/14\n"+
		"2,Boyhood,25379975,775,\n"), 0o644))

	fromXLSX, err := parser.ParseFile(xp, parser.Options{})
	require.NoError(t, err)
	fromCSV, err := parser.ParseFile(cp, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, fromCSV.Header, fromXLSX.Header)
	assert.Equal(t, fromCSV.Rows, fromXLSX.Rows)
}
