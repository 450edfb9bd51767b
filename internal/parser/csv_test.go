package parser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/boxoffice-cli/internal/parser"
)

func TestParseFileCSV(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "2014box.csv")
	content := "\ufeffrank,title,totalGross,maxTheaters,openingDate,simplePR\n" +
		"1,American Sniper,350126372,3885,12/25/14,72\n" +
		"2,\"Hunger Games: Mockingjay, Part 1\",337135885,4151,11/21/14\n" +
		",,,,,\n" +
		"3,Guardians of the Galaxy,333176600,4088,8/1/14,76\n"
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	tab, err := parser.ParseFile(p, parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"rank", "title", "totalGross", "maxTheaters", "openingDate", "simplePR"}, tab.Header)
	require.Len(t, tab.Rows, 3, "blank rows are skipped")
	assert.Equal(t, "Hunger Games: Mockingjay, Part 1", tab.Rows[1]["title"])
	assert.Equal(t, "", tab.Rows[1]["simplePR"], "short rows are padded")
	assert.Equal(t, "8/1/14", tab.Rows[2]["openingDate"])
}

func TestParseTSVAndExplicitDelimiter(t *testing.T) {
	tab, err := parser.Parse("data.tsv", strings.NewReader("title\ttotalGross\nBoyhood\t25379975\n"), parser.Options{})
	require.NoError(t, err)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, "25379975", tab.Rows[0]["totalGross"])

	tab, err = parser.Parse("data.csv", strings.NewReader("title;totalGross\nBoyhood;25379975\n"), parser.Options{Delimiter: ';'})
	require.NoError(t, err)
	assert.Equal(t, "Boyhood", tab.Rows[0]["title"])
}

func TestParseEmptyAndUnsupported(t *testing.T) {
	tab, err := parser.Parse("empty.csv", strings.NewReader(""), parser.Options{})
	require.NoError(t, err)
	assert.Empty(t, tab.Header)
	assert.Empty(t, tab.Rows)

	tab, err = parser.Parse("download", strings.NewReader("title\nIda\n"), parser.Options{})
	require.NoError(t, err)
	assert.Len(t, tab.Rows, 1, "extensionless names read as CSV")

	_, err = parser.Parse("notes.docx", strings.NewReader("x"), parser.Options{})
	assert.ErrorIs(t, err, parser.ErrUnsupported)
}
