package movie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/boxoffice-cli/internal/movie"
)

func titles(c *movie.Collection) []string {
	var out []string
	for _, r := range c.Records() {
		t, _ := r.Title()
		out = append(out, t)
	}
	return out
}

func fiveMovies() *movie.Collection {
	return movie.NewCollection([]movie.RawRow{
		{"title": "A", "totalGross": "100000000", "maxTheaters": "3500", "openingDate": "5/2/14"},
		{"title": "B", "totalGross": "", "maxTheaters": "3000", "openingDate": "3/7/14"},
		{"title": "C", "totalGross": "5000000", "maxTheaters": "10", "openingDate": "1/10/14"},
		{"title": "D", "totalGross": "n/a", "maxTheaters": "800", "openingDate": ""},
		{"title": "E", "totalGross": "25000000", "maxTheaters": "900", "openingDate": "11/21/14"},
	})
}

func TestFilterChainKeepsReceiverIntact(t *testing.T) {
	all := fiveMovies()
	before := titles(all)

	got := all.FilterByHasFinancialData().FilterByMinTheaters(50)

	assert.Equal(t, []string{"A", "E"}, titles(got))
	assert.Equal(t, 5, all.Len())
	assert.Equal(t, before, titles(all))
}

func TestFilterByGrossAndTheaterBounds(t *testing.T) {
	all := fiveMovies()
	assert.Equal(t, []string{"A", "E"}, titles(all.FilterByMinGross(20000000)))
	assert.Equal(t, []string{"C", "D", "E"}, titles(all.FilterByMaxTheaters(900)))
	assert.Equal(t, []string{"A", "B"}, titles(all.FilterByMinTheaters(1000)))

	none := all.FilterByMinGross(1 << 40)
	assert.Zero(t, none.Len())
	assert.Empty(t, none.Records())
}

func TestSortByOpeningDate(t *testing.T) {
	all := fiveMovies()
	asc := all.SortByOpeningDate(false)
	assert.Equal(t, []string{"D", "C", "B", "A", "E"}, titles(asc))

	desc := all.SortByOpeningDate(true)
	assert.Equal(t, []string{"E", "A", "B", "C", "D"}, titles(desc))

	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, titles(all), "sorting returns a new collection")
}

func TestRecordsReturnsCopy(t *testing.T) {
	all := fiveMovies()
	recs := all.Records()
	recs[0] = movie.BuildRecord(movie.RawRow{"title": "Z"})
	first, ok := all.Records()[0].Title()
	require.True(t, ok)
	assert.Equal(t, "A", first)

	wrapped := movie.FromRecords(recs)
	recs[1] = movie.Record{}
	second, ok := wrapped.Records()[1].Title()
	require.True(t, ok)
	assert.Equal(t, "B", second)
}
