package source_test

import (
	"context"
	"strings"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/boxoffice-cli/internal/source"
)

const boxCSV = "rank,title,totalGross,maxTheaters,openingDate\n" +
	"1,American Sniper,350126372,3885,12/25/14\n" +
	"2,Boyhood,25379975,775,7/11/14\n"

func TestFetchLocalFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "box.csv")
	require.NoError(t, os.WriteFile(p, []byte(boxCSV), 0o644))

	ds, err := source.Fetch(context.Background(), p, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, "box.csv", ds.Name)
	require.Len(t, ds.Rows, 2)
	v, ok := ds.Rows[1].Get("title")
	require.True(t, ok)
	assert.Equal(t, "Boyhood", v)
}

func TestFetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2014box.csv" {
			http.Error(w, "no such dataset", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(boxCSV))
	}))
	defer srv.Close()

	ds, err := source.Fetch(context.Background(), srv.URL+"/data/2014box.csv", source.Options{Client: srv.Client()})
	require.NoError(t, err)
	assert.Equal(t, "2014box.csv", ds.Name)
	assert.Len(t, ds.Rows, 2)

	_, err = source.Fetch(context.Background(), srv.URL+"/missing.csv", source.Options{Client: srv.Client()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "no such dataset")
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(boxCSV))
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := source.Fetch(ctx, srv.URL+"/box.csv", source.Options{Client: srv.Client()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchFailures(t *testing.T) {
	_, err := source.Fetch(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), source.Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = source.Fetch(context.Background(), empty, source.Options{})
	assert.ErrorIs(t, err, source.ErrEmptyDataset)
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	const limit = 1024
	header := "rank,title,totalGross,maxTheaters,openingDate\n"
	row := "1,American Sniper,350126372,3885,12/25/14\n"
	exact := header + strings.Repeat(row, (limit-len(header))/len(row))
	exact += strings.Repeat("x", limit-len(exact)-1) + "\n"
	require.Len(t, exact, limit)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := exact
		if r.URL.Path == "/big.csv" {
			body += "2"
		}
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()
	opt := source.Options{Client: srv.Client(), MaxBytes: limit}

	_, err := source.Fetch(context.Background(), srv.URL+"/exact.csv", opt)
	require.NoError(t, err)

	ds, err := source.Fetch(context.Background(), srv.URL+"/big.csv", opt)
	assert.ErrorIs(t, err, source.ErrTooLarge)
	assert.Nil(t, ds)
}
