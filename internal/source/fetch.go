package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/phuslu/log"

	"github.com/KaramelBytes/boxoffice-cli/internal/movie"
	"github.com/KaramelBytes/boxoffice-cli/internal/parser"
)

var (
	// ErrEmptyDataset is returned when the input has no header row.
	ErrEmptyDataset = errors.New("dataset has no header row")
	// ErrTooLarge is returned when an HTTP body exceeds the download cap.
	ErrTooLarge = errors.New("dataset too large")
)

// DefaultMaxDownload caps HTTP bodies when Options.MaxBytes is zero.
const DefaultMaxDownload = 64 << 20

// Options controls how a dataset is fetched and parsed.
type Options struct {
	// Client is used for http(s) locations; a client with Timeout is built when nil.
	Client  *http.Client
	Timeout time.Duration
	// MaxBytes caps HTTP bodies; 0 means DefaultMaxDownload. Larger bodies fail.
	MaxBytes int64
	Parse    parser.Options
}

// Dataset is a fully loaded input table.
type Dataset struct {
	Name   string
	Header []string
	Rows   []movie.RawRow
}

// Fetch loads the whole dataset at location, a local path or an http(s) URL.
// There is no retry: any failure is returned to the caller.
func Fetch(ctx context.Context, location string, opt Options) (*Dataset, error) {
	start := time.Now()
	var (
		tab  *parser.Table
		name string
		err  error
	)
	if isURL(location) {
		tab, name, err = fetchURL(ctx, location, opt)
	} else {
		name = filepath.Base(location)
		tab, err = parser.ParseFile(location, opt.Parse)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	if len(tab.Header) == 0 {
		return nil, fmt.Errorf("fetch %s: %w", location, ErrEmptyDataset)
	}
	ds := &Dataset{Name: name, Header: tab.Header, Rows: make([]movie.RawRow, len(tab.Rows))}
	for i, r := range tab.Rows {
		ds.Rows[i] = movie.RawRow(r)
	}
	log.Debug().Str("source", location).Int("rows", len(ds.Rows)).Dur("took", time.Since(start)).Msg("dataset fetched")
	return ds, nil
}

func isURL(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func fetchURL(ctx context.Context, location string, opt Options) (*parser.Table, string, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, "", fmt.Errorf("parse url: %w", err)
	}
	client := opt.Client
	if client == nil {
		timeout := opt.Timeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, "", fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}
	limit := opt.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxDownload
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, "", fmt.Errorf("%w: body exceeds %d bytes", ErrTooLarge, limit)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = u.Host
	}
	tab, err := parser.Parse(name, bytes.NewReader(body), opt.Parse)
	if err != nil {
		return nil, "", err
	}
	return tab, name, nil
}
