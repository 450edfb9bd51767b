package chart

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// Renderer names.
const (
	RendererGonum   = "gonum"
	RendererGoChart = "gochart"
)

var (
	// ErrUnknownRenderer is returned by GetRenderer for unregistered names.
	ErrUnknownRenderer = errors.New("unknown renderer")
	// ErrUnsupportedFormat is returned when a renderer cannot emit a format.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// RenderOptions carries layout choices owned by the rendering side.
type RenderOptions struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height are in points (1/72 inch) for gonum and pixels for gochart.
	Width  int
	Height int
	// Format is "svg", "png" or "pdf".
	Format string
	// Labels annotates each point with its title.
	Labels bool
	// DotRadius is the point glyph radius.
	DotRadius float64
}

// DefaultRenderOptions mirrors the canvas of the original web chart.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Title:     "Total Gross (double sqrt) over Max Theaters",
		Width:     800,
		Height:    480,
		Format:    "svg",
		Labels:    true,
		DotRadius: 4,
	}
}

// Renderer draws chart data to w.
type Renderer interface {
	Render(w io.Writer, d *Data, opt RenderOptions) error
	Formats() []string
}

// RendererFactory builds a Renderer.
type RendererFactory func() Renderer

var registry = map[string]RendererFactory{}

// RegisterRenderer registers a renderer name with its factory.
func RegisterRenderer(name string, f RendererFactory) { registry[name] = f }

// GetRenderer creates the named renderer.
func GetRenderer(name string) (Renderer, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (use one of %s)", ErrUnknownRenderer, name, strings.Join(RendererNames(), ", "))
	}
	return f(), nil
}

// RendererNames lists registered renderers in sorted order.
func RendererNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// FormatFromPath derives an output format from a file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// CheckFormat reports ErrUnsupportedFormat when r cannot write format.
func CheckFormat(r Renderer, format string) error {
	for _, f := range r.Formats() {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, format, strings.Join(r.Formats(), ", "))
}

// axisMax pads an empty domain so an axis can still be drawn.
func axisMax(d Domain) float64 {
	if d.Max <= d.Min {
		return d.Min + 1
	}
	return d.Max
}

func init() {
	RegisterRenderer(RendererGonum, func() Renderer { return gonumRenderer{} })
	RegisterRenderer(RendererGoChart, func() Renderer { return goChartRenderer{} })
}
