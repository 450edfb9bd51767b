package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/KaramelBytes/boxoffice-cli/internal/movie"
	"github.com/KaramelBytes/boxoffice-cli/internal/utils"
)

// core fonts are cp1252; spell out the symbols it lacks
var pdfText = strings.NewReplacer("≥", ">=", "≤", "<=", "→", "->", "²", "^2", "·", "*", "≈", "~", "—", "-")

// WritePDF renders the report as a one-column A4 document.
func (r *Report) WritePDF(w io.Writer, title string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)
	pdf.SetTitle(title, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	txt := func(s string) string { return tr(pdfText.Replace(s)) }

	pdf.AddPage()
	if title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 7, txt(title), "", "L", false)
		pdf.Ln(2)
	}
	heading := func(s string) {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, s, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	line := func(format string, args ...any) {
		pdf.MultiCell(0, 5, txt(fmt.Sprintf(format, args...)), "", "L", false)
	}

	heading("Dataset")
	if r.Name != "" {
		line("File: %s", r.Name)
	}
	line("Rows: %d (kept %d), with financial data: %d", r.Rows, r.Kept, r.WithFinancial)
	if len(r.Filters) > 0 {
		line("Filters: %s", strings.Join(r.Filters, " → "))
	}
	if !r.FirstOpening.IsZero() {
		line("Openings: %s to %s", movie.FormatDate(r.FirstOpening), movie.FormatDate(r.LastOpening))
	}

	heading("Metrics")
	for _, m := range r.Metrics {
		if m.Count == 0 {
			line("%s: no values (%d missing)", m.Field.Label(), m.Missing)
			continue
		}
		if m.Field == movie.FieldTotalGross {
			line("%s: n=%d, min %s, max %s, median %s", m.Field.Label(), m.Count,
				utils.Monetize(m.Min, 0), utils.Monetize(m.Max, 0), utils.Monetize(m.Median, 0))
			continue
		}
		line("%s: n=%d, min %.4g, max %.4g, mean %.4g, median %.4g", m.Field.Label(), m.Count, m.Min, m.Max, m.Mean, m.Median)
	}

	if t := r.Trend; t != nil {
		heading("Trend")
		if t.Degenerate {
			line("%s ~ %s (n=%d): flat line at y=%.4g", t.YField, t.XField, t.N, t.Intercept)
		} else {
			line("%s ~ %s (n=%d): y = %.4g + %.4g·x, R²=%.3f", t.YField, t.XField, t.N, t.Intercept, t.Slope, t.RSquared)
		}
	}

	if len(r.Top) > 0 {
		heading("Top grossers")
		widths := []float64{10, 96, 40, 40}
		pdf.SetFont("Helvetica", "B", 9)
		for i, h := range []string{"#", "Title", "Total Gross", "Opening"} {
			pdf.CellFormat(widths[i], 6, h, "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
		for i, tg := range r.Top {
			pdf.CellFormat(widths[0], 5, fmt.Sprint(i+1), "", 0, "L", false, 0, "")
			pdf.CellFormat(widths[1], 5, txt(safeVal(tg.Title)), "", 0, "L", false, 0, "")
			pdf.CellFormat(widths[2], 5, utils.Monetize(float64(tg.Gross), 0), "", 0, "R", false, 0, "")
			pdf.CellFormat(widths[3], 5, tg.Opening, "", 1, "L", false, 0, "")
		}
	}

	if len(r.Warnings) > 0 {
		heading("Notes")
		for _, w := range r.Warnings {
			line("- %s", w)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
