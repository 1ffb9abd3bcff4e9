package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/signintech/gopdf"

	"mediguard/internal/models"
)

var ErrFontNotFound = errors.New("no usable font for PDF export")

// DefaultFontPaths are the usual DejaVu install locations on Alpine and
// Debian.
var DefaultFontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

const fontFamily = "DejaVu"

// PDFExporter renders an analysis result as a one-page A4 document.
type PDFExporter struct {
	// FontPaths are tried in order; the first that loads is used.
	FontPaths  []string
	Translator Translator
	Now        func() time.Time
}

func NewPDFExporter(fontPath string, tr Translator) *PDFExporter {
	paths := DefaultFontPaths
	if fontPath != "" {
		paths = append([]string{fontPath}, DefaultFontPaths...)
	}
	if tr == nil {
		tr = englishTranslator{}
	}
	return &PDFExporter{FontPaths: paths, Translator: tr, Now: time.Now}
}

func (e *PDFExporter) Export(w io.Writer, title string, res *models.AnalysisResult) error {
	if res == nil {
		return ErrNotResolved
	}
	tr := e.Translator
	if tr == nil {
		tr = englishTranslator{}
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := e.loadFont(&pdf); err != nil {
		return err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = tr.T("report.title")
	}

	if err := pdf.SetFont(fontFamily, "", 20); err != nil {
		return err
	}
	if err := pdf.Cell(nil, title); err != nil {
		return err
	}
	pdf.Br(30)

	if err := pdf.SetFont(fontFamily, "", 12); err != nil {
		return err
	}
	lines := []string{
		fmt.Sprintf("%s: %s", tr.T("report.date"), now().Format("02.01.2006 15:04")),
		fmt.Sprintf("%s: %d / 100", tr.T("report.healthScore"), res.HealthScore),
		fmt.Sprintf("%s: %s", tr.T("report.triage"), res.TriageCategory),
	}
	if res.PredictedClass != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", tr.T("report.predictedClass"), res.PredictedClass))
	}
	for _, l := range lines {
		if err := pdf.Cell(nil, l); err != nil {
			return err
		}
		pdf.Br(15)
	}
	pdf.Br(10)

	if err := section(&pdf, tr.T("report.predictions")); err != nil {
		return err
	}
	for _, p := range res.Predictions.Ranked() {
		if err := pdf.Cell(nil, fmt.Sprintf("- %s: %d%%", p.Label, p.Percent())); err != nil {
			return err
		}
		pdf.Br(12)
	}
	pdf.Br(15)

	if len(res.Warnings) > 0 {
		if err := section(&pdf, tr.T("report.warnings")); err != nil {
			return err
		}
		for _, warning := range res.Warnings {
			wrapped, err := pdf.SplitText("- "+warning, 500)
			if err != nil {
				return err
			}
			for _, l := range wrapped {
				if err := pdf.Cell(nil, l); err != nil {
					return err
				}
				pdf.Br(12)
			}
		}
	}

	if _, err := pdf.WriteTo(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func section(pdf *gopdf.GoPdf, heading string) error {
	if err := pdf.SetFont(fontFamily, "", 14); err != nil {
		return err
	}
	if err := pdf.Cell(nil, heading); err != nil {
		return err
	}
	pdf.Br(15)
	return pdf.SetFont(fontFamily, "", 11)
}

func (e *PDFExporter) loadFont(pdf *gopdf.GoPdf) error {
	var lastErr error
	for _, path := range e.FontPaths {
		if err := pdf.AddTTFFont(fontFamily, path); err != nil {
			lastErr = err
			continue
		}
		log.WithField("path", path).Debug("pdf font loaded")
		return nil
	}
	if lastErr == nil {
		return ErrFontNotFound
	}
	return fmt.Errorf("%w: %v", ErrFontNotFound, lastErr)
}
