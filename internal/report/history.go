package report

import (
	"context"
	"fmt"
	"strings"

	"mediguard/internal/models"
)

// ReportLister reads saved reports from the report store.
type ReportLister interface {
	ListReports(ctx context.Context) ([]models.Report, error)
}

type History struct {
	lister ReportLister
}

func NewHistory(lister ReportLister) *History {
	return &History{lister: lister}
}

// List returns the saved reports in the order the store returns them.
func (h *History) List(ctx context.Context) ([]models.Report, error) {
	reports, err := h.lister.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}

// Filter keeps reports whose title or patient name contains query,
// ignoring case. An empty query keeps everything.
func Filter(reports []models.Report, query string) []models.Report {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return reports
	}
	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if strings.Contains(strings.ToLower(r.ReportTitle), query) ||
			strings.Contains(strings.ToLower(r.PatientName), query) {
			out = append(out, r)
		}
	}
	return out
}

// Latest returns the most recently created report. The first one wins a
// tie.
func Latest(reports []models.Report) (models.Report, bool) {
	if len(reports) == 0 {
		return models.Report{}, false
	}
	latest := reports[0]
	for _, r := range reports[1:] {
		if r.CreatedAt.After(latest.CreatedAt.Time) {
			latest = r
		}
	}
	return latest, true
}
