package backend

import (
	"context"
	"fmt"
	"net/http"

	"mediguard/internal/models"
)

type listReportsResponse struct {
	Reports []models.Report `json:"reports"`
}

type updateTitleRequest struct {
	ReportTitle string `json:"report_title"`
}

// ListReports returns every saved report. A response without a reports
// field is an empty history.
func (c *Client) ListReports(ctx context.Context) ([]models.Report, error) {
	var resp listReportsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/reports", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Reports == nil {
		return []models.Report{}, nil
	}
	return resp.Reports, nil
}

// UpdateReportTitle stores a title against a previously produced result.
func (c *Client) UpdateReportTitle(ctx context.Context, reportID int64, title string) error {
	path := fmt.Sprintf("/api/reports/%d", reportID)
	return c.doJSON(ctx, http.MethodPatch, path, updateTitleRequest{ReportTitle: title}, nil)
}
