package backend

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"

	"mediguard/internal/models"
)

// Analysis modes understood by /api/analyze.
const (
	ModeText = "text"
	ModePDF  = "pdf"
)

// AnalyzeRequest carries either a manual text payload or an uploaded file.
// File takes precedence when set.
type AnalyzeRequest struct {
	Text      string
	FileName  string
	File      []byte
	PatientID string
}

type analyzeResponse struct {
	Analysis *analysisPayload `json:"analysis"`
	ReportID int64            `json:"report_id"`
}

type analysisPayload struct {
	HealthScore    *float64            `json:"health_score"`
	TriageCategory string              `json:"triage_category"`
	Predictions    *models.Predictions `json:"predictions"`
	PredictedClass string              `json:"predicted_class"`
	Warnings       []string            `json:"warnings"`
}

// Analyze posts the report to the analysis service. A response without a
// complete analysis object is reported as ErrMalformedResponse.
func (c *Client) Analyze(ctx context.Context, ar AnalyzeRequest) (*models.AnalysisResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if ar.File != nil {
		name := ar.FileName
		if name == "" {
			name = "report.pdf"
		}
		part, err := writer.CreateFormFile("file", name)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(ar.File); err != nil {
			return nil, err
		}
		if err := writer.WriteField("mode", ModePDF); err != nil {
			return nil, err
		}
	} else {
		if err := writer.WriteField("text", ar.Text); err != nil {
			return nil, err
		}
		if err := writer.WriteField("mode", ModeText); err != nil {
			return nil, err
		}
	}
	if ar.PatientID != "" {
		if err := writer.WriteField("patient_id", ar.PatientID); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp analyzeResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.toResult()
}

func (r analyzeResponse) toResult() (*models.AnalysisResult, error) {
	a := r.Analysis
	if a == nil {
		return nil, fmt.Errorf("%w: missing analysis", ErrMalformedResponse)
	}
	if a.HealthScore == nil {
		return nil, fmt.Errorf("%w: missing health_score", ErrMalformedResponse)
	}
	score := *a.HealthScore
	if score != math.Trunc(score) || score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: health_score %v is not an integer in [0,100]", ErrMalformedResponse, score)
	}
	if a.Predictions == nil {
		return nil, fmt.Errorf("%w: missing predictions", ErrMalformedResponse)
	}
	triage := models.TriageCategory(a.TriageCategory)
	if !triage.Valid() {
		return nil, fmt.Errorf("%w: unknown triage_category %q", ErrMalformedResponse, a.TriageCategory)
	}

	warnings := a.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &models.AnalysisResult{
		ReportID:       r.ReportID,
		HealthScore:    int(score),
		TriageCategory: triage,
		Predictions:    *a.Predictions,
		PredictedClass: a.PredictedClass,
		Warnings:       warnings,
	}, nil
}
