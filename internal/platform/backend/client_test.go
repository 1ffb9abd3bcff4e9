package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediguard/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestAnalyze_TextMode(t *testing.T) {
	var gotText, gotMode, gotPatient string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analyze", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotText = r.FormValue("text")
		gotMode = r.FormValue("mode")
		gotPatient = r.FormValue("patient_id")
		io.WriteString(w, `{"analysis":{"health_score":72,"triage_category":"Yellow",
			"predictions":{"Diabetes":0.3,"Healthy":0.7},"predicted_class":"Healthy","warnings":[]},"report_id":12}`)
	})

	res, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "Glucose: 110, ", PatientID: "p-9"})
	require.NoError(t, err)

	assert.Equal(t, "Glucose: 110, ", gotText)
	assert.Equal(t, ModeText, gotMode)
	assert.Equal(t, "p-9", gotPatient)
	assert.Equal(t, int64(12), res.ReportID)
	assert.Equal(t, 72, res.HealthScore)
	assert.Equal(t, models.TriageYellow, res.TriageCategory)
	assert.Equal(t, "Healthy", res.PredictedClass)
	require.Len(t, res.Predictions, 2)
	assert.Equal(t, "Diabetes", res.Predictions[0].Label)
	assert.NotNil(t, res.Warnings)
}

func TestAnalyze_FileMode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, ModePDF, r.FormValue("mode"))
		assert.Empty(t, r.FormValue("text"))
		assert.Empty(t, r.FormValue("patient_id"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "labs.pdf", hdr.Filename)
		assert.Equal(t, "%PDF-1.4", string(data))

		io.WriteString(w, `{"analysis":{"health_score":90,"triage_category":"Green","predictions":{}},"report_id":1}`)
	})

	res, err := c.Analyze(context.Background(), AnalyzeRequest{FileName: "labs.pdf", File: []byte("%PDF-1.4")})
	require.NoError(t, err)
	assert.Equal(t, 90, res.HealthScore)
	assert.Empty(t, res.Predictions)
	assert.Empty(t, res.Warnings)
}

func TestAnalyze_Failures(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
		want   error
	}{
		"missing analysis":    {200, `{"report_id":1}`, ErrMalformedResponse},
		"missing score":       {200, `{"analysis":{"triage_category":"Red","predictions":{}}}`, ErrMalformedResponse},
		"fractional score":    {200, `{"analysis":{"health_score":72.5,"triage_category":"Red","predictions":{}}}`, ErrMalformedResponse},
		"score out of range":  {200, `{"analysis":{"health_score":140,"triage_category":"Red","predictions":{}}}`, ErrMalformedResponse},
		"missing predictions": {200, `{"analysis":{"health_score":50,"triage_category":"Red"}}`, ErrMalformedResponse},
		"unknown triage":      {200, `{"analysis":{"health_score":50,"triage_category":"Blue","predictions":{}}}`, ErrMalformedResponse},
		"bad probability":     {200, `{"analysis":{"health_score":50,"triage_category":"Red","predictions":{"A":2}}}`, ErrMalformedResponse},
		"not json":            {200, `<html>`, ErrMalformedResponse},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			})
			_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "x"})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAnalyze_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Analyze(context.Background(), AnalyzeRequest{Text: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "boom")
}

func TestAnalyze_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Analyze(context.Background(), AnalyzeRequest{Text: "x"})
	assert.Error(t, err)
}

func TestListReports(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/reports", r.URL.Path)
		io.WriteString(w, `{"reports":[{"id":3,"report_title":"March","health_score":64,"triage_category":"Yellow",
			"created_at":"2024-03-01T08:00:00Z","predictions":{"Healthy":0.6},"patient_name":"Ravi"}]}`)
	})

	reports, err := c.ListReports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "March", reports[0].ReportTitle)
	assert.Equal(t, "Ravi", reports[0].PatientName)
}

func TestListReports_MissingField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	})

	reports, err := c.ListReports(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestUpdateReportTitle(t *testing.T) {
	var body updateTitleRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/reports/42", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.UpdateReportTitle(context.Background(), 42, "Annual checkup"))
	assert.Equal(t, "Annual checkup", body.ReportTitle)
}

func TestLogin_NumericID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		io.WriteString(w, `{"user":{"id":5,"name":"Meera","email":"meera@example.com"}}`)
	})

	u, err := c.Login(context.Background(), "meera@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "5", u.ID)
	assert.Equal(t, "Meera", u.Name)
}

func TestSignup_MissingUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"ok"}`)
	})

	_, err := c.Signup(context.Background(), "A", "a@example.com", "pw")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
