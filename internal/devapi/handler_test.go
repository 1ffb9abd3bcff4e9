package devapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediguard/internal/models"
	"mediguard/internal/platform/backend"
	"mediguard/internal/report"
)

func newTestServer(t *testing.T) (*httptest.Server, *backend.Client) {
	t.Helper()
	srv := httptest.NewServer(NewRouter(NewHandler(NewMemoryRepository())))
	t.Cleanup(srv.Close)
	return srv, backend.NewClient(srv.URL, 5*time.Second)
}

func TestAnalyzeAndSaveTitle(t *testing.T) {
	_, c := newTestServer(t)
	ctx := context.Background()

	res, err := c.Analyze(ctx, backend.AnalyzeRequest{
		Text: "Patient Name: Ravi, Age: 41, Gender: Male, Date: . \nObservations:  \nBMI: 32, ",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ReportID)
	assert.Equal(t, 85, res.HealthScore)
	assert.Equal(t, models.TriageGreen, res.TriageCategory)
	assert.Equal(t, "Obesity", res.PredictedClass)
	assert.Len(t, res.Warnings, 2)

	require.NoError(t, c.UpdateReportTitle(ctx, res.ReportID, "Weight check"))

	reports, err := c.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Weight check", reports[0].ReportTitle)
	assert.Equal(t, "Ravi", reports[0].PatientName)
	assert.False(t, reports[0].CreatedAt.IsZero())
	assert.Len(t, reports[0].Predictions, 4)
}

func TestAnalyze_FileMode(t *testing.T) {
	_, c := newTestServer(t)
	res, err := c.Analyze(context.Background(), backend.AnalyzeRequest{
		FileName: "labs.txt",
		File:     []byte("Blood Pressure (mmHg): 160/100, "),
	})
	require.NoError(t, err)
	assert.Equal(t, 85, res.HealthScore)
	assert.Equal(t, "Hypertension", res.PredictedClass)
}

func TestUpdateReport_Errors(t *testing.T) {
	srv, c := newTestServer(t)

	err := c.UpdateReportTitle(context.Background(), 99, "x")
	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/api/reports/abc", strings.NewReader(`{"report_title":"x"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuth(t *testing.T) {
	_, c := newTestServer(t)
	ctx := context.Background()

	u, err := c.Signup(ctx, "Asha", "asha@example.com", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Asha", u.Name)

	_, err = c.Signup(ctx, "Asha", "ASHA@example.com", "pw")
	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	logged, err := c.Login(ctx, "asha@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	_, err = c.Login(ctx, "asha@example.com", "wrong")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/analyze", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestFlowAgainstDevAPI(t *testing.T) {
	_, c := newTestServer(t)
	flow := report.NewFlow(c, c, nil, report.Options{
		StepInterval: time.Millisecond,
		SettleDelay:  time.Millisecond,
		NoticeTTL:    time.Second,
	})
	defer flow.Close()

	require.NoError(t, flow.SetVital("Glucose Fasting (mg/dL)", "140"))
	res, err := flow.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Diabetes", res.PredictedClass)
	assert.Equal(t, report.LastStep, flow.Snapshot().Step)

	require.NoError(t, flow.Save(context.Background(), "Sugar follow-up"))

	reports, err := report.NewHistory(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Sugar follow-up", reports[0].ReportTitle)
}
