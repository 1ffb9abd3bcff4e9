package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_DecodesNaiveTimestamp(t *testing.T) {
	body := `{"id":7,"report_title":"Checkup","health_score":85,"triage_category":"Green",
		"created_at":"2024-03-05T10:11:12.123456","predictions":{"Healthy":0.9}}`

	var r Report
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.Equal(t, int64(7), r.ID)
	assert.Equal(t, TriageGreen, r.TriageCategory)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 11, 12, 123456000, time.UTC), r.CreatedAt.Time)
	assert.Empty(t, r.PatientName)
}

func TestTimestamp_RejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
