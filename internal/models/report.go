package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Report is a saved analysis as listed by the report store.
type Report struct {
	ID             int64          `json:"id"`
	ReportTitle    string         `json:"report_title"`
	HealthScore    int            `json:"health_score"`
	TriageCategory TriageCategory `json:"triage_category"`
	CreatedAt      Timestamp      `json:"created_at"`
	Predictions    Predictions    `json:"predictions"`
	PatientName    string         `json:"patient_name,omitempty"`
}

func (r Report) Band() ScoreBand {
	return BandFor(r.HealthScore)
}

// Timestamp accepts RFC 3339 as well as the zone-less ISO form the backend
// emits for naive UTC datetimes.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}
