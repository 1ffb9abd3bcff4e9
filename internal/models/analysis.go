package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

type TriageCategory string

const (
	TriageGreen  TriageCategory = "Green"
	TriageYellow TriageCategory = "Yellow"
	TriageRed    TriageCategory = "Red"
)

func (t TriageCategory) Valid() bool {
	switch t {
	case TriageGreen, TriageYellow, TriageRed:
		return true
	}
	return false
}

// ScoreBand is the presentational bucket for a health score.
type ScoreBand string

const (
	BandHigh   ScoreBand = "high"
	BandMedium ScoreBand = "medium"
	BandLow    ScoreBand = "low"
)

func BandFor(score int) ScoreBand {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMedium
	default:
		return BandLow
	}
}

type Prediction struct {
	Label       string
	Probability float64
}

// Percent is the probability rounded to a whole percentage.
func (p Prediction) Percent() int {
	return int(math.Round(p.Probability * 100))
}

// Predictions keeps label/probability pairs in the order the JSON object
// listed them. Labels are unique.
type Predictions []Prediction

func (ps *Predictions) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("predictions: expected object, got %v", tok)
	}

	out := Predictions{}
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("predictions: expected key, got %v", tok)
		}
		var raw *float64
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("predictions[%q]: %w", label, err)
		}
		if raw == nil {
			return fmt.Errorf("predictions[%q]: probability is null", label)
		}
		prob := *raw
		if _, dup := seen[label]; dup {
			return fmt.Errorf("predictions: duplicate label %q", label)
		}
		if math.IsNaN(prob) || prob < 0 || prob > 1 {
			return fmt.Errorf("predictions[%q]: probability %v out of range", label, prob)
		}
		seen[label] = struct{}{}
		out = append(out, Prediction{Label: label, Probability: prob})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*ps = out
	return nil
}

func (ps Predictions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range ps {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Probability)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Ranked returns a copy sorted by descending probability. Equal
// probabilities keep their original order.
func (ps Predictions) Ranked() Predictions {
	out := make(Predictions, len(ps))
	copy(out, ps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	return out
}

// AnalysisResult is one response of the analysis service. It is never
// modified after it has been received.
type AnalysisResult struct {
	ReportID       int64
	HealthScore    int
	TriageCategory TriageCategory
	Predictions    Predictions
	PredictedClass string
	Warnings       []string
}

// Clone returns a copy that shares no slices with r.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	out := *r
	if r.Predictions != nil {
		out.Predictions = make(Predictions, len(r.Predictions))
		copy(out.Predictions, r.Predictions)
	}
	if r.Warnings != nil {
		out.Warnings = make([]string, len(r.Warnings))
		copy(out.Warnings, r.Warnings)
	}
	return &out
}

func (r AnalysisResult) Band() ScoreBand {
	return BandFor(r.HealthScore)
}
