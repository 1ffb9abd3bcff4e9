package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictions_KeepsServiceOrder(t *testing.T) {
	var ps Predictions
	require.NoError(t, json.Unmarshal([]byte(`{"Diabetes":0.3,"Healthy":0.7,"Anemia":0}`), &ps))

	require.Len(t, ps, 3)
	assert.Equal(t, "Diabetes", ps[0].Label)
	assert.Equal(t, "Healthy", ps[1].Label)
	assert.Equal(t, "Anemia", ps[2].Label)
}

func TestPredictions_RejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"duplicate":    `{"A":0.5,"A":0.5}`,
		"out of range": `{"A":1.5}`,
		"negative":     `{"A":-0.1}`,
		"not object":   `[0.5]`,
		"string value": `{"A":"high"}`,
		"null value":   `{"A":null}`,
		"null second":  `{"A":0.5,"B":null}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var ps Predictions
			assert.Error(t, json.Unmarshal([]byte(body), &ps))
		})
	}
}

func TestPredictions_NullLeavesNil(t *testing.T) {
	var wrapper struct {
		Predictions *Predictions `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"predictions":null}`), &wrapper))
	assert.Nil(t, wrapper.Predictions)

	require.NoError(t, json.Unmarshal([]byte(`{"predictions":{}}`), &wrapper))
	require.NotNil(t, wrapper.Predictions)
	assert.Empty(t, *wrapper.Predictions)
}

func TestPredictions_RankedIsStableDescending(t *testing.T) {
	ps := Predictions{
		{Label: "Diabetes", Probability: 0.3},
		{Label: "Healthy", Probability: 0.7},
		{Label: "Hypertension", Probability: 0.3},
		{Label: "Obesity", Probability: 0.1},
	}

	ranked := ps.Ranked()

	labels := make([]string, 0, len(ranked))
	for i, p := range ranked {
		labels = append(labels, p.Label)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Probability, p.Probability)
		}
	}
	assert.Equal(t, []string{"Healthy", "Diabetes", "Hypertension", "Obesity"}, labels)
	assert.Equal(t, "Diabetes", ps[0].Label, "input must not be reordered")
}

func TestPredictions_MarshalKeepsOrder(t *testing.T) {
	ps := Predictions{{Label: "Z", Probability: 0.25}, {Label: "A", Probability: 0.75}}
	b, err := json.Marshal(ps)
	require.NoError(t, err)
	assert.Equal(t, `{"Z":0.25,"A":0.75}`, string(b))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandHigh, BandFor(100))
	assert.Equal(t, BandHigh, BandFor(80))
	assert.Equal(t, BandMedium, BandFor(79))
	assert.Equal(t, BandMedium, BandFor(60))
	assert.Equal(t, BandLow, BandFor(59))
	assert.Equal(t, BandLow, BandFor(0))
}

func TestPrediction_Percent(t *testing.T) {
	assert.Equal(t, 70, Prediction{Probability: 0.7}.Percent())
	assert.Equal(t, 30, Prediction{Probability: 0.3}.Percent())
}

func TestAnalysisResult_CloneSharesNothing(t *testing.T) {
	orig := &AnalysisResult{
		ReportID:    3,
		Predictions: Predictions{{Label: "Healthy", Probability: 0.9}},
		Warnings:    []string{"BMI not provided"},
	}

	c := orig.Clone()
	c.Predictions[0].Probability = 0.1
	c.Warnings[0] = "changed"

	assert.Equal(t, 0.9, orig.Predictions[0].Probability)
	assert.Equal(t, "BMI not provided", orig.Warnings[0])
	assert.Equal(t, int64(3), c.ReportID)

	var none *AnalysisResult
	assert.Nil(t, none.Clone())
}
