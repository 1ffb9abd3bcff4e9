package devapi

import (
	"math"
	"strconv"
	"strings"

	"mediguard/internal/models"
)

// Risk thresholds of the demo heuristic.
const (
	bmiLimit      = 30
	glucoseLimit  = 125
	systolicLimit = 140
)

type vitals struct {
	patientName string
	bmi         *float64
	glucose     *float64
	systolic    *float64
}

// parseVitals reads "Name: value" segments out of a text payload. Unknown
// names are ignored.
func parseVitals(text string) vitals {
	var v vitals
	for _, line := range strings.Split(text, "\n") {
		for _, seg := range strings.Split(line, ", ") {
			name, value, ok := strings.Cut(seg, ":")
			if !ok {
				continue
			}
			name = strings.ToLower(strings.TrimSpace(name))
			value = strings.TrimSpace(value)

			switch {
			case name == "patient name":
				v.patientName = value
			case strings.HasPrefix(name, "bmi"):
				v.bmi = parseNumber(value)
			case strings.Contains(name, "glucose") && !strings.Contains(name, "pp"):
				v.glucose = parseNumber(value)
			case strings.Contains(name, "blood pressure") || name == "bp":
				systolic, _, _ := strings.Cut(value, "/")
				v.systolic = parseNumber(systolic)
			}
		}
	}
	return v
}

func parseNumber(s string) *float64 {
	s = strings.TrimRight(strings.TrimSpace(s), ".,")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

type score struct {
	health      int
	triage      models.TriageCategory
	predictions models.Predictions
	predicted   string
	warnings    []string
}

func scoreVitals(v vitals) score {
	obese := v.bmi != nil && *v.bmi > bmiLimit
	diabetic := v.glucose != nil && *v.glucose > glucoseLimit
	hypertensive := v.systolic != nil && *v.systolic > systolicLimit

	risk := 0
	for _, flagged := range []bool{obese, diabetic, hypertensive} {
		if flagged {
			risk++
		}
	}

	health := max(10, 100-risk*15)
	triage := models.TriageGreen
	switch {
	case health < 60:
		triage = models.TriageRed
	case health < 80:
		triage = models.TriageYellow
	}

	weight := func(flagged bool) float64 {
		if flagged {
			return 0.9
		}
		return 0.1
	}
	raw := models.Predictions{
		{Label: "Healthy", Probability: math.Max(0.1, 1-0.3*float64(risk))},
		{Label: "Diabetes", Probability: weight(diabetic)},
		{Label: "Hypertension", Probability: weight(hypertensive)},
		{Label: "Obesity", Probability: weight(obese)},
	}
	var total float64
	for _, p := range raw {
		total += p.Probability
	}
	for i := range raw {
		raw[i].Probability = math.Round(raw[i].Probability/total*100) / 100
	}

	var warnings []string
	if v.bmi == nil {
		warnings = append(warnings, "BMI not provided")
	}
	if v.glucose == nil {
		warnings = append(warnings, "Fasting glucose not provided")
	}
	if v.systolic == nil {
		warnings = append(warnings, "Blood pressure not provided")
	}
	if warnings == nil {
		warnings = []string{}
	}

	return score{
		health:      health,
		triage:      triage,
		predictions: raw,
		predicted:   raw.Ranked()[0].Label,
		warnings:    warnings,
	}
}
