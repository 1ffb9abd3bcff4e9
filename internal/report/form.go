package report

import (
	"fmt"
	"sort"
	"strings"

	"mediguard/internal/platform/backend"
)

type Mode string

const (
	ModeManual     Mode = "manual"
	ModeFileUpload Mode = "upload"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// VitalNames is the intake catalogue. It also fixes the order vitals are
// written into the text payload.
var VitalNames = []string{
	"Heart Rate (bpm)", "Blood Pressure (mmHg)", "Temperature (°F)", "SpO2 (%)",
	"Resp. Rate (bpm)", "BMI", "Glucose Fasting (mg/dL)", "Glucose PP (mg/dL)",
	"HbA1c (%)", "Total Cholesterol", "LDL Cholesterol", "HDL Cholesterol",
	"Triglycerides", "Hemoglobin (g/dL)", "WBC Count (K/uL)", "RBC Count (M/uL)",
	"Platelets (K/uL)", "Hematocrit (%)", "ALT (U/L)", "AST (U/L)",
	"Creatinine (mg/dL)", "BUN (mg/dL)", "Sodium (mEq/L)", "Potassium (mEq/L)",
}

// Attachment is an uploaded report file.
type Attachment struct {
	Name string
	Data []byte
}

// SubmissionForm is the editable draft. Vitals is sparse: a missing or
// empty value means the vital was not entered.
type SubmissionForm struct {
	PatientName  string
	Age          string
	Gender       Gender
	ReportDate   string
	Observations string
	Vitals       map[string]string
	Mode         Mode
	File         *Attachment
}

func NewForm() SubmissionForm {
	return SubmissionForm{
		Gender: GenderMale,
		Mode:   ModeManual,
		Vitals: map[string]string{},
	}
}

// Validate checks the draft can be submitted.
func (f SubmissionForm) Validate() error {
	if f.Mode == ModeFileUpload && f.File == nil {
		return ErrFileRequired
	}
	return nil
}

// TextPayload serialises demographics, observations and every populated
// vital into the single text blob the analysis service reads.
func (f SubmissionForm) TextPayload() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Patient Name: %s, Age: %s, Gender: %s, Date: %s. \n",
		f.PatientName, f.Age, f.Gender, f.ReportDate)
	fmt.Fprintf(&b, "Observations: %s \n", f.Observations)
	for _, name := range f.vitalOrder() {
		if v := f.Vitals[name]; v != "" {
			fmt.Fprintf(&b, "%s: %s, ", name, v)
		}
	}
	return b.String()
}

// vitalOrder lists catalogue vitals first, then any others by name.
func (f SubmissionForm) vitalOrder() []string {
	known := make(map[string]struct{}, len(VitalNames))
	order := make([]string, 0, len(f.Vitals))
	for _, name := range VitalNames {
		known[name] = struct{}{}
		if _, ok := f.Vitals[name]; ok {
			order = append(order, name)
		}
	}
	var extra []string
	for name := range f.Vitals {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(order, extra...)
}

func (f SubmissionForm) request(patientID string) backend.AnalyzeRequest {
	if f.Mode == ModeFileUpload {
		data := f.File.Data
		if data == nil {
			data = []byte{}
		}
		return backend.AnalyzeRequest{
			FileName:  f.File.Name,
			File:      data,
			PatientID: patientID,
		}
	}
	return backend.AnalyzeRequest{
		Text:      f.TextPayload(),
		PatientID: patientID,
	}
}

func (f SubmissionForm) clone() SubmissionForm {
	out := f
	out.Vitals = make(map[string]string, len(f.Vitals))
	for k, v := range f.Vitals {
		out.Vitals[k] = v
	}
	if f.File != nil {
		file := *f.File
		out.File = &file
	}
	return out
}
