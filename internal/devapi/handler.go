package devapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"

	"mediguard/internal/models"
)

const maxUploadSize = 10 << 20

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type analysisBody struct {
	HealthScore    int                   `json:"health_score"`
	TriageCategory models.TriageCategory `json:"triage_category"`
	Predictions    models.Predictions    `json:"predictions"`
	PredictedClass string                `json:"predicted_class"`
	Warnings       []string              `json:"warnings"`
}

type analyzeResponse struct {
	Analysis analysisBody `json:"analysis"`
	ReportID int64        `json:"report_id"`
}

// Analyze scores a text payload or uploaded file. The file is read as
// plain text; there is no PDF extraction here.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	mode := r.FormValue("mode")
	var text string
	switch mode {
	case "pdf":
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Error retrieving file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, file); err != nil {
			http.Error(w, "Failed to read file", http.StatusInternalServerError)
			return
		}
		text = buf.String()
	case "text", "":
		text = r.FormValue("text")
	default:
		http.Error(w, "Unknown mode", http.StatusBadRequest)
		return
	}

	v := parseVitals(text)
	s := scoreVitals(v)

	rep := &models.Report{
		HealthScore:    s.health,
		TriageCategory: s.triage,
		Predictions:    s.predictions,
		PatientName:    v.patientName,
	}
	if err := h.repo.SaveReport(r.Context(), rep); err != nil {
		http.Error(w, "Failed to store report", http.StatusInternalServerError)
		return
	}

	log.WithFields(log.Fields{
		"report_id":    rep.ID,
		"mode":         mode,
		"health_score": s.health,
		"patient_id":   r.FormValue("patient_id"),
	}).Info("report analyzed")

	writeJSON(w, http.StatusOK, analyzeResponse{
		Analysis: analysisBody{
			HealthScore:    s.health,
			TriageCategory: s.triage,
			Predictions:    s.predictions,
			PredictedClass: s.predicted,
			Warnings:       s.warnings,
		},
		ReportID: rep.ID,
	})
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.repo.ListReports(r.Context())
	if err != nil {
		http.Error(w, "Failed to list reports", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]models.Report{"reports": reports})
}

type UpdateReportRequest struct {
	ReportTitle string `json:"report_title"`
}

func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid report ID", http.StatusBadRequest)
		return
	}

	var req UpdateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	title := strings.TrimSpace(req.ReportTitle)
	if title == "" {
		http.Error(w, "Missing report_title", http.StatusBadRequest)
		return
	}

	if err := h.repo.UpdateTitle(r.Context(), id, title); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update report", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "report_title": title})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	u, err := h.repo.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*models.User{"user": u})
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}
	u, err := h.repo.CreateUser(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			http.Error(w, "Email already registered", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]*models.User{"user": u})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analyze", h.Analyze)
	r.Get("/reports", h.ListReports)
	r.Patch("/reports/{id}", h.UpdateReport)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/signup", h.Signup)
}
