package devapi

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"mediguard/internal/models"
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type postgresRepo struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) SaveReport(ctx context.Context, rep *models.Report) error {
	predictions, err := rep.Predictions.MarshalJSON()
	if err != nil {
		return err
	}

	// predictions is stored as text, not jsonb, so label order survives.
	query := `
		INSERT INTO reports (report_title, health_score, triage_category, predictions, patient_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	row := r.db.QueryRowContext(ctx, query,
		rep.ReportTitle, rep.HealthScore, string(rep.TriageCategory), string(predictions), rep.PatientName)
	if err := row.Scan(&rep.ID, &rep.CreatedAt.Time); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	rep.CreatedAt.Time = rep.CreatedAt.UTC()
	return nil
}

func (r *postgresRepo) ListReports(ctx context.Context) ([]models.Report, error) {
	query := `SELECT id, report_title, health_score, triage_category, predictions, patient_name, created_at
		FROM reports ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Report{}
	for rows.Next() {
		var rep models.Report
		var triage, predictions string
		if err := rows.Scan(
			&rep.ID,
			&rep.ReportTitle,
			&rep.HealthScore,
			&triage,
			&predictions,
			&rep.PatientName,
			&rep.CreatedAt.Time,
		); err != nil {
			return nil, err
		}
		rep.TriageCategory = models.TriageCategory(triage)
		rep.CreatedAt.Time = rep.CreatedAt.UTC()
		if err := rep.Predictions.UnmarshalJSON([]byte(predictions)); err != nil {
			return nil, fmt.Errorf("report %d: %w", rep.ID, err)
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func (r *postgresRepo) UpdateTitle(ctx context.Context, id int64, title string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reports SET report_title = $1 WHERE id = $2`, title, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := models.User{ID: uuid.New().String(), Name: name, Email: email}
	query := `
		INSERT INTO accounts (id, name, email, email_key, password_hash)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query, u.ID, name, email, emailKey(email), hash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return &u, nil
}

func (r *postgresRepo) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	query := `SELECT id, name, email, password_hash FROM accounts WHERE email_key = $1`

	var u models.User
	var hash []byte
	err := r.db.QueryRowContext(ctx, query, emailKey(email)).Scan(&u.ID, &u.Name, &u.Email, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
