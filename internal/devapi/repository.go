package devapi

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mediguard/internal/models"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Repository interface {
	SaveReport(ctx context.Context, r *models.Report) error
	ListReports(ctx context.Context) ([]models.Report, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	CreateUser(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type account struct {
	user         models.User
	passwordHash []byte
}

type memoryRepo struct {
	mu       sync.RWMutex
	nextID   int64
	reports  map[int64]models.Report
	accounts map[string]account
}

// NewMemoryRepository keeps everything in process memory. Data is lost on
// restart.
func NewMemoryRepository() Repository {
	return &memoryRepo{
		reports:  map[int64]models.Report{},
		accounts: map[string]account{},
	}
}

// SaveReport assigns the next id and a creation time when unset.
func (r *memoryRepo) SaveReport(ctx context.Context, rep *models.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rep.ID = r.nextID
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = models.Timestamp{Time: time.Now().UTC()}
	}
	r.reports[rep.ID] = *rep
	return nil
}

// ListReports returns newest first.
func (r *memoryRepo) ListReports(ctx context.Context) ([]models.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Report, 0, len(r.reports))
	for _, rep := range r.reports {
		out = append(out, rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memoryRepo) UpdateTitle(ctx context.Context, id int64, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return ErrNotFound
	}
	rep.ReportTitle = title
	r.reports[id] = rep
	return nil
}

func (r *memoryRepo) CreateUser(ctx context.Context, name, email, password string) (*models.User, error) {
	key := emailKey(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[key]; ok {
		return nil, ErrEmailTaken
	}
	u := models.User{ID: uuid.New().String(), Name: name, Email: email}
	r.accounts[key] = account{user: u, passwordHash: hash}
	return &u, nil
}

func (r *memoryRepo) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	key := emailKey(email)
	r.mu.RLock()
	acc, ok := r.accounts[key]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	u := acc.user
	return &u, nil
}
