package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/apex/log"

	"mediguard/internal/models"
)

// Keys in the persisted store.
const (
	KeyUser          = "user"
	KeyLanguage      = "language"
	KeySignOutNotice = "signOutSuccess"
)

var ErrNoUser = errors.New("no signed-in user")

// State is the process-wide client state. It is loaded once at startup and
// only changes through its setters, which write through to the store.
type State struct {
	mu    sync.RWMutex
	store *Store
	user  *models.User
}

// Load builds the state from the store. A corrupt user entry is logged and
// treated as signed out.
func Load(store *Store) *State {
	st := &State{store: store}

	raw, ok := store.Get(KeyUser)
	if !ok || raw == "" {
		return st
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.WithError(err).Warn("failed to parse stored user, ignoring")
		return st
	}
	st.user = &u
	return st
}

// User returns a copy of the signed-in user, or nil.
func (s *State) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// PatientID is the identifier sent with analysis requests; empty when
// nobody is signed in.
func (s *State) PatientID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

func (s *State) SetUser(u models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(KeyUser, string(b)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.user = &u
	return nil
}

// UpdateUserName rewrites the stored user's display name.
func (s *State) UpdateUserName(name string) error {
	u := s.User()
	if u == nil {
		return ErrNoUser
	}
	u.Name = name
	return s.SetUser(*u)
}

// Language returns the raw stored language code, or "" when unset.
func (s *State) Language() string {
	v, _ := s.store.Get(KeyLanguage)
	return v
}

func (s *State) SetLanguage(code string) error {
	if err := s.store.Set(KeyLanguage, code); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	return nil
}

// Clear signs the user out. The language choice survives sign-out.
func (s *State) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(KeyUser); err != nil {
		return fmt.Errorf("clear user: %w", err)
	}
	s.user = nil
	return s.store.Set(KeySignOutNotice, "true")
}

// ConsumeSignOutNotice reports whether a sign-out just happened and clears
// the flag so it is shown once.
func (s *State) ConsumeSignOutNotice() bool {
	v, ok := s.store.Get(KeySignOutNotice)
	if !ok {
		return false
	}
	if err := s.store.Delete(KeySignOutNotice); err != nil {
		log.WithError(err).Warn("failed to clear sign-out notice")
	}
	return v == "true"
}
