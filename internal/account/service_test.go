package account

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediguard/internal/models"
	"mediguard/internal/session"
)

type fakeAuth struct {
	calls int
	user  *models.User
	err   error
}

func (a *fakeAuth) Login(ctx context.Context, email, password string) (*models.User, error) {
	a.calls++
	return a.user, a.err
}

func (a *fakeAuth) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	a.calls++
	return a.user, a.err
}

func newState(t *testing.T) *session.State {
	t.Helper()
	store, err := session.OpenStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return session.Load(store)
}

func TestLogin_PersistsUser(t *testing.T) {
	st := newState(t)
	auth := &fakeAuth{user: &models.User{ID: "7", Name: "Asha", Email: "asha@example.com"}}
	svc := NewService(auth, st)

	u, err := svc.Login(context.Background(), " asha@example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "7", u.ID)
	assert.Equal(t, "7", st.PatientID())
	assert.Equal(t, "Asha", svc.Current().Name)
}

func TestLogin_Errors(t *testing.T) {
	st := newState(t)
	auth := &fakeAuth{err: errors.New("401 unauthorized")}
	svc := NewService(auth, st)

	_, err := svc.Login(context.Background(), "", "x")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, auth.calls)

	_, err = svc.Login(context.Background(), "a@b.c", "bad")
	assert.ErrorContains(t, err, "login")
	assert.Nil(t, st.User())
}

func TestSignup_Validation(t *testing.T) {
	auth := &fakeAuth{user: &models.User{ID: "1"}}
	svc := NewService(auth, newState(t))

	_, err := svc.Signup(context.Background(), SignupInput{Name: "A", Email: "a@b.c", Password: "one", ConfirmPassword: "two"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = svc.Signup(context.Background(), SignupInput{Name: " ", Email: "a@b.c", Password: "x", ConfirmPassword: "x"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, auth.calls)

	u, err := svc.Signup(context.Background(), SignupInput{Name: "A", Email: "a@b.c", Password: "x", ConfirmPassword: "x"})
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
	assert.Equal(t, 1, auth.calls)
}

func TestSignOutAndUpdateProfile(t *testing.T) {
	st := newState(t)
	svc := NewService(&fakeAuth{}, st)
	require.NoError(t, st.SetUser(models.User{ID: "1", Name: "Old"}))

	assert.ErrorIs(t, svc.UpdateProfile("  "), ErrMissingCredentials)
	require.NoError(t, svc.UpdateProfile("New"))
	assert.Equal(t, "New", st.User().Name)

	require.NoError(t, svc.SignOut())
	assert.Nil(t, svc.Current())
	assert.True(t, st.ConsumeSignOutNotice())
	assert.ErrorIs(t, svc.UpdateProfile("x"), session.ErrNoUser)
}
