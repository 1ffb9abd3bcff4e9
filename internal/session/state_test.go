package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediguard/internal/models"
)

func newTestState(t *testing.T) (*State, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := OpenStore(path)
	require.NoError(t, err)
	return Load(store), path
}

func TestState_UserRoundTrip(t *testing.T) {
	st, path := newTestState(t)
	assert.Nil(t, st.User())
	assert.Empty(t, st.PatientID())

	require.NoError(t, st.SetUser(models.User{ID: "u-1", Name: "Asha", Email: "asha@example.com"}))

	store, err := OpenStore(path)
	require.NoError(t, err)
	reloaded := Load(store)
	require.NotNil(t, reloaded.User())
	assert.Equal(t, "Asha", reloaded.User().Name)
	assert.Equal(t, "u-1", reloaded.PatientID())
}

func TestState_UpdateUserName(t *testing.T) {
	st, _ := newTestState(t)
	assert.ErrorIs(t, st.UpdateUserName("x"), ErrNoUser)

	require.NoError(t, st.SetUser(models.User{ID: "u-1", Name: "Old"}))
	require.NoError(t, st.UpdateUserName("New"))
	assert.Equal(t, "New", st.User().Name)
}

func TestState_ClearKeepsLanguageAndSetsNotice(t *testing.T) {
	st, _ := newTestState(t)
	require.NoError(t, st.SetUser(models.User{ID: "u-1"}))
	require.NoError(t, st.SetLanguage("ta"))

	require.NoError(t, st.Clear())

	assert.Nil(t, st.User())
	assert.Equal(t, "ta", st.Language())
	assert.True(t, st.ConsumeSignOutNotice())
	assert.False(t, st.ConsumeSignOutNotice())
}

func TestLoad_IgnoresCorruptUser(t *testing.T) {
	store, err := OpenStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyUser, "{broken"))

	assert.Nil(t, Load(store).User())
}
