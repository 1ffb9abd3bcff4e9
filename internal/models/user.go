package models

// User is the signed-in account as returned by the auth endpoints and kept
// in the persisted client state.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
