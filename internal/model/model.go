// Package model defines domain entities used by services and repositories.
package model

// User represents an account held by the credential store. The password hash
// is a bcrypt digest and is never serialized into responses.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
}

// Item is a single task record owned by exactly one user.
type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	OwnerID     int    `json:"ownerId"`
}

// ItemPatch carries a partial item update. Nil fields were not provided by
// the caller; non-nil fields overwrite the stored value, so an explicit
// false or empty string is distinguishable from an omitted field.
type ItemPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
