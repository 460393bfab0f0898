// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

// Student represents a student record.
//
// The JSON keys are capitalised (Names, Class, Field, PositionId) because
// that is the wire format existing API consumers already depend on.
// The validate:"required" tags are checked by go-playground/validator
// before a record is persisted.
type Student struct {
	ID         string `json:"id,omitempty"`
	Names      string `json:"Names"      validate:"required"`
	Class      string `json:"Class"      validate:"required"`
	Field      string `json:"Field"      validate:"required"`
	PositionId string `json:"PositionId" validate:"required"`
}

// User represents a stored user account.
//
// PasswordHash holds the bcrypt hash of the signup password. The json:"-"
// tag guarantees the hash never appears in any API response.
type User struct {
	ID           string `json:"id,omitempty"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	PositionId   string `json:"positionId"`
}

// Credentials is the request body for signup, login, and user updates.
// The plaintext password only ever lives in this struct; it is hashed
// before storage and embedded as-submitted in issued tokens.
type Credentials struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	PositionId string `json:"positionId"`
}
