// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with this application.
//
// Handlers depend only on this interface, never on a concrete backend.
// Deployments use the MongoDB implementation; local development and tests
// use SQLite or the in-memory fake. Switching backends is one line in
// main.go and zero handler changes.
package storage

import (
	"context"
	"errors"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/types"
)

// Sentinel errors every backend maps its driver-specific failures onto.
// The response package translates them into HTTP statuses, so handlers
// never need backend-specific error knowledge.
var (
	// ErrNotFound means no record with the given identifier exists.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken means a signup violated the unique-username
	// constraint on user accounts.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidID means the identifier is not of the shape the backend
	// assigns (e.g. not a valid ObjectID hex string).
	ErrInvalidID = errors.New("invalid id")
)

// Storage is the database contract. Identifiers are store-assigned and
// rendered as strings: ObjectID hex for MongoDB, decimal for SQLite.
// All methods honour context cancellation where the driver supports it.
type Storage interface {
	// CreateStudent inserts a new student record and returns it with its
	// assigned identifier.
	CreateStudent(ctx context.Context, student types.Student) (types.Student, error)

	// GetStudents returns every student record.
	// Returns an empty slice (not nil) if there are none.
	GetStudents(ctx context.Context) ([]types.Student, error)

	// GetStudentByID fetches a single student record.
	// Returns ErrNotFound if the identifier does not resolve.
	GetStudentByID(ctx context.Context, id string) (types.Student, error)

	// UpdateStudentByID overwrites every field of an existing record and
	// returns the stored result. Returns ErrNotFound for unknown ids.
	UpdateStudentByID(ctx context.Context, id string, student types.Student) (types.Student, error)

	// DeleteStudentByID removes a student record permanently.
	// Returns ErrNotFound for unknown ids.
	DeleteStudentByID(ctx context.Context, id string) error

	// CreateUser inserts a new user account and returns it with its
	// assigned identifier. Returns ErrUsernameTaken on a duplicate
	// username.
	CreateUser(ctx context.Context, user types.User) (types.User, error)

	// GetUsers returns every user account.
	GetUsers(ctx context.Context) ([]types.User, error)

	// GetUserByID fetches a single user account by identifier.
	GetUserByID(ctx context.Context, id string) (types.User, error)

	// GetUserByUsername fetches a single user account by its unique
	// username. Returns ErrNotFound if no such account exists.
	GetUserByUsername(ctx context.Context, username string) (types.User, error)

	// UpdateUserByID overwrites every field of an existing account and
	// returns the stored result.
	UpdateUserByID(ctx context.Context, id string, user types.User) (types.User, error)

	// DeleteUserByID removes a user account permanently.
	DeleteUserByID(ctx context.Context, id string) error
}
