// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite stores everything in a single file (or in memory), which makes
// it the backend of choice for local development and tests — no server
// process, no network. Deployments use the mongodb backend instead;
// both satisfy the same interface, so handlers cannot tell them apart.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/mattn/go-sqlite3"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/config"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/types"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is a connection pool, safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.Storage.Path and bootstraps the
// students and users tables. CREATE TABLE IF NOT EXISTS is idempotent,
// so running it on every startup is safe.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			names       TEXT NOT NULL,
			class       TEXT NOT NULL,
			field       TEXT NOT NULL,
			position_id TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create students table: %w", err)
	}

	// username UNIQUE mirrors the unique index the mongodb backend
	// creates; both backends surface storage.ErrUsernameTaken.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			position_id   TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create users table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection pool. Called during graceful shutdown.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// rowID parses a client-supplied identifier into the integer primary key
// this backend assigns, mapping parse failures to storage.ErrInvalidID.
func rowID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func (s *SQLite) CreateStudent(ctx context.Context, student types.Student) (types.Student, error) {
	result, err := s.Db.ExecContext(ctx,
		"INSERT INTO students (names, class, field, position_id) VALUES (?, ?, ?, ?)",
		student.Names, student.Class, student.Field, student.PositionId,
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	student.ID = strconv.FormatInt(lastID, 10)
	return student, nil
}

func (s *SQLite) GetStudents(ctx context.Context) ([]types.Student, error) {
	rows, err := s.Db.QueryContext(ctx,
		"SELECT id, names, class, field, position_id FROM students",
	)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice so JSON renders [] not null.
	students := make([]types.Student, 0)

	for rows.Next() {
		var (
			student types.Student
			id      int64
		)
		if err := rows.Scan(&id, &student.Names, &student.Class,
			&student.Field, &student.PositionId); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		student.ID = strconv.FormatInt(id, 10)
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

func (s *SQLite) GetStudentByID(ctx context.Context, id string) (types.Student, error) {
	intID, err := rowID(id)
	if err != nil {
		return types.Student{}, err
	}

	var student types.Student
	err = s.Db.QueryRowContext(ctx,
		"SELECT names, class, field, position_id FROM students WHERE id = ? LIMIT 1",
		intID,
	).Scan(&student.Names, &student.Class, &student.Field, &student.PositionId)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Student{}, fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	student.ID = id
	return student, nil
}

func (s *SQLite) UpdateStudentByID(ctx context.Context, id string, student types.Student) (types.Student, error) {
	intID, err := rowID(id)
	if err != nil {
		return types.Student{}, err
	}

	result, err := s.Db.ExecContext(ctx,
		"UPDATE students SET names = ?, class = ?, field = ?, position_id = ? WHERE id = ?",
		student.Names, student.Class, student.Field, student.PositionId, intID,
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: rows affected: %w", err)
	}
	if affected == 0 {
		return types.Student{}, fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
	}

	// Re-fetch so the caller gets exactly what is stored.
	return s.GetStudentByID(ctx, id)
}

func (s *SQLite) DeleteStudentByID(ctx context.Context, id string) error {
	intID, err := rowID(id)
	if err != nil {
		return err
	}

	result, err := s.Db.ExecContext(ctx, "DELETE FROM students WHERE id = ?", intID)
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
	}

	return nil
}

func (s *SQLite) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	result, err := s.Db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, position_id) VALUES (?, ?, ?)",
		user.Username, user.PasswordHash, user.PositionId,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.User{}, fmt.Errorf("username %q: %w", user.Username, storage.ErrUsernameTaken)
		}
		return types.User{}, fmt.Errorf("CreateUser: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.User{}, fmt.Errorf("CreateUser: last insert id: %w", err)
	}

	user.ID = strconv.FormatInt(lastID, 10)
	return user, nil
}

func (s *SQLite) GetUsers(ctx context.Context) ([]types.User, error) {
	rows, err := s.Db.QueryContext(ctx,
		"SELECT id, username, password_hash, position_id FROM users",
	)
	if err != nil {
		return nil, fmt.Errorf("GetUsers: query: %w", err)
	}
	defer rows.Close()

	users := make([]types.User, 0)

	for rows.Next() {
		var (
			user types.User
			id   int64
		)
		if err := rows.Scan(&id, &user.Username, &user.PasswordHash,
			&user.PositionId); err != nil {
			return nil, fmt.Errorf("GetUsers: scan row: %w", err)
		}
		user.ID = strconv.FormatInt(id, 10)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetUsers: rows iteration: %w", err)
	}

	return users, nil
}

func (s *SQLite) GetUserByID(ctx context.Context, id string) (types.User, error) {
	intID, err := rowID(id)
	if err != nil {
		return types.User{}, err
	}

	var user types.User
	err = s.Db.QueryRowContext(ctx,
		"SELECT username, password_hash, position_id FROM users WHERE id = ? LIMIT 1",
		intID,
	).Scan(&user.Username, &user.PasswordHash, &user.PositionId)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.User{}, fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
		}
		return types.User{}, fmt.Errorf("GetUserByID: scan: %w", err)
	}

	user.ID = id
	return user, nil
}

func (s *SQLite) GetUserByUsername(ctx context.Context, username string) (types.User, error) {
	var (
		user types.User
		id   int64
	)
	err := s.Db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, position_id FROM users WHERE username = ? LIMIT 1",
		username,
	).Scan(&id, &user.Username, &user.PasswordHash, &user.PositionId)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.User{}, fmt.Errorf("no user found with username %q: %w", username, storage.ErrNotFound)
		}
		return types.User{}, fmt.Errorf("GetUserByUsername: scan: %w", err)
	}

	user.ID = strconv.FormatInt(id, 10)
	return user, nil
}

func (s *SQLite) UpdateUserByID(ctx context.Context, id string, user types.User) (types.User, error) {
	intID, err := rowID(id)
	if err != nil {
		return types.User{}, err
	}

	result, err := s.Db.ExecContext(ctx,
		"UPDATE users SET username = ?, password_hash = ?, position_id = ? WHERE id = ?",
		user.Username, user.PasswordHash, user.PositionId, intID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.User{}, fmt.Errorf("username %q: %w", user.Username, storage.ErrUsernameTaken)
		}
		return types.User{}, fmt.Errorf("UpdateUserByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.User{}, fmt.Errorf("UpdateUserByID: rows affected: %w", err)
	}
	if affected == 0 {
		return types.User{}, fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
	}

	return s.GetUserByID(ctx, id)
}

func (s *SQLite) DeleteUserByID(ctx context.Context, id string) error {
	intID, err := rowID(id)
	if err != nil {
		return err
	}

	result, err := s.Db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", intID)
	if err != nil {
		return fmt.Errorf("DeleteUserByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteUserByID: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
	}

	return nil
}
