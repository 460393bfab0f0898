// Package storagetest provides an in-memory storage.Storage for handler
// tests. It mirrors the backend contracts exactly (sentinel errors,
// username uniqueness, store-assigned string identifiers) without any
// external process.
package storagetest

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/types"
)

// Fake is an in-memory storage.Storage. Safe for concurrent use.
//
// FailWith, when set, is returned by every method — used to test the
// store-failure (500) paths.
type Fake struct {
	mu       sync.Mutex
	nextID   int64
	students map[string]types.Student
	users    map[string]types.User

	FailWith error

	// Calls records method names in invocation order, so tests can
	// assert that the auth gate short-circuits before storage is hit.
	Calls []string
}

var _ storage.Storage = (*Fake)(nil)

// New returns an empty Fake.
func New() *Fake {
	return &Fake{
		students: make(map[string]types.Student),
		users:    make(map[string]types.User),
	}
}

func (f *Fake) record(call string) error {
	f.Calls = append(f.Calls, call)
	return f.FailWith
}

func (f *Fake) assignID() string {
	f.nextID++
	return strconv.FormatInt(f.nextID, 10)
}

func (f *Fake) CreateStudent(_ context.Context, student types.Student) (types.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateStudent"); err != nil {
		return types.Student{}, err
	}

	student.ID = f.assignID()
	f.students[student.ID] = student
	return student, nil
}

func (f *Fake) GetStudents(_ context.Context) ([]types.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetStudents"); err != nil {
		return nil, err
	}

	students := make([]types.Student, 0, len(f.students))
	for _, s := range f.students {
		students = append(students, s)
	}
	return students, nil
}

func (f *Fake) GetStudentByID(_ context.Context, id string) (types.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetStudentByID"); err != nil {
		return types.Student{}, err
	}

	student, ok := f.students[id]
	if !ok {
		return types.Student{}, fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
	}
	return student, nil
}

func (f *Fake) UpdateStudentByID(_ context.Context, id string, student types.Student) (types.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateStudentByID"); err != nil {
		return types.Student{}, err
	}

	if _, ok := f.students[id]; !ok {
		return types.Student{}, fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
	}
	student.ID = id
	f.students[id] = student
	return student, nil
}

func (f *Fake) DeleteStudentByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteStudentByID"); err != nil {
		return err
	}

	if _, ok := f.students[id]; !ok {
		return fmt.Errorf("no student found with id %s: %w", id, storage.ErrNotFound)
	}
	delete(f.students, id)
	return nil
}

func (f *Fake) CreateUser(_ context.Context, user types.User) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateUser"); err != nil {
		return types.User{}, err
	}

	for _, u := range f.users {
		if u.Username == user.Username {
			return types.User{}, fmt.Errorf("username %q: %w", user.Username, storage.ErrUsernameTaken)
		}
	}
	user.ID = f.assignID()
	f.users[user.ID] = user
	return user, nil
}

func (f *Fake) GetUsers(_ context.Context) ([]types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetUsers"); err != nil {
		return nil, err
	}

	users := make([]types.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *Fake) GetUserByID(_ context.Context, id string) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetUserByID"); err != nil {
		return types.User{}, err
	}

	user, ok := f.users[id]
	if !ok {
		return types.User{}, fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
	}
	return user, nil
}

func (f *Fake) GetUserByUsername(_ context.Context, username string) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetUserByUsername"); err != nil {
		return types.User{}, err
	}

	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return types.User{}, fmt.Errorf("no user found with username %q: %w", username, storage.ErrNotFound)
}

func (f *Fake) UpdateUserByID(_ context.Context, id string, user types.User) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateUserByID"); err != nil {
		return types.User{}, err
	}

	if _, ok := f.users[id]; !ok {
		return types.User{}, fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
	}
	user.ID = id
	f.users[id] = user
	return user, nil
}

func (f *Fake) DeleteUserByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteUserByID"); err != nil {
		return err
	}

	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("no user found with id %s: %w", id, storage.ErrNotFound)
	}
	delete(f.users, id)
	return nil
}
