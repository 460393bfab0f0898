package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/config"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/types"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Path = ":memory:"

	db, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestStudentCRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := db.CreateStudent(ctx, types.Student{
		Names: "Jane Doe", Class: "S5", Field: "MPC", PositionId: "12",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// Round-trip: fetch yields field-for-field equal data.
	got, err := db.GetStudentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := db.GetStudents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	updated, err := db.UpdateStudentByID(ctx, created.ID, types.Student{
		Names: "Jane Doe", Class: "S6", Field: "MPC", PositionId: "12",
	})
	require.NoError(t, err)
	assert.Equal(t, "S6", updated.Class)
	assert.Equal(t, created.ID, updated.ID)

	require.NoError(t, db.DeleteStudentByID(ctx, created.ID))

	_, err = db.GetStudentByID(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStudentListEmpty(t *testing.T) {
	db := newTestDB(t)

	list, err := db.GetStudents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStudentNotFound(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.UpdateStudentByID(ctx, "999", types.Student{
		Names: "x", Class: "x", Field: "x", PositionId: "x",
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = db.DeleteStudentByID(ctx, "999")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStudentInvalidID(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetStudentByID(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, storage.ErrInvalidID)
}

func TestUserCRUDAndUniqueness(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := db.CreateUser(ctx, types.User{
		Username: "a", PasswordHash: "hash", PositionId: "1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// Username uniqueness is a store invariant.
	_, err = db.CreateUser(ctx, types.User{
		Username: "a", PasswordHash: "other", PositionId: "2",
	})
	assert.ErrorIs(t, err, storage.ErrUsernameTaken)

	byName, err := db.GetUserByUsername(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	_, err = db.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	updated, err := db.UpdateUserByID(ctx, created.ID, types.User{
		Username: "b", PasswordHash: "hash2", PositionId: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "b", updated.Username)

	users, err := db.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.NoError(t, db.DeleteUserByID(ctx, created.ID))
	err = db.DeleteUserByID(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
