package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/auth"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage/storagetest"
)

func TestSignupHashesPassword(t *testing.T) {
	fake := storagetest.New()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/student/signup",
		strings.NewReader(`{"username":"a","password":"p","positionId":"1"}`))
	Signup(fake)(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	// Stored hash verifies against the password but is not the password.
	stored, err := fake.GetUserByUsername(context.Background(), "a")
	require.NoError(t, err)
	require.NotEqual(t, "p", stored.PasswordHash)
	require.NoError(t, auth.CheckPassword(stored.PasswordHash, "p"))

	// Neither the password field nor the hash leaks into the response.
	assert.NotContains(t, w.Body.String(), `"password"`)
	assert.NotContains(t, w.Body.String(), stored.PasswordHash)
}

func TestSignupRequiresUsernameAndPassword(t *testing.T) {
	fake := storagetest.New()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/student/signup",
		strings.NewReader(`{"positionId":"1"}`))
	Signup(fake)(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "field Username is required")
	assert.Empty(t, fake.Calls)
}

func TestLoginUnknownUserReturnsNoToken(t *testing.T) {
	fake := storagetest.New()
	tokens := auth.NewTokenService("test-secret")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/student/login",
		strings.NewReader(`{"username":"ghost","password":"p"}`))
	Login(fake, tokens)(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestUpdateRehashesPassword(t *testing.T) {
	fake := storagetest.New()

	// Seed an account directly.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/student/signup",
		strings.NewReader(`{"username":"a","password":"p","positionId":"1"}`))
	Signup(fake)(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := fake.GetUserByUsername(context.Background(), "a")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPut, "/student/users/"+stored.ID,
		strings.NewReader(`{"username":"a","password":"new","positionId":"1"}`))
	r.SetPathValue("id", stored.ID)
	Update(fake)(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	updated, err := fake.GetUserByID(context.Background(), stored.ID)
	require.NoError(t, err)
	require.NoError(t, auth.CheckPassword(updated.PasswordHash, "new"))
	require.Error(t, auth.CheckPassword(updated.PasswordHash, "p"))
}

func TestDeleteUnknownUser(t *testing.T) {
	fake := storagetest.New()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/student/users/42", nil)
	r.SetPathValue("id", "42")
	Delete(fake)(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
}
