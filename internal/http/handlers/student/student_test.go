package student

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage/storagetest"
)

func TestAddEmptyBody(t *testing.T) {
	fake := storagetest.New()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/student/add", nil)
	Add(fake)(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "request body is empty")
	assert.Empty(t, fake.Calls)
}

func TestAddMalformedJSON(t *testing.T) {
	fake := storagetest.New()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/student/add",
		strings.NewReader("{not json"))
	Add(fake)(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fake.Calls)
}

func TestAddStoreFailureIsSurfaced(t *testing.T) {
	fake := storagetest.New()
	fake.FailWith = errors.New("connection lost")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/student/add",
		strings.NewReader(`{"Names":"x","Class":"x","Field":"x","PositionId":"x"}`))
	Add(fake)(w, r)

	// A store failure answers 500 — it is never swallowed.
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection lost")
}

func TestGetListStoreFailureIsSurfaced(t *testing.T) {
	fake := storagetest.New()
	fake.FailWith = errors.New("connection lost")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/student/get", nil)
	GetList(fake)(w, r)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateValidatesBeforeStore(t *testing.T) {
	fake := storagetest.New()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/student/update/1",
		strings.NewReader(`{"Names":"only name"}`))
	r.SetPathValue("id", "1")
	Update(fake)(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
	assert.Empty(t, fake.Calls)
}

func TestDeleteUnknownID(t *testing.T) {
	fake := storagetest.New()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/student/delete/42", nil)
	r.SetPathValue("id", "42")
	Delete(fake)(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
}
