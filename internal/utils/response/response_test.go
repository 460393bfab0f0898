package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	err := WriteJSON(w, http.StatusCreated, map[string]string{"hello": "world"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "world", body["hello"])
}

func TestErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("no student found with id 7: %w", storage.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("username %q: %w", "a", storage.ErrUsernameTaken), http.StatusConflict},
		{fmt.Errorf("%w: %q", storage.ErrInvalidID, "xyz"), http.StatusBadRequest},
		{errors.New("connection lost"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		Error(w, tc.err)

		assert.Equal(t, tc.want, w.Code, "error %v", tc.err)

		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, StatusError, body.Status)
		assert.Equal(t, tc.err.Error(), body.Error)
	}
}
