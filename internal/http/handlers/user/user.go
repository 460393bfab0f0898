// Package user contains the HTTP handlers for user accounts: signup,
// login, and the account CRUD routes. Same factory / closure pattern as
// the student package.
package user

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/auth"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/types"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/utils/response"
)

// decodeCredentials reads and validates a credentials body, writing the
// error response itself on failure. The bool reports whether the caller
// should proceed.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (types.Credentials, bool) {
	var creds types.Credentials

	err := json.NewDecoder(r.Body).Decode(&creds)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return types.Credentials{}, false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return types.Credentials{}, false
	}

	if err := validator.New().Struct(creds); err != nil {
		validateErrs := err.(validator.ValidationErrors)
		response.WriteJSON(w, http.StatusBadRequest,
			response.ValidationError(validateErrs))
		return types.Credentials{}, false
	}

	return creds, true
}

// Signup handles POST /student/signup — one of the two unprotected routes.
//
// Request body:
//
//	{ "username": "a", "password": "p", "positionId": "1" }
//
// The password is bcrypt-hashed before storage and never appears in the
// response. A duplicate username is 409; success is 200 with the created
// account.
func Signup(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("signing up a user")

		creds, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		hash, err := auth.HashPassword(creds.Password)
		if err != nil {
			slog.Error("error hashing password", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		created, err := store.CreateUser(r.Context(), types.User{
			Username:     creds.Username,
			PasswordHash: hash,
			PositionId:   creds.PositionId,
		})
		if err != nil {
			slog.Error("error creating user",
				slog.String("username", creds.Username),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("user created", slog.String("id", created.ID))
		response.WriteJSON(w, http.StatusOK, created)
	}
}

// Login handles POST /student/login — the other unprotected route.
//
// The submitted password is checked against the stored bcrypt hash.
// Unknown username and wrong password both answer 401 "invalid
// credentials" so usernames cannot be probed. On success the response is
//
//	{ "token": "<jwt>" }
//
// where the token signs the credentials exactly as submitted, with no
// expiry claim.
func Login(store storage.Storage, tokens *auth.TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		slog.Info("logging in", slog.String("username", creds.Username))

		account, err := store.GetUserByUsername(r.Context(), creds.Username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				slog.Debug("login: unknown username", slog.String("username", creds.Username))
				response.WriteJSON(w, http.StatusUnauthorized,
					response.GeneralError(errors.New("invalid credentials")))
				return
			}
			slog.Error("error looking up user", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := auth.CheckPassword(account.PasswordHash, creds.Password); err != nil {
			slog.Debug("login: password mismatch", slog.String("username", creds.Username))
			response.WriteJSON(w, http.StatusUnauthorized,
				response.GeneralError(errors.New("invalid credentials")))
			return
		}

		token, err := tokens.Issue(auth.Claims{
			Username:   creds.Username,
			Password:   creds.Password,
			PositionId: creds.PositionId,
		})
		if err != nil {
			slog.Error("error issuing token", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("user logged in", slog.String("username", creds.Username))
		response.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// GetList handles GET /student/users.
// Returns every user account; password hashes are excluded by the model's
// JSON tags.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all users")

		users, err := store.GetUsers(r.Context())
		if err != nil {
			slog.Error("error getting users", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, users)
	}
}

// GetByID handles GET /student/users/{id}. 404 for unknown ids.
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a user", slog.String("id", id))

		user, err := store.GetUserByID(r.Context(), id)
		if err != nil {
			slog.Error("error getting user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, user)
	}
}

// Update handles PUT /student/signup/{id} and PUT /student/users/{id}
// (the API exposes both paths for the same operation). Replaces every
// field of the account; the submitted password is re-hashed. 404 if the
// id does not resolve.
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a user", slog.String("id", id))

		creds, ok := decodeCredentials(w, r)
		if !ok {
			return
		}

		hash, err := auth.HashPassword(creds.Password)
		if err != nil {
			slog.Error("error hashing password", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		updated, err := store.UpdateUserByID(r.Context(), id, types.User{
			Username:     creds.Username,
			PasswordHash: hash,
			PositionId:   creds.PositionId,
		})
		if err != nil {
			slog.Error("error updating user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("user updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /student/signup/{id} and DELETE /student/users/{id}.
// 404 for unknown ids; success returns a confirmation message.
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a user", slog.String("id", id))

		if err := store.DeleteUserByID(r.Context(), id); err != nil {
			slog.Error("error deleting user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("user deleted", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK,
			map[string]string{"message": "User deleted successfully"})
	}
}
