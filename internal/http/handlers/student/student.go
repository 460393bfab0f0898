// Package student contains the HTTP handlers for the student resource.
//
// Handlers are built with the factory / closure pattern: each exported
// function accepts its dependencies (the storage backend) and returns the
// http.HandlerFunc the router registers. The factory runs once at startup;
// the returned closure runs on every request.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/types"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/utils/response"
)

// Add handles POST /student/add.
// Creates a student record from the JSON request body.
//
// Request body:
//
//	{ "Names": "Jane Doe", "Class": "S5", "Field": "MPC", "PositionId": "12" }
//
// All four fields are required; on a validation failure the response is
// 400 with the first offending field named, and nothing is persisted.
// Success is 200 with the created record including its assigned id.
func Add(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var student types.Student
		err := json.NewDecoder(r.Body).Decode(&student)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(student); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		created, err := store.CreateStudent(r.Context(), student)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("student created", slog.String("id", created.ID))
		response.WriteJSON(w, http.StatusOK, created)
	}
}

// GetList handles GET /student/get.
// Returns every student record as a JSON array — [] (never null) when the
// store is empty.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := store.GetStudents(r.Context())
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// Update handles PUT /student/update/{id}.
// Replaces ALL fields of an existing record; partial updates are not
// supported. 404 if the id does not resolve.
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		var student types.Student
		err := json.NewDecoder(r.Body).Decode(&student)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(student); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		updated, err := store.UpdateStudentByID(r.Context(), id, student)
		if err != nil {
			slog.Error("error updating student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("student updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /student/delete/{id}.
// 404 if the id does not resolve; otherwise removes the record and
// returns a confirmation message.
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		if err := store.DeleteStudentByID(r.Context(), id); err != nil {
			slog.Error("error deleting student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		slog.Info("student deleted", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK,
			map[string]string{"message": "Student deleted successfully"})
	}
}
