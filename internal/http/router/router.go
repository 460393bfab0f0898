// Package router composes the HTTP surface from a static route table.
//
// Every route is declared as a (method, path, protected, handler) tuple;
// protected routes are wrapped with the auth middleware before
// registration. Declaring the table in one place makes the protection
// status of every route reviewable at a glance — no route can be
// registered without an explicit auth decision.
package router

import (
	"net/http"

	"github.com/Livia-11/Full-backend-swagger-documentation/internal/auth"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/http/handlers/docs"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/http/handlers/student"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/http/handlers/user"
	"github.com/Livia-11/Full-backend-swagger-documentation/internal/storage"
)

// Route is one entry of the route table.
type Route struct {
	Method    string
	Path      string
	Protected bool
	Handler   http.HandlerFunc
}

// Routes returns the full route table. Only signup, login, and the API
// documentation are public.
func Routes(store storage.Storage, tokens *auth.TokenService) []Route {
	return []Route{
		{http.MethodPost, "/student/add", true, student.Add(store)},
		{http.MethodGet, "/student/get", true, student.GetList(store)},
		{http.MethodPut, "/student/update/{id}", true, student.Update(store)},
		{http.MethodDelete, "/student/delete/{id}", true, student.Delete(store)},

		{http.MethodPost, "/student/signup", false, user.Signup(store)},
		{http.MethodPost, "/student/login", false, user.Login(store, tokens)},
		{http.MethodGet, "/student/users", true, user.GetList(store)},
		{http.MethodGet, "/student/users/{id}", true, user.GetByID(store)},
		{http.MethodPut, "/student/users/{id}", true, user.Update(store)},
		{http.MethodDelete, "/student/users/{id}", true, user.Delete(store)},
		// Legacy aliases kept for existing clients; same handlers.
		{http.MethodPut, "/student/signup/{id}", true, user.Update(store)},
		{http.MethodDelete, "/student/signup/{id}", true, user.Delete(store)},

		{http.MethodGet, "/api.docs", false, docs.Handler()},
	}
}

// New builds the ServeMux, wrapping protected routes with RequireAuth.
func New(store storage.Storage, tokens *auth.TokenService) *http.ServeMux {
	mux := http.NewServeMux()
	protect := auth.RequireAuth(tokens)

	for _, route := range Routes(store, tokens) {
		handler := route.Handler
		if route.Protected {
			handler = protect(handler)
		}
		mux.HandleFunc(route.Method+" "+route.Path, handler)
	}

	return mux
}
