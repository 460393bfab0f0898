// Package docs serves the API documentation at /api.docs.
// The OpenAPI document is checked in and embedded at build time.
package docs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.yaml
var openapi []byte

// Handler serves the OpenAPI YAML document.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		w.Write(openapi)
	}
}
