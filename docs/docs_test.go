package docs_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/surveyadmin/backend/docs"
)

func TestSwaggerDoc(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var doc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not valid JSON: %v", err)
	}
	if doc.Info["title"] != "Survey Admin API" {
		t.Errorf("unexpected info: %+v", doc.Info)
	}

	routes := map[string][]string{
		"/health":                           {"get"},
		"/analytics":                        {"get"},
		"/analytics/load":                   {"post"},
		"/analytics/refresh":                {"post"},
		"/questions":                        {"get", "post"},
		"/questions/batch":                  {"post"},
		"/questions/{level}/{index}":        {"put", "delete"},
		"/questions/{level}/{index}/move":   {"put"},
		"/questions/{questionID}/responses": {"post"},
		"/export":                           {"get"},
		"/import":                           {"post"},
	}
	for path, methods := range routes {
		for _, m := range methods {
			if _, ok := doc.Paths[path][m]; !ok {
				t.Errorf("missing %s %s", m, path)
			}
		}
	}
}
