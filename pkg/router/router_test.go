package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"go-data-processor/pkg/router"
)

func echo(body string) router.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}
}

func TestRouterMatching(t *testing.T) {
	r := router.New()
	r.GET("/api/v1/runs", echo("list"))
	r.POST("/api/v1/runs", echo("create"))
	r.GET("/api/v1/runs/*/errors", echo("errors"))
	r.GET("/api/v1/runs/*", echo("one"))
	r.GET("/swagger/*", echo("swagger"))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "exact get", method: http.MethodGet, path: "/api/v1/runs", wantStatus: 200, wantBody: "list"},
		{name: "exact post", method: http.MethodPost, path: "/api/v1/runs", wantStatus: 200, wantBody: "create"},
		{name: "wildcard segment", method: http.MethodGet, path: "/api/v1/runs/abc-123", wantStatus: 200, wantBody: "one"},
		{name: "specific before generic", method: http.MethodGet, path: "/api/v1/runs/abc-123/errors", wantStatus: 200, wantBody: "errors"},
		{name: "trailing wildcard swallows rest", method: http.MethodGet, path: "/swagger/index.html", wantStatus: 200, wantBody: "swagger"},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: 404},
		{name: "method not allowed", method: http.MethodDelete, path: "/api/v1/runs", wantStatus: 405},
	}

	client := srv.Client()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				require.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}
