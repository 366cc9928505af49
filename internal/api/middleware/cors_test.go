package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSetupCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{name: "empty allows any origin", origins: nil, origin: "https://vendor.example", wantHeader: "*"},
		{name: "wildcard allows any origin", origins: []string{"*"}, origin: "https://vendor.example", wantHeader: "*"},
		{name: "listed origin", origins: []string{" https://app.banka.example/ ", ""}, origin: "https://app.banka.example", wantHeader: "https://app.banka.example"},
		{name: "unlisted origin", origins: []string{"https://app.banka.example"}, origin: "https://evil.example", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(SetupCORS(tt.origins))
			router.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
