package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIsAllowedOrigin(t *testing.T) {
	testCases := []struct {
		name    string
		origin  string
		allowed []string
		want    bool
	}{
		{
			name:    "exact match",
			origin:  "http://localhost:3000",
			allowed: []string{"http://localhost:3000"},
			want:    true,
		},
		{
			name:    "wildcard prefix match",
			origin:  "http://localhost:5173",
			allowed: []string{"http://localhost:*"},
			want:    true,
		},
		{
			name:    "no match",
			origin:  "https://evil.example.com",
			allowed: []string{"http://localhost:3000"},
			want:    false,
		},
		{
			name:    "empty origin",
			origin:  "",
			allowed: []string{"http://localhost:3000"},
			want:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isAllowedOrigin(tc.origin, tc.allowed); got != tc.want {
				t.Errorf("isAllowedOrigin(%q) = %v, want %v", tc.origin, got, tc.want)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(60, 2))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Burst of 2 allows two immediate requests; the third is rejected
	for i, wantCode := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		req, _ := http.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != wantCode {
			t.Errorf("request %d: status = %d, want %d", i+1, w.Code, wantCode)
		}
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	router.POST("/resource", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("OPTIONS", "/resource", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q, want request origin", got)
	}
}
