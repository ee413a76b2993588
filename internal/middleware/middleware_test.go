package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRateLimitRouter(perMinute int) *gin.Engine {
	r := gin.New()
	r.Use(RateLimitByIP(perMinute, time.Minute, time.Hour))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRateLimitByIP_AllowsWithinBudget(t *testing.T) {
	r := setupRateLimitRouter(5)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.1:1111"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i+1, w.Code, http.StatusOK)
		}
	}
}

func TestRateLimitByIP_BlocksOverBurst(t *testing.T) {
	r := setupRateLimitRouter(2)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.2:2222"
		last = httptest.NewRecorder()
		r.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", last.Code, http.StatusTooManyRequests)
	}
}

func TestRateLimitByIP_TracksIPsSeparately(t *testing.T) {
	r := setupRateLimitRouter(1)

	first := httptest.NewRequest("GET", "/test", nil)
	first.RemoteAddr = "10.0.0.3:3333"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, first)
	if w.Code != http.StatusOK {
		t.Fatalf("first IP: status = %d, want %d", w.Code, http.StatusOK)
	}

	// The first IP's budget is spent; a different IP still gets through.
	second := httptest.NewRequest("GET", "/test", nil)
	second.RemoteAddr = "10.0.0.4:4444"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, second)
	if w.Code != http.StatusOK {
		t.Errorf("second IP: status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRequestLogger_SetsProcessTimeHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	header := w.Header().Get("X-Process-Time")
	if header == "" {
		t.Fatal("X-Process-Time header not set")
	}
	elapsed, err := strconv.ParseFloat(header, 64)
	if err != nil {
		t.Fatalf("X-Process-Time %q is not a float: %v", header, err)
	}
	if elapsed < 0 {
		t.Errorf("X-Process-Time = %f, want >= 0", elapsed)
	}
}

func TestRequestLogger_SkipsConfiguredPaths(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger("/metrics"))
	r.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "# metrics")
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Process-Time") != "" {
		t.Error("skipped path should not carry X-Process-Time")
	}
}

func TestRequestLogger_HeaderPresentOnErrorResponses(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	req := httptest.NewRequest("GET", "/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if w.Header().Get("X-Process-Time") == "" {
		t.Error("X-Process-Time header not set on error response")
	}
}
