package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tubehub/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.ActiveProfile("activeProfileId"))
	r.GET("/open", func(c *gin.Context) {
		id, ok := middleware.GetActiveProfileID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok})
	})
	r.GET("/closed", middleware.ProfileRequired(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func serve(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "activeProfileId", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestActiveProfile(t *testing.T) {
	r := newEngine()

	assert.JSONEq(t, `{"id":"c1","ok":true}`, serve(r, "/open", "c1").Body.String())
	assert.JSONEq(t, `{"id":"","ok":false}`, serve(r, "/open", "").Body.String())
	assert.JSONEq(t, `{"id":"","ok":false}`, serve(r, "/open", "%20").Body.String())
}

func TestProfileRequired(t *testing.T) {
	r := newEngine()

	w := serve(r, "/closed", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"no active profile"}`, w.Body.String())

	assert.Equal(t, http.StatusNoContent, serve(r, "/closed", "c1").Code)
}

func TestRecovery(t *testing.T) {
	w := serve(newEngine(), "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
