package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

const faviconCacheControl = "public, max-age=31536000, immutable"

// FaviconHandler 启动时生成一次的 SVG 图标
type FaviconHandler struct {
	svg []byte
}

func NewFaviconHandler(letter string, color string) *FaviconHandler {
	initial := []rune(letter)
	if len(initial) == 0 {
		initial = []rune("T")
	}
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">`+
		`<rect width="64" height="64" rx="14" fill="%s"/>`+
		`<text x="32" y="44" font-family="Arial, Helvetica, sans-serif" font-size="36" font-weight="700" fill="#ffffff" text-anchor="middle">%s</text>`+
		`</svg>`, html.EscapeString(color), html.EscapeString(string(initial[:1])))
	return &FaviconHandler{svg: []byte(svg)}
}

// Serve GET /favicon.ico
func (h *FaviconHandler) Serve(c *gin.Context) {
	c.Header("Cache-Control", faviconCacheControl)
	c.Data(http.StatusOK, "image/svg+xml", h.svg)
}
