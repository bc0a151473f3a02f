package handlers

import (
	"crypto/md5"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openAPIDocument []byte

// DocsHandler serves the OpenAPI description of the API
type DocsHandler struct {
	document []byte
	etag     string
}

// NewDocsHandler creates a new documentation handler
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{
		document: openAPIDocument,
		etag:     generateETag(openAPIDocument),
	}
}

// ServeOpenAPI serves the OpenAPI document
// @Summary API description
// @Tags Documentation
// @Produce json
// @Success 200 {string} string "OpenAPI 3 document"
// @Success 304 "Not modified"
// @Router /docs/openapi.json [get]
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set("ETag", h.etag)

	if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, "application/json; charset=utf-8", h.document)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
