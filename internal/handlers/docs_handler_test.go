package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// DocsHandlerSuite is the test suite for documentation endpoints
type DocsHandlerSuite struct {
	suite.Suite
	handler *DocsHandler
	e       *echo.Echo
}

func (s *DocsHandlerSuite) SetupTest() {
	s.handler = NewDocsHandler()
	s.e = echo.New()
}

func TestDocsHandlerSuite(t *testing.T) {
	suite.Run(t, new(DocsHandlerSuite))
}

func (s *DocsHandlerSuite) TestServeOpenAPI() {
	req := httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.ServeOpenAPI(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	s.Equal("public, max-age=300", rec.Header().Get("Cache-Control"))
	s.NotEmpty(rec.Header().Get("ETag"))

	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	s.Equal("3.0.3", doc.OpenAPI)
	s.Contains(doc.Paths, "/transactions")
	s.Contains(doc.Paths, "/transactions/{id}")
	s.Contains(doc.Paths, "/summary/monthly")
}

func (s *DocsHandlerSuite) TestServeOpenAPI_NotModified() {
	req := httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil)
	req.Header.Set("If-None-Match", s.handler.etag)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.ServeOpenAPI(c)

	s.NoError(err)
	s.Equal(http.StatusNotModified, rec.Code)
	s.Empty(rec.Body.Bytes())
}

func (s *DocsHandlerSuite) TestServeOpenAPI_StaleETag() {
	req := httptest.NewRequest(http.MethodGet, "/docs/openapi.json", nil)
	req.Header.Set("If-None-Match", `"stale"`)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.ServeOpenAPI(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DocsHandlerSuite) TestGenerateETag() {
	s.Empty(generateETag(nil))
	s.Equal(generateETag([]byte("a")), generateETag([]byte("a")))
	s.NotEqual(generateETag([]byte("a")), generateETag([]byte("b")))
}
