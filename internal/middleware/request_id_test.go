package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestRequestIDTestSuite runs the test suite
func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) run(incoming string) (seen string, rec *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec = httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return seen, rec
}

// TestRequestID_GeneratesTraceID tests that middleware generates a trace ID
func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	seen, rec := s.run("")

	_, err := uuid.Parse(seen)
	s.NoError(err)
	s.Equal(seen, rec.Header().Get(TraceIDHeader))
}

// TestRequestID_UsesExistingTraceID tests that middleware uses existing trace ID from request
func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	seen, rec := s.run("client-trace_01.a")

	s.Equal("client-trace_01.a", seen)
	s.Equal("client-trace_01.a", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ReplacesUnsafeTraceID() {
	for _, incoming := range []string{"has space", "<script>", strings.Repeat("a", 65)} {
		seen, _ := s.run(incoming)
		s.NotEqual(incoming, seen)
		_, err := uuid.Parse(seen)
		s.NoError(err, incoming)
	}
}

func (s *RequestIDTestSuite) TestRequestID_UniquePerRequest() {
	first, _ := s.run("")
	second, _ := s.run("")
	s.NotEqual(first, second)
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
