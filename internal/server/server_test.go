package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/app"
	"finance-tracker/internal/config"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	cfg *config.Config
	app *app.App
	e   *echo.Echo
}

func (s *ServerTestSuite) SetupTest() {
	s.cfg = &config.Config{
		Storage:   config.StorageConfig{Backend: config.StorageBackendMemory, Key: config.DefaultStorageKey},
		RateLimit: config.RateLimitConfig{PerSecond: 1000, Burst: 1000},
		Auth:      config.AuthConfig{TokenDuration: time.Hour, Issuer: "finance-tracker"},
	}
	s.build(nil)
}

func (s *ServerTestSuite) build(tokens services.TokenServiceInterface) {
	reg := prometheus.NewRegistry()
	a, err := app.Open(s.cfg, reg)
	s.Require().NoError(err)
	s.app = a
	s.e = New(a, Options{Registerer: reg, Gatherer: reg, TokenService: tokens})
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) summary() models.Summary {
	rec := s.do(http.MethodGet, "/api/v1/summary", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var summary models.Summary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &summary))
	return summary
}

func (s *ServerTestSuite) TestAddSummaryDeleteFlow() {
	rec := s.do(http.MethodPost, "/api/v1/transactions",
		`{"type":"income","amount":1000,"category":"Salary","date":"2024-01-01"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	summary := s.summary()
	s.Equal("1000", summary.TotalIncome.String())
	s.Equal("1000", summary.Balance.String())

	rec = s.do(http.MethodPost, "/api/v1/transactions",
		`{"type":"expense","amount":"200","category":"Food","date":"2024-01-02"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var food models.Transaction
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &food))

	summary = s.summary()
	s.Equal("200", summary.TotalExpenses.String())
	s.Equal("800", summary.Balance.String())
	s.Equal("200", summary.ExpensesByCategory[models.CategoryFood].String())
	s.Equal(2, summary.TransactionCount)

	rec = s.do(http.MethodDelete, "/api/v1/transactions/"+food.ID, "")
	s.Equal(http.StatusNoContent, rec.Code)

	summary = s.summary()
	s.True(summary.TotalExpenses.IsZero())
	s.Equal("1000", summary.Balance.String())
	s.Empty(summary.ExpensesByCategory)
}

func (s *ServerTestSuite) TestDeleteUnknownIsNoContent() {
	rec := s.do(http.MethodDelete, "/api/v1/transactions/does-not-exist", "")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestCreateTransaction_ValidationEnvelope() {
	rec := s.do(http.MethodPost, "/api/v1/transactions",
		`{"type":"gift","amount":-3,"category":"Food"}`, "X-Trace-ID", "trace-123")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("trace-123", rec.Header().Get("X-Trace-ID"))

	var body map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("VALIDATION_001", body["error"]["code"])
	s.Equal("trace-123", body["error"]["trace_id"])
	s.Len(body["error"]["details"], 2)
	s.Empty(s.app.Store.Transactions())
}

func (s *ServerTestSuite) TestCreateTransaction_RejectsExponentAmounts() {
	for _, body := range []string{
		`{"type":"expense","amount":1e2000000,"category":"Food"}`,
		`{"type":"expense","amount":"1e2000000","category":"Food"}`,
		`{"type":"expense","amount":"1E2","category":"Food"}`,
	} {
		rec := s.do(http.MethodPost, "/api/v1/transactions", body)
		s.Equal(http.StatusBadRequest, rec.Code, body)
	}
	s.Empty(s.app.Store.Transactions())
}

func (s *ServerTestSuite) TestListTransactions_Filters() {
	for _, body := range []string{
		`{"type":"income","amount":"1000","category":"Salary","date":"2024-01-01"}`,
		`{"type":"expense","amount":"50","category":"Food","date":"2024-01-05"}`,
		`{"type":"expense","amount":"75","category":"Food","date":"2024-02-05"}`,
	} {
		s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/v1/transactions", body).Code)
	}

	rec := s.do(http.MethodGet, "/api/v1/transactions?category=Food&month=2024-01", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var list struct {
		Transactions []models.Transaction `json:"transactions"`
		Count        int                  `json:"count"`
		Total        int                  `json:"total"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &list))
	s.Equal(1, list.Count)
	s.Equal(3, list.Total)
	s.Equal("50", list.Transactions[0].Amount.String())

	rec = s.do(http.MethodGet, "/api/v1/transactions?limit=abc", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestHealthEndpoints() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/healthz", "").Code)

	rec := s.do(http.MethodGet, "/readyz", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"store":"loaded"`)
	s.NotContains(rec.Body.String(), "database")
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	s.do(http.MethodPost, "/api/v1/transactions", `{"type":"income","amount":"10","category":"Gift"}`)
	s.do(http.MethodGet, "/api/v1/nope", "")

	rec := s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "finance_store_operations_total")
	s.Contains(rec.Body.String(), `api_errors_total{code="SYSTEM_006"`)
}

func (s *ServerTestSuite) TestDocsArePublic() {
	s.cfg.Auth = config.AuthConfig{TokenSecret: "0123456789abcdef0123456789abcdef", TokenDuration: time.Hour, Issuer: "test"}
	s.build(services.NewTokenService(&s.cfg.Auth))

	rec := s.do(http.MethodGet, "/docs/openapi.json", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"openapi"`)
}

func (s *ServerTestSuite) TestUnknownRouteUsesEnvelope() {
	rec := s.do(http.MethodGet, "/api/v1/nope", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), `"code":"SYSTEM_006"`)
}

func (s *ServerTestSuite) TestRateLimit() {
	s.cfg.RateLimit = config.RateLimitConfig{PerSecond: 1, Burst: 2}
	s.build(nil)

	codes := []int{}
	for i := 0; i < 3; i++ {
		codes = append(codes, s.do(http.MethodGet, "/api/v1/categories", "").Code)
	}
	s.Equal([]int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Health checks are outside the limited group.
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/healthz", "").Code)
}

func (s *ServerTestSuite) TestAuthEnabled() {
	s.cfg.Auth.TokenSecret = "0123456789abcdef0123456789abcdef"
	tokens := services.NewTokenService(&s.cfg.Auth)
	s.build(tokens)

	rec := s.do(http.MethodGet, "/api/v1/summary", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), `"code":"AUTH_001"`)

	token, _, err := tokens.GenerateAccessToken("cli")
	s.Require().NoError(err)

	rec = s.do(http.MethodGet, "/api/v1/summary", "", "Authorization", "Bearer "+token)
	s.Equal(http.StatusOK, rec.Code)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/healthz", "").Code)
}
