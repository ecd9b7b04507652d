package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-assessment/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for the custom HTTP error handler
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-test")

	CustomHTTPErrorHandler(err, c)
	return rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	errObj, ok := body["error"].(map[string]interface{})
	s.Require().True(ok, "response should have an error object")
	return errObj
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_NotFound() {
	rec := s.handle(echo.NewHTTPError(http.StatusNotFound, "Not Found"))

	s.Equal(http.StatusNotFound, rec.Code)
	errObj := s.decode(rec)
	s.Equal("CUSTOMER_001", errObj["code"])
	s.Equal("trace-test", errObj["trace_id"])
}

func (s *ErrorHandlerTestSuite) TestValidationErrors_FormattedAsDetails() {
	type loginRequest struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	err := validation.GetValidator().GetValidate().Struct(loginRequest{Email: "not-an-email"})
	s.Require().Error(err)

	rec := s.handle(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	errObj := s.decode(rec)
	s.Equal("VALIDATION_001", errObj["code"])
	s.NotEmpty(errObj["details"])
}

func (s *ErrorHandlerTestSuite) TestUnknownError_WrappedAsSystemError() {
	// A plain error must never leak its message to the client
	rec := s.handle(assertAnError{})
	s.Equal(http.StatusInternalServerError, rec.Code)

	errObj := s.decode(rec)
	s.Equal("SYSTEM_001", errObj["code"])
	s.NotContains(errObj["message"], "secret")
}

type assertAnError struct{}

func (assertAnError) Error() string { return "secret internal detail" }
