package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_MissingParameter() {
	response := NewErrorResponse(ValidationRequiredField, s.traceID)

	s.False(response.OK)
	s.Equal("VALIDATION_002", response.Code)
	s.Equal("Falta el parámetro 'cuenta'", response.Error)
	s.Equal(s.traceID, response.TraceID)
	s.Empty(response.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewErrorResponse_Details() {
	response := NewErrorResponse(AccountNotFound, s.traceID, WithDetails("cuenta: ZZZ"))

	s.Equal("Cuenta no encontrada", response.Error)
	s.Equal([]string{"cuenta: ZZZ"}, response.Details)
	s.Equal(http.StatusNotFound, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{"cuenta": "is required"}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Code)
	s.Equal([]string{"cuenta: is required"}, response.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalMessage() {
	internal := errors.New("sql: database is locked")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Code)
	s.NotContains(response.Error, "locked")
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())

	response, err = WrapDatabaseError(internal, s.traceID)
	s.Equal(internal, err)
	s.Equal(string(SystemDatabaseError), response.Code)
	s.NotContains(response.Error, "locked")
}

func (s *ResponseTestSuite) TestJSONShape() {
	data, err := json.Marshal(NewErrorResponse(ValidationRequiredField, ""))
	s.Require().NoError(err)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &body))
	s.Equal(false, body["ok"])
	s.Equal("Falta el parámetro 'cuenta'", body["error"])
	s.NotContains(body, "trace_id")
	s.NotContains(body, "details")
}
