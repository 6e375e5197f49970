package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"projectdesk/internal/delivery/api/response"
	domainerrors "projectdesk/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/projects/1", nil), rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestHandleHTTPError_AppErrorWithDetails(t *testing.T) {
	id := uuid.New()

	rec, body := handleError(t, errors.Wrap(domainerrors.NewProjectNotFoundError(id), "failed to find project"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROJECT_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Project not found", body.Error.Message)
	assert.Equal(t, "project with ID "+id.String()+" not found", body.Error.Details)
}

func TestHandleHTTPError_UnauthorizedHidesNothingExtra(t *testing.T) {
	rec, body := handleError(t, errors.WithStack(domainerrors.ErrInvalidCredentials))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Equal(t, "Invalid credentials", body.Error.Message)
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_DatabaseErrorIsOpaque(t *testing.T) {
	rec, body := handleError(t, domainerrors.NewDatabaseExecuteError(errors.New("pq: deadlock"), "project update affected no rows"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, body.Error.Message, "deadlock")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.ErrStatusRequestEntityTooLarge)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", body.Error.Code)
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	rec, body := handleError(t, errors.New("nil pointer somewhere"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), body.Error.Message)
	assert.NotContains(t, body.Error.Message, "nil pointer")
}
