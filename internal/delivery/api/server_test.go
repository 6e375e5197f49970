package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"projectdesk/config"
	apimiddleware "projectdesk/internal/delivery/api/middleware"
	"projectdesk/internal/delivery/api/router"
	"projectdesk/internal/delivery/api/router/handler"
	deliverycontext "projectdesk/internal/delivery/context"
	"projectdesk/internal/domain/entity"
	domainerrors "projectdesk/internal/domain/errors"
	"projectdesk/internal/domain/service"
	mockSvc "projectdesk/internal/mocks/service"
	mockUC "projectdesk/internal/mocks/usecase"
	"projectdesk/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	authUC    *mockUC.MockAuthUsecase
	projectUC *mockUC.MockProjectUsecase
	tokenSvc  *mockSvc.MockTokenService
}

func newTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUC.NewMockAuthUsecase(t)
	projectUC := mockUC.NewMockProjectUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	e := newEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			ProjectHandler: handler.NewProjectHandler(handler.ProjectHandlerParams{ProjectUC: projectUC, Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: tokenSvc, Logger: logger}),
		},
	})

	return serverFixtures{echo: e, authUC: authUC, projectUC: projectUC, tokenSvc: tokenSvc}
}

func (f serverFixtures) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f serverFixtures) allowToken(token string, userID uuid.UUID) {
	f.tokenSvc.EXPECT().Verify(token).Return(&service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()},
	}, nil)
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_Health(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_LoginInvalidCredentials(t *testing.T) {
	f := newTestServer(t)

	f.authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := f.do(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"nope"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Equal(t, "Invalid credentials", body.Error.Message)
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body.Meta.RequestID)
}

func TestServer_RegisterInvalidEmail(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodPost, "/auth/register",
		`{"email":"nope","password":"pw","name":"Ada","lastName":"Lovelace"}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "email must be a valid email address", body.Error.Details)
}

func TestServer_ProjectsRequireToken(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodGet, "/projects", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", decodeError(t, rec).Error.Code)
}

func TestServer_ProfileWithToken(t *testing.T) {
	f := newTestServer(t)
	userID := uuid.New()
	f.allowToken("tok", userID)

	f.authUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "ada@example.com", PasswordHash: "hash"}, nil)

	rec := f.do(http.MethodPost, "/auth/profile", "", "tok")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestServer_ProjectNotFoundCarriesID(t *testing.T) {
	f := newTestServer(t)
	id := uuid.New()
	f.allowToken("tok", uuid.New())

	f.projectUC.EXPECT().GetByID(mock.Anything, id).
		Return(nil, errors.WithStack(domainerrors.NewProjectNotFoundError(id)))

	rec := f.do(http.MethodGet, "/projects/"+id.String(), "", "tok")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "PROJECT_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "project with ID "+id.String()+" not found", body.Error.Details)
}

func TestServer_ListProjects(t *testing.T) {
	f := newTestServer(t)
	f.allowToken("tok", uuid.New())

	f.projectUC.EXPECT().
		List(mock.Anything, &usecase.ListProjectsInput{Search: "apo", Page: 2, PageSize: 5}).
		Return(&usecase.ProjectPage{TotalPages: 4, CurrentPage: 2, TotalCount: 17}, nil)

	rec := f.do(http.MethodGet, "/projects?search=apo&page=2&pageSize=5", "", "tok")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCount":17`)
}

func TestServer_BodyLimit(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodPost, "/projects", `{"name":"`+strings.Repeat("a", 4096)+`"}`, "tok")

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
}
