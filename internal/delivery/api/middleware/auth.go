package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "projectdesk/internal/delivery/context"
	domainerrors "projectdesk/internal/domain/errors"
	"projectdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware validates bearer access tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		logger:   params.Logger,
	}
}

// Authenticate rejects the request with ErrTokenInvalid unless it carries a
// valid token, then records the subject as the current user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			logger.Debug("Access token rejected", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			logger.Debug("Access token subject is not a user id", slog.String("sub", claims.Subject))

			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		deliverycontext.SetUserID(c, userID)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the user set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
