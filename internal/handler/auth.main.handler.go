package handler

import (
	"net/http"

	"go.uber.org/zap"

	"auth-service/internal/usecase"
	"auth-service/pkg/jwtutil"
	"auth-service/pkg/middleware"
	"auth-service/pkg/response"
)

type AuthHandler struct {
	uc      *usecase.AuthUsecase
	tokens  *jwtutil.Manager
	cookies *middleware.CookieWriter
	logger  *zap.Logger
}

func NewAuthHandler(
	uc *usecase.AuthUsecase,
	tokens *jwtutil.Manager,
	cookies *middleware.CookieWriter,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		tokens:  tokens,
		cookies: cookies,
		logger:  logger,
	}
}

func (h *AuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"service": "auth", "state": "ok"})
}
