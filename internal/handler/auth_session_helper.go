package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"auth-service/internal/domain"
	"auth-service/pkg/response"
	"auth-service/pkg/xerrors"
)

// sendToken is the single terminal contract for successful auth flows:
// mint the token, attach the session cookie, return the sanitized user.
func (h *AuthHandler) sendToken(w http.ResponseWriter, user *domain.User, message string) {
	token, err := h.tokens.Sign(user.ID.Hex())
	if err != nil {
		h.logger.Error("failed to sign token", zap.String("user_id", user.ID.Hex()), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
		return
	}

	h.cookies.Attach(w, token)
	response.Success(w, http.StatusOK, message, token, map[string]interface{}{
		"user": user.Sanitize(),
	})
}

// respondError is the single funnel from the error taxonomy to HTTP. Anything
// outside the taxonomy is logged and reported as a generic 500; internals
// never reach the client.
func (h *AuthHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, xerrors.ErrValidation),
		errors.Is(err, xerrors.ErrConflict),
		errors.Is(err, xerrors.ErrExpired):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, xerrors.ErrAuthentication):
		response.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, xerrors.ErrNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, xerrors.ErrDelivery):
		response.Error(w, http.StatusInternalServerError, err.Error())
	default:
		h.logger.Error("unhandled error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
	}
}
