package handler

import (
	"encoding/json"
	"net/http"

	"auth-service/pkg/middleware"
	"auth-service/pkg/response"
	"auth-service/pkg/xerrors"
)

func (h *AuthHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, xerrors.ErrNoToken.Error())
		return
	}

	verified, err := h.uc.VerifyOTP(r.Context(), user, req.OTP)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.sendToken(w, verified, "Email has been verified.")
}

func (h *AuthHandler) HandleResendOTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, xerrors.ErrNoToken.Error())
		return
	}

	if err := h.uc.ResendOTP(r.Context(), user); err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Email sent successfully.", "", nil)
}
