package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"auth-service/pkg/response"
	"auth-service/pkg/xerrors"
)

func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}

	if err := h.uc.ForgotPassword(r.Context(), req.Email); err != nil {
		h.respondError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Email sent successfully.", "", nil)
}

func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}

	user, err := h.uc.ResetPassword(r.Context(), req.Email, req.OTP, req.Password, req.ConfirmPassword)
	if err != nil {
		// A reset that matches nothing is a 400 here, not a 404: the route
		// replies identically whether the email, code or window failed.
		if errors.Is(err, xerrors.ErrResetNotFound) {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondError(w, err)
		return
	}

	h.sendToken(w, user, "Password reset successfully.")
}
