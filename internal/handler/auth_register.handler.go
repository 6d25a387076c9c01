package handler

import (
	"encoding/json"
	"net/http"

	"auth-service/internal/usecase"
	"auth-service/pkg/response"
	"auth-service/pkg/xerrors"
)

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}

	user, err := h.uc.RegisterUser(r.Context(), usecase.RegisterRequest{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Role:            req.Role,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.sendToken(w, user, "User registered successfully!!")
}
