package handler

import (
	"encoding/json"
	"net/http"

	"auth-service/pkg/response"
	"auth-service/pkg/xerrors"
)

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, xerrors.ErrInvalidRequest.Error())
		return
	}

	user, err := h.uc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.sendToken(w, user, "Login Successful")
}

// HandleLogout is stateless: it only replaces the client-held cookie with a
// dead one. No server-side record changes.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
	response.Success(w, http.StatusOK, "Logged out successfully", "", nil)
}
