package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shiharai/invoice-service/internal/application"
	"github.com/shiharai/invoice-service/internal/application/services"
	"github.com/shiharai/invoice-service/internal/interfaces/rest"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token   string               `json:"jwt"`
	Account rest.AccountResponse `json:"account"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, r, application.NewBadRequestError("Invalid request body"), h.logger)
		return
	}

	result, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, toAuthResponse(result))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, r, application.NewBadRequestError("Invalid request body"), h.logger)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		rest.WriteError(w, r, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(result *services.AuthResult) authResponse {
	return authResponse{
		Token:   result.Token,
		Account: rest.ToAccountResponse(result.Account),
	}
}
