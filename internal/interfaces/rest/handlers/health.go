package handlers

import (
	"net/http"

	"github.com/shiharai/invoice-service/internal/interfaces/rest"
)

func (h *Handlers) Up(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "up"})
}
