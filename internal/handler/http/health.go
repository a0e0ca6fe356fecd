package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{
		Status:    models.StatusSuccess,
		Message:   "Blogging API is running!",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
