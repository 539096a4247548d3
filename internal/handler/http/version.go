package http

import (
	"net/http"

	"github.com/MKhiriev/go-light-client/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.node.Version(r.Context()), http.StatusOK)
}
