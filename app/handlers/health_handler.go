package handlers

import (
	"net/http"

	"github.com/unrolled/render"
)

type HealthHandler struct {
	render *render.Render
}

func NewHealthHandler(rnd *render.Render) *HealthHandler {
	return &HealthHandler{render: rnd}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
