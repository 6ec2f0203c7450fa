package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/services"
)

type MockResetHandler struct {
	render   *render.Render
	resetSvc *services.MockResetService
}

func NewMockResetHandler(rnd *render.Render, resetSvc *services.MockResetService) *MockResetHandler {
	return &MockResetHandler{render: rnd, resetSvc: resetSvc}
}

func (h *MockResetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.resetSvc.Reset(r.Context()); err != nil {
		WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Reset Mock Data Success"})
}
