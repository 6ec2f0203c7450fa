package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/handlers"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/repositories"
)

type UpdateStatusPayload struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type OrderAdminHandler struct {
	render    *render.Render
	orderRepo repositories.OrderRepository
}

func NewOrderAdminHandler(rnd *render.Render, orderRepo repositories.OrderRepository) *OrderAdminHandler {
	return &OrderAdminHandler{render: rnd, orderRepo: orderRepo}
}

func (h *OrderAdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "Invalid order ID"))
		return
	}

	order, repoErr := h.orderRepo.GetByID(r.Context(), uint(id))
	if repoErr != nil {
		handlers.WriteError(h.render, w, repoErr)
		return
	}
	if order == nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusNotFound, "Order not found"))
		return
	}

	_ = h.render.JSON(w, http.StatusOK, order)
}

// UpdateStatus writes the requested status as-is; a value outside the
// status domain is rejected by the database constraint and surfaces
// through the shared error translator.
func (h *OrderAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload UpdateStatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}

	order, err := h.orderRepo.GetByID(r.Context(), payload.ID)
	if err != nil {
		handlers.WriteError(h.render, w, err)
		return
	}
	if order == nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusNotFound, "Order not found"))
		return
	}

	order.Status = payload.Status
	if err := h.orderRepo.Save(r.Context(), order); err != nil {
		handlers.WriteError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderAdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.GetAll(r.Context())
	if err != nil {
		handlers.WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, orders)
}
