package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/services"
)

type CheckoutHandler struct {
	render      *render.Render
	checkoutSvc *services.CheckoutService
	validator   *validator.Validate
}

func NewCheckoutHandler(rnd *render.Render, checkoutSvc *services.CheckoutService, validate *validator.Validate) *CheckoutHandler {
	return &CheckoutHandler{render: rnd, checkoutSvc: checkoutSvc, validator: validate}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var payload services.CheckoutPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}

	if err := h.validator.Struct(&payload); err != nil {
		WriteError(h.render, w, ValidationError(err))
		return
	}

	order, err := h.checkoutSvc.PlaceOrder(r.Context(), payload)
	if err != nil {
		WriteError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, order)
}
