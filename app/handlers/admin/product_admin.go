package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/handlers"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/services"
)

type ProductAdminHandler struct {
	render     *render.Render
	productSvc *services.ProductService
	validator  *validator.Validate
}

func NewProductAdminHandler(rnd *render.Render, productSvc *services.ProductService, validate *validator.Validate) *ProductAdminHandler {
	return &ProductAdminHandler{render: rnd, productSvc: productSvc, validator: validate}
}

// Save creates a product when the path segment is "add" and updates the
// product with that id otherwise.
func (h *ProductAdminHandler) Save(w http.ResponseWriter, r *http.Request) {
	addOrID := mux.Vars(r)["add_or_id"]

	var payload services.ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}

	if len(payload.Images) == 0 {
		handlers.WriteError(h.render, w, helpers.ErrNoImages)
		return
	}
	if err := h.validator.Struct(&payload); err != nil {
		handlers.WriteError(h.render, w, handlers.ValidationError(err))
		return
	}

	if addOrID == "add" {
		product, err := h.productSvc.Create(r.Context(), payload)
		if err != nil {
			handlers.WriteError(h.render, w, err)
			return
		}
		_ = h.render.JSON(w, http.StatusCreated, product)
		return
	}

	id, err := strconv.ParseUint(addOrID, 10, 64)
	if err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "Invalid product ID"))
		return
	}

	product, svcErr := h.productSvc.Update(r.Context(), uint(id), payload)
	if svcErr != nil {
		handlers.WriteError(h.render, w, svcErr)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}
