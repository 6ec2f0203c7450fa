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

type CategoryAdminHandler struct {
	render      *render.Render
	categorySvc *services.CategoryService
	validator   *validator.Validate
}

func NewCategoryAdminHandler(rnd *render.Render, categorySvc *services.CategoryService, validate *validator.Validate) *CategoryAdminHandler {
	return &CategoryAdminHandler{render: rnd, categorySvc: categorySvc, validator: validate}
}

func (h *CategoryAdminHandler) Save(w http.ResponseWriter, r *http.Request) {
	addOrID := mux.Vars(r)["add_or_id"]

	var payload services.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "invalid request body"))
		return
	}

	if addOrID == "add" {
		if err := h.validator.Struct(&payload); err != nil {
			handlers.WriteError(h.render, w, handlers.ValidationError(err))
			return
		}
		category, err := h.categorySvc.Create(r.Context(), payload)
		if err != nil {
			handlers.WriteError(h.render, w, err)
			return
		}
		_ = h.render.JSON(w, http.StatusCreated, category)
		return
	}

	id, err := strconv.ParseUint(addOrID, 10, 64)
	if err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "Invalid category ID"))
		return
	}

	category, svcErr := h.categorySvc.Update(r.Context(), uint(id), payload)
	if svcErr != nil {
		handlers.WriteError(h.render, w, svcErr)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}
