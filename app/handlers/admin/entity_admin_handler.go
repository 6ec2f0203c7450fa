package admin

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/handlers"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/services"
)

// EntityAdminHandler serves the shared delete route for the entity kinds
// the admin panel may remove.
type EntityAdminHandler struct {
	render      *render.Render
	productSvc  *services.ProductService
	categorySvc *services.CategoryService
}

func NewEntityAdminHandler(rnd *render.Render, productSvc *services.ProductService, categorySvc *services.CategoryService) *EntityAdminHandler {
	return &EntityAdminHandler{render: rnd, productSvc: productSvc, categorySvc: categorySvc}
}

// Delete removes a product or category by id. Deleting a category
// cascades to its products; deleting a product cascades to its images.
func (h *EntityAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	model := vars["model"]

	id, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "Invalid ID"))
		return
	}

	switch model {
	case "product":
		err = h.productSvc.Delete(r.Context(), uint(id))
	case "category":
		err = h.categorySvc.Delete(r.Context(), uint(id))
	default:
		err = helpers.ErrUnsupported
	}

	if err != nil {
		handlers.WriteError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
