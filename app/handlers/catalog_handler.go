package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/services"
)

type CatalogHandler struct {
	render     *render.Render
	catalogSvc *services.CatalogService
}

func NewCatalogHandler(rnd *render.Render, catalogSvc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{render: rnd, catalogSvc: catalogSvc}
}

// GetData serves the whole storefront catalog in one response: products
// with their images and featured image, plus the ordered category list.
func (h *CatalogHandler) GetData(w http.ResponseWriter, r *http.Request) {
	data, err := h.catalogSvc.GetData(r.Context())
	if err != nil {
		WriteError(h.render, w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, data)
}
