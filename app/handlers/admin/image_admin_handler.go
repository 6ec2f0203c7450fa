package admin

import (
	"net/http"

	"github.com/unrolled/render"
	"github.com/yaarastore/backend/app/handlers"
	"github.com/yaarastore/backend/app/helpers"
	"github.com/yaarastore/backend/app/services"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type ImageAdminHandler struct {
	render   *render.Render
	uploader *services.UploaderService
}

func NewImageAdminHandler(rnd *render.Render, uploader *services.UploaderService) *ImageAdminHandler {
	return &ImageAdminHandler{render: rnd, uploader: uploader}
}

// Upload accepts a multipart "image" field, resizes it and stores it in
// blob storage, answering with the public URL.
func (h *ImageAdminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "No image uploaded"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		handlers.WriteError(h.render, w, helpers.NewHTTPError(http.StatusBadRequest, "No image uploaded"))
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		handlers.WriteError(h.render, w, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"url": url})
}
