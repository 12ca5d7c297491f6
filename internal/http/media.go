package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DHRUV222222/CareerLift/internal/services"
)

// MediaContent serves stored files by asset id. Asset ids are random UUIDs
// and the route sits behind authentication.
func (s *Server) MediaContent(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "assetId")
	path, contentType, _, err := services.AssetPath(s.DB, s.Config.MediaStoragePath, assetID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	http.ServeFile(w, r, path)
}
