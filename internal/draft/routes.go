package draft

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.Generate)
	r.Post("/generate/text", h.ExportText)
	r.Get("/unheard-contexts", h.ListUnheardContexts)
	return r
}
