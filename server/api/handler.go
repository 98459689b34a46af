package api

import (
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/carousel/config"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/generate", h.handleGenerate)

	r.Get("/posts", h.handlePosts)
	r.Get("/posts/{number}", h.handlePost)
}

func writeJson(w http.ResponseWriter, v any) {
	writeJsonStatus(w, http.StatusOK, v)
}

func writeJsonStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	writeJsonStatus(w, code, ErrorResponse{
		Error: text,
	})
}
