package api

import (
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/adrianliechti/carousel/pkg/slide"
	"github.com/adrianliechti/carousel/pkg/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) handlePosts(w http.ResponseWriter, r *http.Request) {
	keys, err := h.Storage.List(r.Context(), "post")

	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	posts := make([]string, 0, len(keys))

	for _, key := range keys {
		if path.Dir(key) != "." || !strings.HasSuffix(key, ".png") {
			continue
		}

		posts = append(posts, key)
	}

	writeJson(w, PostsResponse{
		Posts: posts,
	})
}

func (h *Handler) handlePost(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))

	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid post number"))
		return
	}

	data, err := storage.ReadAll(r.Context(), h.Storage, slide.FileName(number))

	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, nil)
			return
		}

		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", mimetype.Detect(data).String())
	w.Write(data)
}
