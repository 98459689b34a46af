package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/carousel/pkg/generator"
	"github.com/adrianliechti/carousel/pkg/slide"
)

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	slides := make([]slide.Slide, 0, len(req.Slides))

	for _, s := range req.Slides {
		slides = append(slides, slide.Slide{
			Number: s.Number,
			Type:   s.Type,

			Text: s.Text,
		})
	}

	result, err := h.Generator.Generate(r.Context(), slides)

	if err != nil {
		status := statusCode(err)

		if status >= http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "generate failed", "kind", generator.KindOf(err), "error", err)
		}

		writeError(w, status, err)
		return
	}

	resp := GenerateResponse{
		Message: fmt.Sprintf("%d posts generated.", result.Count()),

		ID: result.ID,
	}

	for _, p := range result.Posts {
		post := Post{
			Number: p.Number,
			File:   p.File,

			Delivered:  p.Delivery.OK(),
			StatusCode: p.Delivery.StatusCode,
		}

		if p.Delivery.Error != nil {
			post.Error = p.Delivery.Error.Error()
		}

		resp.Posts = append(resp.Posts, post)
	}

	writeJson(w, resp)
}

func statusCode(err error) int {
	switch generator.KindOf(err) {
	case generator.KindValidation:
		return http.StatusBadRequest

	case generator.KindFont:
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
