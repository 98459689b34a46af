package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/carousel/server/api"
)

type GenerationService struct {
	Options []RequestOption
}

func NewGenerationService(opts ...RequestOption) GenerationService {
	return GenerationService{
		Options: opts,
	}
}

type Slide = api.Slide
type Generation = api.GenerateResponse

type GenerationRequest struct {
	Slides []Slide
}

func (r *GenerationService) New(ctx context.Context, input GenerationRequest, opts ...RequestOption) (*Generation, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, err := json.Marshal(api.GenerateRequest{
		Slides: input.Slides,
	})

	if err != nil {
		return nil, err
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.URL+"/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c.authorize(req)

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result Generation

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
