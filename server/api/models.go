package api

type Slide struct {
	Number int    `json:"slide_number"`
	Type   string `json:"slide_type"`

	Text *string `json:"text"`
}

type GenerateRequest struct {
	Slides []Slide `json:"slides"`
}

type GenerateResponse struct {
	Message string `json:"message"`

	ID    string `json:"id,omitempty"`
	Posts []Post `json:"posts,omitempty"`
}

type Post struct {
	Number int    `json:"slide_number"`
	File   string `json:"file"`

	Delivered  bool   `json:"delivered"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

type PostsResponse struct {
	Posts []string `json:"posts"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
