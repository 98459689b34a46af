// Package fonttest provides font archives and hosting for tests.
package fonttest

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/adrianliechti/carousel/pkg/font"

	"github.com/klauspost/compress/zip"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Archive builds a ZIP archive from file names and contents.
func Archive(files map[string][]byte) []byte {
	var buf bytes.Buffer

	w := zip.NewWriter(&buf)

	for name, data := range files {
		f, err := w.Create(name)

		if err != nil {
			panic(err)
		}

		if _, err := f.Write(data); err != nil {
			panic(err)
		}
	}

	if err := w.Close(); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

// Server serves font archives by URL path and counts requests.
type Server struct {
	*httptest.Server

	Requests atomic.Int64

	archives map[string][]byte
}

func NewServer(archives map[string][]byte) *Server {
	s := &Server{
		archives: archives,
	}

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Requests.Add(1)

		data, ok := s.archives[r.URL.Path]

		if !ok {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/zip")
		w.Write(data)
	}))

	return s
}

// Fonts returns three fonts named like the defaults, backed by the Go fonts
// and hosted on a new Server. Archives nest the files in a folder the way
// upstream releases do.
func Fonts() (*Server, []font.Font) {
	s := NewServer(map[string][]byte{
		"/amiri.zip": Archive(map[string][]byte{
			"amiri/Amiri-Regular.ttf": goregular.TTF,
			"amiri/README.txt":        []byte("amiri"),
		}),

		"/garamond.zip": Archive(map[string][]byte{
			"EBGaramond/EBGaramond-Bold.ttf": gobold.TTF,
		}),

		"/lora.zip": Archive(map[string][]byte{
			"Lora-Medium.ttf": goitalic.TTF,
		}),
	})

	fonts := []font.Font{
		{Name: "amiri", URL: s.URL + "/amiri.zip", File: "Amiri-Regular.ttf"},
		{Name: "garamond", URL: s.URL + "/garamond.zip", File: "EBGaramond-Bold.ttf"},
		{Name: "lora", URL: s.URL + "/lora.zip", File: "Lora-Medium.ttf"},
	}

	return s, fonts
}
