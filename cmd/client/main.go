package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrianliechti/carousel/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:5000", "server url")
	tokenFlag := flag.String("token", "", "server token")
	outputFlag := flag.String("output", "", "download rendered posts to this directory")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	input := os.Stdin

	if path := flag.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)

		if err != nil {
			fail(err)
		}

		defer f.Close()
		input = f
	}

	slides, err := readSlides(input)

	if err != nil {
		fail(err)
	}

	result, err := c.Generations.New(ctx, client.GenerationRequest{
		Slides: slides,
	})

	if err != nil {
		fail(err)
	}

	fmt.Println(result.Message)

	for _, p := range result.Posts {
		status := "delivered"

		if !p.Delivered {
			status = "not delivered: " + p.Error
		}

		fmt.Printf("  %s %s\n", p.File, status)
	}

	if *outputFlag == "" {
		return
	}

	if err := os.MkdirAll(*outputFlag, 0755); err != nil {
		fail(err)
	}

	for _, p := range result.Posts {
		data, err := c.Posts.Get(ctx, p.Number)

		if err != nil {
			fail(err)
		}

		if err := os.WriteFile(filepath.Join(*outputFlag, p.File), data, 0644); err != nil {
			fail(err)
		}
	}
}

// readSlides accepts either {"slides": [...]} or a bare array of slides.
func readSlides(r io.Reader) ([]client.Slide, error) {
	data, err := io.ReadAll(r)

	if err != nil {
		return nil, err
	}

	var slides []client.Slide

	if err := json.Unmarshal(data, &slides); err == nil {
		return slides, nil
	}

	var req struct {
		Slides []client.Slide `json:"slides"`
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}

	return req.Slides, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
