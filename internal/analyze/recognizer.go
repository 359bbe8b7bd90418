// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package analyze

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Recognizer extracts the text printed on one page image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// TesseractRecognizer runs Tesseract through gosseract with a fresh client
// per page, so it is safe for concurrent use.
type TesseractRecognizer struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

func NewTesseractRecognizer(languages []string) *TesseractRecognizer {
	return &TesseractRecognizer{
		languages:     languages,
		clientFactory: gosseract.NewClient,
	}
}

func (r *TesseractRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := r.clientFactory()
	defer c.Close()

	if len(r.languages) > 0 {
		if err := c.SetLanguage(r.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
