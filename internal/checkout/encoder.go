package checkout

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
)

// ScreenshotEncoder turns an uploaded image into a data URI.
type ScreenshotEncoder struct {
	maxBytes int64
}

func NewScreenshotEncoder(maxBytes int64) *ScreenshotEncoder {
	return &ScreenshotEncoder{maxBytes: maxBytes}
}

func (e *ScreenshotEncoder) Encode(ctx context.Context, r io.Reader) (string, error) {
	if r == nil {
		return "", ErrScreenshotRequired
	}

	var buf bytes.Buffer
	n, err := buf.ReadFrom(io.LimitReader(&ctxReader{ctx: ctx, r: r}, e.maxBytes+1))
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrScreenshotRequired
	}
	if n > e.maxBytes {
		return "", ErrScreenshotTooLarge
	}

	data := buf.Bytes()
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotAnImage
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
