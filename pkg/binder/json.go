package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

type jsonConfig struct {
	maxSize       int64
	allowUnknown  bool
	requireHeader bool
}

// Option configures the JSON binder.
type Option func(*jsonConfig)

// WithMaxBodySize limits the accepted body size in bytes. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithUnknownFields accepts fields that have no counterpart in the target struct.
func WithUnknownFields() Option {
	return func(c *jsonConfig) {
		c.allowUnknown = true
	}
}

// WithOptionalContentType accepts requests without a Content-Type header.
func WithOptionalContentType() Option {
	return func(c *jsonConfig) {
		c.requireHeader = false
	}
}

// JSON creates a binder decoding the request body into v.
//
// Only decoding happens here: JSON nulls and missing fields are left as nil
// pointers, slices and maps, so that presence is checked afterwards by the
// validator rather than rejected by the decoder.
//
//	bind := binder.JSON(binder.WithMaxBodySize(64 << 10))
//	var req CreateProjectRequest
//	if err := bind(r, &req); err != nil {
//		// 400 or 415
//	}
func JSON(opts ...Option) func(r *http.Request, v any) error {
	cfg := &jsonConfig{
		maxSize:       DefaultMaxJSONSize,
		requireHeader: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		if err := checkContentType(r.Header.Get("Content-Type"), cfg.requireHeader); err != nil {
			return err
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, cfg.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %w", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > cfg.maxSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, cfg.maxSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if !cfg.allowUnknown {
			decoder.DisallowUnknownFields()
		}

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}

func checkContentType(contentType string, required bool) error {
	if contentType == "" {
		if required {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
	}
	if mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mediaType)
	}
	return nil
}
