package assets

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	// Decoders for the hero image header
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.uber.org/zap"
)

// ImageMeta is what the effect needs to know about its background image
type ImageMeta struct {
	Width  int
	Height int
	Format string
}

var metaClient = newMetaClient()

func newMetaClient() *http.Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	// One request per image, nothing to reuse
	t.DisableKeepAlives = true
	return &http.Client{Transport: t, Timeout: 15 * time.Second}
}

// LoadImageMeta reads the natural size of src in the background. The channel
// yields one ImageMeta on success and is closed either way. Failures are only
// logged: callers keep their fallback positioning. Cancelling ctx abandons
// the load.
func LoadImageMeta(ctx context.Context, src string) <-chan ImageMeta {
	ch := make(chan ImageMeta, 1)

	go func() {
		defer close(ch)

		meta, err := ReadImageMeta(ctx, src)
		if err != nil {
			zap.L().Debug("hero image metadata unavailable",
				zap.String("src", src),
				zap.Error(err),
			)
			return
		}

		select {
		case ch <- meta:
		case <-ctx.Done():
		}
	}()

	return ch
}

// ReadImageMeta decodes only the header of a local file or http(s) URL
func ReadImageMeta(ctx context.Context, src string) (ImageMeta, error) {
	r, err := openImage(ctx, src)
	if err != nil {
		return ImageMeta{}, err
	}
	defer r.Close()

	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return ImageMeta{}, fmt.Errorf("decode %s: %w", src, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return ImageMeta{}, fmt.Errorf("decode %s: empty image %dx%d", src, cfg.Width, cfg.Height)
	}

	return ImageMeta{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

func openImage(ctx context.Context, src string) (io.ReadCloser, error) {
	if src == "" {
		return nil, fmt.Errorf("no image source")
	}

	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("request %s: %w", src, err)
		}
		resp, err := metaClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src, err)
	}
	return f, nil
}
