package browser

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// Screenshot captures the managed window as PNG bytes. The capture goes
// through a temporary file that is removed on every path, success or
// failure. Captures wider than the configured maximum are scaled down
// before being returned.
func (s *Session) Screenshot(ctx context.Context) ([]byte, error) {
	if err := s.requireActive(); err != nil {
		return nil, err
	}

	windowID, err := s.ch.FrontWindowID(ctx)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(os.TempDir(), "sable-"+uuid.NewString()+".png")
	defer os.Remove(path)

	if err := s.ch.CaptureWindow(ctx, windowID, path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture: %w", err)
	}

	scaled, err := scaleToWidth(data, s.cfg.ScreenshotMaxWidth)
	if err != nil {
		// A capture that cannot be decoded is still a capture; return it.
		s.log.Warnf("screenshot scaling skipped: %v", err)
		return data, nil
	}
	return scaled, nil
}

// scaleToWidth downscales a PNG to maxWidth, preserving aspect ratio.
// Images at or under the limit are returned unchanged.
func scaleToWidth(data []byte, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		return data, nil
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode capture: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth {
		return data, nil
	}

	height := bounds.Dy() * maxWidth / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode scaled capture: %w", err)
	}
	return buf.Bytes(), nil
}
