package assets

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 139, G: 69, B: 19, A: 255})
	path := filepath.Join(t.TempDir(), "door.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func waitResolved(t *testing.T, req *TextureRequest) (image.Image, error) {
	t.Helper()
	select {
	case <-req.Done():
		return req.Result()
	case <-time.After(5 * time.Second):
		t.Fatal("texture request did not resolve")
		return nil, nil
	}
}

func TestLoadAsyncDecodesFile(t *testing.T) {
	path := writePNG(t, 4, 8)
	l := NewLoader()

	img, err := waitResolved(t, l.LoadAsync(context.Background(), path))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected 4x8 image, got %v", img.Bounds())
	}

	// Second request is served from cache and resolves immediately
	req := l.LoadAsync(context.Background(), path)
	if !req.Resolved() {
		t.Error("Cached texture should resolve immediately")
	}
}

func TestLoadAsyncMissingFile(t *testing.T) {
	l := NewLoader()

	_, err := waitResolved(t, l.LoadAsync(context.Background(), filepath.Join(t.TempDir(), "nope.jpg")))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if errors.Is(err, ErrCanceled) {
		t.Errorf("Missing file should not report cancellation, got %v", err)
	}
}

func TestLoadAsyncCancel(t *testing.T) {
	release := make(chan struct{})
	l := NewLoaderWithDecoder(func(path string) (image.Image, error) {
		<-release
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	})
	defer close(release)

	req := l.LoadAsync(context.Background(), "door.jpg")
	if req.Resolved() {
		t.Fatal("Request should be pending while decoding")
	}

	req.Cancel()

	img, err := waitResolved(t, req)
	if !errors.Is(err, ErrCanceled) {
		t.Errorf("Expected ErrCanceled, got %v", err)
	}
	if img != nil {
		t.Error("Canceled request should not carry an image")
	}
}

func TestLoadAsyncDecoderWithoutImage(t *testing.T) {
	l := NewLoaderWithDecoder(func(path string) (image.Image, error) {
		return nil, nil
	})

	img, err := waitResolved(t, l.LoadAsync(context.Background(), "empty.png"))
	if !errors.Is(err, ErrNoImage) {
		t.Errorf("Expected ErrNoImage, got %v", err)
	}
	if img != nil {
		t.Error("Request without image should not carry one")
	}

	// Nothing is cached, so a later request decodes again
	if l.LoadAsync(context.Background(), "empty.png").Resolved() {
		t.Error("Failed decode should not be cached")
	}
}
