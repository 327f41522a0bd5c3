package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrCanceled is reported by a TextureRequest that was canceled before it resolved.
var ErrCanceled = errors.New("texture request canceled")

// ErrNoImage is reported when a decoder returns neither an image nor an error.
var ErrNoImage = errors.New("decoder returned no image")

// DecodeFunc reads and decodes the image at path.
type DecodeFunc func(path string) (image.Image, error)

// Loader decodes textures off the render thread and caches decoded images
// by path.
type Loader struct {
	decode DecodeFunc

	mu     sync.Mutex
	images map[string]image.Image
}

// NewLoader returns a Loader that decodes files with bild's imgio.
func NewLoader() *Loader {
	return NewLoaderWithDecoder(imgio.Open)
}

func NewLoaderWithDecoder(decode DecodeFunc) *Loader {
	return &Loader{
		decode: decode,
		images: make(map[string]image.Image),
	}
}

// TextureRequest is the pending result of LoadAsync.
type TextureRequest struct {
	Path   string
	done   chan struct{}
	cancel context.CancelFunc
	img    image.Image
	err    error
}

// LoadAsync starts decoding path in a goroutine and returns immediately.
// Canceling ctx or calling Cancel resolves the request with ErrCanceled
// unless it already resolved.
func (l *Loader) LoadAsync(ctx context.Context, path string) *TextureRequest {
	ctx, cancel := context.WithCancel(ctx)
	req := &TextureRequest{
		Path:   path,
		done:   make(chan struct{}),
		cancel: cancel,
	}

	if img, ok := l.cached(path); ok {
		req.img = img
		close(req.done)
		return req
	}

	result := make(chan struct{})
	var img image.Image
	var err error
	go func() {
		defer close(result)
		img, err = l.decode(path)
		if err == nil && img == nil {
			err = ErrNoImage
		}
	}()

	go func() {
		defer close(req.done)
		select {
		case <-ctx.Done():
			req.err = ErrCanceled
		case <-result:
			if err != nil {
				req.err = fmt.Errorf("load texture %s: %w", path, err)
				return
			}
			l.store(path, img)
			req.img = img
		}
	}()
	return req
}

func (l *Loader) cached(path string) (image.Image, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.images[path]
	return img, ok
}

func (l *Loader) store(path string, img image.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.images[path] = img
}

// Unload drops every cached image.
func (l *Loader) Unload() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.images = make(map[string]image.Image)
}

// Done is closed once the request resolved, successfully or not.
func (r *TextureRequest) Done() <-chan struct{} {
	return r.done
}

// Resolved reports whether the request has a result without blocking.
func (r *TextureRequest) Resolved() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Result returns the outcome of a resolved request. It must only be called
// after Resolved reports true or Done is closed.
func (r *TextureRequest) Result() (image.Image, error) {
	return r.img, r.err
}

func (r *TextureRequest) Cancel() {
	r.cancel()
}
