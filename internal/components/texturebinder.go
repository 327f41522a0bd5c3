package components

import (
	"errors"

	"doorview/internal/assets"
	"doorview/internal/engine"
	"doorview/internal/logger"
)

// TextureBinder waits for an asynchronous texture load and assigns the
// decoded image to Texture on the frame it resolves. Results that arrive
// after the owning GameObject was destroyed are dropped.
type TextureBinder struct {
	engine.BaseComponent
	Texture *assets.Texture
	request *assets.TextureRequest
	log     *logger.Logger
}

func NewTextureBinder(tex *assets.Texture, req *assets.TextureRequest, log *logger.Logger) *TextureBinder {
	return &TextureBinder{
		Texture: tex,
		request: req,
		log:     log,
	}
}

// Pending reports whether the load has not been consumed yet.
func (b *TextureBinder) Pending() bool {
	return b.request != nil
}

func (b *TextureBinder) Update(deltaTime float32) {
	if b.request == nil || !b.request.Resolved() {
		return
	}
	img, err := b.request.Result()
	path := b.request.Path
	b.request = nil

	if g := b.GetGameObject(); g == nil || g.Destroyed() {
		return
	}
	if err == nil && img == nil {
		err = assets.ErrNoImage
	}
	if err != nil {
		if !errors.Is(err, assets.ErrCanceled) {
			b.log.Warnf("texture %s unavailable, keeping base color: %v", path, err)
		}
		return
	}
	b.Texture.SetImage(img)
	b.log.Debugf("texture %s applied (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
}

func (b *TextureBinder) OnDestroy() {
	if b.request != nil {
		b.request.Cancel()
		b.request = nil
	}
}
