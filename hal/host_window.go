//go:build !tinygo && cgo

package hal

import (
	"image"

	"disco/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that shows the panel scan-out.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) (App, error), cfg RunConfig) (err error) {
	cfg.normalize()

	var aud AudioOut
	if cfg.Audio {
		aud = newEbitenAudio()
	}
	h := newHostHAL(aud)
	app, err := newApp(h)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w, hh := h.ltdc.width(), h.ltdc.height()
	if w <= 0 || hh <= 0 {
		// Nothing brought the panel up; show the default geometry black.
		w, hh = 480, 272
	}

	title := cfg.Title
	if title == "" {
		title = "disco (" + buildinfo.Short() + ")"
	}
	g := &hostGame{h: h, app: app, w: w, hgt: hh}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w*cfg.Scale, hh*cfg.Scale)
	ebiten.SetTPS(cfg.Hz)
	return ebiten.RunGame(g)
}

// hostGame runs one application step per Update and scans the panel out on
// Draw. Ebiten never runs the two concurrently.
type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	app   App
	w     int
	hgt   int
}

func (g *hostGame) Update() error {
	return g.app.Step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.w, g.hgt))
		g.fbImg = ebiten.NewImage(g.w, g.hgt)
	}
	g.h.ltdc.scanout(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.hgt
}
