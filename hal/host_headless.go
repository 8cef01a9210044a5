//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/juju/errors"
	"golang.org/x/image/bmp"
)

// RunHeadless runs the application without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) (App, error), cfg RunConfig) (err error) {
	cfg.normalize()

	var aud AudioOut
	if cfg.Audio {
		aud = newOtoAudio()
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
	if cfg.Snapshot != "" {
		defer func() {
			if serr := writeSnapshot(h.ltdc, cfg.Snapshot); serr != nil {
				h.logger.WriteLineString(fmt.Sprintf("snapshot: %v", serr))
			}
		}()
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := app.Step(); err != nil {
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func writeSnapshot(ltdc *hostLTDC, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "snapshot path=%s", path)
	}
	if err := bmp.Encode(f, ltdc.image()); err != nil {
		f.Close()
		return errors.Annotatef(err, "snapshot encode path=%s", path)
	}
	return errors.Annotatef(f.Close(), "snapshot path=%s", path)
}
