//go:build !tinygo && !cgo

package hal

import "fmt"

func RunWindow(_ func(HAL) (App, error), _ RunConfig) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
