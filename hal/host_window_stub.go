//go:build !cgo

package hal

import "fmt"

func RunWindow(_ WindowConfig, _ func(HAL) (func() error, error)) error {
	return fmt.Errorf("%w: window mode requires cgo (build/run with CGO_ENABLED=1)", ErrDisplayInit)
}
