//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"fmt"
	"image"
)

var errUnsupported = fmt.Errorf("clipboard operations are not supported on this platform")

func WriteDrawing([]byte) error {
	return errUnsupported
}

func ReadDrawing() ([]byte, error) {
	return nil, errUnsupported
}

func WriteImage(image.Image) error {
	return errUnsupported
}
