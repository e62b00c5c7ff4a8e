//go:build !ebiten

package window

import "errors"

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("window: GUI support requires building with -tags ebiten")

// Run reports that the GUI build tag is missing.
func Run(opts Options) error {
	return ErrNoGUI
}
