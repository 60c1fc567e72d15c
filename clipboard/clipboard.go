package clipboard

import (
	"errors"

	system "github.com/atotto/clipboard"

	"github.com/andareed/siftly-plot/logging"
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no native clipboard tool is available (e.g. over SSH).
func Copy(text string) error {
	nativeErr := system.WriteAll(text)
	if nativeErr == nil {
		logging.Infof("Clipboard: copied via system clipboard")
		return nil
	}
	logging.Warnf("Clipboard: system clipboard failed: %v", nativeErr)

	if err := copyOSC52(text); err != nil {
		return errors.Join(nativeErr, err)
	}
	return nil
}
