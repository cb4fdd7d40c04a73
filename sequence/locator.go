package sequence

import (
	"fmt"
	"strings"
)

// Locator builds the source locator for a 1-based frame index.
type Locator func(index int) string

// FrameLocator returns the standard locator: base + 3-digit zero padded
// index + "." + ext, e.g. "images/frame-" + "007" + ".jpg".
func FrameLocator(base, ext string) Locator {
	ext = strings.TrimPrefix(ext, ".")
	return func(index int) string {
		return fmt.Sprintf("%s%03d.%s", base, index, ext)
	}
}
