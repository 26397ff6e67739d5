package pdf

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// downloadBrowser returns the path of a cached Chromium build, downloading it on first use.
var downloadBrowser = func() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("pdf: downloading browser: %w", err)
	}
	return path, nil
}
