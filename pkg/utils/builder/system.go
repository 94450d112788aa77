package builder

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Browser opens a URL in a new browsing context.
type Browser interface {
	OpenURL(url string) error
}

// SystemClipboard is the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemBrowser is the user's default browser. It runs detached from this
// process, so the opened page has no handle back to it.
type SystemBrowser struct{}

func (SystemBrowser) OpenURL(url string) error { return browser.OpenURL(url) }
