package main

import (
	"log"

	"golang.design/x/clipboard"
)

// clipboardWriter copies text to the system clipboard. It turns into a no-op
// when the platform clipboard cannot be initialized.
type clipboardWriter struct {
	ok bool
}

func newClipboardWriter() *clipboardWriter {
	if err := clipboard.Init(); err != nil {
		log.Printf("[clipboard] disabled: %v", err)
		return &clipboardWriter{}
	}
	return &clipboardWriter{ok: true}
}

func (c *clipboardWriter) Copy(s string) bool {
	if c == nil || !c.ok {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}
