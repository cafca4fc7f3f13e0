package sso

import "github.com/skratchdot/open-golang/open"

// BrowserSurface opens the verification URL in the default browser.
// There is no window to observe, so the surface never reports closed;
// cancellation comes from the caller's context instead.
type BrowserSurface struct{}

func (s *BrowserSurface) Open(url string) error { return open.Run(url) }

func (s *BrowserSurface) Closed() bool { return false }

func (s *BrowserSurface) Close() {}
