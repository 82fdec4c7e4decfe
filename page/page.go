// Package page holds the small DOM effects around the hero canvas: loading
// screen, navbar, mobile menu, slideshow, project cards, scroll reveal and
// floating particles.
//
// Decision logic lives in plain Go so it can be tested natively; the
// bindings in bind_js.go only move values between it and the DOM.
package page

import "time"

// Timings and thresholds used by the bindings.
const (
	LoadingDelay     = 3000 * time.Millisecond
	LoadingFadeDelay = 500 * time.Millisecond
	SlideInterval    = 5000 * time.Millisecond

	// NavScrollThreshold is the scrollY past which the navbar is compact.
	NavScrollThreshold = 50
	// RevealRatio is the fraction of the viewport height an element top must
	// rise above to be revealed.
	RevealRatio = 0.8
	// RevealOffset is the initial downward shift of unrevealed content.
	RevealOffset = 50
)

// NavScrolled reports whether the navbar gets the scrolled class.
func NavScrolled(scrollY float64) bool {
	return scrollY > NavScrollThreshold
}

// Revealed reports whether an element whose top is at top, relative to the
// viewport, should be revealed.
func Revealed(top, innerHeight float64) bool {
	return top < innerHeight*RevealRatio
}

// CardURL returns the link a project card opens, ok is false for empty or
// placeholder links.
func CardURL(dataURL string) (string, bool) {
	if dataURL == "" || dataURL == "#" {
		return "", false
	}
	return dataURL, true
}

// Slideshow cycles through n slides.
type Slideshow struct {
	n   int
	cur int
}

// NewSlideshow starts on the first of n slides.
func NewSlideshow(n int) *Slideshow {
	return &Slideshow{n: n}
}

// Current returns the active slide index, -1 when there are no slides.
func (s *Slideshow) Current() int {
	if s.n == 0 {
		return -1
	}
	return s.cur
}

// Next advances to the following slide, wrapping around, and returns the
// previous and new indexes. ok is false when there are no slides.
func (s *Slideshow) Next() (prev, cur int, ok bool) {
	if s.n == 0 {
		return 0, 0, false
	}
	prev = s.cur
	s.cur = (s.cur + 1) % s.n
	return prev, s.cur, true
}
