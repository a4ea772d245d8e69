// Package lightbox implements the full-screen image overlay shared by all
// project cards.
package lightbox

import (
	"sync"
	"time"

	"github.com/tsenadheera/portfolio/internal/schedule"
	"github.com/tsenadheera/portfolio/internal/viewport"
)

const lockOwner = "lightbox"

// Keys handled while the overlay is open.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Carousels is the part of the carousel controller the lightbox suspends.
type Carousels interface {
	StopAll()
	StartAll()
}

type Config struct {
	// ResumeDelay separates closing the overlay from restarting carousels.
	ResumeDelay time.Duration
	// FadeDuration is how long the fade flag stays set after navigation.
	FadeDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		ResumeDelay:  300 * time.Millisecond,
		FadeDuration: 200 * time.Millisecond,
	}
}

type Controller struct {
	mu        sync.Mutex
	sched     schedule.Scheduler
	cfg       Config
	entries   []Entry
	carousels Carousels
	scroll    *viewport.ScrollLock

	open   bool
	index  int
	fading bool
	resume schedule.Task
	fade   schedule.Task
	gen    uint64
}

func New(sched schedule.Scheduler, cfg Config, entries []Entry, carousels Carousels, scroll *viewport.ScrollLock) *Controller {
	if scroll == nil {
		scroll = viewport.NewScrollLock()
	}
	return &Controller{
		sched:     sched,
		cfg:       cfg,
		entries:   append([]Entry(nil), entries...),
		carousels: carousels,
		scroll:    scroll,
	}
}

// Open shows entry i. Indexes outside [0, N) are ignored.
//
// Carousels are stopped and started while c.mu is held, so a resume that
// races with Open cannot restart rotation under an open overlay. The
// carousel controller never calls back into the lightbox.
func (c *Controller) Open(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= len(c.entries) {
		return false
	}

	schedule.Stop(c.resume)
	c.resume = nil
	c.gen++
	c.index = i
	c.open = true
	c.scroll.Lock(lockOwner)

	if c.carousels != nil {
		c.carousels.StopAll()
	}
	return true
}

// Close hides the overlay and restarts the carousels after ResumeDelay.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	c.open = false
	c.fading = false
	schedule.Stop(c.fade)
	c.fade = nil
	c.scroll.Unlock(lockOwner)

	if c.carousels == nil {
		return
	}
	c.gen++
	gen := c.gen
	c.resume = c.sched.AfterFunc(c.cfg.ResumeDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.gen != gen || c.open {
			return
		}
		c.resume = nil
		c.carousels.StartAll()
	})
}

// Next moves forward with wraparound.
func (c *Controller) Next() {
	c.step(1)
}

// Prev moves back with wraparound.
func (c *Controller) Prev() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	if !c.open || n == 0 {
		return
	}
	c.index = (c.index + delta + n) % n

	c.fading = true
	schedule.Stop(c.fade)
	c.fade = c.sched.AfterFunc(c.cfg.FadeDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.fading = false
		c.fade = nil
	})
}

// HandleKey applies a keyboard binding. Keys are only bound while the
// overlay is open; the return value reports whether the key was consumed.
func (c *Controller) HandleKey(key string) bool {
	if !c.IsOpen() {
		return false
	}
	switch key {
	case KeyEscape:
		c.Close()
	case KeyArrowLeft:
		c.Prev()
	case KeyArrowRight:
		c.Next()
	default:
		return false
	}
	return true
}

// ClickOverlay closes the overlay when the click landed on the background
// rather than on the image or caption.
func (c *Controller) ClickOverlay(onBackground bool) {
	if onBackground {
		c.Close()
	}
}

// Current returns the displayed entry. ok is false while closed.
func (c *Controller) Current() (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return Entry{}, false
	}
	return c.entries[c.index], true
}

func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Index returns the current global index. It is kept while closed.
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Controller) Fading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fading
}

func (c *Controller) Len() int {
	return len(c.entries)
}

// ScrollLocked reports whether background scrolling is blocked.
func (c *Controller) ScrollLocked() bool {
	return c.scroll.Locked()
}
