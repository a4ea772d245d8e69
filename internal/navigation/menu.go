// Package navigation holds the mobile menu, smooth-scroll targeting and the
// scroll-driven section highlighting.
package navigation

import (
	"sync"
	"time"

	"github.com/tsenadheera/portfolio/internal/schedule"
	"github.com/tsenadheera/portfolio/internal/viewport"
)

const (
	menuLockOwner = "menu"

	KeyEscape = "Escape"
)

type MenuConfig struct {
	// Breakpoint is the viewport width above which the mobile menu closes.
	Breakpoint int
	// ResizeDebounce is the quiet period before a resize is acted on.
	ResizeDebounce time.Duration
}

func DefaultMenuConfig() MenuConfig {
	return MenuConfig{
		Breakpoint:     768,
		ResizeDebounce: 250 * time.Millisecond,
	}
}

// Menu is the mobile navigation toggle.
type Menu struct {
	mu     sync.Mutex
	sched  schedule.Scheduler
	cfg    MenuConfig
	scroll *viewport.ScrollLock
	open   bool
	resize schedule.Task
	width  int
	gen    uint64
}

func NewMenu(sched schedule.Scheduler, cfg MenuConfig, scroll *viewport.ScrollLock) *Menu {
	if scroll == nil {
		scroll = viewport.NewScrollLock()
	}
	return &Menu{sched: sched, cfg: cfg, scroll: scroll}
}

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.open {
		m.closeLocked()
	} else {
		m.open = true
		m.scroll.Lock(menuLockOwner)
	}
	return m.open
}

func (m *Menu) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

// HandleKey closes the menu on Escape.
func (m *Menu) HandleKey(key string) bool {
	if key != KeyEscape || !m.IsOpen() {
		return false
	}
	m.Close()
	return true
}

// Resize records a viewport width change. Only the last width of a burst is
// acted on, once the debounce period passes without further events.
func (m *Menu) Resize(width int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.width = width
	m.gen++
	gen := m.gen
	schedule.Stop(m.resize)
	m.resize = m.sched.AfterFunc(m.cfg.ResizeDebounce, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.gen != gen {
			return
		}
		m.resize = nil
		if m.width > m.cfg.Breakpoint {
			m.closeLocked()
		}
	})
}

func (m *Menu) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Menu) ScrollLocked() bool {
	return m.scroll.Locked()
}

func (m *Menu) closeLocked() {
	if !m.open {
		return
	}
	m.open = false
	m.scroll.Unlock(menuLockOwner)
}
