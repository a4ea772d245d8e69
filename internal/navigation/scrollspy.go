package navigation

import (
	"sync"
	"time"

	"github.com/tsenadheera/portfolio/internal/schedule"
)

// Section is the vertical span of a page section, in document pixels.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

type SpyConfig struct {
	// Offset is the lookahead applied to section tops.
	Offset float64
	// HeaderThreshold is the scroll position past which the header is drawn
	// with its background and shadow.
	HeaderThreshold float64
	// FrameInterval bounds recomputation to one per frame.
	FrameInterval time.Duration
}

func DefaultSpyConfig() SpyConfig {
	return SpyConfig{
		Offset:          100,
		HeaderThreshold: 50,
		FrameInterval:   16 * time.Millisecond,
	}
}

// ScrollSpy highlights the navigation link of the section under the scroll
// position.
type ScrollSpy struct {
	mu       sync.Mutex
	sched    schedule.Scheduler
	cfg      SpyConfig
	sections []Section

	pendingY float64
	frame    schedule.Task
	active   string
	scrolled bool
	frames   int
}

func NewScrollSpy(sched schedule.Scheduler, cfg SpyConfig, sections []Section) *ScrollSpy {
	return &ScrollSpy{
		sched:    sched,
		cfg:      cfg,
		sections: append([]Section(nil), sections...),
	}
}

// OnScroll records a scroll event. Events arriving before the next frame are
// coalesced into a single recomputation using the latest position.
func (s *ScrollSpy) OnScroll(y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingY = y
	if s.frame != nil {
		return
	}
	s.frame = s.sched.AfterFunc(s.cfg.FrameInterval, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.frame = nil
		s.recomputeLocked(s.pendingY)
	})
}

// Recompute updates highlighting for position y immediately.
func (s *ScrollSpy) Recompute(y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeLocked(y)
}

// SetSections replaces the section geometry, e.g. after a layout change.
func (s *ScrollSpy) SetSections(sections []Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = append([]Section(nil), sections...)
}

// Active returns the highlighted section ID, or "" when the last position
// matched no section.
func (s *ScrollSpy) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Links returns the active flag of every section's navigation link.
func (s *ScrollSpy) Links() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := make(map[string]bool, len(s.sections))
	for _, sec := range s.sections {
		links[sec.ID] = sec.ID == s.active
	}
	return links
}

// HeaderScrolled reports whether the header is past its threshold.
func (s *ScrollSpy) HeaderScrolled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrolled
}

// Frames returns how many recomputations have run.
func (s *ScrollSpy) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func (s *ScrollSpy) recomputeLocked(y float64) {
	s.frames++
	s.scrolled = y > s.cfg.HeaderThreshold

	// Overlapping spans resolve to the later section.
	s.active = ""
	for _, sec := range s.sections {
		top := sec.Top - s.cfg.Offset
		if y >= top && y < top+sec.Height {
			s.active = sec.ID
		}
	}
}
