// Package carousel rotates the images of every project card on a timer.
//
// Each card owns one slide record (current index, pending advance, pending
// grace-delay resume) in a registry keyed by project ID. Timer callbacks and
// user events are serialized by the controller lock, and every timer carries
// a generation number so a callback that lost the race with Stop is dropped.
package carousel

import (
	"fmt"
	"sync"
	"time"

	"github.com/tsenadheera/portfolio/internal/content"
	"github.com/tsenadheera/portfolio/internal/schedule"
)

type Config struct {
	// Interval between automatic advances.
	Interval time.Duration
	// Stagger lengthens the period of the n-th card by n*Stagger so that
	// cards do not flip in lockstep.
	Stagger time.Duration
	// HoverResumeDelay is the grace delay after the pointer leaves a card.
	HoverResumeDelay time.Duration
	// ClickResumeDelay is the grace delay after an indicator is clicked.
	ClickResumeDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		Interval:         4 * time.Second,
		Stagger:          500 * time.Millisecond,
		HoverResumeDelay: 2 * time.Second,
		ClickResumeDelay: 3 * time.Second,
	}
}

// ChangeFunc observes active-image changes.
type ChangeFunc func(projectID string, index int)

type Option func(*Controller)

// WithObserver registers fn to be called after the active image of a card
// changes. It runs outside the controller lock.
func WithObserver(fn ChangeFunc) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

type Controller struct {
	mu        sync.Mutex
	sched     schedule.Scheduler
	cfg       Config
	slides    map[string]*slide
	order     []string
	onChange  ChangeFunc
	suspended bool
	closed    bool
}

type slide struct {
	id      string
	order   int
	count   int
	index   int
	gen     uint64
	advance schedule.Task
	resume  schedule.Task
}

type change struct {
	id    string
	index int
}

func New(sched schedule.Scheduler, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		sched:  sched,
		cfg:    cfg,
		slides: make(map[string]*slide),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds a card with imageCount images. The card starts on image 0
// and is not rotating.
func (c *Controller) Register(projectID string, imageCount int) error {
	if projectID == "" {
		return fmt.Errorf("carousel: empty project id")
	}
	if imageCount < 0 {
		return fmt.Errorf("carousel: negative image count for %s", projectID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.slides[projectID]; ok {
		return fmt.Errorf("carousel: project %s already registered", projectID)
	}
	c.slides[projectID] = &slide{id: projectID, order: len(c.order), count: imageCount}
	c.order = append(c.order, projectID)
	return nil
}

// RegisterProjects registers one card per project in document order.
func (c *Controller) RegisterProjects(projects []content.Project) error {
	for _, p := range projects {
		if err := c.Register(p.ID, p.ImageCount()); err != nil {
			return err
		}
	}
	return nil
}

// Start begins rotating a card, superseding any rotation already running.
// It reports whether a rotation was scheduled; single-image cards never
// rotate.
func (c *Controller) Start(projectID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slides[projectID]
	if !ok {
		return false
	}
	return c.startLocked(s)
}

// Stop cancels a card's pending advance and grace-delay resume. The current
// index is kept.
func (c *Controller) Stop(projectID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.slides[projectID]; ok {
		c.stopLocked(s)
	}
}

// ShowImage makes index the active image of a card. Out-of-range indexes
// and unknown cards are ignored; the return value reports whether the index
// was accepted.
func (c *Controller) ShowImage(projectID string, index int) bool {
	c.mu.Lock()
	s, ok := c.slides[projectID]
	if !ok || index < 0 || index >= s.count {
		c.mu.Unlock()
		return false
	}
	changed := s.index != index
	s.index = index
	c.mu.Unlock()

	if changed {
		c.notify([]change{{id: projectID, index: index}})
	}
	return true
}

// MouseEnter pauses a card while the pointer is over it.
func (c *Controller) MouseEnter(projectID string) {
	c.Stop(projectID)
}

// MouseLeave resumes a card after the hover grace delay. Re-entering before
// the delay elapses cancels the resume.
func (c *Controller) MouseLeave(projectID string) {
	c.scheduleResume(projectID, c.cfg.HoverResumeDelay)
}

// SelectIndicator jumps to index, pauses the card and resumes it after the
// click grace delay so the chosen image stays visible.
func (c *Controller) SelectIndicator(projectID string, index int) bool {
	if !c.ShowImage(projectID, index) {
		return false
	}
	c.Stop(projectID)
	c.scheduleResume(projectID, c.cfg.ClickResumeDelay)
	return true
}

// StopAll suspends every card, including pending resumes. Rotation stays
// suspended until StartAll.
func (c *Controller) StopAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.suspended = true
	for _, id := range c.order {
		c.stopLocked(c.slides[id])
	}
}

// StartAll lifts a suspension and starts every multi-image card. Timing
// phase is not preserved: each card restarts its interval.
func (c *Controller) StartAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.suspended = false
	for _, id := range c.order {
		c.startLocked(c.slides[id])
	}
}

// Close clears every timer. The controller does not rotate afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for _, id := range c.order {
		c.stopLocked(c.slides[id])
	}
}

// Index returns the active image of a card.
func (c *Controller) Index(projectID string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slides[projectID]
	if !ok {
		return 0, false
	}
	return s.index, true
}

// Running reports whether a card has an advance pending.
func (c *Controller) Running(projectID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slides[projectID]
	return ok && s.advance != nil
}

// AnyRunning reports whether at least one card is rotating.
func (c *Controller) AnyRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.slides {
		if s.advance != nil {
			return true
		}
	}
	return false
}

// Active returns one flag per image of a card; exactly one is set for a card
// with images.
func (c *Controller) Active(projectID string) []bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slides[projectID]
	if !ok {
		return nil
	}
	flags := make([]bool, s.count)
	if s.count > 0 {
		flags[s.index] = true
	}
	return flags
}

// Projects returns the registered project IDs in document order.
func (c *Controller) Projects() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}

func (c *Controller) startLocked(s *slide) bool {
	if c.closed || c.suspended || s.count <= 1 {
		return false
	}

	c.stopLocked(s)
	gen := s.gen
	s.advance = c.sched.AfterFunc(c.period(s), func() { c.tick(s, gen) })
	return true
}

func (c *Controller) period(s *slide) time.Duration {
	return c.cfg.Interval + time.Duration(s.order)*c.cfg.Stagger
}

func (c *Controller) stopLocked(s *slide) {
	s.gen++
	schedule.Stop(s.advance)
	schedule.Stop(s.resume)
	s.advance = nil
	s.resume = nil
}

func (c *Controller) tick(s *slide, gen uint64) {
	c.mu.Lock()
	if s.gen != gen || s.advance == nil {
		c.mu.Unlock()
		return
	}
	s.index = (s.index + 1) % s.count
	idx := s.index
	s.advance = c.sched.AfterFunc(c.period(s), func() { c.tick(s, gen) })
	c.mu.Unlock()

	c.notify([]change{{id: s.id, index: idx}})
}

func (c *Controller) scheduleResume(projectID string, delay time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slides[projectID]
	if !ok || c.closed || c.suspended || s.count <= 1 {
		return
	}

	schedule.Stop(s.resume)
	gen := s.gen
	s.resume = c.sched.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if s.gen != gen {
			return
		}
		s.resume = nil
		c.startLocked(s)
	})
}

func (c *Controller) notify(changes []change) {
	if c.onChange == nil {
		return
	}
	for _, ch := range changes {
		c.onChange(ch.id, ch.index)
	}
}
