package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tsenadheera/portfolio/internal/schedule"
	"github.com/tsenadheera/portfolio/internal/viewport"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMenuToggleLocksScroll(t *testing.T) {
	m := NewMenu(schedule.NewManual(epoch), DefaultMenuConfig(), nil)

	assert.True(t, m.Toggle())
	assert.True(t, m.ScrollLocked())

	assert.False(t, m.Toggle())
	assert.False(t, m.ScrollLocked())
}

func TestMenuEscape(t *testing.T) {
	m := NewMenu(schedule.NewManual(epoch), DefaultMenuConfig(), nil)

	assert.False(t, m.HandleKey(KeyEscape), "nothing to close")
	m.Toggle()
	assert.False(t, m.HandleKey("Tab"))
	assert.True(t, m.HandleKey(KeyEscape))
	assert.False(t, m.IsOpen())
	assert.False(t, m.ScrollLocked())
}

func TestMenuResizeIsDebounced(t *testing.T) {
	clock := schedule.NewManual(epoch)
	m := NewMenu(clock, DefaultMenuConfig(), nil)
	m.Toggle()

	m.Resize(1024)
	clock.Advance(200 * time.Millisecond)
	m.Resize(1100)
	clock.Advance(200 * time.Millisecond)
	assert.True(t, m.IsOpen(), "still resizing")

	clock.Advance(50 * time.Millisecond)
	assert.False(t, m.IsOpen())
	assert.False(t, m.ScrollLocked())
}

func TestMenuResizeBelowBreakpointKeepsMenu(t *testing.T) {
	clock := schedule.NewManual(epoch)
	m := NewMenu(clock, DefaultMenuConfig(), nil)
	m.Toggle()

	m.Resize(1024)
	m.Resize(600)
	clock.Advance(time.Second)
	assert.True(t, m.IsOpen(), "only the last width of a burst counts")
}

func TestMenuSharesScrollLock(t *testing.T) {
	lock := viewport.NewScrollLock()
	m := NewMenu(schedule.NewManual(epoch), DefaultMenuConfig(), lock)
	lock.Lock("lightbox")

	m.Toggle()
	m.Toggle()
	assert.True(t, lock.Locked())
}
