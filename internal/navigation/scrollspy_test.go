package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsenadheera/portfolio/internal/schedule"
)

func pageSections() []Section {
	return []Section{
		{ID: "home", Top: 0, Height: 800},
		{ID: "skills", Top: 800, Height: 600},
		{ID: "projects", Top: 1400, Height: 1200},
		{ID: "contact", Top: 2600, Height: 700},
	}
}

func TestScrollSpy_ExactBoundaryActivatesSection(t *testing.T) {
	s := NewScrollSpy(schedule.NewManual(epoch), DefaultSpyConfig(), pageSections())

	s.Recompute(1400 - 100)
	assert.Equal(t, "projects", s.Active())

	links := s.Links()
	assert.True(t, links["projects"])
	for id, active := range links {
		if id != "projects" {
			assert.False(t, active, id)
		}
	}
}

func TestScrollSpy_JustBeforeBoundary(t *testing.T) {
	s := NewScrollSpy(schedule.NewManual(epoch), DefaultSpyConfig(), pageSections())

	s.Recompute(1299)
	assert.Equal(t, "skills", s.Active())
}

func TestScrollSpy_OutsideAllSectionsClearsLinks(t *testing.T) {
	s := NewScrollSpy(schedule.NewManual(epoch), DefaultSpyConfig(), pageSections())

	s.Recompute(2600)
	require.Equal(t, "contact", s.Active())

	s.Recompute(9000)
	assert.Equal(t, "", s.Active())
	for id, active := range s.Links() {
		assert.False(t, active, id)
	}
}

func TestScrollSpy_OverlapPrefersLaterSection(t *testing.T) {
	sections := []Section{
		{ID: "about", Top: 0, Height: 1000},
		{ID: "skills", Top: 600, Height: 600},
	}
	s := NewScrollSpy(schedule.NewManual(epoch), DefaultSpyConfig(), sections)

	s.Recompute(700)
	assert.Equal(t, "skills", s.Active())
	assert.Equal(t, map[string]bool{"about": false, "skills": true}, s.Links())
}

func TestScrollSpy_CoalescesPerFrame(t *testing.T) {
	clock := schedule.NewManual(epoch)
	s := NewScrollSpy(clock, DefaultSpyConfig(), pageSections())

	s.OnScroll(10)
	s.OnScroll(500)
	s.OnScroll(900)
	assert.Equal(t, 0, s.Frames())

	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, 1, s.Frames())
	assert.Equal(t, "skills", s.Active(), "latest position wins")

	s.OnScroll(2000)
	clock.Advance(16 * time.Millisecond)
	assert.Equal(t, 2, s.Frames())
	assert.Equal(t, "projects", s.Active())
}

func TestScrollSpy_HeaderThreshold(t *testing.T) {
	s := NewScrollSpy(schedule.NewManual(epoch), DefaultSpyConfig(), pageSections())

	s.Recompute(50)
	assert.False(t, s.HeaderScrolled())
	s.Recompute(51)
	assert.True(t, s.HeaderScrolled())
	s.Recompute(0)
	assert.False(t, s.HeaderScrolled())
}

func TestNavigator(t *testing.T) {
	clock := schedule.NewManual(epoch)
	menu := NewMenu(clock, DefaultMenuConfig(), nil)
	spy := NewScrollSpy(clock, DefaultSpyConfig(), pageSections())
	nav := NewNavigator(menu, spy, 70)

	menu.Toggle()
	y, err := nav.Navigate("projects")
	require.NoError(t, err)
	assert.Equal(t, float64(1330), y)
	assert.False(t, menu.IsOpen(), "menu closes before scrolling")

	y, err = nav.Target("home")
	require.NoError(t, err)
	assert.Equal(t, float64(0), y, "clamped at the top of the page")

	_, err = nav.Target("blog")
	assert.Error(t, err)
}

func TestScrollSpy_SetSections(t *testing.T) {
	s := NewScrollSpy(schedule.NewManual(epoch), DefaultSpyConfig(), nil)
	s.Recompute(0)
	assert.Equal(t, "", s.Active())

	s.SetSections(pageSections())
	s.Recompute(0)
	assert.Equal(t, "home", s.Active())
}
