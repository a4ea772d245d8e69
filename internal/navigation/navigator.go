package navigation

import "fmt"

// Navigator resolves navigation-link clicks to scroll targets.
type Navigator struct {
	menu         *Menu
	spy          *ScrollSpy
	headerHeight float64
}

func NewNavigator(menu *Menu, spy *ScrollSpy, headerHeight float64) *Navigator {
	return &Navigator{menu: menu, spy: spy, headerHeight: headerHeight}
}

// Target returns the scroll position that brings a section's top just below
// the fixed header.
func (n *Navigator) Target(sectionID string) (float64, error) {
	n.spy.mu.Lock()
	defer n.spy.mu.Unlock()

	for _, sec := range n.spy.sections {
		if sec.ID == sectionID {
			y := sec.Top - n.headerHeight
			if y < 0 {
				y = 0
			}
			return y, nil
		}
	}
	return 0, fmt.Errorf("navigation: unknown section %q", sectionID)
}

// Navigate handles a link click: the mobile menu is closed first, then the
// target position is returned for the animated scroll.
func (n *Navigator) Navigate(sectionID string) (float64, error) {
	if n.menu != nil {
		n.menu.Close()
	}
	return n.Target(sectionID)
}
