package lightbox

import (
	"fmt"

	"github.com/tsenadheera/portfolio/internal/content"
)

// Entry is one image of the flattened lightbox sequence.
type Entry struct {
	Image   string `json:"image"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
	// Project is the index of the owning project card.
	Project int `json:"project"`
	// Slide is the index of the image within its project.
	Slide int `json:"slide"`
}

// BuildEntries flattens every project image into one sequence in document
// order of (project, image).
func BuildEntries(projects []content.Project) []Entry {
	var entries []Entry
	for pi, p := range projects {
		for si, img := range p.Images {
			entries = append(entries, Entry{
				Image:   img,
				Alt:     fmt.Sprintf("%s screenshot %d", p.Title, si+1),
				Caption: fmt.Sprintf("%s (%d of %d)", p.Title, si+1, len(p.Images)),
				Project: pi,
				Slide:   si,
			})
		}
	}
	return entries
}

// GlobalIndex returns the position of (project, slide) in entries, or -1.
func GlobalIndex(entries []Entry, project, slide int) int {
	for i, e := range entries {
		if e.Project == project && e.Slide == slide {
			return i
		}
	}
	return -1
}
