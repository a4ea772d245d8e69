package content

// Portfolio is the complete site content. It is built once at startup and
// treated as read-only afterwards.
type Portfolio struct {
	Personal       Personal        `yaml:"personal" json:"personal"`
	Social         Social          `yaml:"social" json:"social"`
	Skills         []SkillCategory `yaml:"skills" json:"skills"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
}

type Personal struct {
	Name        string   `yaml:"name" json:"name"`
	Title       string   `yaml:"title" json:"title"`
	Roles       []string `yaml:"roles" json:"roles"`
	Description string   `yaml:"description" json:"description"`
	University  string   `yaml:"university" json:"university,omitempty"`
	ResumeLink  string   `yaml:"resume_link" json:"resume_link,omitempty"`
	Email       string   `yaml:"email" json:"email"`
	Phone       string   `yaml:"phone" json:"phone,omitempty"`
	Location    string   `yaml:"location" json:"location,omitempty"`
}

type Social struct {
	Facebook string `yaml:"facebook" json:"facebook,omitempty"`
	LinkedIn string `yaml:"linkedin" json:"linkedin,omitempty"`
	GitHub   string `yaml:"github" json:"github,omitempty"`
	Twitter  string `yaml:"twitter" json:"twitter,omitempty"`
}

type SkillCategory struct {
	Category     string `yaml:"category" json:"category"`
	Technologies string `yaml:"technologies" json:"technologies"`
}

// Project is a showcased piece of work. Images are listed in display order.
type Project struct {
	ID           string       `yaml:"id" json:"id"`
	Title        string       `yaml:"title" json:"title"`
	Description  string       `yaml:"description" json:"description"`
	Images       []string     `yaml:"images" json:"images"`
	Features     []string     `yaml:"features" json:"features"`
	Technologies []string     `yaml:"technologies" json:"technologies"`
	Links        ProjectLinks `yaml:"links" json:"links"`
}

// ProjectLinks holds external links. Live is nil when there is no demo.
type ProjectLinks struct {
	Source string  `yaml:"source" json:"source,omitempty"`
	Live   *string `yaml:"live" json:"live,omitempty"`
}

type Certification struct {
	Name   string `yaml:"name" json:"name"`
	Issuer string `yaml:"issuer" json:"issuer"`
	Date   string `yaml:"date" json:"date,omitempty"`
	Link   string `yaml:"link" json:"link,omitempty"`
	Image  string `yaml:"image" json:"image,omitempty"`
}

// ImageCount returns the number of images of the project.
func (p Project) ImageCount() int {
	return len(p.Images)
}

// TotalImages returns the number of images across all projects.
func (p *Portfolio) TotalImages() int {
	n := 0
	for _, proj := range p.Projects {
		n += len(proj.Images)
	}
	return n
}

// Project looks a project up by ID.
func (p *Portfolio) Project(id string) (Project, bool) {
	for _, proj := range p.Projects {
		if proj.ID == id {
			return proj, true
		}
	}
	return Project{}, false
}
