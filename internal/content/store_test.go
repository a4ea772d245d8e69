package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()

	assert.Equal(t, "Thameeshi Senadheera", p.Personal.Name)
	assert.Len(t, p.Personal.Roles, 4)
	assert.Len(t, p.Skills, 6)
	require.NotEmpty(t, p.Projects)
	assert.Equal(t, []string{"ss1.jpg", "ss2.jpg", "ss3.jpg"}, p.Projects[0].Images)
	assert.NotContains(t, p.Personal.Description, "\n")
	assert.Equal(t, 6, p.TotalImages())
}

func TestDefault_NullLiveLink(t *testing.T) {
	p := Default()

	proj, ok := p.Project("nft-marketplace")
	require.True(t, ok)
	assert.Nil(t, proj.Links.Live)

	proj, ok = p.Project("fullstack-web-app")
	require.True(t, ok)
	require.NotNil(t, proj.Links.Live)
	assert.Equal(t, "#", *proj.Links.Live)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := []byte(`
personal:
  name: Test User
projects:
  - id: one
    title: One
    images: [a.png, b.png]
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test User", p.Personal.Name)
	assert.Equal(t, 2, p.Projects[0].ImageCount())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "projects: []"},
		{"project without id", "personal: {name: X}\nprojects: [{title: T}]"},
		{"duplicate ids", "personal: {name: X}\nprojects: [{id: a, title: A}, {id: a, title: B}]"},
		{"project without title", "personal: {name: X}\nprojects: [{id: a}]"},
		{"empty image", "personal: {name: X}\nprojects: [{id: a, title: A, images: ['']}]"},
		{"certification without name", "personal: {name: X}\ncertifications: [{issuer: Y}]"},
		{"bad yaml", "personal: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
