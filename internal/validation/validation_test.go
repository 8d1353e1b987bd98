package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-studio/internal/rendering"
	"github.com/jonathan/portfolio-studio/internal/synthesis"
)

func TestCheckDocument_RenderedTemplatesAreClean(t *testing.T) {
	for _, id := range rendering.TemplateIDs() {
		t.Run(id, func(t *testing.T) {
			html, err := rendering.Render(id, synthesis.DummyData(id))
			require.NoError(t, err)

			violations, err := CheckDocument(html)
			require.NoError(t, err)
			assert.Empty(t, violations)
		})
	}
}

func TestCheckDocument_MissingSections(t *testing.T) {
	html := `<html><body>
		<header id="basic-info"><h1 class="name">Ada</h1></header>
		<section id="about"><p>Hi.</p></section>
	</body></html>`

	violations, err := CheckDocument(html)
	require.NoError(t, err)

	sections := make([]string, 0, len(violations))
	for _, v := range violations {
		sections = append(sections, v.Section)
	}
	assert.Contains(t, sections, "skills")
	assert.Contains(t, sections, "experience")
	assert.Contains(t, sections, "education")
	assert.NotContains(t, sections, "about")
}

func TestCheckDocument_EmptyName(t *testing.T) {
	html := `<html><body>
		<header id="basic-info"><h1 class="name">   </h1></header>
		<section id="about"><p>Hi.</p></section>
		<section id="skills"><span class="skill">Go</span></section>
		<section id="experience"><div class="entry">x</div></section>
		<section id="education"><div class="entry">y</div></section>
	</body></html>`

	violations, err := CheckDocument(html)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "basic-info", violations[0].Section)
	assert.Contains(t, violations[0].Message, "name")
}

func TestCheckDocument_EmptyCollections(t *testing.T) {
	html := `<html><body>
		<header id="basic-info"><h1 class="name">Ada</h1></header>
		<section id="about"><p>Hi.</p></section>
		<section id="skills"></section>
		<section id="experience"></section>
		<section id="education"></section>
	</body></html>`

	violations, err := CheckDocument(html)
	require.NoError(t, err)
	assert.Len(t, violations, 3)
}
