package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirscope/dirscope/internal/classify"
)

func TestClassifyBuiltins(t *testing.T) {
	c := classify.New(nil)

	cases := map[string]classify.Category{
		".jpg":  classify.Images,
		".svg":  classify.Images,
		".mp4":  classify.Videos,
		".flac": classify.Audio,
		".pdf":  classify.Documents,
		".epub": classify.Documents,
		".txt":  classify.Office,
		".docx": classify.Office,
		".zip":  classify.Archives,
		".tgz":  classify.Archives,
		".go":   classify.Code,
		".py":   classify.Code,
		".dll":  classify.System,
		".so":   classify.System,
	}

	for ext, want := range cases {
		assert.Equal(t, want, c.Classify(ext), "extension %s", ext)
	}
}

func TestClassifyUnknownFallsBackToOther(t *testing.T) {
	c := classify.New(nil)

	assert.Equal(t, classify.Other, c.Classify(".xyzzy"))
	assert.Equal(t, classify.Other, c.Classify(""))
}

func TestClassifyNormalizesExtensions(t *testing.T) {
	c := classify.New(nil)

	assert.Equal(t, classify.Images, c.Classify("JPG"))
	assert.Equal(t, classify.Images, c.Classify(".JPEG"))
	assert.Equal(t, classify.Videos, c.Classify("  mp4 "))
}

// Extensions claimed by several built-in sets resolve to the first
// category in table order.
func TestClassifyConflictsFirstCategoryWins(t *testing.T) {
	c := classify.New(nil)

	assert.Equal(t, classify.Videos, c.Classify(".ts"))
	assert.Equal(t, classify.Archives, c.Classify(".exe"))
	assert.Equal(t, classify.Archives, c.Classify(".dmg"))
	assert.Equal(t, classify.Documents, c.Classify(".rb"))
}

func TestClassifyOverridesTakePrecedence(t *testing.T) {
	c := classify.New(map[string]classify.Category{
		".pdf": classify.Code,
		"LOG":  "logs",
	})

	assert.Equal(t, classify.Code, c.Classify(".pdf"))
	assert.Equal(t, classify.Code, c.Classify(".PDF"))
	assert.Equal(t, classify.Category("logs"), c.Classify(".log"))

	// Non-overridden extensions still use the built-in table.
	assert.Equal(t, classify.Images, c.Classify(".png"))
}

func TestCategoriesIncludeOverrideTargets(t *testing.T) {
	c := classify.New(map[string]classify.Category{".log": "logs"})

	categories := c.Categories()

	assert.Contains(t, categories, classify.Category("logs"))
	assert.Contains(t, categories, classify.Other)
	assert.Contains(t, categories, classify.Images)
}

func TestNormalizeExtension(t *testing.T) {
	assert.Equal(t, ".pdf", classify.NormalizeExtension("PDF"))
	assert.Equal(t, ".pdf", classify.NormalizeExtension(".pdf"))
	assert.Equal(t, "", classify.NormalizeExtension(""))
	assert.Equal(t, "", classify.NormalizeExtension("  "))
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
categories:
  code:
    - .pdf
    - ipynb
  logs:
    - .log
`)

	overrides, err := classify.ParseOverrides(data)
	require.NoError(t, err)

	assert.Equal(t, classify.Category("code"), overrides[".pdf"])
	assert.Equal(t, classify.Category("code"), overrides[".ipynb"])
	assert.Equal(t, classify.Category("logs"), overrides[".log"])
}

func TestParseOverridesRejectsEmptyExtension(t *testing.T) {
	data := []byte(`
categories:
  code:
    - ""
`)

	_, err := classify.ParseOverrides(data)
	require.Error(t, err)
}

func TestParseOverridesRejectsMalformedYAML(t *testing.T) {
	_, err := classify.ParseOverrides([]byte("categories: ["))
	require.Error(t, err)
}
