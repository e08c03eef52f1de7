package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk shape of a category override file:
//
//	categories:
//	  code:
//	    - .pdf
//	    - ipynb
type overrideFile struct {
	Categories map[string][]string `yaml:"categories"`
}

// LoadOverrides reads a YAML category override file and flattens it into
// an extension → category map. Extensions are normalized; when two
// categories claim the same extension the result is undefined, so keep
// override files unambiguous.
func LoadOverrides(path string) (map[string]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading override file %q: %w", path, err)
	}

	return ParseOverrides(data)
}

// ParseOverrides parses YAML override data. See LoadOverrides.
func ParseOverrides(data []byte) (map[string]Category, error) {
	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing override file: %w", err)
	}

	overrides := make(map[string]Category)

	for category, extensions := range file.Categories {
		if category == "" {
			return nil, fmt.Errorf("override file contains an empty category name")
		}

		for _, ext := range extensions {
			normalized := NormalizeExtension(ext)
			if normalized == "" {
				return nil, fmt.Errorf("category %q contains an empty extension", category)
			}

			overrides[normalized] = Category(category)
		}
	}

	return overrides, nil
}
