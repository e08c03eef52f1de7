// Package classify maps file extensions to content categories.
//
// Classification is a pure lookup: a Classifier is built once from the
// built-in category table plus optional user overrides and is safe for
// concurrent use without synchronization.
package classify

import (
	"sort"
	"strings"
)

// Category is a content category a file is classified into.
type Category string

// Built-in categories. Other is the catch-all for unknown extensions.
const (
	Images    Category = "images"
	Videos    Category = "videos"
	Audio     Category = "audio"
	Documents Category = "documents"
	Office    Category = "office"
	Archives  Category = "archives"
	Code      Category = "code"
	System    Category = "system"
	Other     Category = "other"
)

// DisplayName returns the human-readable name for the category.
func (c Category) DisplayName() string {
	switch c {
	case Images:
		return "Images"
	case Videos:
		return "Videos"
	case Audio:
		return "Audio"
	case Documents:
		return "Documents/Books"
	case Office:
		return "Office Documents"
	case Archives:
		return "Archives"
	case Code:
		return "Code/Development"
	case System:
		return "System/Applications"
	case Other:
		return "Other"
	default:
		return strings.Title(string(c)) //nolint:staticcheck // Category names are ASCII
	}
}

// builtinTable lists the built-in extension sets in category order.
// Some extensions appear in more than one set (".rb", ".exe", ".dmg", ...);
// the first category in this order claims the extension.
var builtinTable = []struct {
	category   Category
	extensions []string
}{
	{Images, []string{
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp", ".svg",
		".raw", ".cr2", ".nef", ".arw", ".dng", ".raf", ".orf", ".rw2",
		".pef", ".srw", ".x3f", ".ico", ".heic", ".heif", ".avif",
	}},
	{Videos, []string{
		".mp4", ".avi", ".mov", ".mkv", ".wmv", ".flv", ".webm", ".m4v",
		".3gp", ".mpg", ".mpeg", ".m2v", ".mts", ".ts", ".vob", ".rm",
		".rmvb", ".asf", ".ogv", ".dv", ".f4v", ".m4p", ".divx",
	}},
	{Audio, []string{
		".mp3", ".flac", ".wav", ".aac", ".ogg", ".m4a", ".wma", ".opus",
		".mp2", ".aiff", ".au", ".ra", ".ac3", ".dts", ".ape", ".tak",
		".tta", ".wv", ".mka", ".caf", ".amr", ".3ga",
	}},
	{Documents, []string{
		".pdf", ".epub", ".mobi", ".chm", ".djvu", ".fb2", ".azw", ".azw3",
		".azw4", ".lit", ".pdb", ".tcr", ".lrf", ".rb", ".pml", ".tr2", ".tr3",
	}},
	{Office, []string{
		".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".md", ".txt",
		".rtf", ".odt", ".ods", ".odp", ".odg", ".odf", ".sxw", ".sxc",
		".sxi", ".wpd", ".wps", ".pages", ".numbers", ".key", ".tex",
	}},
	{Archives, []string{
		".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".lzma",
		".cab", ".iso", ".dmg", ".pkg", ".deb", ".rpm", ".msi", ".exe",
		".z", ".lz", ".lzo", ".rz", ".sz", ".dz", ".tbz2", ".tgz", ".txz",
	}},
	{Code, []string{
		".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".rs", ".go",
		".json", ".xml", ".yaml", ".yml", ".ini", ".cfg", ".conf", ".php",
		".rb", ".pl", ".sh", ".bat", ".ps1", ".vbs", ".lua", ".r", ".m",
		".swift", ".kt", ".scala", ".hs", ".clj", ".fs", ".ml", ".pas",
	}},
	{System, []string{
		".exe", ".dll", ".sys", ".drv", ".ocx", ".cpl", ".scr", ".com",
		".app", ".dmg", ".pkg", ".deb", ".rpm", ".so", ".dylib", ".ko",
		".bin", ".run", ".bundle", ".framework", ".kext", ".prefpane",
	}},
}

// builtin is the flattened first-category-wins lookup table.
var builtin = func() map[string]Category {
	table := make(map[string]Category)

	for _, group := range builtinTable {
		for _, ext := range group.extensions {
			if _, ok := table[ext]; !ok {
				table[ext] = group.category
			}
		}
	}

	return table
}()

// Classifier resolves extensions to categories. The zero value is not
// usable; construct with New.
type Classifier struct {
	overrides map[string]Category
}

// New creates a Classifier with the given extension overrides.
// Override keys are normalized to lower-case with a leading dot and take
// precedence over the built-in table.
func New(overrides map[string]Category) *Classifier {
	normalized := make(map[string]Category, len(overrides))

	for ext, category := range overrides {
		normalized[NormalizeExtension(ext)] = category
	}

	return &Classifier{overrides: normalized}
}

// NormalizeExtension lower-cases ext and ensures a leading dot.
// An empty extension stays empty.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

// Classify returns the content category for a file extension.
// Lookup order: user overrides, built-in table, Other.
func (c *Classifier) Classify(ext string) Category {
	ext = NormalizeExtension(ext)

	if category, ok := c.overrides[ext]; ok {
		return category
	}

	if category, ok := builtin[ext]; ok {
		return category
	}

	return Other
}

// Categories returns the sorted set of categories the classifier can
// produce, built-ins plus any override targets.
func (c *Classifier) Categories() []Category {
	seen := map[Category]struct{}{
		Images: {}, Videos: {}, Audio: {}, Documents: {}, Office: {},
		Archives: {}, Code: {}, System: {}, Other: {},
	}
	for _, category := range c.overrides {
		seen[category] = struct{}{}
	}

	categories := make([]Category, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	return categories
}
