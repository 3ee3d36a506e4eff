// Package icon resolves symbolic icon names and decides when an image should give
// way to an icon. The table is read-only; callers choose their own fallback.
package icon

import "strings"

type Icon struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

// Default is the icon used when nothing better is known.
var Default = Icon{Name: "sparkles", Glyph: "✨"}

var table = map[string]Icon{
	"rocket":     {Name: "rocket", Glyph: "🚀"},
	"trophy":     {Name: "trophy", Glyph: "🏆"},
	"calendar":   {Name: "calendar", Glyph: "📅"},
	"folder":     {Name: "folder", Glyph: "📁"},
	"graduation": {Name: "graduation", Glyph: "🎓"},
	"briefcase":  {Name: "briefcase", Glyph: "💼"},
	"flask":      {Name: "flask", Glyph: "🧪"},
	"book":       {Name: "book", Glyph: "📖"},
	"lightbulb":  {Name: "lightbulb", Glyph: "💡"},
	"pen":        {Name: "pen", Glyph: "✒️"},
	"github":     {Name: "github", Glyph: "🐙"},
	"linkedin":   {Name: "linkedin", Glyph: "🔗"},
	"email":      {Name: "email", Glyph: "✉️"},
	"phone":      {Name: "phone", Glyph: "📞"},
	"location":   {Name: "location", Glyph: "📍"},
	"sparkles":   Default,
}

// Lookup is case-insensitive and reports whether name is known.
func Lookup(name string) (Icon, bool) {
	i, ok := table[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

// LookupOr returns fallback for unknown names.
func LookupOr(name string, fallback Icon) Icon {
	if i, ok := Lookup(name); ok {
		return i
	}
	return fallback
}

type RenderKind string

const (
	RenderImage RenderKind = "image"
	RenderIcon  RenderKind = "icon"
)

// Renderable is either an image URL or an icon, never both.
type Renderable struct {
	Kind     RenderKind `json:"kind"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Icon     *Icon      `json:"icon,omitempty"`
}

// Resolve prefers imageURL, then the named icon, then fallback.
func Resolve(imageURL, iconName string, fallback Icon) Renderable {
	if strings.TrimSpace(imageURL) != "" {
		return Renderable{Kind: RenderImage, ImageURL: imageURL}
	}
	i := LookupOr(iconName, fallback)
	return Renderable{Kind: RenderIcon, Icon: &i}
}

// ImageFailed is what a renderer calls when the image could not be loaded.
func (r Renderable) ImageFailed(iconName string, fallback Icon) Renderable {
	if r.Kind != RenderImage {
		return r
	}
	return Resolve("", iconName, fallback)
}
