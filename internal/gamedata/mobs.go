package gamedata

import "github.com/gdamore/tcell/v2"

// MobDef defines an enemy type loaded from JSON.
type MobDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "zombie")
	Name        string `json:"name"`        // Name credited when it kills the hero
	Glyph       string `json:"glyph"`       // Single character for rendering
	Color       string `json:"color"`       // Hex color code (e.g., "#7FBF3F")
	CorpseGlyph string `json:"corpseGlyph"` // Drawn while the death animation plays
}

// MobsFile represents the structure of mobs.json.
type MobsFile struct {
	Mobs []MobDef `json:"mobs"`
}

// LoadMobs loads mob definitions from the embedded mobs.json file.
func LoadMobs() ([]MobDef, error) {
	file, err := Load[MobsFile]("mobs.json")
	if err != nil {
		return nil, err
	}
	return file.Mobs, nil
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MobDef) GlyphRune() rune {
	return firstRune(m.Glyph)
}

// CorpseRune returns the corpse glyph, or '%' when none is set.
func (m *MobDef) CorpseRune() rune {
	if m.CorpseGlyph == "" {
		return '%'
	}
	return firstRune(m.CorpseGlyph)
}

// TCellColor returns the color as a tcell.Color.
func (m *MobDef) TCellColor() tcell.Color {
	return colorOr(m.Color, tcell.ColorGreen)
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PropDef) GlyphRune() rune {
	return firstRune(p.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (p *PropDef) TCellColor() tcell.Color {
	return colorOr(p.Color, tcell.ColorGray)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}
