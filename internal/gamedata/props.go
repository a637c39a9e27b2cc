package gamedata

// PropDef defines a static obstacle type loaded from JSON.
type PropDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "grave")
	Name  string `json:"name"`  // Display name
	Glyph string `json:"glyph"` // Single character for rendering
	Color string `json:"color"` // Hex color code
}

// PropsFile represents the structure of props.json.
type PropsFile struct {
	Props []PropDef `json:"props"`
}

// LoadProps loads prop definitions from the embedded props.json file.
func LoadProps() ([]PropDef, error) {
	file, err := Load[PropsFile]("props.json")
	if err != nil {
		return nil, err
	}
	return file.Props, nil
}
