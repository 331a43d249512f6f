package entity

// Column describes how a field is laid out in the grid.
type Column struct {
	Field  string `yaml:"field"`
	Width  int    `yaml:"width,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}
