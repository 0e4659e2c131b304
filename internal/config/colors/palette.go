// Package colors holds the terminal palettes used for human-readable output
package colors

// Palette defines the configurable output colors
type Palette struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"` // headers, field labels
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // timestamps, muted text
	Normal string `yaml:"normal"`

	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`

	// Progress bar fill
	Progress string `yaml:"progress"`
}

// Default returns the default (purple) palette
func Default() *Palette {
	return &Palette{
		Preset:   "default",
		Accent:   "#874BFD",
		Title:    "#D75FD7",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Success:  "#5FD75F",
		Warning:  "#FFD700",
		Error:    "#FF0000",
		Progress: "#874BFD",
	}
}

// Monochrome returns a black and white palette
func Monochrome() *Palette {
	return &Palette{
		Preset:   "monochrome",
		Accent:   "#FFFFFF",
		Title:    "#FFFFFF",
		Subtle:   "#808080",
		Normal:   "#D0D0D0",
		Success:  "#FFFFFF",
		Warning:  "#D0D0D0",
		Error:    "#FFFFFF",
		Progress: "#D0D0D0",
	}
}

// GetPreset returns a preset palette by name. Unknown names get the default.
func GetPreset(name string) *Palette {
	if name == "monochrome" {
		return Monochrome()
	}
	return Default()
}

// ApplyDefaults fills in missing colors from the selected preset
func (p *Palette) ApplyDefaults() {
	preset := GetPreset(p.Preset)
	if p.Preset == "" {
		p.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&p.Accent, preset.Accent)
	fill(&p.Title, preset.Title)
	fill(&p.Subtle, preset.Subtle)
	fill(&p.Normal, preset.Normal)
	fill(&p.Success, preset.Success)
	fill(&p.Warning, preset.Warning)
	fill(&p.Error, preset.Error)
	fill(&p.Progress, preset.Progress)
}
