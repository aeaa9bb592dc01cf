package editor

// Config configures the editor Model.
type Config struct {
	// Source, when non-empty, is loaded into the engine by New.
	// Use Model.Load to start a session over an empty document.
	Source string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	KeyMap KeyMap // default: DefaultKeyMap()

	// OnChange is called after every effective reveal change.
	OnChange func(ChangeEvent)
}

func (c Config) normalized() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if len(c.KeyMap.ScrollUp.Keys()) == 0 && len(c.KeyMap.ScrollDown.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
