package config

import (
	"path/filepath"
	"time"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4" validate:"min=-4,max=12"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fxcli]"`
	// Output is "stderr", "stdout" or a file path.
	Output string `envconfig:"OUTPUT" default:"stderr" validate:"required"`
}

type Files struct {
	Dir     string `envconfig:"DIR" default:"." validate:"required"`
	Presets string `envconfig:"PRESETS" default:"preset_values.json" validate:"required"`
	History string `envconfig:"HISTORY" default:"conversion_history.json" validate:"required"`
	Help    string `envconfig:"HELP" default:"help_text.json" validate:"required"`
}

// PresetsPath returns the location of the rate table file.
func (f Files) PresetsPath() string { return filepath.Join(f.Dir, f.Presets) }

// HistoryPath returns the location of the conversion history file.
func (f Files) HistoryPath() string { return filepath.Join(f.Dir, f.History) }

// HelpPath returns the location of the help file.
func (f Files) HelpPath() string { return filepath.Join(f.Dir, f.Help) }

type Startup struct {
	Animation  bool          `envconfig:"ANIMATION" default:"true"`
	FrameDelay time.Duration `envconfig:"FRAME_DELAY" default:"100ms" validate:"gte=0"`
	Pause      time.Duration `envconfig:"PAUSE" default:"1s" validate:"gte=0"`
}

type App struct {
	Env     string  `envconfig:"ENV" default:"development"`
	Log     Log     `envconfig:"LOG"`
	Files   Files   `envconfig:"FILES"`
	Startup Startup `envconfig:"STARTUP"`
}
