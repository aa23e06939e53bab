package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "term"
)

type settings struct {
	Clock    int
	TimerHz  int
	Refresh  int
	Scale    float64
	Frontend string
	Beep     string
	Seed     int64
	Coupled  bool
	Trace    bool
	Debug    bool
	Quiet    bool
}

func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Clock:    v.GetInt("clock"),
		TimerHz:  v.GetInt("timer"),
		Refresh:  v.GetInt("refresh"),
		Scale:    v.GetFloat64("scale"),
		Frontend: v.GetString("frontend"),
		Beep:     v.GetString("beep"),
		Seed:     v.GetInt64("seed"),
		Coupled:  v.GetBool("coupled"),
		Trace:    v.GetBool("trace"),
		Debug:    v.GetBool("debug"),
		Quiet:    v.GetBool("quiet"),
	}

	switch {
	case s.Clock <= 0:
		return s, fmt.Errorf("clock must be positive, got %d", s.Clock)
	case s.TimerHz <= 0:
		return s, fmt.Errorf("timer rate must be positive, got %d", s.TimerHz)
	case s.Refresh <= 0:
		return s, fmt.Errorf("refresh rate must be positive, got %d", s.Refresh)
	case s.Scale <= 0:
		return s, fmt.Errorf("scale must be positive, got %v", s.Scale)
	}
	if s.Frontend != frontendWindow && s.Frontend != frontendTerminal {
		return s, fmt.Errorf("unknown frontend %q, use %q or %q", s.Frontend, frontendWindow, frontendTerminal)
	}
	return s, nil
}
