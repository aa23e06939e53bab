// Package audio plays the machine's beep through the system speaker.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/retroenv/retrogolib/log"
)

// Beeper replays a decoded mp3 sample on every beep. Without a sample it only logs.
type Beeper struct {
	sample *beep.Buffer
	logger *log.Logger
}

// NewBeeper decodes the sample at path and opens the speaker. An empty path gives a silent beeper.
func NewBeeper(path string, logger *log.Logger) (*Beeper, error) {
	b := &Beeper{logger: logger}
	if path == "" {
		return b, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening beep sample: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding beep sample: %w", err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	b.sample = beep.NewBuffer(format)
	b.sample.Append(streamer)
	return b, nil
}

func (b *Beeper) Beep() {
	b.logger.Debug("BEEP!")
	if b.sample == nil {
		return
	}
	speaker.Play(b.sample.Streamer(0, b.sample.Len()))
}
