package cpu

// Speaker receives the beep emitted when the sound timer runs out.
type Speaker interface {
	Beep()
}

// Timers are the delay and sound countdowns. Both count down toward zero and stop there.
type Timers struct {
	Delay uint8
	Sound uint8
}

func (t *Timers) Tick(speaker Speaker) {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		if t.Sound == 1 && speaker != nil {
			speaker.Beep()
		}
		t.Sound--
	}
}
