package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/beanboi7/chyp8/chyp"
	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/beanboi7/chyp8/emu/term"
	"github.com/beanboi7/chyp8/insides/chyp8"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// chyp8 start 'path/to/ROM' -r 60 -c 700
func Start(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}
	logger := createLogger(cfg.Debug || cfg.Trace, cfg.Quiet)

	rom, err := chyp.LoadROM(args[0])
	if err != nil {
		return err
	}

	beeper, err := audio.NewBeeper(cfg.Beep, logger)
	if err != nil {
		return err
	}

	opts := []cpu.Option{
		cpu.WithRandom(cpu.NewLiveRandom(cfg.Seed)),
		cpu.WithSpeaker(beeper),
	}
	if cfg.Trace {
		opts = append(opts, cpu.WithLogger(logger))
	}
	emu := cpu.NewEMU(opts...)
	if err := emu.Load(rom); err != nil {
		return err
	}
	logger.Info("Loaded ROM", log.String("file", args[0]), log.Int("size", len(rom)))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runCfg := chyp8.Config{
		Clock:   cfg.Clock,
		TimerHz: cfg.TimerHz,
		Coupled: cfg.Coupled,
	}
	if cfg.Frontend == frontendTerminal {
		return runTerminal(ctx, emu, logger, runCfg, cfg.Refresh)
	}
	return runWindow(ctx, emu, logger, runCfg, cfg)
}

// runWindow keeps the window on the main thread and the machine on its own goroutine.
func runWindow(ctx context.Context, emu *cpu.EMU, logger *log.Logger, runCfg chyp8.Config, cfg settings) error {
	var runErr error
	screen.Run(func() {
		win, err := screen.NewWindow("Chyp8", cfg.Scale)
		if err != nil {
			runErr = err
			return
		}
		defer win.Destroy()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		runner := chyp8.NewRunner(emu, win.Keypad(), logger, runCfg)
		errc := make(chan error, 1)
		go func() {
			errc <- runner.Run(ctx)
			cancel()
		}()

		win.Loop(ctx, emu, cfg.Refresh)
		cancel()
		runErr = <-errc
	})
	return runErr
}

func runTerminal(ctx context.Context, emu *cpu.EMU, logger *log.Logger, runCfg chyp8.Config, refresh int) error {
	raw, err := term.EnterRaw(os.Stdin)
	if err != nil {
		return err
	}
	defer func() {
		if err := raw.Restore(); err != nil {
			logger.Error("Restoring terminal failed", log.Err(err))
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keyboard := term.NewKeyboard()
	go func() {
		if err := keyboard.Listen(ctx, os.Stdin); err != nil {
			logger.Error("Reading keyboard failed", log.Err(err))
		}
	}()

	runner := chyp8.NewRunner(emu, keyboard, logger, runCfg)
	errc := make(chan error, 1)
	go func() {
		errc <- runner.Run(ctx)
		cancel()
	}()

	term.Loop(ctx, emu, refresh)
	return <-errc
}

func init() {
	rootCmd.AddCommand(startCmd)

	flags := startCmd.Flags()
	flags.IntP("clock", "c", chyp8.DefaultClock, "instructions executed per second")
	flags.Int("timer", chyp8.DefaultTimerHz, "delay and sound timer rate in Hz")
	flags.IntP("refresh", "r", 60, "sets the refresh rate of the display")
	flags.Float64P("scale", "s", 10, "window pixels per CHIP-8 pixel")
	flags.StringP("frontend", "f", frontendWindow, "display frontend: window or term")
	flags.String("beep", "", "mp3 sample played when the sound timer expires")
	flags.Int64("seed", 0, "random seed, 0 picks one from the clock")
	flags.Bool("coupled", false, "tick timers once per instruction like the original interpreter")
	flags.Bool("trace", false, "log every executed instruction")

	for _, name := range []string{"clock", "timer", "refresh", "scale", "frontend", "beep", "seed", "coupled", "trace"} {
		cobra.CheckErr(viper.BindPFlag(name, flags.Lookup(name)))
	}
}
