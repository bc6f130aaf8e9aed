package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"github.com/iburimskiy/midi-starshow/internal/audio"
	"github.com/iburimskiy/midi-starshow/internal/config"
	"github.com/iburimskiy/midi-starshow/internal/game"
	"github.com/iburimskiy/midi-starshow/internal/logger"
	"github.com/iburimskiy/midi-starshow/internal/render"
	"github.com/iburimskiy/midi-starshow/internal/track"
)

var (
	configPath = flag.String("config", "", "YAML show config (defaults apply when empty)")
	trackPath  = flag.String("track", "", "MIDI file driving the show; a file dialog opens when empty")
	audioPath  = flag.String("audio", "", "optional wav/mp3/flac rendition of the track to play along")
	headless   = flag.Bool("headless", false, "run without a window")
	seedFlag   = flag.Int64("seed", 0, "random seed, 0 picks one")
	debugFlag  = flag.Bool("debug", false, "debug logging and on-screen status")
)

// app adapts the show to ebiten's game loop.
type app struct {
	show *game.Game
	cfg  *config.Config
}

func (a *app) Update() error {
	if a.show.Tick() == game.Stop {
		return ebiten.Termination
	}
	return nil
}

func (a *app) Draw(dst *ebiten.Image) {
	a.show.Render(newScreen(dst))
	if a.cfg.Debug {
		ebitenutil.DebugPrintAt(dst, a.show.Status(), 12, 12)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ViewportWidth, a.cfg.ViewportHeight
}

func main() {
	flag.Parse()

	log := logger.GetProjectLogger()
	if err := run(log); err != nil {
		log.WithError(err).Error("starshow stopped")
		os.Exit(1)
	}
}

func run(log *logrus.Entry) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	path := *trackPath
	if path == "" {
		if *headless {
			return fmt.Errorf("-track is required with -headless")
		}
		if path, err = pickTrack(); err != nil {
			return err
		}
		if path == "" {
			log.Info("no track selected")
			return nil
		}
	}

	seq, err := track.Load(path)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"track":    filepath.Base(path),
		"events":   seq.Len(),
		"notes":    seq.NoteOns(),
		"duration": seq.Duration(),
	}).Info("track loaded")

	clockBase := track.NewClockTimebase(clock.RealClock{})
	var base track.Timebase = clockBase
	if *audioPath != "" {
		backing, err := startAudio(*audioPath, log)
		if err != nil {
			log.WithError(err).Warn("continuing without audio, pacing by clock")
		} else {
			defer backing.Close()
			base = track.NewHoldoverTimebase(backing, clock.RealClock{})
		}
	}

	show, err := game.New(game.Options{
		Config: cfg,
		Source: track.NewPlayer(seq, base),
		Input:  inputFor(*headless),
		Log:    log,
	})
	if err != nil {
		return err
	}
	clockBase.Start()

	if *headless {
		return runHeadless(show, log)
	}

	ebiten.SetWindowSize(cfg.ViewportWidth, cfg.ViewportHeight)
	ebiten.SetWindowTitle("MIDI Star Show - " + filepath.Base(path) + " (Esc/Q: quit)")
	ebiten.SetTPS(cfg.TargetFrameRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(&app{show: show, cfg: cfg}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("show finished")
	return nil
}

func runHeadless(show *game.Game, log *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var frames render.Counter
	if err := show.RunHeadless(ctx, clock.RealClock{}, &frames); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"frames":   frames.Frames,
		"polygons": frames.Polygons,
	}).Info(show.Status())
	return nil
}

// startAudio opens and plays the backing audio. The returned track doubles
// as the show's timebase.
func startAudio(path string, log *logrus.Entry) (*audio.Track, error) {
	backing, err := audio.Open(path, log)
	if err != nil {
		return nil, err
	}
	if err := backing.Play(); err != nil {
		_ = backing.Close()
		return nil, err
	}
	return backing, nil
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

func inputFor(headless bool) game.Input {
	if headless {
		return game.NoInput
	}
	return keyboardInput{}
}

// pickTrack asks for a MIDI file. An empty path means the user cancelled.
func pickTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open MIDI Track"),
		zenity.FileFilters{{
			Name:     "MIDI",
			Patterns: []string{"*.mid", "*.midi"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
