package game

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"github.com/iburimskiy/midi-starshow/internal/render"
)

// RunHeadless drives the show at the target frame rate without a window,
// drawing into s. It returns when the track has ended, quit was requested
// or ctx is cancelled.
func (g *Game) RunHeadless(ctx context.Context, clk clock.WithTicker, s render.Surface) error {
	ticker := clk.NewTicker(time.Second / time.Duration(g.cfg.TargetFrameRate))
	defer ticker.Stop()

	for {
		if g.Tick() == Stop {
			g.log.WithFields(logrus.Fields{
				"frames": g.frame,
				"at":     formatDuration(g.SimTime()),
			}).Info("headless run finished")
			return nil
		}
		g.Render(s)

		select {
		case <-ctx.Done():
			g.done = true
			g.log.WithField("frames", g.frame).Info("headless run cancelled")
			return nil
		case <-ticker.C():
		}
	}
}
