package cli

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"WigglyBoard/internal/config"
	"WigglyBoard/internal/engine"
	"WigglyBoard/internal/motion"
	"WigglyBoard/internal/render"
	"WigglyBoard/internal/state"
)

const (
	defaultFrames = 90
	defaultFPS    = 30
	defaultWidth  = 640
	defaultHeight = 360
	defaultSeed   = 42

	gestureMs       = 2400 // length of the scripted gesture
	gestureSampleMs = 16   // pointer event spacing
)

type replayOpts struct {
	frames int
	fps    int
	out    string
	width  int
	height int
	seed   uint64
}

func newReplayCmd() *cobra.Command {
	opts := replayOpts{
		frames: defaultFrames,
		fps:    defaultFPS,
		out:    "frames",
		width:  defaultWidth,
		height: defaultHeight,
		seed:   defaultSeed,
	}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Draw a scripted gesture and write its animation as PNG frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runReplay(cmd.Context(), configFromContext(cmd.Context()), &opts)
		},
	}

	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "number of frames to write")
	cmd.Flags().IntVar(&opts.fps, "fps", opts.fps, "frames per second of the output")
	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output directory")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "frame width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "frame height in pixels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed for the jitter")

	return cmd
}

func (o *replayOpts) validate() error {
	switch {
	case o.frames <= 0:
		return fmt.Errorf("invalid frames: %d (must be positive)", o.frames)
	case o.fps <= 0:
		return fmt.Errorf("invalid fps: %d (must be positive)", o.fps)
	case o.width <= 0 || o.height <= 0:
		return fmt.Errorf("invalid size: %dx%d", o.width, o.height)
	case o.out == "":
		return fmt.Errorf("output directory is required")
	}
	return nil
}

// runReplay records the scripted gesture as an animated path with echoes,
// then renders frames starting at the moment the pointer is released.
func runReplay(ctx context.Context, cfg config.Config, opts *replayOpts) error {
	logger := loggerFromContext(ctx)

	cfg.Mode = config.ModeDraw
	cfg.Capture = config.CaptureAnimated
	cfg.Echo = true
	cfg.FrameRate = opts.fps

	noise := motion.NewNoiseCache(rand.New(rand.NewPCG(opts.seed, opts.seed)))
	e := engine.New(cfg, engine.WithLogger(logger), engine.WithNoise(noise))

	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	end := playGesture(e, start, figureEight(opts.width, opts.height))
	logger.Infof("Recorded gesture: %d ms, %d paths", gestureMs, len(e.Board().Layer(cfg.Layer).Paths))

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	prog := newProgress(logger)
	r := render.NewRaster(opts.width, opts.height)
	step := time.Second / time.Duration(opts.fps)
	for i := range opts.frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.Paint(r, end.Add(time.Duration(i)*step))
		path := filepath.Join(opts.out, fmt.Sprintf("frame_%04d.png", i))
		if err := writeFrame(r, path); err != nil {
			return err
		}
		logger.Debug("frame written", "path", path)
	}
	prog.done("Wrote %d frames to %s", opts.frames, opts.out)
	return nil
}

// playGesture feeds points to e as one pointer stroke, one event every
// gestureSampleMs, and returns the release time.
func playGesture(e *engine.Engine, start time.Time, points []state.Point) time.Time {
	at := start
	for i, p := range points {
		at = start.Add(time.Duration(i*gestureSampleMs) * time.Millisecond)
		if i == 0 {
			e.PointerDown(p, at)
			continue
		}
		e.PointerMove(p, at)
	}
	e.PointerUp(at)
	return at
}

// figureEight traces a lemniscate centred in a w x h frame.
func figureEight(w, h int) []state.Point {
	n := gestureMs/gestureSampleMs + 1
	cx, cy := float64(w)/2, float64(h)/2
	ax, ay := float64(w)*0.35, float64(h)*0.6

	pts := make([]state.Point, 0, n)
	for i := range n {
		t := 2 * math.Pi * float64(i) / float64(n-1)
		pts = append(pts, state.Point{
			X: cx + ax*math.Sin(t),
			Y: cy + ay*math.Sin(t)*math.Cos(t),
		})
	}
	return pts
}

func writeFrame(r *render.Raster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
