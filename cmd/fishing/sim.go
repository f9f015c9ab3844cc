package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/catalog"
	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/fishing"
	"github.com/vovakirdan/tui-fishing/internal/render"
)

var (
	flagTicks   int
	flagSimCols int
	flagSimRows int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless scripted session",
	Long: `Run the simulation without a display. A scripted angler casts,
hooks and reels; the final frame and a summary are printed. The same seed
always produces the same output.

Examples:
  fishing sim --seed 42
  fishing sim --seed 7 --ticks 20000 --stage festival`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 6000, "Ticks to simulate")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Columns of the printed frame")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 24, "Rows of the printed frame")
	simCmd.Flags().StringVar(&flagStage, "stage", "", "Stage id")
}

func runSim(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cat, tune, err := loadAssets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagStage != "" {
		if err := resolveStage(cat, flagStage); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("using random seed", "seed", seed)
	}

	simulate(os.Stdout, simOptions{
		Catalog: cat,
		Tuning:  tune,
		Stage:   flagStage,
		Seed:    seed,
		Ticks:   flagTicks,
		Cols:    flagSimCols,
		Rows:    flagSimRows,
		Logger:  logger,
	})
}

type simOptions struct {
	Catalog *catalog.Catalog
	Tuning  config.FishingConfig
	Stage   string
	Seed    int64
	Ticks   int
	Cols    int
	Rows    int
	Logger  *log.Logger
}

// simulate runs a scripted session on a manual clock and prints the
// outcome to out.
func simulate(out io.Writer, opts simOptions) fishing.Stats {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	rc := core.RuntimeConfig{
		Width:    float64(opts.Cols * 10),
		Height:   float64(opts.Rows * 20),
		TickRate: 60,
		Seed:     opts.Seed,
	}
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	game := fishing.New(opts.Catalog, opts.Tuning, rc,
		fishing.WithLogger(opts.Logger),
		fishing.WithRand(core.NewRand(opts.Seed)),
		fishing.WithClock(clock),
	)
	if opts.Stage != "" {
		game.ChangeStage(opts.Stage)
	}
	game.Start()

	bot := &angler{limit: opts.Tuning.Physics.TensionLimit}
	step := rc.TickInterval()
	catches := 0
	for i := 0; i < opts.Ticks; i++ {
		if bot.step(game, rc) {
			catches++
		}
		game.Update(rc.Width, rc.Height)
		clock.Advance(step)
	}

	term := render.NewTerminal(opts.Cols, opts.Rows)
	game.Draw(term, rc.Width, rc.Height)
	stats := game.Stats()

	fmt.Fprintln(out, term.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "seed %d  ticks %d  stage %s\n", opts.Seed, stats.Tick, game.Stage().ID)
	fmt.Fprintf(out, "catches %d  score %.2f  book %d/%d  phase %s\n",
		catches, stats.Score, len(game.Caught()), len(opts.Catalog.AllSpecies()), stats.Phase)
	return stats
}

// angler is a scripted player: cast, wait, strike on a bite, reel while
// the tension allows and take the catch card.
type angler struct {
	limit  float64
	casts  int
	waited int
}

// step feeds input for the next tick and reports whether it dismissed a
// catch.
func (a *angler) step(g *fishing.Game, rc core.RuntimeConfig) bool {
	switch g.Phase() {
	case fishing.PhaseIdle:
		a.casts++
		a.waited = 0
		x := rc.Width * (0.2 + 0.6*float64(a.casts%5)/4)
		g.SetInput(core.PointerPress(x, rc.Height*0.6))
		g.SetInput(core.PointerRelease())

	case fishing.PhaseWaiting:
		// Reel in and recast when nothing bites for a while.
		a.waited++
		g.SetInput(core.PointerHold(a.waited > 900))

	case fishing.PhaseBiting:
		g.SetInput(core.PointerHold(true))

	case fishing.PhaseHooked:
		g.SetInput(core.PointerHold(g.Tension() < a.limit*0.7))

	case fishing.PhaseCaught:
		g.SetInput(core.PointerRelease())
		g.DismissResult()
		return true

	default:
		g.SetInput(core.PointerRelease())
	}
	return false
}
