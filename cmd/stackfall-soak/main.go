package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/plus3/stackfall/input"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetris"
	log "github.com/sirupsen/logrus"
)

// restartAlways restarts every board as soon as it is over.
type restartAlways struct{}

func (restartAlways) Pressed(c session.Command) bool {
	return c == session.CommandRestart
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	players := flag.Int("players", session.MaxPlayers, "The number of bot driven boards.")
	seed := flag.Uint64("seed", 0, "Seed for piece draws and bots. 0 picks one from the clock.")
	ticks := flag.Int64("ticks", 0, "Stop after this many frames. 0 runs until the duration elapses.")
	interval := flag.Duration("interval", 0, "Frame interval. 0 steps as fast as possible.")
	verbose := flag.Bool("verbose", false, "Log every game over and line clear.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	log.WithFields(log.Fields{"players": *players, "seed": *seed}).Info("starting soak")

	// 1. Build one bot per board
	roster := make([]session.Player, *players)
	for i := range roster {
		roster[i] = session.Player{
			Name:  fmt.Sprintf("bot-%d", i+1),
			Input: input.NewBot(tetris.NewPCG(*seed ^ uint64(0xb07+i))),
		}
	}

	var out io.Writer = io.Discard
	if *verbose {
		out = os.Stdout
	}
	s, err := session.New(roster, session.Options{
		Controls: restartAlways{},
		Out:      out,
		Logger:   log.StandardLogger(),
		Seed:     *seed,
	})
	if err != nil {
		log.Fatalf("creating session: %v", err)
	}

	// 2. Run the session
	report := &Report{
		Duration:       *duration,
		Players:        *players,
		Seed:           *seed,
		Interval:       *interval,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Infof("Running soak for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	if *interval > 0 {
		s.Run(ctx, *interval)
	} else {
		report.FrameTime.Samples = runFlat(ctx, s, *ticks)
	}

	report.TotalTime = time.Since(startTime)
	report.Collect(s)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("Soak finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// runFlat steps s back to back until ctx is done or ticks frames ran, and
// returns the duration of every frame.
func runFlat(ctx context.Context, s *session.Session, ticks int64) []time.Duration {
	samples := make([]time.Duration, 0, 1<<16)
	for ticks <= 0 || s.Frames() < ticks {
		select {
		case <-ctx.Done():
			return samples
		default:
		}

		start := time.Now()
		s.Once()
		samples = append(samples, time.Since(start))
	}
	return samples
}
