package automatic

// Data collection for automatic game. Allow computer vs computer games, etc.

import (
	"context"
	"errors"
	"expvar"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/tictactoe/config"
	"github.com/domino14/tictactoe/search/alphabeta"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int

	running atomic.Bool
)

var ErrAlreadyPlaying = errors.New("games are already being played, please wait till complete")

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

type Job struct{}

// workerPicker gives each worker its own picker. Seeded pickers are not
// safe to share, so every worker gets a different seed.
func workerPicker(cfg *config.Config, worker int) alphabeta.Picker {
	seed := cfg.GetUint64(config.ConfigSeed)
	if seed != 0 {
		seed += uint64(worker)
	}
	p, ok := alphabeta.PickerByName(cfg.GetString(config.ConfigTiebreak), seed)
	if !ok {
		return alphabeta.NewRandomPicker()
	}
	return p
}

// StartCompVComp plays numGames bot-vs-bot games on the given number of
// threads, and blocks until they are done. Every game is written to w as a
// CSV line; w may be nil. If ctx is cancelled, no new games are started and
// the summary covers the games that finished.
func StartCompVComp(ctx context.Context, cfg *config.Config, numGames, threads int,
	w io.Writer) (*Summary, error) {

	if !running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyPlaying
	}
	defer running.Store(false)
	if threads < 1 {
		threads = 1
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	CVCCounter.Set(0)
	jobs := make(chan Job, 100)
	logChan := make(chan *GameRecord, 100)
	summary := newSummary()

	writer := errgroup.Group{}
	writer.Go(func() error {
		defer func() {
			log.Debug().Msg("Exiting game logger goroutine!")
		}()
		var werr error
		if w != nil {
			_, werr = io.WriteString(w, logHeader)
		}
		// keep draining even after a write error, so the workers never block
		for rec := range logChan {
			summary.add(rec)
			if w != nil && werr == nil {
				_, werr = io.WriteString(w, rec.csvLine())
			}
		}
		return werr
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 1; i < numGames+1; i++ {
			select {
			case jobs <- Job{}:
			case <-gctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				return nil
			}
			if i%1000 == 0 {
				log.Info().Msgf("Queued %v jobs", i)
			}
		}
		log.Debug().Msg("Finished queueing all jobs.")
		return nil
	})

	for t := 0; t < threads; t++ {
		r := NewGameRunner(logChan, cfg, workerPicker(cfg, t))
		g.Go(func() error {
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for range jobs {
				if _, err := r.playFull(); err != nil {
					return err
				}
				CVCCounter.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	close(logChan)
	werr := writer.Wait()
	summary.finish()
	log.Info().Int("games", summary.Games).Msg("All games finished.")
	if err != nil {
		return summary, err
	}
	return summary, werr
}
