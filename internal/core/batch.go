package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/job"
	"github.com/1F47E/go-adofai-art/internal/layout"
	"github.com/1F47E/go-adofai-art/internal/logger"
	"github.com/1F47E/go-adofai-art/internal/storage"
	"github.com/1F47E/go-adofai-art/internal/tui"
	"github.com/1F47E/go-adofai-art/internal/workers"
)

// Batch generates one level per part folder. Parts are independent jobs
// with disjoint working sets, so they run in parallel.
func (c *Core) Batch(dir, outDir string, fps float64, zoom int, strat layout.Strategy) error {
	log := logger.Log.WithField("scope", "core batch")

	parts, err := storage.ListParts(dir)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if outDir == "" {
		outDir = dir
	}
	log.Debugf("found %d parts in %s", len(parts), dir)

	worker := workers.NewWorker(c.ctx, strat, fps, zoom, config.DefaultLayout())
	jobs := make(chan job.Part)
	results := make(chan job.Result, len(parts))

	cores := runtime.NumCPU()
	if cores > len(parts) {
		cores = len(parts)
	}
	wg := sync.WaitGroup{}
	for i := 0; i < cores; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			worker.WorkerGenerate(i+1, jobs, results)
		}()
	}

	go func() {
		defer close(jobs)
		for i, p := range parts {
			select {
			case <-c.ctx.Done():
				return
			case jobs <- job.Part{
				Idx:   i,
				Name:  p.Name,
				Files: p.Files,
				Out:   filepath.Join(outDir, p.Name+config.LevelExt),
			}:
			}
		}
	}()

	var firstErr error
	for i := 0; i < len(parts); i++ {
		select {
		case <-c.ctx.Done():
			wg.Wait()
			return c.ctx.Err()
		case res := <-results:
			if res.Err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("part %s: %w", res.Name, res.Err)
				}
				log.Errorf("part %s failed: %v", res.Name, res.Err)
				continue
			}
			log.Infof("part %s: %d floors, %d events", res.Name, res.Floors, res.Events)
			c.eventsCh <- tui.NewEventBar("Generating levels...", float64(i+1)/float64(len(parts)))
		}
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	c.eventsCh <- tui.NewEventText(fmt.Sprintf("Generated %d levels in %s", len(parts), outDir))
	return nil
}
