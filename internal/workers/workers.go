package workers

import (
	"context"
	"fmt"

	"github.com/1F47E/go-adofai-art/internal/config"
	"github.com/1F47E/go-adofai-art/internal/frame"
	"github.com/1F47E/go-adofai-art/internal/job"
	"github.com/1F47E/go-adofai-art/internal/layout"
	"github.com/1F47E/go-adofai-art/internal/level"
	"github.com/1F47E/go-adofai-art/internal/logger"
	"github.com/1F47E/go-adofai-art/internal/storage"
)

var log = logger.Log

// Worker turns part folders into level files. Each job owns its frames and
// event list, so workers share nothing but the channels.
type Worker struct {
	ctx      context.Context
	strategy layout.Strategy
	fps      float64
	zoom     int
	lay      config.Layout
}

func NewWorker(ctx context.Context, strategy layout.Strategy, fps float64, zoom int, lay config.Layout) *Worker {
	return &Worker{
		ctx:      ctx,
		strategy: strategy,
		fps:      fps,
		zoom:     zoom,
		lay:      lay,
	}
}

func (w *Worker) WorkerGenerate(id int, jobs <-chan job.Part, results chan<- job.Result) {
	name := fmt.Sprintf("WorkerGenerate #%d", id)
	log.Debugf("%s started\n", name)
	defer log.Debugf("%s finished\n", name)

	for {
		select {
		case <-w.ctx.Done():
			return
		case j, ok := <-jobs:
			if !ok {
				return
			}
			log.Debugf("%s got job %s\n", name, j.Print())
			results <- w.generate(j)
		}
	}
}

func (w *Worker) generate(j job.Part) job.Result {
	res := job.Result{Idx: j.Idx, Name: j.Name}

	frames, err := frame.LoadSequence(j.Files, nil)
	if err != nil {
		res.Err = fmt.Errorf("decode: %w", err)
		return res
	}
	plan, err := w.strategy.Plan(frames, w.fps, w.zoom, w.lay)
	if err != nil {
		res.Err = fmt.Errorf("layout: %w", err)
		return res
	}
	doc := level.New(plan.Floors, plan.Overrides, plan.Actions)
	if err := storage.WriteLevel(j.Out, doc.Write); err != nil {
		res.Err = fmt.Errorf("write: %w", err)
		return res
	}
	res.Floors = plan.Floors
	res.Events = len(plan.Actions)
	return res
}
