// Package pipeline validates a batch of files concurrently for the command
// line.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"riddl/internal/compiler"
	"riddl/internal/diagfmt"
	"riddl/internal/reconcile"
)

// Options configures Run.
type Options struct {
	// Jobs bounds the number of files validated at once; <= 0 uses GOMAXPROCS.
	Jobs     int
	Progress ProgressSink
	Logger   *zap.Logger
}

// Run reads, validates and reconciles every file. Reports are returned in
// the order of files. A file that cannot be read gets a report with Err set;
// a failed validate call becomes the single synthetic exception record. Only
// context cancellation aborts the batch.
func Run(ctx context.Context, adapter *compiler.Adapter, files []string, opts Options) ([]diagfmt.FileReport, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reports := make([]diagfmt.FileReport, len(files))
	if len(files) == 0 {
		return reports, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	emitQueued(opts.Progress, files)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// индекс уникален для каждой горутины, мьютекс не нужен
			rep, err := validateFile(gctx, adapter, path, opts.Progress, log)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}

func validateFile(ctx context.Context, adapter *compiler.Adapter, path string, sink ProgressSink, log *zap.Logger) (diagfmt.FileReport, error) {
	start := time.Now()
	rep := diagfmt.FileReport{Path: path}

	emit(sink, Event{File: path, Stage: StageRead, Status: StatusWorking})
	data, err := os.ReadFile(path)
	if err != nil {
		rep.Err = fmt.Errorf("failed to read file: %w", err)
		emit(sink, Event{File: path, Stage: StageRead, Status: StatusError, Err: rep.Err, Elapsed: time.Since(start)})
		return rep, nil
	}
	rep.Text = string(data)

	emit(sink, Event{File: path, Stage: StageValidate, Status: StatusWorking})
	res, err := adapter.Validate(ctx, rep.Text, path, true)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return rep, ctxErr
		}
		log.Debug("validate failed", zap.String("file", path), zap.Error(err))
		rep.Records = []reconcile.Record{reconcile.FromError(err)}
	} else {
		emit(sink, Event{File: path, Stage: StageReconcile, Status: StatusWorking})
		rep.Records = reconcile.Pass(res, rep.Text, log.With(zap.String("file", path)))
	}

	status := StatusDone
	var evErr error
	if reconcile.HasErrors(rep.Records) {
		status = StatusError
		evErr = fmt.Errorf("%s: validation failed", path)
	}
	emit(sink, Event{File: path, Stage: StageReconcile, Status: status, Err: evErr, Elapsed: time.Since(start)})
	return rep, nil
}

// HasErrors reports whether any report failed to read or carries an error
// record.
func HasErrors(reports []diagfmt.FileReport) bool {
	for _, r := range reports {
		if r.Err != nil || reconcile.HasErrors(r.Records) {
			return true
		}
	}
	return false
}
