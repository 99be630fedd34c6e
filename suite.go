package fluentval

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Suite is the outermost entry point for a model: it batches a primary rule
// function with base rule sets registered up front. Base rules added with
// ValidateBase run immediately and their errors are retained; those added with
// ValidateBaseAsync are queued and only run by ValidateAsync.
//
// A Suite is not safe for concurrent use, although ValidateAsync itself runs the
// queued rule functions concurrently. Rule functions must not modify the model.
type Suite[T any] struct {
	model    *T
	cfg      *settings
	retained []ValidationError
	queued   []func(*Validator[T])
}

// NewSuite returns a suite over model. model must not be nil.
func NewSuite[T any](model *T, opts ...Option) *Suite[T] {
	if model == nil {
		panic("fluentval.NewSuite: model must not be nil")
	}
	return &Suite[T]{model: model, cfg: newSettings(opts)}
}

// ValidateBase runs rules now and retains their errors for the next Validate or
// ValidateAsync.
func (s *Suite[T]) ValidateBase(rules func(*Validator[T])) *Suite[T] {
	if rules == nil {
		return s
	}
	v := newValidator(s.model, s.cfg, "")
	rules(v)
	s.retained = append(s.retained, v.rec.errs...)
	return s
}

// ValidateBaseAsync queues rules for ValidateAsync.
func (s *Suite[T]) ValidateBaseAsync(rules func(*Validator[T])) *Suite[T] {
	if rules != nil {
		s.queued = append(s.queued, rules)
	}
	return s
}

// Validate runs rules and returns the retained errors followed by rules' errors.
// Queued base rules are not run.
func (s *Suite[T]) Validate(rules func(*Validator[T])) *Result {
	v := newValidator(s.model, s.cfg, "")
	if rules != nil {
		rules(v)
	}
	out := make([]ValidationError, 0, len(s.retained)+len(v.rec.errs))
	out = append(out, s.retained...)
	out = append(out, v.rec.errs...)
	return NewResult(out)
}

// ValidateAsync runs every queued base rule function and rules concurrently and
// waits for all of them. The result holds the retained errors, then the errors of
// each queued function in the order it was queued, then those of rules. A rule
// function that panics makes ValidateAsync return an error. A context that is
// already done returns ctx.Err() without running anything.
func (s *Suite[T]) ValidateAsync(ctx context.Context, rules func(*Validator[T])) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fns := append(append([]func(*Validator[T]){}, s.queued...), rules)
	parts := make([][]ValidationError, len(fns))

	var g errgroup.Group
	if s.cfg.concurrency > 0 {
		g.SetLimit(s.cfg.concurrency)
	}
	for i, fn := range fns {
		if fn == nil {
			continue
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("fluentval: rule function %d panicked: %v", i, r)
				}
			}()
			v := newValidator(s.model, s.cfg, "")
			fn(v)
			parts[i] = v.rec.errs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.cfg.logger.Debug("async validation failed", zap.Error(err))
		return nil, fmt.Errorf("validate async: %w", err)
	}

	out := append([]ValidationError{}, s.retained...)
	for _, p := range parts {
		out = append(out, p...)
	}
	s.cfg.logger.Debug("async validation finished",
		zap.Int("functions", len(fns)), zap.Int("errors", len(out)))
	return NewResult(out), nil
}
