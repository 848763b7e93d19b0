package script

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/sllist/internal/logger"
	"github.com/mesh-intelligence/sllist/pkg/linkedlist"
)

type runnerOptions struct {
	log       logger.Logger
	keepGoing bool
	runID     string
}

// Option configures a Runner.
type Option func(*runnerOptions)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log logger.Logger) Option {
	return func(o *runnerOptions) {
		o.log = log
	}
}

// WithKeepGoing makes Run continue past failing steps.
func WithKeepGoing(keepGoing bool) Option {
	return func(o *runnerOptions) {
		o.keepGoing = keepGoing
	}
}

// WithRunID fixes the run identifier instead of generating a UUID v7.
func WithRunID(id string) Option {
	return func(o *runnerOptions) {
		o.runID = id
	}
}

// Runner applies steps to named lists of T. Lists are created on first
// reference and live as long as the Runner.
type Runner[T comparable] struct {
	decoder   Decoder[T]
	reporter  Reporter
	log       logger.Logger
	keepGoing bool
	runID     string
	lists     map[string]*linkedlist.List[T]
}

// NewRunner returns a Runner that decodes arguments with dec and reports
// each step to rep.
func NewRunner[T comparable](dec Decoder[T], rep Reporter, opts ...Option) (*Runner[T], error) {
	o := runnerOptions{log: logger.NewNoopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.runID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generating run id: %w", err)
		}
		o.runID = id.String()
	}

	return &Runner[T]{
		decoder:   dec,
		reporter:  rep,
		log:       o.log.With(zap.String("run_id", o.runID)),
		keepGoing: o.keepGoing,
		runID:     o.runID,
		lists:     make(map[string]*linkedlist.List[T]),
	}, nil
}

// RunID identifies this runner in logs and JSON output.
func (r *Runner[T]) RunID() string {
	return r.runID
}

// List returns the named list, creating it if needed.
func (r *Runner[T]) List(name string) *linkedlist.List[T] {
	l, ok := r.lists[name]
	if !ok {
		l = linkedlist.New[T]()
		r.lists[name] = l
	}
	return l
}

// Lists returns the names of every list referenced so far, sorted.
func (r *Runner[T]) Lists() []string {
	names := make([]string, 0, len(r.lists))
	for name := range r.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run applies steps in order. Without keep-going it stops at the first
// failing step and returns a *StepError; with keep-going it returns every
// step failure joined. Reporter errors always stop the run. ctx is checked
// between steps.
func (r *Runner[T]) Run(ctx context.Context, steps []Step) error {
	r.log.Info("run started", zap.Int("steps", len(steps)))

	var failures []error
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			r.log.Warn("run cancelled", zap.Int("step", i+1))
			return err
		}

		res, err := r.Apply(step)
		res.Step = i + 1
		res.RunID = r.runID
		if err != nil {
			res.Err = err.Error()
		}

		r.log.Debug("step applied",
			zap.Int("step", res.Step),
			zap.String("list", res.List),
			zap.String("op", res.Op),
			zap.Error(err))

		if repErr := r.reporter.Report(res); repErr != nil {
			return fmt.Errorf("reporting step %d: %w", res.Step, repErr)
		}

		if err != nil {
			stepErr := &StepError{Step: res.Step, List: res.List, Op: res.Op, Err: err}
			if !r.keepGoing {
				r.log.Warn("run stopped", zap.Error(stepErr))
				return stepErr
			}
			failures = append(failures, stepErr)
		}
	}

	r.log.Info("run finished", zap.Int("failures", len(failures)))
	return errors.Join(failures...)
}

// Apply executes one step and returns its result. Step and RunID are left
// for the caller to fill in.
func (r *Runner[T]) Apply(step Step) (Result, error) {
	res := Result{List: step.ListName(), Op: step.Op}

	info, ok := LookupOp(step.Op)
	if !ok {
		return res, fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
	}
	res.Op = info.Name

	if len(step.Args) != info.Args {
		return res, fmt.Errorf("%w: %s takes %d, got %d", ErrBadArity, info.Name, info.Args, len(step.Args))
	}
	if info.Other && step.Other == "" {
		return res, fmt.Errorf("%w: %s needs another list", ErrBadArity, info.Name)
	}

	l := r.List(res.List)
	var err error
	switch info.Name {
	case OpPush, OpAppend, OpDeleteNode, OpContains:
		var v T
		if v, err = r.decoder.Decode(step.Args[0]); err != nil {
			return res, err
		}
		switch info.Name {
		case OpPush:
			l.Push(v)
		case OpAppend:
			l.Append(v)
		case OpDeleteNode:
			err = l.DeleteNode(v)
		case OpContains:
			var found bool
			found, err = l.Contains(v)
			if err == nil {
				res.Value = found
			}
		}

	case OpInsertAfter, OpInsertBefore:
		var target, v T
		if target, err = r.decoder.Decode(step.Args[0]); err != nil {
			return res, err
		}
		if v, err = r.decoder.Decode(step.Args[1]); err != nil {
			return res, err
		}
		if info.Name == OpInsertAfter {
			err = l.InsertAfter(target, v)
		} else {
			err = l.InsertBefore(target, v)
		}

	case OpInsertAtIndex:
		var index int
		var v T
		if index, err = parseIndex(step.Args[0]); err != nil {
			return res, err
		}
		if v, err = r.decoder.Decode(step.Args[1]); err != nil {
			return res, err
		}
		err = l.InsertAtIndex(index, v)

	case OpDeleteAtIndex, OpPeekAtIndex:
		var index int
		if index, err = parseIndex(step.Args[0]); err != nil {
			return res, err
		}
		var v T
		if info.Name == OpDeleteAtIndex {
			v, err = l.DeleteAtIndex(index)
		} else {
			v, err = l.PeekAtIndex(index)
		}
		if err == nil {
			res.Value = v
		}

	case OpDeleteFirst, OpDeleteLast, OpPeekFirst, OpPeekLast:
		var v T
		switch info.Name {
		case OpDeleteFirst:
			v, err = l.DeleteFirst()
		case OpDeleteLast:
			v, err = l.DeleteLast()
		case OpPeekFirst:
			v, err = l.PeekFirst()
		case OpPeekLast:
			v, err = l.PeekLast()
		}
		if err == nil {
			res.Value = v
		}

	case OpSize:
		res.Value = l.Size()

	case OpReverse:
		err = l.Reverse()

	case OpConcat:
		l.Concat(r.List(step.Other))

	case OpCopy:
		l.Copy(r.List(step.Other))

	case OpDisplay:
		values := make([]any, 0)
		for _, v := range l.All() {
			values = append(values, v)
		}
		res.Values = values
		res.source = l

	case OpClear:
		l.Clear()
	}

	return res, err
}
