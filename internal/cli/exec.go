package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/sllist/internal/config"
	"github.com/mesh-intelligence/sllist/internal/script"
)

// newReporter picks the reporter for the configured output mode.
func newReporter(output string, w io.Writer) script.Reporter {
	if output == config.OutputJSON {
		return script.NewJSONReporter(w)
	}
	return script.NewTextReporter(w)
}

// runSteps applies steps with the configured element type.
func (a *app) runSteps(ctx context.Context, w io.Writer, steps []script.Step) error {
	switch a.cfg.ElementType {
	case config.ElementString:
		return execute[string](ctx, a, script.StringDecoder{}, w, steps)
	default:
		return execute[int](ctx, a, script.IntDecoder{}, w, steps)
	}
}

func execute[T comparable](ctx context.Context, a *app, dec script.Decoder[T], w io.Writer, steps []script.Step) error {
	runner, err := script.NewRunner[T](dec, newReporter(a.cfg.Output, w),
		script.WithLogger(a.log),
		script.WithKeepGoing(a.cfg.KeepGoing),
	)
	if err != nil {
		return sysError(err)
	}

	err = runner.Run(ctx, steps)
	if err == nil {
		return nil
	}

	a.log.Debug("run failed", zap.String("run_id", runner.RunID()), zap.Error(err))
	var stepErr *script.StepError
	if errors.As(err, &stepErr) {
		return userError(err)
	}
	if errors.Is(err, context.Canceled) {
		return userError(fmt.Errorf("interrupted: %w", err))
	}
	return sysError(err)
}
