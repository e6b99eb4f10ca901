package hook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/josephgoksu/complexity-hook/internal/complexity"
	"github.com/josephgoksu/complexity-hook/internal/logger"
	"go.uber.org/zap"
)

// maxEnvelopeBytes bounds how much of the envelope is read.
const maxEnvelopeBytes = 4 << 20

// Analyzer is the part of the detector the runner needs.
type Analyzer interface {
	Analyze(prompt string) complexity.Assessment
}

// Outcome summarizes one run for callers and tests.
type Outcome struct {
	RunID      string
	Skipped    bool
	Assessment *complexity.Assessment
	Err        error
}

// Runner reads an envelope, analyzes its message and writes diagnostics.
type Runner struct {
	Detector Analyzer
	Paths    []string
	Stderr   io.Writer
	Logger   *logger.Logger
	// Advisory prints the one-line delegation hint after the JSON.
	Advisory bool
	// OnPrompt, if set, is called with the extracted message before analysis.
	OnPrompt func(string)
}

// Run processes one envelope from r. It never fails; errors are reported on
// Stderr and in the returned Outcome.
func (r *Runner) Run(ctx context.Context, in io.Reader) Outcome {
	out := Outcome{RunID: uuid.NewString()}
	log := r.logger().With(zap.String("run_id", out.RunID))

	if err := ctx.Err(); err != nil {
		return r.fail(log, out, err)
	}

	data, err := io.ReadAll(io.LimitReader(in, maxEnvelopeBytes+1))
	if err != nil {
		return r.fail(log, out, fmt.Errorf("read envelope: %w", err))
	}
	if len(data) > maxEnvelopeBytes {
		return r.fail(log, out, fmt.Errorf("%w: over %d bytes", ErrEnvelopeTooLarge, maxEnvelopeBytes))
	}

	message, err := ExtractMessage(data, r.Paths)
	if err != nil {
		return r.fail(log, out, err)
	}
	if message == "" {
		log.Debug("no message in envelope, skipping")
		out.Skipped = true
		return out
	}

	if r.OnPrompt != nil {
		r.OnPrompt(message)
	}

	assessment := r.Detector.Analyze(message)
	out.Assessment = &assessment

	log.Info("prompt assessed",
		zap.Bool("should_delegate", assessment.ShouldDelegate),
		zap.String("confidence", string(assessment.Confidence)),
		zap.Int("complexity_score", assessment.ComplexityScore),
		zap.Strings("triggers", assessment.Triggers),
	)

	if err := r.report(assessment); err != nil {
		log.Warn("write assessment", zap.Error(err))
		out.Err = err
	}
	return out
}

func (r *Runner) report(a complexity.Assessment) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}
	if _, err := fmt.Fprintln(r.Stderr, string(data)); err != nil {
		return err
	}
	if r.Advisory && a.ShouldDelegate {
		if _, err := fmt.Fprintf(r.Stderr, "💡 %s\n", a.Advisory()); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) fail(log *zap.Logger, out Outcome, err error) Outcome {
	log.Warn("complexity detection failed", zap.Error(err))
	fmt.Fprintf(r.Stderr, "Complexity detection error: %v\n", err)
	out.Err = err
	return out
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger.Logger
}
