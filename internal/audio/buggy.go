package audio

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/motionfix-api/internal/domain"
)

// BuggyProcessor is the defective implementation. It widens the motion flag
// to an interface value and compares it against the string "true", so the
// comparison is false for every request and the motion branch never runs.
type BuggyProcessor struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewBuggyProcessor creates a BuggyProcessor with the given simulated delay.
// A nil logger falls back to slog.Default().
func NewBuggyProcessor(delay time.Duration, logger *slog.Logger) *BuggyProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuggyProcessor{
		delay:  delay,
		logger: logger.With("implementation", string(VariantBuggy)),
	}
}

// Process simulates the pipeline and computes channel averages. req.Motion is
// a bool, so the widened comparison below never matches the string "true":
// both channels always come out at half volume and the result reports the
// motion effect as not applied.
func (p *BuggyProcessor) Process(ctx context.Context, req *domain.ProcessingRequest) (*domain.ProcessingResult, error) {
	p.logger.InfoContext(ctx, "processing audio file",
		slog.String("file_name", req.FileName),
		slog.Bool("motion", req.Motion))

	if err := simulateWork(ctx, p.delay); err != nil {
		return nil, err
	}

	var motion any = req.Motion

	var leftChannel, rightChannel float64
	if motion == "true" {
		// Unreachable: the dynamic type of motion is bool, never string.
		p.logger.WarnContext(ctx, "applying motion panning",
			slog.String("file_name", req.FileName))
		leftChannel = 0.5 * req.Volume
		rightChannel = 0.6 * req.Volume
	} else {
		p.logger.InfoContext(ctx, "motion effect skipped",
			slog.String("file_name", req.FileName))
		leftChannel = 0.5 * req.Volume
		rightChannel = 0.5 * req.Volume
	}

	result := domain.NewProcessingResult(req.FileName, false, leftChannel, rightChannel, req.Volume, req.Format)

	p.logger.InfoContext(ctx, "audio processing finished",
		slog.String("file_name", req.FileName),
		slog.Float64("left_channel_avg", result.LeftChannelAvg),
		slog.Float64("right_channel_avg", result.RightChannelAvg),
		slog.Bool("channels_differ", result.ChannelsDiffer))

	return result, nil
}
