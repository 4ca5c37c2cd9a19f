package audio

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/motionfix-api/internal/domain"
)

// FixedProcessor is the corrected implementation. It tests the motion flag
// directly as a boolean and pans the channels apart when the effect is
// requested.
type FixedProcessor struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewFixedProcessor creates a FixedProcessor with the given simulated delay.
// A nil logger falls back to slog.Default().
func NewFixedProcessor(delay time.Duration, logger *slog.Logger) *FixedProcessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FixedProcessor{
		delay:  delay,
		logger: logger.With("implementation", string(VariantFixed)),
	}
}

// Process simulates the pipeline and computes channel averages. With motion
// requested the left channel lands at 0.45x volume and the right at 0.55x,
// so the channels differ whenever the volume is non-zero. Without motion
// both channels sit at half volume.
func (p *FixedProcessor) Process(ctx context.Context, req *domain.ProcessingRequest) (*domain.ProcessingResult, error) {
	p.logger.InfoContext(ctx, "processing audio file",
		slog.String("file_name", req.FileName),
		slog.Bool("motion", req.Motion))

	if err := simulateWork(ctx, p.delay); err != nil {
		return nil, err
	}

	var leftChannel, rightChannel float64
	motionApplied := false
	if req.Motion {
		p.logger.InfoContext(ctx, "applying motion panning",
			slog.String("file_name", req.FileName))
		leftChannel = 0.45 * req.Volume
		rightChannel = 0.55 * req.Volume
		motionApplied = true
	} else {
		p.logger.InfoContext(ctx, "motion effect not requested",
			slog.String("file_name", req.FileName))
		leftChannel = 0.5 * req.Volume
		rightChannel = 0.5 * req.Volume
	}

	result := domain.NewProcessingResult(req.FileName, motionApplied, leftChannel, rightChannel, req.Volume, req.Format)

	p.logger.InfoContext(ctx, "audio processing finished",
		slog.String("file_name", req.FileName),
		slog.Bool("motion_applied", result.MotionApplied),
		slog.Float64("left_channel_avg", result.LeftChannelAvg),
		slog.Float64("right_channel_avg", result.RightChannelAvg),
		slog.Bool("channels_differ", result.ChannelsDiffer))

	return result, nil
}
