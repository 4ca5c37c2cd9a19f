package domain

// ProcessingResult holds the metadata produced by a completed audio
// processing job. FileName, Volume and Format are echoed from the request;
// the channel averages and MotionApplied depend on which implementation
// variant ran the job.
type ProcessingResult struct {
	FileName        string  `json:"file_name"`
	MotionApplied   bool    `json:"motion_applied"`
	LeftChannelAvg  float64 `json:"left_channel_avg"`
	RightChannelAvg float64 `json:"right_channel_avg"`
	ChannelsDiffer  bool    `json:"channels_differ"`
	Volume          float64 `json:"volume"`
	Format          string  `json:"format"`
}

// NewProcessingResult creates a ProcessingResult for the given channel
// values. ChannelsDiffer is always derived from the two channel averages and
// is never settable independently, so a result can never claim differing
// channels it did not actually produce.
func NewProcessingResult(
	fileName string,
	motionApplied bool,
	leftChannelAvg, rightChannelAvg float64,
	volume float64,
	format string,
) *ProcessingResult {
	return &ProcessingResult{
		FileName:        fileName,
		MotionApplied:   motionApplied,
		LeftChannelAvg:  leftChannelAvg,
		RightChannelAvg: rightChannelAvg,
		ChannelsDiffer:  leftChannelAvg != rightChannelAvg,
		Volume:          volume,
		Format:          format,
	}
}
