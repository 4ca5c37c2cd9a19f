package domain

// Volume bounds and defaults for a ProcessingRequest.
const (
	MinVolume     = 0.0
	MaxVolume     = 2.0
	DefaultVolume = 1.0
	DefaultFormat = "wav"
)

// ProcessingRequest describes a single audio processing job: which file to
// process, whether to apply the motion (stereo panning) effect, how to scale
// the volume, and the output container format. The file name is an opaque
// identifier with no filesystem semantics.
type ProcessingRequest struct {
	FileName string  `json:"file_name"`
	Motion   bool    `json:"motion"`
	Volume   float64 `json:"volume"`
	Format   string  `json:"format"`
}

// NewProcessingRequest creates a new ProcessingRequest with the given fields.
// An empty format falls back to DefaultFormat. Returns an error if validation
// fails; a request that fails validation never reaches a task.
func NewProcessingRequest(
	fileName string,
	motion bool,
	volume float64,
	format string,
) (*ProcessingRequest, error) {
	if format == "" {
		format = DefaultFormat
	}

	req := &ProcessingRequest{
		FileName: fileName,
		Motion:   motion,
		Volume:   volume,
		Format:   format,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks if the ProcessingRequest has valid data.
// Returns an error if any field fails validation.
func (r *ProcessingRequest) Validate() error {
	if r.FileName == "" {
		return ErrEmptyFileName
	}

	// Volume 0.0 is valid and yields silent channels.
	if r.Volume < MinVolume || r.Volume > MaxVolume {
		return ErrVolumeOutOfRange
	}

	return nil
}
