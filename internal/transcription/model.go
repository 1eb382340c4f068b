package transcription

import (
	"fmt"
	"strings"
)

// ModelSize selects a Whisper checkpoint.
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"

	DefaultModelSize = ModelBase
)

var modelSizes = []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}

// ParseModelSize accepts a size name case-insensitively.
func ParseModelSize(raw string) (ModelSize, error) {
	size := ModelSize(strings.ToLower(strings.TrimSpace(raw)))
	for _, s := range modelSizes {
		if s == size {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown model size %q (want one of tiny, base, small, medium, large)", raw)
}

// Transcript is the result of transcribing an audio or video file.
type Transcript struct {
	Text     string    `json:"text"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// Segment is one contiguous span of recognised speech.
type Segment struct {
	Text string `json:"text"`
}
