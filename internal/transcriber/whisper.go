package transcriber

import (
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/lecture-notes/internal/subtitle"
)

// whisperOutput mirrors the JSON written by whisper.cpp's -oj/-ojf flags.
// Offsets are milliseconds.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func parseWhisperJSON(raw []byte) (*Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	language := out.Result.Language
	if language == "" {
		language = "unknown"
	}

	segments := make([]subtitle.Segment, 0, len(out.Transcription))
	for _, item := range out.Transcription {
		segments = append(segments, subtitle.Segment{
			Start: float64(item.Offsets.From) / 1000,
			End:   float64(item.Offsets.To) / 1000,
			Text:  item.Text,
		})
	}

	return &Result{
		Segments: segments,
		Language: language,
		Raw:      raw,
	}, nil
}
