// Package subtitle encodes transcription segments as SRT text and decodes
// SRT text back into plain transcript text.
package subtitle

import (
	"regexp"
	"strconv"
	"strings"
)

// Segment is one timestamped speech unit produced by transcription
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Block is the serialized form of a Segment
type Block struct {
	Index int
	Start Timecode
	End   Timecode
	Text  string
}

var reBlankLine = regexp.MustCompile(`\n[ \t]*\n`)

func (b Block) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(b.Index))
	sb.WriteString("\n")
	sb.WriteString(b.Start.String())
	sb.WriteString(" --> ")
	sb.WriteString(b.End.String())
	sb.WriteString("\n")
	sb.WriteString(b.Text)
	sb.WriteString("\n\n")
	return sb.String()
}

// Blocks indexes the segments that carry text. Segments whose text is empty
// after trimming are skipped and do not consume an index.
func Blocks(segments []Segment) []Block {
	blocks := make([]Block, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		blocks = append(blocks, Block{
			Index: len(blocks) + 1,
			Start: FromSeconds(seg.Start),
			End:   FromSeconds(seg.End),
			Text:  text,
		})
	}
	return blocks
}

// Encode renders segments as SRT. No speech yields an empty string.
func Encode(segments []Segment) string {
	var sb strings.Builder
	for _, b := range Blocks(segments) {
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Decode extracts the spoken text from SRT content. Blocks with fewer than
// three lines are skipped; text lines of a block are joined by newlines and
// blocks are joined by single spaces.
func Decode(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}

	var texts []string
	for _, block := range reBlankLine.Split(content, -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}
		texts = append(texts, strings.Join(lines[2:], "\n"))
	}
	return strings.Join(texts, " ")
}
