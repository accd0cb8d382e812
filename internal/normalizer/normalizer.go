// Package normalizer turns a raw, disfluent transcript into paragraphs of
// clean prose.
package normalizer

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

const (
	minSentenceTokens    = 3
	minContentWords      = 2
	minParagraphSentence = 4
)

type Normalizer struct {
	res    *Resources
	logger logger.Logger
}

// New creates a Normalizer over shared, preloaded resources
func New(res *Resources, log logger.Logger) *Normalizer {
	return &Normalizer{res: res, logger: log}
}

// Normalize runs the full pipeline and returns paragraphs separated by a
// blank line. Text with no surviving sentences yields "".
func (n *Normalizer) Normalize(ctx context.Context, text string) string {
	n.logger.Info(ctx, "Normalizing transcript (%d chars)", len(text))

	sentences := n.Sentences(ctx, text)
	paragraphs := Paragraphs(sentences)

	n.logger.Info(ctx, "Normalization done: %d sentences, %d paragraphs", len(sentences), len(paragraphs))
	return strings.Join(paragraphs, "\n\n")
}

// Sentences runs cleanup, filler removal, segmentation and per-sentence
// filtering, returning the sentences that survive.
func (n *Normalizer) Sentences(ctx context.Context, text string) []string {
	text = StripFillers(Cleanup(text))
	if text == "" {
		return nil
	}

	var kept []string
	dropped := 0
	for _, s := range n.res.SplitSentences(text) {
		if len(strings.Fields(s)) < minSentenceTokens {
			dropped++
			continue
		}
		if len(n.res.ContentWords(s)) < minContentWords {
			dropped++
			continue
		}
		kept = append(kept, repairSentence(s))
	}

	n.logger.Debug(ctx, "Sentence filter: kept %d, dropped %d", len(kept), dropped)
	return kept
}

// Paragraphs groups sentences. A paragraph closes once it holds at least
// four sentences and either the input ends or the next sentence opens a new
// topic. Leftover sentences form a final, possibly shorter, paragraph.
func Paragraphs(sentences []string) []string {
	var paragraphs []string
	var current []string

	for i, s := range sentences {
		current = append(current, s)

		if len(current) >= minParagraphSentence &&
			(i == len(sentences)-1 || IsTopicTransition(sentences[i+1])) {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
	}

	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}
	return paragraphs
}
