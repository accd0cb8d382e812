package normalizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reCommaRun  = regexp.MustCompile(`,{2,}`)
	rePeriodRun = regexp.MustCompile(`\.{2,}`)
	rePeriodGap = regexp.MustCompile(`([.!?])(?:\s+\.)+`)
	reFillers   = regexp.MustCompile(`(?i)\b(?:okay\s+so|alright\s+so|so\s+um|you\s+know|i\s+mean|basically|actually|um|uh|ah|er)\b`)
)

// Matched as plain substrings of the lowercased sentence, so "knows" counts.
var transitionMarkers = []string{
	"now", "next", "moving on", "let's", "another",
	"furthermore", "however", "on the other hand", "in contrast", "meanwhile",
}

// Cleanup repairs common transcription artifacts: whitespace runs, letter
// stutter ("sooo" -> "soo"), isolated single letters and repeated commas or
// periods. A period orphaned by a dropped letter ("done. X. Next") merges
// into the terminator before it.
func Cleanup(text string) string {
	text = reSpaces.ReplaceAllString(text, " ")
	text = collapseLetterRuns(text)
	text = dropSingleLetters(text)
	text = rePeriodGap.ReplaceAllString(text, "$1")
	text = reCommaRun.ReplaceAllString(text, ",")
	text = rePeriodRun.ReplaceAllString(text, ".")
	return strings.TrimSpace(text)
}

// StripFillers removes discourse fillers on word boundaries, longer phrases
// first, and re-collapses the whitespace left behind.
func StripFillers(text string) string {
	text = reFillers.ReplaceAllString(text, "")
	text = reSpaces.ReplaceAllString(text, " ")
	text = rePeriodGap.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}

// IsTopicTransition reports whether a sentence opens a new topic
func IsTopicTransition(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, m := range transitionMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// collapseLetterRuns limits runs of one repeated letter to two. Digits are
// left alone so numbers like 1000 survive.
func collapseLetterRuns(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	var prev rune
	run := 0
	for _, r := range text {
		if unicode.IsLetter(r) && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		if run <= 2 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// dropSingleLetters removes tokens whose only word character is one ASCII
// letter. Punctuation attached to the letter stays so sentence boundaries
// are not lost: "X." becomes ".".
func dropSingleLetters(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		start := strings.IndexFunc(f, func(r rune) bool { return !isEdgePunct(r) })
		if start < 0 {
			kept = append(kept, f)
			continue
		}
		last := strings.LastIndexFunc(f, func(r rune) bool { return !isEdgePunct(r) })
		_, size := utf8.DecodeRuneInString(f[last:])
		end := last + size
		core := f[start:end]
		if len(core) == 1 && isASCIILetter(core[0]) {
			if rest := f[:start] + f[end:]; rest != "" {
				kept = append(kept, rest)
			}
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// repairSentence trims a sentence and terminates it with a period when it
// lacks terminal punctuation.
func repairSentence(sentence string) string {
	sentence = strings.TrimSpace(sentence)
	if !strings.HasSuffix(sentence, ".") && !strings.HasSuffix(sentence, "!") && !strings.HasSuffix(sentence, "?") {
		sentence += "."
	}
	return sentence
}
