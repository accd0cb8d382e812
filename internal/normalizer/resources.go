package normalizer

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences/english"
)

//go:embed data/stopwords_en.txt
var stopwordData string

// academicStopwords extends the English list with lecture filler.
// "you know" is kept for completeness although single tokens never match it.
var academicStopwords = []string{
	"um", "uh", "ah", "er", "you know", "like", "so", "okay",
	"alright", "well", "now", "today", "here",
}

// Resources holds the language data the normalizer needs. Build it once per
// process with LoadResources; it is read-only afterwards and safe to share.
type Resources struct {
	split     func(text string) []string
	stopwords map[string]struct{}
}

// LoadResources builds the English sentence tokenizer and stop-word set
func LoadResources() (*Resources, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load sentence tokenizer: %w", err)
	}

	stopwords := make(map[string]struct{}, 200)
	scanner := bufio.NewScanner(strings.NewReader(stopwordData))
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			stopwords[w] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	for _, w := range academicStopwords {
		stopwords[w] = struct{}{}
	}

	return &Resources{
		split: func(text string) []string {
			var out []string
			for _, s := range tokenizer.Tokenize(text) {
				if t := strings.TrimSpace(s.Text); t != "" {
					out = append(out, t)
				}
			}
			return out
		},
		stopwords: stopwords,
	}, nil
}

// SplitSentences segments text into sentences
func (r *Resources) SplitSentences(text string) []string {
	return r.split(text)
}

// IsStopword reports whether a lowercase token is in the stop-word set
func (r *Resources) IsStopword(token string) bool {
	_, ok := r.stopwords[token]
	return ok
}

// Words tokenizes a sentence into lowercase word tokens.
//
// The sentence is split on whitespace and each piece loses its leading and
// trailing punctuation; pieces left empty were punctuation and are dropped.
// Inner apostrophes and hyphens stay, so "let's", "lecturer's" and
// "well-known" are single tokens. Typographic apostrophes become ASCII.
func Words(sentence string) []string {
	sentence = strings.ReplaceAll(strings.ToLower(sentence), "’", "'")

	var words []string
	for _, field := range strings.Fields(sentence) {
		core := strings.TrimFunc(field, isEdgePunct)
		if core != "" {
			words = append(words, core)
		}
	}
	return words
}

// ContentWords returns the tokens of sentence that are not stop words
func (r *Resources) ContentWords(sentence string) []string {
	var content []string
	for _, w := range Words(sentence) {
		if !r.IsStopword(w) {
			content = append(content, w)
		}
	}
	return content
}

func isEdgePunct(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
