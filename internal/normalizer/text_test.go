package normalizer

import (
	"reflect"
	"testing"
)

func TestCleanup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whitespace runs", "hello    world\n\tagain ", "hello world again"},
		{"letter stutter", "this is sooo cool", "this is soo cool"},
		{"digits untouched", "pay 1000 dollars", "pay 1000 dollars"},
		{"single letter with period", "the end X. Now we go", "the end . Now we go"},
		{"orphan period merges", "is important. X. Now we go", "is important. Now we go"},
		{"several orphan periods merge", "essential here. Y. Z. The product", "essential here. The product"},
		{"orphan after question", "why? X. Because", "why? Because"},
		{"article removed", "a cat sat", "cat sat"},
		{"contraction kept", "let's go", "let's go"},
		{"non-ascii single letter kept", "café é", "café é"},
		{"repeated commas and periods", "wait,, what... fine", "wait, what. fine"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cleanup(tt.input); got != tt.want {
				t.Errorf("Cleanup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripFillers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading um", "Um, so, the derivative", ", so, the derivative"},
		{"word boundary", "the umbrella is uh wet", "the umbrella is wet"},
		{"no merge across removal", "limit um bound", "limit bound"},
		{"phrase okay so", "okay so we start", "we start"},
		{"phrase I mean and basically", "I mean the proof is basically done", "the proof is done"},
		{"phrase so um", "So um the limit", "the limit"},
		{"case insensitive", "you KNOW it works", "it works"},
		{"er inside word kept", "the error term", "the error term"},
		{"only fillers", "um uh ah er", ""},
		{"filler sentence leaves no orphan period", "that is all. Um. Next", "that is all. Next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFillers(tt.input); got != tt.want {
				t.Errorf("StripFillers(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsTopicTransition(t *testing.T) {
	tests := []struct {
		sentence string
		want     bool
	}{
		{"However, limits differ.", true},
		{"Moving on to series.", true},
		{"Let's begin with vectors.", true},
		{"The next step is harder.", true},
		{"On the other hand, sums converge.", true},
		{"We know this already.", true},
		{"Limits define continuity.", false},
		{"It is nowhere continuous.", true},
		{"Everyone knows calculus matters.", true},
		{"Snow melts in spring.", true},
		{"Derivatives measure change.", false},
	}

	for _, tt := range tests {
		if got := IsTopicTransition(tt.sentence); got != tt.want {
			t.Errorf("IsTopicTransition(%q) = %v, want %v", tt.sentence, got, tt.want)
		}
	}
}

func TestRepairSentence(t *testing.T) {
	tests := map[string]string{
		"hello world":    "hello world.",
		"why not?":       "why not?",
		"  wow, great! ": "wow, great!",
		"done.":          "done.",
	}
	for input, want := range tests {
		if got := repairSentence(input); got != want {
			t.Errorf("repairSentence(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"The lecturer's notes, well-known!", []string{"the", "lecturer's", "notes", "well-known"}},
		{"Don’t stop.", []string{"don't", "stop"}},
		{", so , the end .", []string{"so", "the", "end"}},
		{"...", nil},
	}

	for _, tt := range tests {
		if got := Words(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Words(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
		want      []string
	}{
		{
			name:      "empty",
			sentences: nil,
			want:      nil,
		},
		{
			name:      "fewer than four collapse into one",
			sentences: []string{"Alpha one.", "Beta two."},
			want:      []string{"Alpha one. Beta two."},
		},
		{
			name:      "no transition keeps growing until the end",
			sentences: []string{"A1 x.", "A2 x.", "A3 x.", "A4 x.", "A5 x."},
			want:      []string{"A1 x. A2 x. A3 x. A4 x. A5 x."},
		},
		{
			name:      "transition after four breaks",
			sentences: []string{"A1 x.", "A2 x.", "A3 x.", "A4 x.", "However B1 x.", "B2 x."},
			want:      []string{"A1 x. A2 x. A3 x. A4 x.", "However B1 x. B2 x."},
		},
		{
			name:      "transition before four is ignored",
			sentences: []string{"A1 x.", "A2 x.", "Next A3 x.", "A4 x.", "A5 x."},
			want:      []string{"A1 x. A2 x. Next A3 x. A4 x. A5 x."},
		},
		{
			name:      "marker inside a word breaks",
			sentences: []string{"A1 x.", "A2 x.", "A3 x.", "A4 x.", "Everyone knows calculus matters."},
			want:      []string{"A1 x. A2 x. A3 x. A4 x.", "Everyone knows calculus matters."},
		},
		{
			name:      "exactly four",
			sentences: []string{"A1 x.", "A2 x.", "A3 x.", "A4 x."},
			want:      []string{"A1 x. A2 x. A3 x. A4 x."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paragraphs(tt.sentences)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Paragraphs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
