package normalizer

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/lecture-notes/internal/logger"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	res, err := LoadResources()
	if err != nil {
		t.Fatalf("LoadResources() error = %v", err)
	}
	return New(res, logger.Nop())
}

func TestContentWords(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		sentence string
		want     []string
	}{
		{"Don't stop now.", []string{"stop"}},
		{"So, like, you know, the thing.", []string{"know", "thing"}},
		{"Well, okay, here we are today.", nil},
		{"The derivative is important.", []string{"derivative", "important"}},
	}

	for _, tt := range tests {
		if got := n.res.ContentWords(tt.sentence); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ContentWords(%q) = %#v, want %#v", tt.sentence, got, tt.want)
		}
	}
}

func TestNormalizeScenario(t *testing.T) {
	n := newTestNormalizer(t)
	ctx := context.Background()

	raw := "Um, so, the the derivative is uh important. X. Now let's discuss integration basics today."

	want := []string{
		", so, the the derivative is important.",
		"Now let's discuss integration basics today.",
	}
	if got := n.Sentences(ctx, raw); !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %#v, want %#v", got, want)
	}

	got := n.Normalize(ctx, raw)
	if wantText := strings.Join(want, " "); got != wantText {
		t.Errorf("Normalize() = %q, want %q", got, wantText)
	}
}

func TestSentencesDropOrphanPeriods(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "two dropped letters",
			raw:  "The chain rule is essential here. Y. Z. The product rule follows from it.",
			want: []string{"The chain rule is essential here.", "The product rule follows from it."},
		},
		{
			name: "dropped filler sentence",
			raw:  "Limits describe approaching values. Um. Continuity requires matching limits.",
			want: []string{"Limits describe approaching values.", "Continuity requires matching limits."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Sentences(context.Background(), tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalizeDropsLowContent(t *testing.T) {
	n := newTestNormalizer(t)

	raw := "Um so okay. The derivative measures instantaneous change. Well now here today it is."
	got := n.Normalize(context.Background(), raw)

	if got != "The derivative measures instantaneous change." {
		t.Errorf("Normalize() = %q", got)
	}
}

func TestNormalizeTerminatesSentence(t *testing.T) {
	n := newTestNormalizer(t)

	got := n.Normalize(context.Background(), "the derivative measures change")
	if got != "the derivative measures change." {
		t.Errorf("Normalize() = %q, want trailing period", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	n := newTestNormalizer(t)
	ctx := context.Background()

	for _, input := range []string{"", "   ", "um uh. ah.", "Okay. Well. So."} {
		if got := n.Normalize(ctx, input); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}

func TestSentenceInvariants(t *testing.T) {
	n := newTestNormalizer(t)
	res := n.res

	raw := `Okay so today we we will look at um limits. Yeah. A limit describes
	the value a function approaches, basically. You know what I mean right
	Sooo the epsilon delta definition is key! Is that clear? Uh huh.
	Alright so continuity follows from limits`

	for _, s := range n.Sentences(context.Background(), raw) {
		if len(res.ContentWords(s)) < minContentWords {
			t.Errorf("sentence %q has fewer than %d content words", s, minContentWords)
		}
		if !strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "!") && !strings.HasSuffix(s, "?") {
			t.Errorf("sentence %q lacks terminal punctuation", s)
		}
		if len(strings.Fields(s)) < minSentenceTokens {
			t.Errorf("sentence %q is a fragment", s)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := newTestNormalizer(t)
	ctx := context.Background()

	raw := "The derivative measures the instantaneous rate of change. " +
		"Integration reverses differentiation under mild conditions. " +
		"Limits define both operations rigorously. " +
		"Continuity matters for differentiability. " +
		"However, some functions are continuous everywhere yet differentiable nowhere. " +
		"Such examples surprised many mathematicians."

	once := n.Normalize(ctx, raw)
	if strings.Count(once, "\n\n") != 1 {
		t.Fatalf("expected two paragraphs, got %q", once)
	}
	if !strings.HasPrefix(strings.Split(once, "\n\n")[1], "However") {
		t.Errorf("second paragraph should start at the transition, got %q", once)
	}

	twice := n.Normalize(ctx, once)
	if twice != once {
		t.Errorf("Normalize is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}
