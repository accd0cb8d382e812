package notes

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxSections = 5
	dateLayout  = "January 02, 2006"
)

var (
	latexEscaper = strings.NewReplacer(
		`&`, `\&`,
		`%`, `\%`,
		`$`, `\$`,
		`#`, `\#`,
		`_`, `\_`,
		`{`, `\{`,
		`}`, `\}`,
	)
	reKeywords = regexp.MustCompile(`(?i)\b(definition|theorem|important|key|main|primary)\b`)
)

type documentData struct {
	Title string
	Date  string
	Body  string
}

// EscapeLaTeX escapes the reserved characters & % $ # _ { }
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

// Emphasize wraps the fixed keyword set in \textbf, keeping the original case
func Emphasize(s string) string {
	return reKeywords.ReplaceAllString(s, `\textbf{${1}}`)
}

// Sections returns at most five non-empty blank-line separated blocks
func Sections(text string) []string {
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		out = append(out, block)
		if len(out) == maxSections {
			break
		}
	}
	return out
}

// Template builds the offline document. It does not touch the network.
func (g *implGenerator) Template(text, title string) string {
	var body strings.Builder
	for i, block := range Sections(text) {
		fmt.Fprintf(&body, "\\section{Topic %d}\n%s\n\n", i+1, Emphasize(EscapeLaTeX(block)))
	}

	data := documentData{
		Title: EscapeLaTeX(title),
		Date:  g.now().Format(dateLayout),
		Body:  body.String(),
	}

	var sb strings.Builder
	if err := g.document.Execute(&sb, data); err != nil {
		// New executed the template once already
		return fmt.Sprintf("\\documentclass{article}\n\\title{%s}\n\\date{%s}\n\\begin{document}\n\\maketitle\n\n%s\\end{document}\n",
			data.Title, data.Date, data.Body)
	}
	return sb.String()
}
