package notes

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	titleSize   = 16
	headingSize = 14
)

// WriteDocx renders the normalized text as a Word document with the same
// Topic N sections and keyword emphasis as the LaTeX template.
func (g *implGenerator) WriteDocx(text, title, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	addStyledRun(doc.AddParagraph(""), g.now().Format(dateLayout), false, fontSize)

	for i, block := range Sections(text) {
		addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Topic %d", i+1), true, headingSize)
		addRichText(doc.AddParagraph(""), block)
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save docx %s: %w", path, err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText bolds the emphasis keywords inside a paragraph
func addRichText(p *docx.Paragraph, text string) {
	last := 0
	for _, loc := range reKeywords.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			addStyledRun(p, text[last:loc[0]], false, fontSize)
		}
		addStyledRun(p, text[loc[0]:loc[1]], true, fontSize)
		last = loc[1]
	}
	if last < len(text) {
		addStyledRun(p, text[last:], false, fontSize)
	}
}
