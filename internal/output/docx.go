package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"scribe/internal/models"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// saveDocx renders the outcome as a styled Word document.
func saveDocx(outcome models.ProcessOutcome, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	t := outcome.Transcription
	title := strings.TrimSuffix(filepath.Base(t.AudioFilePath), filepath.Ext(t.AudioFilePath))

	addHeading(doc, title, 16)
	addText(doc, fmt.Sprintf("File: %s", t.AudioFilePath))
	addText(doc, fmt.Sprintf("Model: %s", t.ModelUsed))
	if t.Language != "" {
		addText(doc, fmt.Sprintf("Language: %s", t.Language))
	}
	doc.AddParagraph("")

	addHeading(doc, "Transcription", 15)
	for _, line := range strings.Split(t.Text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		addText(doc, strings.TrimSpace(line))
	}

	if outcome.Summary != nil {
		doc.AddParagraph("")
		addHeading(doc, "Summary", 15)
		for _, line := range strings.Split(outcome.Summary.ConversationSummary, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			addText(doc, strings.TrimSpace(line))
		}

		doc.AddParagraph("")
		addHeading(doc, "Action Items", 15)
		if len(outcome.Summary.ActionItems) == 0 {
			addText(doc, "No action items identified")
		}
		for _, item := range outcome.Summary.ActionItems {
			addText(doc, "• "+item)
		}
	}

	return doc.SaveTo(path)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addText(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
