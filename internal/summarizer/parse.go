package summarizer

import (
	"fmt"
	"strings"

	"scribe/internal/models"
)

const (
	summaryMarker     = "SUMMARY:"
	actionItemsMarker = "ACTION ITEMS:"
)

// parseSummaryResponse extracts the summary text and action items from
// a Gemini response following the prompt's SUMMARY / ACTION ITEMS
// layout. Responses that ignore the layout fall back to being used as
// the summary verbatim.
func parseSummaryResponse(raw string) (models.Summary, error) {
	text := strings.TrimSpace(raw)

	if !strings.Contains(text, summaryMarker) || !strings.Contains(text, actionItemsMarker) {
		if text == "" {
			return models.Summary{}, fmt.Errorf("response contains no summary text")
		}
		return models.Summary{ConversationSummary: text}, nil
	}

	parts := strings.SplitN(text, actionItemsMarker, 2)
	summaryText := strings.TrimSpace(strings.Replace(parts[0], summaryMarker, "", 1))
	if summaryText == "" {
		return models.Summary{}, fmt.Errorf("response contains no summary text")
	}

	var items []string
	for _, line := range strings.Split(parts[1], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "*") {
			continue
		}
		item := strings.TrimSpace(line[1:])
		if item == "" || strings.EqualFold(item, "none identified") {
			continue
		}
		items = append(items, item)
	}

	return models.Summary{
		ConversationSummary: summaryText,
		ActionItems:         items,
	}, nil
}
