package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"scribe/internal/models"
	"scribe/internal/result"
)

const summaryPrompt = `Analyze the following transcription and provide:
1. A concise summary of the conversation (2-3 paragraphs)
2. A list of action items (specific tasks mentioned or implied)

Format your response exactly as follows:
SUMMARY:
[Your summary here]

ACTION ITEMS:
- [Action item 1]
- [Action item 2]
- [etc.]

If there are no action items, write "- None identified"

Transcription:
%s`

// Summarize sends the transcript to Gemini and parses the response into
// a Summary. Empty input yields a failure envelope, never a fault.
func (p *implProvider) Summarize(ctx context.Context, text string) (res result.Result[models.Summary]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Fail[models.Summary](
				"Summarization failed: internal error",
				fmt.Sprintf("%v", r),
			)
		}
	}()

	if strings.TrimSpace(text) == "" {
		return result.Fail[models.Summary]("Summarization failed: empty transcript")
	}
	if len(p.apiKeys) == 0 {
		return result.Fail[models.Summary](
			"Gemini API key not provided. Set the GEMINI_API_KEY environment variable",
			"Missing API key",
		)
	}

	raw, err := p.generate(ctx, fmt.Sprintf(summaryPrompt, text))
	if err != nil {
		return result.Fail[models.Summary](
			fmt.Sprintf("Summarization failed: %v", err),
			err.Error(),
		)
	}

	summary, err := parseSummaryResponse(raw)
	if err != nil {
		return result.Fail[models.Summary](
			"Failed to extract summary from Gemini response",
			err.Error(),
		)
	}

	return result.Ok(summary, "Summary generated successfully")
}

// generate calls the Gemini API, rotating API keys on 429 / quota errors.
func (p *implProvider) generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(p.apiKeys)
	var lastErr error

	for range attempts {
		key := p.apiKeys[p.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			p.rotateKey()
			continue
		}

		resp, err := client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				p.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", p.currentKey+1)
				p.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
			var text string
			for _, part := range resp.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if text != "" {
				return text, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (p *implProvider) rotateKey() {
	p.currentKey = (p.currentKey + 1) % len(p.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
