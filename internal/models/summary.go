package models

// Summary is the condensed view of a transcription: a prose summary
// plus the action items extracted from it.
type Summary struct {
	ConversationSummary string   `json:"conversation_summary"`
	ActionItems         []string `json:"action_items"`
}

// ProcessOutcome is the aggregated output of one pipeline run.
// Summary is nil when summarization was skipped or unavailable.
type ProcessOutcome struct {
	Transcription Transcription `json:"transcription"`
	Summary       *Summary      `json:"summary,omitempty"`
}
