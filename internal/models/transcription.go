package models

// Transcription is the text produced from one audio file.
type Transcription struct {
	Text            string   `json:"text"`
	AudioFilePath   string   `json:"audio_file_path"`
	ModelUsed       string   `json:"model_used"`
	Language        string   `json:"language,omitempty"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
}
