package entity

import "time"

// SettingOpenAIKey is the persisted setting holding the text-generation
// provider credential. It takes precedence over the environment default.
const SettingOpenAIKey = "OPENAI_API_KEY"

// Setting is a single persisted key/value configuration entry.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
