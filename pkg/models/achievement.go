package models

// Achievement is a badge with a fixed unlock rule. Once Unlocked it stays unlocked.
type Achievement struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Unlocked     bool   `json:"unlocked"`
	UnlockedDate string `json:"unlocked_date,omitempty"`
}
