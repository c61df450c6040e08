package models

import (
	"encoding/json"
	"sort"
)

// DifficultyStats counts completions per difficulty tier
type DifficultyStats struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Increment adds one completion to the tier d. Unknown tiers are ignored.
func (s *DifficultyStats) Increment(d Difficulty) {
	switch d {
	case DifficultyEasy:
		s.Easy++
	case DifficultyMedium:
		s.Medium++
	case DifficultyHard:
		s.Hard++
	}
}

// Get returns the count for tier d
func (s DifficultyStats) Get(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return s.Easy
	case DifficultyMedium:
		return s.Medium
	case DifficultyHard:
		return s.Hard
	}
	return 0
}

// Total sums every tier
func (s DifficultyStats) Total() int {
	return s.Easy + s.Medium + s.Hard
}

// IDSet is a set of catalog ids. It is stored as a sorted JSON array.
type IDSet map[string]struct{}

// NewIDSet builds a set from ids
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is present
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids
func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the ids in ascending order
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// MarshalJSON writes the set as a sorted array
func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON rebuilds the set from an array; null yields an empty set
func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// UserProgress is the single aggregate tracked by the progress engine
type UserProgress struct {
	CurrentStreak    int                   `json:"current_streak"`
	LongestStreak    int                   `json:"longest_streak"`
	TotalCompletions int                   `json:"total_completions"`
	DifficultyStats  DifficultyStats       `json:"difficulty_stats"`
	Completions      map[string]bool       `json:"completions"`       // date -> completed
	DailyDifficulty  map[string]Difficulty `json:"daily_difficulty"`  // date -> locked tier
	CompletedSunnahs IDSet                 `json:"completed_sunnahs"` // practice ids ever completed
}

// NewUserProgress returns the zero-value aggregate used on first run and after a reset
func NewUserProgress() *UserProgress {
	return &UserProgress{
		Completions:      make(map[string]bool),
		DailyDifficulty:  make(map[string]Difficulty),
		CompletedSunnahs: make(IDSet),
	}
}

// Normalize replaces nil containers left by older or partial snapshots
func (p *UserProgress) Normalize() {
	if p.Completions == nil {
		p.Completions = make(map[string]bool)
	}
	if p.DailyDifficulty == nil {
		p.DailyDifficulty = make(map[string]Difficulty)
	}
	if p.CompletedSunnahs == nil {
		p.CompletedSunnahs = make(IDSet)
	}
}

// Clone returns a deep copy so callers cannot mutate engine state
func (p *UserProgress) Clone() *UserProgress {
	out := *p
	out.Completions = make(map[string]bool, len(p.Completions))
	for k, v := range p.Completions {
		out.Completions[k] = v
	}
	out.DailyDifficulty = make(map[string]Difficulty, len(p.DailyDifficulty))
	for k, v := range p.DailyDifficulty {
		out.DailyDifficulty[k] = v
	}
	out.CompletedSunnahs = p.CompletedSunnahs.Clone()
	return &out
}

// CalendarDay summarizes one date for the calendar view
type CalendarDay struct {
	Date       string      `json:"date"`
	Completed  bool        `json:"completed"`
	Difficulty *Difficulty `json:"difficulty,omitempty"`
}

// MonthStats aggregates the calendar days of a month
type MonthStats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Easy      int `json:"easy"`
	Medium    int `json:"medium"`
	Hard      int `json:"hard"`
}
