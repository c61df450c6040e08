package models

import "fmt"

// Difficulty is the effort tier a practice belongs to
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every tier in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is a known tier
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty converts a raw string into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// Category groups practices by area of life
type Category string

const (
	CategoryWorship   Category = "worship"
	CategoryCharacter Category = "character"
	CategorySocial    Category = "social"
	CategoryDaily     Category = "daily"
)

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategoryWorship, CategoryCharacter, CategorySocial, CategoryDaily:
		return true
	}
	return false
}

// ParseCategory converts a raw string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Sunnah is one trackable practice from the content catalog.
// The ID is shared by every language variant of the same practice.
type Sunnah struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Category    Category   `json:"category" validate:"oneof=worship character social daily"`
	Difficulty  Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
	Source      string     `json:"source"`
}
