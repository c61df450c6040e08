package achievement

import "github.com/example/sunnahtracker/pkg/models"

type definition struct {
	id          string
	title       string
	description string
	icon        string
	satisfied   func(p *models.UserProgress) bool
}

var definitions = []definition{
	{
		id:          "first-step",
		title:       "First Step",
		description: "Complete your first Sunnah practice",
		icon:        "🌟",
		satisfied:   func(p *models.UserProgress) bool { return p.TotalCompletions >= 1 },
	},
	{
		id:          "week-warrior",
		title:       "Week Warrior",
		description: "Complete 7 days in a row",
		icon:        "💪",
		satisfied:   func(p *models.UserProgress) bool { return p.CurrentStreak >= 7 },
	},
	{
		id:          "month-master",
		title:       "Month Master",
		description: "Complete 30 days in a row",
		icon:        "👑",
		satisfied:   func(p *models.UserProgress) bool { return p.CurrentStreak >= 30 },
	},
	{
		id:          "century",
		title:       "Century",
		description: "Complete 100 Sunnah practices",
		icon:        "💯",
		satisfied:   func(p *models.UserProgress) bool { return p.TotalCompletions >= 100 },
	},
	{
		id:          "easy-rider",
		title:       "Easy Rider",
		description: "Complete 10 Easy practices",
		icon:        "😊",
		satisfied:   func(p *models.UserProgress) bool { return p.DifficultyStats.Easy >= 10 },
	},
	{
		id:          "medium-master",
		title:       "Medium Master",
		description: "Complete 10 Medium practices",
		icon:        "🎯",
		satisfied:   func(p *models.UserProgress) bool { return p.DifficultyStats.Medium >= 10 },
	},
	{
		id:          "hard-hero",
		title:       "Hard Hero",
		description: "Complete 10 Hard practices",
		icon:        "🔥",
		satisfied:   func(p *models.UserProgress) bool { return p.DifficultyStats.Hard >= 10 },
	},
	{
		id:          "balanced",
		title:       "Balanced",
		description: "Complete at least 5 practices in each difficulty",
		icon:        "⚖️",
		satisfied: func(p *models.UserProgress) bool {
			s := p.DifficultyStats
			return s.Easy >= 5 && s.Medium >= 5 && s.Hard >= 5
		},
	},
}

func lookup(id string) (definition, bool) {
	for _, d := range definitions {
		if d.id == id {
			return d, true
		}
	}
	return definition{}, false
}

// Defaults returns every achievement in table order, all locked
func Defaults() []models.Achievement {
	out := make([]models.Achievement, 0, len(definitions))
	for _, d := range definitions {
		out = append(out, models.Achievement{
			ID:          d.id,
			Title:       d.title,
			Description: d.description,
			Icon:        d.icon,
		})
	}
	return out
}
