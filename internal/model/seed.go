package model

import "time"

// Seed data used whenever a persisted snapshot is absent or unreadable.

func DefaultPillars() []Pillar {
	return []Pillar{
		{ID: "health", Name: "Temple of Vitality", Icon: "🦁", Description: "Honoring the vessel of your spirit through movement and nourishment.", Color: "#fb923c", Gradient: "from-orange-400 to-amber-500"},
		{ID: "intellectual", Name: "The Scribe's Path", Icon: "🪶", Description: "Deepening knowledge, sharpening the mind, and recording wisdom.", Color: "#818cf8", Gradient: "from-indigo-400 to-blue-500"},
		{ID: "career", Name: "The Architect's Legacy", Icon: "🏛️", Description: "Building structures of influence and pursuing mastery in the marketplace.", Color: "#94a3b8", Gradient: "from-slate-400 to-slate-600"},
		{ID: "finances", Name: "The Royal Treasury", Icon: "🪙", Description: "Cultivating wealth and managing resources to build a lasting legacy.", Color: "#fbbf24", Gradient: "from-yellow-400 to-amber-500"},
		{ID: "emotional", Name: "River of Serenity", Icon: "🌊", Description: "Navigating the currents of feeling and cultivating inner peace.", Color: "#2dd4bf", Gradient: "from-teal-400 to-cyan-500"},
		{ID: "spiritual", Name: "Eye of Horus", Icon: "👁️", Description: "Connecting with the divine and the unseen patterns of the universe.", Color: "#a78bfa", Gradient: "from-violet-400 to-purple-500"},
		{ID: "character", Name: "The Hall of Ma'at", Icon: "⚖️", Description: "Aligning actions with truth and strengthening the integrity of the soul.", Color: "#f87171", Gradient: "from-red-400 to-rose-500"},
		{ID: "relationships", Name: "Kindred Spirits", Icon: "👥", Description: "Nurturing the threads that bind us to family, friends, and community.", Color: "#f472b6", Gradient: "from-pink-400 to-rose-500"},
		{ID: "vision", Name: "The North Star", Icon: "✨", Description: "Aligning your path with your highest purpose and future self.", Color: "#d4af37", Gradient: "from-yellow-400 to-amber-600"},
	}
}

func DefaultGoals() []Goal {
	return []Goal{
		{
			ID:          "g1",
			PillarID:    "intellectual",
			Title:       "Master the Ancient Arts",
			Description: "Deepen my professional mastery through daily practice.",
			StartDate:   "2025-01-01",
			EndDate:     "2025-12-31",
		},
	}
}

func DefaultHabits() []Habit {
	return []Habit{
		{
			ID:             "h1",
			Title:          "Morning Reflection",
			GoalID:         "g1",
			PillarID:       "intellectual",
			CompletedDates: []string{},
			Frequency:      FrequencyDaily,
			StartDate:      "2025-01-01",
			EndDate:        "2025-12-31",
			StartTime:      "08:00",
			Duration:       30,
			CreatedAt:      time.Now(),
		},
	}
}

func DefaultSettings() Settings {
	return Settings{
		AppName:   "Garden of Aaru",
		Motto:     "Where your legacy grows",
		Theme:     "gold",
		Font:      "serif",
		BgPattern: "https://www.transparenttextures.com/patterns/natural-paper.png",
	}
}
