package roadmap

import (
	"fmt"

	"github.com/Skillseed/skillseed-roadmap-service/types"
)

// Fallback deterministically synthesizes a structurally valid roadmap
// without any model call. It performs no I/O and cannot fail; it is
// the terminal safety net of the generation pipeline.
func Fallback(goal string, weeklyHours, totalDurationWeeks, topicsPerWeek int) types.Roadmap {
	if topicsPerWeek < 1 {
		topicsPerWeek = 1
	}
	hoursPerTopic := weeklyHours / topicsPerWeek
	if hoursPerTopic < 1 {
		hoursPerTopic = 1
	}

	weeks := make([]types.Week, 0, totalDurationWeeks)
	day := 0

	for w := 1; w <= totalDurationWeeks; w++ {
		week := types.Week{
			Week:    w,
			Summary: fmt.Sprintf("Week %d: structured progress toward %s", w, goal),
			Topics:  make([]types.Topic, 0, topicsPerWeek),
			Resources: []string{
				fmt.Sprintf("Search for beginner-friendly tutorials on %s", goal),
				"Keep notes on what worked and what did not",
			},
		}

		for t := 0; t < topicsPerWeek; t++ {
			day++
			week.Topics = append(week.Topics, types.Topic{
				Title:          fmt.Sprintf("Day %d", day),
				Description:    fmt.Sprintf("Spend a focused session working toward %s. Pick the next unfinished concept, study it, then apply it in a small exercise.", goal),
				EstimatedHours: float64(hoursPerTopic),
				WhyImportant:   fmt.Sprintf("Consistent, deliberate practice is the backbone of reaching %s.", goal),
				WhyThisOrder:   fmt.Sprintf("Session %d continues directly from the previous one so no groundwork is skipped.", day),
				Commands:       []string{"Take notes while you work", "Review yesterday's notes before starting"},
				Files:          []string{fmt.Sprintf("notes/day-%d.md", day)},
				Tools:          []string{"A notebook or notes app", "A timer for focused sessions"},
				Outcome:        fmt.Sprintf("One more concrete step completed toward %s.", goal),
			})
		}

		weeks = append(weeks, week)
	}

	return types.Roadmap{
		Goal:        goal,
		TotalWeeks:  totalDurationWeeks,
		WeeklyHours: weeklyHours,
		Roadmap:     weeks,
	}
}
