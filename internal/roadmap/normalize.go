package roadmap

import (
	"errors"
	"fmt"

	"github.com/Skillseed/skillseed-roadmap-service/types"
)

// ErrNoTopics reports a structurally valid roadmap that carries no
// topics at all. The orchestrator treats it as a pipeline failure: an
// empty plan is worse than the deterministic fallback.
var ErrNoTopics = errors.New("normalized roadmap contains no topics")

// Normalize converts a validated candidate into a typed Roadmap,
// filling gaps with values from the originating request. Week numbers
// are always rewritten to their 1-based position: sequential numbering
// is an invariant, so a wrong model-supplied number is overwritten
// silently. totalWeeks is likewise always set to the actual week
// count, whatever the model declared.
func Normalize(candidate map[string]interface{}, req types.RoadmapRequest) (types.Roadmap, error) {
	goal := asString(candidate["goal"])
	if goal == "" {
		goal = req.Goal
	}
	weeklyHours := asInt(candidate["weeklyHours"])
	if weeklyHours == 0 {
		weeklyHours = req.WeeklyHours
	}

	rawWeeks, _ := candidate["roadmap"].([]interface{})
	weeks := make([]types.Week, 0, len(rawWeeks))
	totalTopics := 0

	for i, rawWeek := range rawWeeks {
		weekMap, ok := rawWeek.(map[string]interface{})
		if !ok {
			continue
		}

		week := types.Week{
			Week:      i + 1,
			Summary:   asString(weekMap["summary"]),
			Topics:    []types.Topic{},
			Resources: asStringSlice(weekMap["resources"]),
		}
		if week.Summary == "" {
			week.Summary = fmt.Sprintf("Week %d focus for %s", i+1, goal)
		}
		if week.Resources == nil {
			week.Resources = []string{}
		}

		if rawTopics, ok := weekMap["topics"].([]interface{}); ok {
			for _, rawTopic := range rawTopics {
				topicMap, ok := rawTopic.(map[string]interface{})
				if !ok {
					continue
				}
				week.Topics = append(week.Topics, types.Topic{
					Title:          asString(topicMap["title"]),
					Description:    asString(topicMap["description"]),
					EstimatedHours: asFloat(topicMap["estimatedHours"]),
					WhyImportant:   asString(topicMap["whyImportant"]),
					WhyThisOrder:   asString(topicMap["whyThisOrder"]),
					Commands:       asStringSlice(topicMap["commands"]),
					Files:          asStringSlice(topicMap["files"]),
					Tools:          asStringSlice(topicMap["tools"]),
					Outcome:        asString(topicMap["outcome"]),
				})
			}
		}

		totalTopics += len(week.Topics)
		weeks = append(weeks, week)
	}

	if totalTopics == 0 {
		return types.Roadmap{}, ErrNoTopics
	}

	return types.Roadmap{
		Goal:        goal,
		TotalWeeks:  len(weeks),
		WeeklyHours: weeklyHours,
		Roadmap:     weeks,
	}, nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asInt(v interface{}) int {
	return int(asFloat(v))
}

func asStringSlice(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
