package roadmap

import "fmt"

// systemPrompt is the static instruction sent with every generation
// request. Models that honor the system role will return raw JSON.
const systemPrompt = `You are an expert learning-path planner. You design practical, ` +
	`execution-ready study roadmaps. You respond with RAW JSON ONLY: no prose, ` +
	`no explanations, no markdown code fences, no commentary before or after ` +
	`the JSON object. The response must be a single JSON object matching the ` +
	`shape the user describes, and nothing else.`

// TopicsPerWeek derives how many topics fit into one week of study.
// The heuristic is fixed: roughly two hours of effort per topic.
func TopicsPerWeek(weeklyHours int) int {
	n := weeklyHours / 2
	if n < 1 {
		n = 1
	}
	return n
}

// BuildPrompt returns the system and user instructions for the model.
// The user prompt restates the required JSON shape inline because some
// models ignore the system role. Pure function of its inputs.
func BuildPrompt(goal string, weeklyHours, totalDurationWeeks int) (string, string) {
	topicsPerWeek := TopicsPerWeek(weeklyHours)
	totalTopics := totalDurationWeeks * topicsPerWeek

	userPrompt := fmt.Sprintf(`Create a learning roadmap for the goal: %q.

Constraints:
- The learner has %d hours available per week.
- The plan covers exactly %d weeks.
- Schedule %d topics per week (%d topics in total), each sized at roughly 1-3 hours.
- Topics must be concrete and execution-ready: a learner should be able to sit down and do them.
- Order topics so that each one builds on what came before it.

Respond with raw JSON only, exactly this shape:
{
  "goal": "%s",
  "totalWeeks": %d,
  "weeklyHours": %d,
  "roadmap": [
    {
      "week": 1,
      "summary": "one-sentence focus of the week",
      "topics": [
        {
          "title": "short topic name",
          "description": "what to do, step by step",
          "estimatedHours": 2,
          "whyImportant": "why this matters for the goal",
          "whyThisOrder": "why it comes at this point in the sequence",
          "commands": ["shell commands to run, if any"],
          "files": ["files to create or edit, if any"],
          "tools": ["tools or sites to use, if any"],
          "outcome": "what the learner can do afterwards"
        }
      ],
      "resources": ["optional links or references for the week"]
    }
  ]
}

Do not wrap the JSON in code fences. Do not add any text outside the JSON object.`,
		goal, weeklyHours, totalDurationWeeks, topicsPerWeek, totalTopics,
		goal, totalDurationWeeks, weeklyHours)

	return systemPrompt, userPrompt
}
