package types

// RoadmapRequest is the payload for generating a new learning roadmap.
// It is immutable once handed to the generation pipeline.
type RoadmapRequest struct {
	Goal          string `json:"goal"`
	WeeklyHours   int    `json:"weeklyHours"`
	TotalDuration int    `json:"totalDuration"`
}

// Topic represents one atomic, execution-ready unit of study.
type Topic struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EstimatedHours float64  `json:"estimatedHours"`
	WhyImportant   string   `json:"whyImportant"`
	WhyThisOrder   string   `json:"whyThisOrder"`
	Commands       []string `json:"commands,omitempty"`
	Files          []string `json:"files,omitempty"`
	Tools          []string `json:"tools,omitempty"`
	Outcome        string   `json:"outcome,omitempty"`
}

// Week groups the topics scheduled for one week of the plan.
// Week numbers are 1-based and sequential across the roadmap.
type Week struct {
	Week      int      `json:"week"`
	Summary   string   `json:"summary"`
	Topics    []Topic  `json:"topics"`
	Resources []string `json:"resources,omitempty"`
}

// Roadmap is the full multi-week learning plan returned to the caller.
// It is built once per request and never cached or shared.
type Roadmap struct {
	Goal        string `json:"goal"`
	TotalWeeks  int    `json:"totalWeeks"`
	WeeklyHours int    `json:"weeklyHours"`
	Roadmap     []Week `json:"roadmap"`
}
