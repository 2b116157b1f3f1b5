package roadmap

import "fmt"

// ValidationResult is the tagged outcome of a structural check.
// The orchestrator branches on OK; Reason exists for diagnosis logs.
type ValidationResult struct {
	OK     bool
	Reason string
}

func valid() ValidationResult {
	return ValidationResult{OK: true}
}

func invalid(format string, args ...interface{}) ValidationResult {
	return ValidationResult{OK: false, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks whether a parsed JSON candidate matches the roadmap
// shape. It is a structural predicate: it never panics and never
// mutates the candidate. Optional fields (commands, files, tools,
// outcome, resources) are not checked beyond being present or absent.
func Validate(candidate interface{}) ValidationResult {
	root, ok := candidate.(map[string]interface{})
	if !ok {
		return invalid("top level is %T, expected object", candidate)
	}

	if !isString(root["goal"]) {
		return invalid("goal must be a string")
	}
	if !isNumber(root["totalWeeks"]) {
		return invalid("totalWeeks must be a number")
	}
	if !isNumber(root["weeklyHours"]) {
		return invalid("weeklyHours must be a number")
	}

	weeks, ok := root["roadmap"].([]interface{})
	if !ok {
		return invalid("roadmap must be an array")
	}

	for i, rawWeek := range weeks {
		week, ok := rawWeek.(map[string]interface{})
		if !ok {
			return invalid("roadmap[%d] is %T, expected object", i, rawWeek)
		}
		if !isNumber(week["week"]) {
			return invalid("roadmap[%d].week must be a number", i)
		}
		if !isString(week["summary"]) {
			return invalid("roadmap[%d].summary must be a string", i)
		}
		topics, ok := week["topics"].([]interface{})
		if !ok {
			return invalid("roadmap[%d].topics must be an array", i)
		}
		for j, rawTopic := range topics {
			topic, ok := rawTopic.(map[string]interface{})
			if !ok {
				return invalid("roadmap[%d].topics[%d] is %T, expected object", i, j, rawTopic)
			}
			for _, field := range []string{"title", "description", "whyImportant", "whyThisOrder"} {
				if !isString(topic[field]) {
					return invalid("roadmap[%d].topics[%d].%s must be a string", i, j, field)
				}
			}
			if !isNumber(topic["estimatedHours"]) {
				return invalid("roadmap[%d].topics[%d].estimatedHours must be a number", i, j)
			}
		}
	}

	return valid()
}

func isString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

func isNumber(v interface{}) bool {
	// JSON numbers decode as float64; int covers hand-built candidates.
	switch v.(type) {
	case float64, int:
		return true
	default:
		return false
	}
}
