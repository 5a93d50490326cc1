package explain

import (
	"fmt"

	"loglens/internal/jsonutil"
)

// Normalize turns raw model output into a Result. It never fails: output
// that cannot be parsed as a JSON object degrades to a best-effort Result
// carrying a description of the parse failure in _debug.
//
// The sequence is: strip code fences, attempt a direct parse, attempt a
// parse of the first-'{'-to-last-'}' span, then give up and degrade.
// raw_log in the output is always the submitted log line, never whatever
// the model echoed back.
func Normalize(rawText, logLine string) Result {
	cleaned := jsonutil.StripFence(rawText)
	if cleaned == "" {
		return degraded("Model returned an empty response.", logLine, "model reply was empty")
	}

	var obj map[string]any
	if err := jsonutil.UnmarshalFlex([]byte(cleaned), &obj); err != nil {
		span, spanErr := jsonutil.ExtractObject(cleaned)
		if spanErr != nil {
			return degraded(cleaned, logLine, fmt.Sprintf("model reply was not JSON: %v", err))
		}
		if err := jsonutil.UnmarshalFlex([]byte(span), &obj); err != nil {
			return degraded(cleaned, logLine, fmt.Sprintf("embedded JSON span did not parse: %v", err))
		}
	}
	return fromObject(obj, logLine)
}

// fromObject coerces a parsed model object into the strict contract.
// Missing or wrong-typed keys fall back to documented defaults.
func fromObject(obj map[string]any, logLine string) Result {
	res := Result{
		ProbableCauses:     []string{},
		RecommendedActions: []string{},
		RawLog:             logLine,
	}
	if s, ok := obj["summary"].(string); ok {
		res.Summary = s
	}
	if s, ok := obj["severity"].(string); ok {
		res.Severity = &s
	}
	if s, ok := obj["component"].(string); ok {
		res.Component = &s
	}
	res.ProbableCauses = stringList(obj["probable_causes"])
	res.RecommendedActions = stringList(obj["recommended_actions"])
	return res
}

func degraded(summary, logLine, debug string) Result {
	return Result{
		Summary:            summary,
		ProbableCauses:     []string{},
		RecommendedActions: []string{},
		RawLog:             logLine,
		Debug:              debug,
	}
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
