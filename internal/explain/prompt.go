package explain

import (
	"encoding/json"
	"strings"
)

const explainerInstructions = `You are a senior SRE helping a developer understand log entries.

Given:
- A single log line (possibly JSON or plain text)
- Optional context metadata

Goals:
- Parse or infer: timestamp, severity, component/service, and main event
- Explain in plain English what happened
- Infer likely causes and recommended next troubleshooting steps

Output ONLY JSON with the following schema:
{
  "summary": string,
  "severity": string,
  "component": string | null,
  "probable_causes": string[],
  "recommended_actions": string[],
  "raw_log": string
}
Do not add any extra fields.
If the log cannot be interpreted, state that in "summary" and keep other fields minimal.`

// BuildPrompt assembles the single instruction string sent to the model:
// the fixed explainer instructions, the log entry, and the optional context
// rendered as indented JSON.
func BuildPrompt(logLine string, context map[string]any) string {
	parts := []string{
		explainerInstructions,
		"",
		"LOG ENTRY:",
		logLine,
	}

	if len(context) > 0 {
		ctxJSON, err := json.MarshalIndent(context, "", "  ")
		if err == nil {
			parts = append(parts,
				"",
				"ADDITIONAL CONTEXT (JSON):",
				string(ctxJSON),
			)
		}
	}

	parts = append(parts,
		"",
		"Return ONLY JSON as specified above.",
	)

	return strings.Join(parts, "\n")
}
