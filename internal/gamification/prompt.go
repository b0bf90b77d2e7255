package gamification

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidOutput is returned when a model's answer does not match the
// response schema.
var ErrInvalidOutput = errors.New("invalid scorer output")

const systemPrompt = "You are an expert in gamification and behavioral economics, specializing in designing incentive systems for savings groups. Reply with JSON only."

var promptTemplate = template.Must(template.New("gamification").Parse(`Analyze the following member contribution history and current scoring rules to generate gamification scores and suggest ruleset tweaks.

Member Contribution History:
{{- range .MemberContributionHistory}}
- Member ID: {{.MemberID}}, Amount: {{.ContributionAmount}}, Date: {{.ContributionDate}}
{{- end}}

Current Scoring Rules:
{{.CurrentScoringRules}}

Score each member on contribution frequency, amount and consistency, and compute each member's current streak of consecutive contributions.
Then suggest tweaks to the scoring ruleset that would encourage more frequent and higher contributions. Weigh fairness and unintended consequences.

Answer with a single JSON object of this shape:
{
  "memberScores": [
    { "memberId": "member1", "score": 120, "streak": 4 },
    { "memberId": "member2", "score": 95, "streak": 2 }
  ],
  "suggestedRuleTweaks": "Increase bonus for consistent weekly contributions; introduce a leaderboard to foster competition."
}
Use the member IDs exactly as given above.
`))

// responseSchema is the JSON Schema a model answer must satisfy.
const responseSchema = `{
  "type": "object",
  "required": ["memberScores", "suggestedRuleTweaks"],
  "properties": {
    "memberScores": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["memberId", "score", "streak"],
        "properties": {
          "memberId": {"type": "string", "minLength": 1},
          "score": {"type": "number"},
          "streak": {"type": "integer", "minimum": 0}
        }
      }
    },
    "suggestedRuleTweaks": {"type": "string"}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(responseSchema)

// RenderPrompt renders the user prompt for a scoring request.
func RenderPrompt(req Request) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, req); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return buf.String(), nil
}

// ParseResponse validates a model's raw answer against the response schema
// and decodes it. Markdown code fences around the JSON are tolerated.
func ParseResponse(raw string) (*Response, error) {
	raw = stripFences(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty answer: %w", ErrInvalidOutput)
	}

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidOutput, strings.Join(msgs, "; "))
	}

	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return &resp, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
