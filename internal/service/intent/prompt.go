package intent

import (
	"strings"
	"time"
)

const systemPromptTemplate = `You extract time-tracking entries from chat messages.

Current date and time: {{current_datetime}}
User timezone: {{user_timezone}}
The message was written by user {{requesting_user_id}}.
Known projects: {{project_list}}

Reply with ONLY a JSON object of this shape, no markdown and no explanations:
{
  "entries": [
    {
      "user_id": "<platform user id, e.g. U123ABC>",
      "minutes": <integer>,
      "project": "<project name>",
      "project_confidence": <integer 0-100>,
      "date": "<YYYY-MM-DD>",
      "notes": "<optional short note or null>"
    }
  ],
  "needs_clarification": <true|false>,
  "suggested_project_name": "<best guess at the project name or null>",
  "unknown_user_mentions": ["<mentions that are not user ids>"],
  "error": "<short message for the user if nothing can be logged, else null>"
}

Rules:
- Mentions look like <@U123ABC>; use the bare id as user_id.
- Without a mention the work belongs to {{requesting_user_id}}.
- Convert hours to minutes; "1.5h" is 90.
- Resolve relative dates ("yesterday", "last friday") in the user's timezone; default to today.
- Match projects case-insensitively against the known list; report your confidence.
- Set needs_clarification when no known project fits well.`

const promptTimeLayout = "2006-01-02 15:04:05 MST"

// buildSystemPrompt fills the template with the request context.
func buildSystemPrompt(now time.Time, tz *time.Location, requestingActor string, projects []string) string {
	return strings.NewReplacer(
		"{{current_datetime}}", now.In(tz).Format(promptTimeLayout),
		"{{user_timezone}}", tz.String(),
		"{{requesting_user_id}}", requestingActor,
		"{{project_list}}", strings.Join(projects, ", "),
	).Replace(systemPromptTemplate)
}
