package gift

import (
	"fmt"

	"google.golang.org/genai"

	"wishgallery/internal/lang"
)

const promptTemplate = `The user has made this wish: %q.
Christmas is coming. Create %d distinct gifts.

TASK:
1. Detect the language of the wish (likely English or Chinese).
2. Provide **profound wisdom, philosophical insight, or practical life advice** related specifically to this wish.
3. **LANGUAGE RULE**: If the wish is in Chinese, the Output MUST be in Chinese. If the wish is in English, the Output MUST be in English. (As a fallback, use %s).

For example:
- If the wish is about money, offer wisdom about value, hard work, or the nature of wealth.
- If the wish is about love, offer wisdom about patience, self-worth, or connection.

Each message should be short, impactful, and deeply meaningful.
Give each gift a short 2-3 word title and keep each message under 25 words.
Assign a relevant emoji to each.`

// BuildPrompt returns the instruction sent to the model for wish. The
// preference is only the fallback language; the model is told to answer in
// the wish's own language.
func BuildPrompt(wish string, preference lang.Language) string {
	return fmt.Sprintf(promptTemplate, wish, Count, preference.EnglishName())
}

// ResponseSchema declares the structured output: an array of objects with
// required string fields title, message and emoji. The item count is asked
// for in the prompt, not constrained here.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title": {
					Type:        genai.TypeString,
					Description: "A short, 2-3 word wise title",
				},
				"message": {
					Type:        genai.TypeString,
					Description: "The wisdom or advice (max 25 words)",
				},
				"emoji": {
					Type:        genai.TypeString,
					Description: "A single relevant emoji",
				},
			},
			Required:         []string{"title", "message", "emoji"},
			PropertyOrdering: []string{"title", "message", "emoji"},
		},
	}
}
