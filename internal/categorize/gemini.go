package categorize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used when the config names none.
const DefaultModelName = "gemini-2.5-flash"

// DefaultCategories is the taxonomy offered to the oracle when the config
// does not override it.
var DefaultCategories = []string{
	"Groceries", "Food", "Transport", "Shopping", "Utilities", "Investment",
	"Transfer", "Rent", "Salary", "Health", "Entertainment", "Housing",
	"Income", "Other",
}

// GeminiOracle categorizes transaction batches with a Gemini model.
type GeminiOracle struct {
	model      string
	categories []string
}

// NewGeminiOracle creates an oracle for the given model name and category
// taxonomy; empty arguments fall back to the defaults.
func NewGeminiOracle(modelName string, categories []string) *GeminiOracle {
	if modelName == "" {
		modelName = DefaultModelName
	}
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	return &GeminiOracle{model: modelName, categories: categories}
}

// Categorize sends one batch to the model and returns the validated results.
func (o *GeminiOracle) Categorize(ctx context.Context, batch []Request) ([]Result, error) {
	if len(batch) == 0 {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: o.buildPrompt(batch)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, o.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	return ParseResults(raw, len(batch))
}

func (o *GeminiOracle) buildPrompt(batch []Request) string {
	var lines []string
	for _, r := range batch {
		memory := ""
		if r.MemoryHint != "" {
			memory = fmt.Sprintf(" [MEMORY: %s]", r.MemoryHint)
		}
		lines = append(lines, fmt.Sprintf("ID_%d: %q Amount: %s (%s)%s",
			r.ID, r.SanitizedText, r.Amount.String(), r.Type, memory))
	}

	var b strings.Builder
	b.WriteString("You are an intelligent financial assistant with memory.\n\n")
	b.WriteString("INPUT DATA:\n")
	b.WriteString("A list of bank transactions. Some include [MEMORY] tags from previous user feedback.\n\n")
	b.WriteString("YOUR GOAL:\n")
	b.WriteString("1. Identify the merchant or person (clean name).\n")
	b.WriteString("2. Assign a category. Use the [MEMORY] hint if it makes sense, but use your judgment (for example if the amount is vastly different, ignore memory).\n\n")
	b.WriteString("PRIVACY NOTE:\n")
	b.WriteString("Sensitive numbers are redacted. Do not hallucinate numbers. Use the remaining text (locations, names).\n\n")
	b.WriteString("CATEGORIES:\n")
	b.WriteString("[" + strings.Join(o.categories, ", ") + "]\n\n")
	b.WriteString("RETURN JSON ARRAY ONLY, no markdown fences:\n")
	b.WriteString(`[ { "id": 0, "cleanName": "Zepto", "category": "Groceries", "reason": "Recognized merchant" } ]` + "\n\n")
	b.WriteString("TRANSACTIONS:\n")
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}
