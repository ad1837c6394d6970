package prompts

import (
	"fmt"
	"strings"

	"github.com/askdb-ai/askdb-engine/pkg/models"
)

// ResponseSystemMessage is the system message for response generation.
const ResponseSystemMessage = "You are a professional business analyst who provides clear, actionable insights in paragraph format."

// resultPreviewRows caps how many result rows are serialized into the
// response prompt.
const resultPreviewRows = 20

// BuildResponsePrompt assembles the analyst prompt summarizing query
// results for the user.
func BuildResponsePrompt(userPrompt string, results *models.ResultSet, intent models.IntentCategory) string {
	var b strings.Builder

	b.WriteString("You are a professional business analyst. Provide clear insights in PARAGRAPH format.\n\n")
	b.WriteString("USER QUESTION: " + userPrompt + "\n\n")
	b.WriteString("DETECTED INTENT: " + string(intent) + "\n\n")
	b.WriteString("QUERY RESULTS:\n")
	b.WriteString(FormatResults(results))
	b.WriteString("\n\nINSTRUCTIONS:\n")
	b.WriteString("1. Write 2-3 well-structured paragraphs\n")
	b.WriteString("2. First paragraph: Direct answer with key numbers and percentages\n")
	b.WriteString("3. Second paragraph: Analysis, trends, and detailed breakdown\n")
	b.WriteString("4. Third paragraph: Key insights and actionable recommendations (if applicable)\n")
	b.WriteString("5. Use professional business language\n")
	b.WriteString("6. Include specific metrics and percentages\n")
	b.WriteString("7. Be concise but comprehensive\n")
	b.WriteString("8. DO NOT mention SQL or technical details\n")
	b.WriteString("9. Focus on business value and insights\n\n")
	b.WriteString("RESPONSE:")

	return b.String()
}

// FormatResults renders up to resultPreviewRows rows as aligned text for
// the prompt. A nil result set means the query was never executed.
func FormatResults(results *models.ResultSet) string {
	if results == nil {
		return "No results available (query not executed)"
	}
	if results.IsEmpty() {
		return "The query returned no rows."
	}

	preview := results.Head(resultPreviewRows)

	var b strings.Builder
	names := make([]string, len(preview.Columns))
	for i, col := range preview.Columns {
		names[i] = col.Name
	}
	b.WriteString(strings.Join(names, " | "))
	b.WriteString("\n")

	for _, row := range preview.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%v", cell)
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}

	if results.RowCount() > resultPreviewRows {
		fmt.Fprintf(&b, "(%d of %d rows shown)\n", resultPreviewRows, results.RowCount())
	}

	return b.String()
}
