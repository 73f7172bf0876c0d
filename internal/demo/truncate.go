package demo

// Preview lengths used when narrating long chatbot responses.
const (
	ShortPreview = 200
	LongPreview  = 500
)

// Truncate cuts s to limit runes and appends an ellipsis marker. Text at or
// under the limit passes through unmodified.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
