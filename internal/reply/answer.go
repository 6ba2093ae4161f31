package reply

import "strings"

// Fixed user-facing fallbacks, in Hindi like the rest of the assistant's output.
const (
	// IncompleteMessage replaces a reply that was cut off mid-sentence.
	IncompleteMessage = "माफ कीजिए, एआई से पूरा जवाब नहीं मिला। कृपया अपना सवाल छोटा करके फिर से पूछें।"
	// NoAnswerMessage replaces a reply when the model could not be reached.
	NoAnswerMessage = "माफ कीजिए, एआई से जवाब नहीं मिला।"
)

const (
	reasoningCloseTag = "</think>"
	endOfSequence     = "</s>"
)

// ExtractAnswer drops the model's reasoning trace (everything up to the last
// closing think tag) and a trailing end-of-sequence marker.
func ExtractAnswer(raw string) string {
	if idx := strings.LastIndex(raw, reasoningCloseTag); idx >= 0 {
		raw = raw[idx+len(reasoningCloseTag):]
	}

	answer := strings.TrimSpace(raw)
	answer = strings.TrimSuffix(answer, endOfSequence)
	return strings.TrimSpace(answer)
}
