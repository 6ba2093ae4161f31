package prompts

import (
	"fmt"
	"strings"

	"gramin/internal/models"
	"gramin/internal/util"
)

// ===== System Prompts =====

// AssistantSystemPrompt builds the system prompt for a health question.
// localContext, when non-empty, is a ready-made list of nearby places.
func AssistantSystemPrompt(localContext string) string {
	basePrompt := `तुम एक ग्रामीण हेल्थ असिस्टेंट हो। सरल हिंदी में सीधे उत्तर दो।
तुम्हारा उत्तर 1000 शब्दों से कम होना चाहिए।
<think> टैग का इस्तेमाल मत करो।`

	if strings.TrimSpace(localContext) != "" {
		basePrompt += "\n\n" + LocalContextSection(localContext)
	}

	return basePrompt
}

// LocalContextSection embeds the nearby places and tells the model to use them
func LocalContextSection(localContext string) string {
	return fmt.Sprintf(`उपयोगकर्ता के आस-पास की जगहें:
%s

अगर सवाल से जुड़ा हो, तो ऊपर दी गई जगहों में से किसी का नाम लेकर सुझाव दो।`, strings.TrimSpace(localContext))
}

// ===== Context Formatting =====

// NearbyPlacesContext formats up to util.MaxPlaces places as a bullet list.
// An empty slice yields an empty string.
func NearbyPlacesContext(places []models.Place) string {
	if len(places) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("आपके आस-पास के अस्पताल:\n")
	for i, p := range places {
		if i == util.MaxPlaces {
			break
		}
		b.WriteString(fmt.Sprintf("- %s (%s)\n", p.Name, p.Address))
	}
	return strings.TrimRight(b.String(), "\n")
}
