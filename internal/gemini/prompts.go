package gemini

import "fmt"

// DefaultTargetTone тон перезаписи по умолчанию
const DefaultTargetTone = "Direct & Professional"

const tonePromptTemplate = `
You are a professional tone analyzer.
Analyze the following text and respond strictly in JSON format with:
{
  "detected_tone": "one of Passive-Aggressive, Sarcastic/Ironic, Overly Cautious, Direct & Professional, Warm & Encouraging, Empathetic/Sympathetic, Informal & Casual",
  "sentiment": "Positive, Negative, or Neutral",
  "analysis_reason": "Brief reason why you chose that tone"
}
Text: "%s"
`

const enhancePromptTemplate = `
Rewrite the following text to sound %s, keeping the meaning intact.
Do not add explanations or formatting. Just return the rewritten text.

Text: "%s"
`

// ToneAnalysisPrompt строит промпт классификации тона для заданного текста
func ToneAnalysisPrompt(text string) string {
	return fmt.Sprintf(tonePromptTemplate, text)
}

// EnhancePrompt строит промпт перезаписи текста в целевой тон.
// Пустой targetTone заменяется на DefaultTargetTone.
func EnhancePrompt(text, targetTone string) string {
	if targetTone == "" {
		targetTone = DefaultTargetTone
	}

	return fmt.Sprintf(enhancePromptTemplate, targetTone, text)
}
