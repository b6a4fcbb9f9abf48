package gemini

import (
	"encoding/json"
	"strings"
)

// ExtractText извлекает сгенерированный текст из вложенной структуры ответа:
// candidates[0].content.parts[0].text. Любое отсутствующее поле или пустой
// список дает пустую строку: при safety block или усечении провайдер
// опускает части структуры.
func ExtractText(resp *GenerateResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}

	return parts[0].Text
}

// BlockReason возвращает причину safety block, если провайдер отклонил
// запрос. Вызывающий должен проверять ее раньше обработки пустого ответа.
func BlockReason(resp *GenerateResponse) (string, bool) {
	if resp == nil || resp.PromptFeedback == nil || resp.PromptFeedback.BlockReason == "" {
		return "", false
	}

	return resp.PromptFeedback.BlockReason, true
}

// StripCodeFence убирает markdown-обертку ```...``` и необязательный
// языковой тег "json" перед разбором. Текст без fence возвращается как есть.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}

	trimmed = strings.Trim(trimmed, "`")
	trimmed = strings.TrimSpace(trimmed)

	if strings.HasPrefix(strings.ToLower(trimmed), "json") {
		trimmed = strings.TrimSpace(trimmed[4:])
	}

	return trimmed
}

// ParseStructured пытается строго разобрать текст как JSON.
// На успехе возвращает распарсенную структуру, иначе исходную строку:
// невалидный JSON от модели не является ошибкой, API деградирует до
// возврата сырого текста.
func ParseStructured(text string) any {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}

	return v
}
