package gemini

// Типы повторяют wire-формат generateContent API (v1 REST).

// GenerateRequest представляет single-turn запрос к модели
type GenerateRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Content представляет одно сообщение диалога
type Content struct {
	Role  string `json:"role,omitempty"` // всегда "user" в этом сервисе
	Parts []Part `json:"parts"`
}

// Part представляет текстовый фрагмент сообщения
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig содержит параметры генерации
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// GenerateResponse представляет ответ модели.
// Поля опциональны: при safety block или усечении провайдер может
// опустить любую часть структуры.
type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates,omitempty"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

// Candidate представляет один вариант сгенерированного ответа
type Candidate struct {
	Content Content `json:"content"`
}

// PromptFeedback содержит safety-информацию о запросе
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}
