package api

// DetectToneRequest представляет запрос на анализ тона текста
type DetectToneRequest struct {
	Text string `json:"text"`
}

// DetectToneResponse представляет результат анализа тона.
// ToneAnalysis структурно вариативен: объект, если вывод модели
// распарсился как JSON, иначе сырая строка.
type DetectToneResponse struct {
	ToneAnalysis any `json:"tone_analysis"`
}

// EnhanceTextRequest представляет запрос на перезапись текста
type EnhanceTextRequest struct {
	Text       string `json:"text"`
	TargetTone string `json:"target_tone,omitempty"` // по умолчанию "Direct & Professional"
}

// EnhanceTextResponse представляет перезаписанный текст
type EnhanceTextResponse struct {
	EnhancedText string `json:"enhanced_text"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
