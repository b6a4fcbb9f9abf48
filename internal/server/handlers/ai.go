package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tonesculpt/tonesculpt/internal/gemini"
	"github.com/tonesculpt/tonesculpt/pkg/api"
)

// TextGenerator определяет интерфейс доступа к генеративной модели
type TextGenerator interface {
	// GenerateContent выполняет один запрос к модели без повторов
	GenerateContent(ctx context.Context, prompt string) (*gemini.GenerateResponse, error)
}

// AIHandler обрабатывает запросы анализа и перезаписи текста
type AIHandler struct {
	logger *slog.Logger
	model  TextGenerator
}

// NewAIHandler создает новый handler для AI endpoints
func NewAIHandler(logger *slog.Logger, model TextGenerator) *AIHandler {
	return &AIHandler{
		logger: logger,
		model:  model,
	}
}

// DetectTone обрабатывает POST /api/detect_tone
// Поле tone_analysis в ответе структурно вариативно: объект, если вывод
// модели распарсился как JSON, иначе сырая строка.
func (h *AIHandler) DetectTone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.DetectToneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode detect_tone request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		sendError(h.logger, w, "No text provided", http.StatusBadRequest)
		return
	}

	resp, err := h.model.GenerateContent(ctx, gemini.ToneAnalysisPrompt(req.Text))
	if err != nil {
		h.sendGenerateError(ctx, w, err)
		return
	}

	text, ok := h.usableText(ctx, w, resp)
	if !ok {
		return
	}

	stripped := gemini.StripCodeFence(text)

	sendJSON(h.logger, w, api.DetectToneResponse{
		ToneAnalysis: gemini.ParseStructured(stripped),
	}, http.StatusOK)
}

// EnhanceText обрабатывает POST /api/enhance_text
func (h *AIHandler) EnhanceText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.EnhanceTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode enhance_text request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		sendError(h.logger, w, "No text provided", http.StatusBadRequest)
		return
	}

	resp, err := h.model.GenerateContent(ctx, gemini.EnhancePrompt(req.Text, req.TargetTone))
	if err != nil {
		h.sendGenerateError(ctx, w, err)
		return
	}

	// Safety block здесь не раскрывается: любой непригодный ответ, включая
	// заблокированный, отдается как пустой ответ модели
	rewritten := gemini.ExtractText(resp)
	if strings.TrimSpace(rewritten) == "" {
		h.logger.ErrorContext(ctx, "empty response from model")
		sendError(h.logger, w, "Empty response from model", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.EnhanceTextResponse{EnhancedText: rewritten}, http.StatusOK)
}

// usableText извлекает текст модели для detect_tone и обрабатывает
// неуспешные исходы. Safety block проверяется только когда текст непригоден
// и имеет приоритет над ошибкой пустого ответа. Возвращает ok=false, если
// ответ уже отправлен.
func (h *AIHandler) usableText(ctx context.Context, w http.ResponseWriter, resp *gemini.GenerateResponse) (string, bool) {
	text := gemini.ExtractText(resp)
	if strings.TrimSpace(text) != "" {
		return text, true
	}

	if reason, blocked := gemini.BlockReason(resp); blocked {
		h.logger.WarnContext(ctx, "gemini safety block", slog.String("reason", reason))
		sendError(h.logger, w, fmt.Sprintf("Gemini safety block triggered: %s", reason), http.StatusBadRequest)
		return "", false
	}

	h.logger.ErrorContext(ctx, "empty response from model")
	sendError(h.logger, w, "Empty response from model", http.StatusInternalServerError)
	return "", false
}

// sendGenerateError транслирует типизированные ошибки proxy в HTTP ответ
func (h *AIHandler) sendGenerateError(ctx context.Context, w http.ResponseWriter, err error) {
	var provErr *gemini.ProviderError
	if errors.As(err, &provErr) {
		h.logger.ErrorContext(ctx, "gemini provider rejected request",
			slog.Int("status", provErr.StatusCode))
		sendError(h.logger, w,
			fmt.Sprintf("Gemini API error (%d): %s", provErr.StatusCode, provErr.Body),
			http.StatusInternalServerError)
		return
	}

	h.logger.ErrorContext(ctx, "gemini request failed", slog.Any("error", err))
	sendError(h.logger, w, "text generation request failed", http.StatusInternalServerError)
}
