package gemini

import "fmt"

// TransportError означает сетевой сбой или таймаут исходящего запроса
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gemini transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProviderError означает non-2xx ответ провайдера
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("gemini provider rejected request (%d): %s", e.StatusCode, e.Body)
}

// InternalError означает сбой сериализации или разбора ответа
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("gemini internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
