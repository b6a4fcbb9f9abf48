package validation

import (
	"fmt"
	"strings"
)

// MaxEmailLen максимальная длина email
const MaxEmailLen = 254

// NormalizeEmail приводит email к каноническому виду: trim + lowercase.
// Уникальность учетных записей определяется по нормализованному значению.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет, что нормализованный email пригоден для регистрации.
// Формат намеренно не проверяется: принимается любая непустая строка
// разумной длины, подтверждение адреса вне зоны ответственности сервера.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю.
// Пустой пароль отклоняется; политику длины задает клиент.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}
