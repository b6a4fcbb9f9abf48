// Package crypto реализует версионированные password digests.
//
// Формат digest: "<scheme>$<salt>$<hash>". Схема кодируется в самой строке,
// поэтому более сильные схемы вводятся без миграции уже сохраненных записей.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id (схема по умолчанию)
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного хеша в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах (128 бит)
	SaltSize = 16
)

// Идентификаторы схем в digest
const (
	SchemeArgon2id = "argon2id"
	SchemeSHA256   = "sha256" // legacy, только верификация
)

// GenerateSalt генерирует криптографически случайную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword хеширует пароль со свежей случайной солью и возвращает
// digest в формате "argon2id$<base64 salt>$<base64 hash>"
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)

	digest := strings.Join([]string{
		SchemeArgon2id,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	}, "$")

	return digest, nil
}

// VerifyPassword проверяет пароль против сохраненного digest.
// Возвращает false (не ошибку) на любом некорректном digest.
// Поддерживает legacy схему "sha256$<hex salt>$<hex hash>" для записей,
// созданных до перехода на argon2id.
func VerifyPassword(password, digest string) bool {
	parts := strings.Split(digest, "$")
	if len(parts) != 3 {
		return false
	}

	scheme, salt, hash := parts[0], parts[1], parts[2]

	switch scheme {
	case SchemeArgon2id:
		saltBytes, err := base64.RawStdEncoding.DecodeString(salt)
		if err != nil {
			return false
		}
		hashBytes, err := base64.RawStdEncoding.DecodeString(hash)
		if err != nil || len(hashBytes) == 0 || len(saltBytes) == 0 {
			return false
		}
		computed := argon2.IDKey([]byte(password), saltBytes, Argon2Time, Argon2Memory, Argon2Threads, uint32(len(hashBytes)))
		return subtle.ConstantTimeCompare(computed, hashBytes) == 1

	case SchemeSHA256:
		// Legacy: хеш от конкатенации hex-соли и пароля
		computed := sha256.Sum256([]byte(salt + password))
		computedHex := hex.EncodeToString(computed[:])
		return subtle.ConstantTimeCompare([]byte(computedHex), []byte(hash)) == 1

	default:
		return false
	}
}
