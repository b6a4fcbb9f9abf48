package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (только по HTTPS)
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	Message string `json:"message"` // сообщение об успешной регистрации
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	Token string `json:"token"` // JWT access token (HS256)
}

// UserInfo представляет публичные данные пользователя
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// MeResponse представляет ответ GET /auth/me
type MeResponse struct {
	User UserInfo `json:"user"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"` // описание ошибки
}
