package reseller

import (
	"github.com/pkg/errors"
)

var (
	// ErrNetwork - запрос не удалось выполнить (соединение, таймаут, чтение тела).
	ErrNetwork = errors.New("reseller: network failure")
	// ErrMalformedResponse - ответ не является ожидаемым JSON.
	ErrMalformedResponse = errors.New("reseller: malformed response")
)

// APIError - ошибка, которую API вернуло в поле "error".
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "reseller: api error: " + e.Message
}

// Outcome классифицирует результат вызова для метрик и логов.
func Outcome(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &apiErr):
		return "api_error"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	default:
		return "unknown"
	}
}

func malformed(format string, args ...any) error {
	return errors.Wrapf(ErrMalformedResponse, format, args...)
}
