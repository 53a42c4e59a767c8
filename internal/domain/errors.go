package domain

import "errors"

// ErrorKind классифицирует ошибки бизнес-слоя.
// HTTP-граница преобразует kind в статус-код по фиксированной таблице.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
)

// Error — ошибка бизнес-слоя с классификацией.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError создает доменную ошибку с заданной классификацией.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf возвращает классификацию ошибки.
// Для ошибок вне доменной таксономии возвращает KindUnknown.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
