// Package errs определяет общие ошибки доменного уровня.
//
// Хендлеры транслируют их в HTTP-статусы через errors.Is, не раскрывая
// клиенту текст внутренних ошибок хранилища.
package errs

import "errors"

var (
	// ErrNotFound — запись не найдена в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — нарушение уникальности (username или email уже заняты).
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — токен не прошел проверку подписи или поврежден.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истек.
	ErrTokenExpired = errors.New("token expired")
	// ErrForbidden — прав недостаточно для операции.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation — входные данные не прошли доменную валидацию.
	ErrValidation = errors.New("validation failed")
)
