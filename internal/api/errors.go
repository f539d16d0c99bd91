package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Ошибки транспортного уровня.
var (
	// ErrNotFound — сервер не знает такой транзакции (HTTP 404).
	ErrNotFound = errors.New("transaction not found")

	// ErrTransport — сетевой сбой, отказ авторизации или неожиданный
	// статус ответа.
	ErrTransport = errors.New("transport error")
)

// Error — ошибка API с кодом и сообщением сервера, когда они доступны.
type Error struct {
	StatusCode int    // HTTP-статус ответа
	Code       string // машинный код ошибки из тела ответа
	Message    string // описание из тела ответа
	Body       []byte // сырое тело ответа, для verbose-режима
}

// Error реализует интерфейс error.
func (e *Error) Error() string {
	if e.Message != "" {
		if e.Code != "" {
			return fmt.Sprintf("%s: %s (HTTP %d)", e.Code, e.Message, e.StatusCode)
		}
		return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("API error: HTTP %d", e.StatusCode)
}

// Unwrap возвращает сентинел по HTTP-статусу, чтобы вызывающий код
// мог различать ошибки через errors.Is.
func (e *Error) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrTransport
}
