package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"nightshift-server/pkg/api"
)

// ErrInvalidPayload - данные команды не разобрались или не прошли проверку.
// Ошибки состояния офиса (ErrWrongState и т.п.) сюда не попадают.
var ErrInvalidPayload = errors.New("invalid payload")

// TypedHandlerFunc - хендлер над уже разобранным payload
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер без данных (INIT, START_NIGHT, MENU)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload оборачивает типизированный хендлер: пустой payload,
// битый JSON и провал Validate() отсекаются до вызова логики.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		payload, err := decode[T](raw)
		if err != nil {
			return Result{}, err
		}
		return handler(ctx, payload)
	}
}

func decode[T any](raw json.RawMessage) (T, error) {
	var payload T
	if len(raw) == 0 {
		return payload, fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if v, ok := any(payload).(api.Validator); ok {
		if err := v.Validate(); err != nil {
			return payload, fmt.Errorf("%w: validation failed: %v", ErrInvalidPayload, err)
		}
	}
	return payload, nil
}

// WithEmptyPayload - обертка для команд без данных, payload игнорируется
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ json.RawMessage) (Result, error) {
		return handler(ctx)
	}
}
