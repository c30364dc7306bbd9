package api

import (
	"errors"
	"strings"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p ControlPayload) Validate() error {
	if strings.TrimSpace(p.Control) == "" {
		return errors.New("control is required")
	}
	return nil
}

func (p CameraPayload) Validate() error {
	if strings.TrimSpace(p.Location) == "" {
		return errors.New("location is required")
	}
	return nil
}

func (p CyclePayload) Validate() error {
	if p.Step == 0 {
		return errors.New("cycle step cannot be zero")
	}
	if p.Step < -1 || p.Step > 1 {
		return errors.New("cycle step too large")
	}
	return nil
}
