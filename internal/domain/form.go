package domain

import (
	"errors"
	"fmt"
)

// FormState is the position of a form workflow.
type FormState int

const (
	FormIdle FormState = iota
	FormCreating
	FormEditing
)

var (
	// ErrNoDraft is returned when a draft operation runs while the form is idle.
	ErrNoDraft = errors.New("no draft in progress")
	// ErrCodeChanged is returned when an edit draft tries to change its product code.
	ErrCodeChanged = errors.New("product code cannot change while editing")
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

func (s FormState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
