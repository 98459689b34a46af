package generator

import (
	"errors"
)

type Kind string

const (
	KindUnknown    Kind = ""
	KindValidation Kind = "validation"
	KindFont       Kind = "font"
	KindRender     Kind = "render"
	KindDelivery   Kind = "delivery"
)

var ErrNoSlides = errors.New("No slides provided")

// Error tags a pipeline failure with the stage it happened in.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of the first tagged error in err's chain.
func KindOf(err error) Kind {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}
