package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// BadRequest returns an error whose message is msg, marked with ErrBadRequest.
func BadRequest(msg string) error {
	return cr.Mark(cr.NewWithDepth(1, msg), ErrBadRequest)
}

// NotFound returns an error whose message is msg, marked with ErrNotFound.
func NotFound(msg string) error {
	return cr.Mark(cr.NewWithDepth(1, msg), ErrNotFound)
}

// Is reports whether err carries target, either in its chain or as a mark.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

func IsBadRequest(err error) bool {
	return cr.Is(err, ErrBadRequest)
}

func IsNotFound(err error) bool {
	return cr.Is(err, ErrNotFound)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
