package vm

import (
	"errors"
	"fmt"
)

var (
	ErrImageTooShort = errors.New("image is too short")
)

// ErrImage reports a failure to load the image at Path.
type ErrImage struct {
	Path string
	Err  error
}

func (err *ErrImage) Error() string {
	return fmt.Sprintf("image %v: %v", err.Path, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
