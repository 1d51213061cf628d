package churn

import (
	"errors"
	"fmt"
)

// Kind classifies a failed file operation.
type Kind int

const (
	CreationFailure Kind = iota
	WriteFailure
	DeletionFailure
	VerifyFailure
)

var (
	ErrCreate = errors.New("create failed")
	ErrWrite  = errors.New("write failed")
	ErrDelete = errors.New("delete failed")
	ErrVerify = errors.New("verify failed")
)

func (k Kind) String() string {
	switch k {
	case CreationFailure:
		return "create"
	case WriteFailure:
		return "write"
	case DeletionFailure:
		return "delete"
	case VerifyFailure:
		return "verify"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case CreationFailure:
		return ErrCreate
	case WriteFailure:
		return ErrWrite
	case DeletionFailure:
		return ErrDelete
	case VerifyFailure:
		return ErrVerify
	default:
		return nil
	}
}

// FileError reports a failed operation on a single churn file.
// errors.Is matches both the Kind sentinel and the wrapped cause.
type FileError struct {
	Kind  Kind
	Index int
	Name  string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newFileError(kind Kind, rec FileRecord, err error) *FileError {
	return &FileError{Kind: kind, Index: rec.Index, Name: rec.Name, Err: err}
}
