package dispatch

import (
	"errors"
	"fmt"
	"io"

	"github.com/shdw-drive/shdw-cli/internal/drive"
)

// APIError wraps a storage client failure that carried no server message.
// Its text is the printed form of the underlying error.
type APIError struct {
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	return e.Detail
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Normalize prints and converts a storage client failure. A server reported
// message becomes a plain error with exactly that text; anything else
// becomes an *APIError. Successful results pass through untouched.
func Normalize[T any](w io.Writer, v T, err error) (T, error) {
	if err == nil {
		return v, nil
	}

	var zero T
	var serverErr *drive.ServerError
	if errors.As(err, &serverErr) {
		fmt.Fprintln(w, serverErr.Message)
		return zero, errors.New(serverErr.Message)
	}

	detail := fmt.Sprintf("%+v", err)
	fmt.Fprintln(w, detail)
	return zero, &APIError{Detail: detail, Err: err}
}
