// Package hook drives the complexity detector from a hook invocation envelope.
//
// The Runner is advisory only. It never returns an error to its caller:
// malformed input degrades to "no recommendation" plus a diagnostic.
package hook

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrMalformedEnvelope is returned when the envelope is not valid JSON.
	ErrMalformedEnvelope = errors.New("malformed hook envelope")

	// ErrEnvelopeTooLarge is returned when the envelope exceeds the read limit.
	ErrEnvelopeTooLarge = errors.New("hook envelope too large")

	// ErrInvalidMessage is returned when a message path holds a non-string value.
	ErrInvalidMessage = errors.New("message field is not a string")
)

// ExtractMessage returns the first non-empty string found at paths, in order.
// A missing message everywhere is not an error: it returns "" and nil.
func ExtractMessage(data []byte, paths []string) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", ErrMalformedEnvelope
	}
	for _, path := range paths {
		res := gjson.GetBytes(data, path)
		if !res.Exists() || res.Type == gjson.Null {
			continue
		}
		if res.Type != gjson.String {
			return "", fmt.Errorf("%w: %s is %s", ErrInvalidMessage, path, res.Type)
		}
		if res.Str != "" {
			return res.Str, nil
		}
	}
	return "", nil
}
