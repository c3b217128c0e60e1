package parsers

import "errors"

var (
	// ErrUnclassified means no known document marker occurred in the text.
	ErrUnclassified = errors.New("document type not recognized")
	// ErrFieldMissing means a pattern for a mandatory field did not match.
	// It is scoped to the offending document; the rest of a batch proceeds.
	ErrFieldMissing = errors.New("required field not found")
)
