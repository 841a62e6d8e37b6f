package loader

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrUnsupportedSchemaVersion indicates a document version outside the supported range
	ErrUnsupportedSchemaVersion = errors.Base("unsupported schema version")
	// ErrUnknownItemKind indicates a document member with an unknown kind
	ErrUnknownItemKind = errors.Base("unknown item kind")
	// ErrCorruptDocument indicates a document a conforming writer cannot produce
	ErrCorruptDocument = errors.Base("corrupt document")
)

func corrupt(path string, format string, args ...interface{}) error {
	args = append([]interface{}{ErrCorruptDocument}, args...)
	return errors.WithDetails(errors.Errorf("%w: "+format, args...), "path", path)
}
