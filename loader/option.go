package loader

import "github.com/viant/afs"

type Option func(*Loader)

// WithConfig sets loader config
func WithConfig(config *Config) Option {
	return func(l *Loader) {
		if config != nil {
			copied := *config
			l.config = &copied
		}
	}
}

// WithStrict toggles duplicate canonical reference rejection
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.config.Strict = strict
	}
}

// WithFS sets storage service used by LoadURL
func WithFS(fs afs.Service) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}
