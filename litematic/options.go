package litematic

import (
	"errors"
	"log/slog"

	"github.com/evengul/mc-org/nbt/internal/options"
)

// Option configures a Decoder.
type Option = options.Option[*Decoder]

// WithLogger sets the logger that receives diagnostic detail about
// rejected files and skipped regions. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	})
}

// WithMaxDepth sets the list and compound nesting limit.
func WithMaxDepth(depth int) Option {
	return options.New(func(d *Decoder) error {
		if depth < 1 {
			return errors.New("litematic: max depth must be positive")
		}
		d.tags.MaxDepth = depth
		return nil
	})
}

// WithMaxInputSize rejects raw input longer than n bytes with
// ErrInputTooLarge before parsing. Zero means no limit.
func WithMaxInputSize(n int) Option {
	return options.New(func(d *Decoder) error {
		if n < 0 {
			return errors.New("litematic: max input size must not be negative")
		}
		d.maxInput = n
		return nil
	})
}

// WithMaxDocumentSize rejects files that decompress to more than n bytes
// with ErrDocumentTooLarge. Zero means no limit.
func WithMaxDocumentSize(n int64) Option {
	return options.New(func(d *Decoder) error {
		if n < 0 {
			return errors.New("litematic: max document size must not be negative")
		}
		d.tags.MaxSize = n
		return nil
	})
}
