package swift

// decodeConfig carries the knobs threaded through a decode. The zero
// value is strict mode.
type decodeConfig struct {
	lenient bool
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeConfig)

func newDecodeConfig(opts ...DecodeOption) decodeConfig {
	var cfg decodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLenient switches the decode to best-effort mode: short or
// irregular input yields a partial message with absent fields instead
// of an error. Unknown blocks are skipped, an unterminated block
// consumes the rest of the input, and a malformed text-block tag line
// folds into the preceding tag's value.
func WithLenient() DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.lenient = true
	}
}
