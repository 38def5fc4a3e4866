package httpx

// Option configures a LoggingRoundTripper.
type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen truncates request and response dumps to n bytes. Zero
// disables truncation.
func WithLogFieldMaxLen(n int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = n
	}
}

// WithSensitiveDataMasker masks dumps before they are logged, e.g. with
// logx.NewSensitiveDataMasker to hide bearer tokens.
func WithSensitiveDataMasker(masker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = masker
	}
}
