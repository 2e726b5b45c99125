//go:build !unichar_raw

package unichar

// DefaultMode is the decoding mode compiled into this build.
// Build with -tags unichar_raw to treat strings as raw bytes.
const DefaultMode = MultiByte
