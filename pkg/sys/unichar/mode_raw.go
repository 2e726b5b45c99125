//go:build unichar_raw

package unichar

// DefaultMode is the decoding mode compiled into this build.
const DefaultMode = Raw
