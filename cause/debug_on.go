//go:build causedebug

package cause

// locationEnabled gates call-site capture in Here/HereMsg.
const locationEnabled = true
