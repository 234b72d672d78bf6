//go:build !hexdebug

package lattice

// Checks is false in regular builds; assertions compile away.
const Checks = false
