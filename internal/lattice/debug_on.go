//go:build hexdebug

package lattice

// Checks enables kind and ownership assertions. Build with -tags hexdebug.
const Checks = true
