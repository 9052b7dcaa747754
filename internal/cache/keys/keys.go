// Package keys builds the cache keys for point-check lookups.
package keys

import "fmt"

// Point returns the shared-cache key for a point-check result. The catalogue
// fingerprint is part of the key so entries written against older zone data
// can never be served after a catalogue change; they simply stop being
// addressed.
func Point(fingerprint uint64, res int, cell string) string {
	return fmt.Sprintf("zonecheck:v=%016x:r%d:%s", fingerprint, res, cell)
}
