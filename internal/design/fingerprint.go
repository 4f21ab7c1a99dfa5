package design

import xxhash "github.com/cespare/xxhash/v2"

// Fingerprint returns the xxhash of Encode(d), the version 5 blob.
// Everything the blob carries is hashed, raw equipment of non-human designs
// included, so the source version of a design does not change it. State the
// blob cannot hold (partial customize flags, a stain flag without its item
// flag) is not hashed.
func Fingerprint(d *Design) uint64 {
	return xxhash.Sum64(Encode(d))
}
