package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of the given bytes.
//
// Used as the advertisement payload checksum: fast enough to be negligible on
// the negotiation path and strong enough to catch transport corruption.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
