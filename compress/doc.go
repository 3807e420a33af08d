// Package compress provides the payload codecs used by compression table
// advertisements.
//
// Advertisements are infrequent control messages, so codec choice trades a
// little CPU for wire size on the negotiation path only; the per-message send
// path never touches this package. Four codecs are available:
//
//   - None: bypass, the default (tables are usually small)
//   - Zstd: best ratio, for very large identity tables
//   - S2: fast with a good ratio
//   - LZ4: fastest real codec
//
// The Zstd codec uses the cgo-backed valyala/gozstd implementation when cgo is
// available and falls back to the pure-Go klauspost/compress implementation
// otherwise; the two produce interoperable frames.
//
// All codecs are stateless values and safe for concurrent use; internal
// encoder state is pooled.
package compress
