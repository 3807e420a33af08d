// Package errs defines the sentinel errors returned by wiretab.
//
// All errors are plain sentinels intended to be matched with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize indicates the advertisement is shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid advertisement header size")
	// ErrInvalidMagicNumber indicates the advertisement does not start with the wiretab magic number.
	ErrInvalidMagicNumber = errors.New("invalid advertisement magic number")
	// ErrInvalidFormatVersion indicates the advertisement was produced by an unsupported format revision.
	ErrInvalidFormatVersion = errors.New("unsupported advertisement format version")
	// ErrInvalidTableKind indicates the advertisement names an unknown value domain.
	ErrInvalidTableKind = errors.New("invalid compression table kind")
	// ErrInvalidCompression indicates the advertisement names an unknown payload compression type.
	ErrInvalidCompression = errors.New("invalid advertisement compression type")
	// ErrEntryCountExceeded indicates the advertisement declares more entries than MaxEntries.
	ErrEntryCountExceeded = errors.New("advertisement entry count exceeds limit")
	// ErrChecksumMismatch indicates the payload checksum does not match the header checksum.
	ErrChecksumMismatch = errors.New("advertisement payload checksum mismatch")
	// ErrTruncatedPayload indicates the payload ended before all declared entries were read,
	// or carried trailing bytes past the last entry.
	ErrTruncatedPayload = errors.New("truncated or overlong advertisement payload")
	// ErrInvalidCode indicates a table entry carries a negative or out-of-range code.
	ErrInvalidCode = errors.New("invalid compression code in table entry")
	// ErrValueTooLong indicates a table entry value exceeds MaxValueLength.
	ErrValueTooLong = errors.New("table entry value exceeds maximum length")
	// ErrDuplicateValue indicates the same value appears twice in one advertisement.
	ErrDuplicateValue = errors.New("duplicate value in advertisement")
)
