package table

import "github.com/meshkit/wiretab/format"

// Events receives the recoverable protocol conditions detected by a holder.
//
// Implementations are called from inside Flip on whatever goroutine invoked
// it, so they must be safe for concurrent use and should not block; the usual
// implementation logs and returns. The holder itself carries no logging or
// I/O dependency.
type Events interface {
	// TableDuplicate reports an advertisement whose version equals the
	// currently active one. The advertisement was ignored; this is a
	// warning-level condition.
	TableDuplicate(kind format.TableKind, version Version)

	// TableStale reports an advertisement whose version is lower than the
	// currently active one, indicating the advertiser violated version
	// ordering. The advertisement was ignored and the active table keeps
	// serving; this is an error-level condition.
	TableStale(kind format.TableKind, active, received Version)
}

// NopEvents discards all events. It is the default observer.
type NopEvents struct{}

var _ Events = NopEvents{}

func (NopEvents) TableDuplicate(format.TableKind, Version) {}

func (NopEvents) TableStale(format.TableKind, Version, Version) {}
