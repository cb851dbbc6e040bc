package generator

import "errors"

// Generation failure kinds. Per-attempt failures (placement, connection,
// carving) are recovered by retrying the whole level; only
// ErrGenerationExhausted ever reaches callers of Generate.
var (
	// ErrPlacementExhausted means too many room placements failed in a row.
	ErrPlacementExhausted = errors.New("too many failed room placements in a row")

	// ErrDisconnectedLevel means the connector ran out of candidate pairs
	// with more than one component left. This is an invariant violation,
	// not a normal outcome.
	ErrDisconnectedLevel = errors.New("rooms could not be unified into one component")

	// ErrCarvingBlocked means a corridor could not be routed without
	// crossing a third room within the retry budget (strict carving only).
	ErrCarvingBlocked = errors.New("corridor blocked by an existing room")

	// ErrGenerationExhausted means the whole-level retry budget was spent.
	ErrGenerationExhausted = errors.New("level generation retry budget exhausted")
)

// errRoomDiscarded signals a single failed placement attempt. The placing
// loop counts these; it is never surfaced.
var errRoomDiscarded = errors.New("candidate room discarded")
