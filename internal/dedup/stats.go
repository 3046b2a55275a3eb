package dedup

// RunStats tracks counters across a run. The byte totals are sizes taken
// just before each delete or move.
type RunStats struct {
	Directories int // Directories listed.
	Groups      int // Stems seen, including single-file groups.
	Resolved    int // Groups with a keeper and at least one candidate.
	Unmatched   int // Multi-file groups with no keep extension; left alone.
	Candidates  int // Files offered for deletion or move.
	Deleted     int
	Moved       int
	Declined    int

	BytesDeleted int64
	BytesMoved   int64
}

// Acted returns how many candidates were deleted or moved.
func (s RunStats) Acted() int {
	return s.Deleted + s.Moved
}

// BytesFreed returns how many bytes left the input tree.
func (s RunStats) BytesFreed() int64 {
	return s.BytesDeleted + s.BytesMoved
}
