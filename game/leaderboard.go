package game

// ScoreEntry is one line of the leader board
type ScoreEntry struct {
	Score uint32
	Wave  uint8
}

// LeaderBoard keeps the best scores of the running process, highest first
type LeaderBoard struct {
	entries []ScoreEntry
	size    int
}

// NewLeaderBoard creates an empty board holding at most size entries
func NewLeaderBoard(size int) *LeaderBoard {
	if size < 0 {
		size = 0
	}
	return &LeaderBoard{size: size, entries: make([]ScoreEntry, 0, size)}
}

// Record inserts a finished round and returns its rank, or -1 if it did not make the board.
// Equal scores keep arrival order.
func (b *LeaderBoard) Record(score uint32, wave uint8) int {
	if b.size == 0 {
		return -1
	}

	rank := len(b.entries)
	for i, e := range b.entries {
		if score > e.Score {
			rank = i
			break
		}
	}
	if rank >= b.size {
		return -1
	}

	b.entries = append(b.entries, ScoreEntry{})
	copy(b.entries[rank+1:], b.entries[rank:])
	b.entries[rank] = ScoreEntry{Score: score, Wave: wave}
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}
	return rank
}

// Entries returns a copy of the board
func (b *LeaderBoard) Entries() []ScoreEntry {
	out := make([]ScoreEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Best returns the top score, zero when the board is empty
func (b *LeaderBoard) Best() uint32 {
	if len(b.entries) == 0 {
		return 0
	}
	return b.entries[0].Score
}
