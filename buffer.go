package wind

// ChunkBuffer is an ordered, double-ended container of byte chunks with a
// running total of buffered bytes. Response bodies accumulate here chunk by
// chunk; before the transport hand-off the chunks are gathered into a single
// contiguous payload so header block and body go out in one write.
type ChunkBuffer struct {
	chunks [][]byte
	size   int
}

// NewChunkBuffer inits an empty buffer.
func NewChunkBuffer() *ChunkBuffer {
	return &ChunkBuffer{}
}

// Append adds a chunk at the back.
func (b *ChunkBuffer) Append(p []byte) {
	b.chunks = append(b.chunks, p)
	b.size += len(p)
}

// AppendLeft adds a chunk at the front.
func (b *ChunkBuffer) AppendLeft(p []byte) {
	b.chunks = append([][]byte{p}, b.chunks...)
	b.size += len(p)
}

// Len returns the total number of buffered bytes across all chunks.
func (b *ChunkBuffer) Len() int { return b.size }

// Empty reports whether no bytes are buffered.
func (b *ChunkBuffer) Empty() bool { return b.size == 0 }

// Gather coalesces the first n buffered bytes into a single chunk at the
// front. When n falls inside a chunk that chunk is split; when n is at or
// past the total size every chunk is merged into one. The total byte count
// is unchanged.
func (b *ChunkBuffer) Gather(n int) {
	if n <= 0 || len(b.chunks) <= 1 {
		return
	}

	gathered := make([]byte, 0, min(n, b.size))
	i := 0
	for i < len(b.chunks) && len(gathered) < n {
		chunk := b.chunks[i]
		if need := n - len(gathered); len(chunk) > need {
			gathered = append(gathered, chunk[:need]...)
			b.chunks[i] = chunk[need:]
			break
		}

		gathered = append(gathered, chunk...)
		i++
	}

	b.chunks = append([][]byte{gathered}, b.chunks[i:]...)
}

// PopLeft removes and returns the front chunk. Popping an empty buffer is a
// programming error: the finish paths always gather before popping.
func (b *ChunkBuffer) PopLeft() []byte {
	if len(b.chunks) == 0 {
		panic("wind: pop from empty chunk buffer")
	}

	chunk := b.chunks[0]
	b.chunks = b.chunks[1:]
	b.size -= len(chunk)

	return chunk
}

// Reset drops all chunks and zeroes the byte count.
func (b *ChunkBuffer) Reset() {
	b.chunks = nil
	b.size = 0
}

// each visits the chunks front to back in their current order.
func (b *ChunkBuffer) each(fn func(p []byte)) {
	for _, chunk := range b.chunks {
		fn(chunk)
	}
}
