package printer

import (
	"context"

	"go.uber.org/zap"
)

const (
	// ChunkSize is the minimum BLE payload guaranteed across common
	// stacks. The counterpart's buffer size is not observable, so
	// this bound holds even when a larger MTU was negotiated.
	ChunkSize = 20

	// trailer feeds the paper past the print head after the receipt
	// content.
	trailer = "\n\n\n\n"
)

// SendReceipt streams the receipt text to the connected printer in
// ChunkSize-byte chunks, strictly in order, each write awaited before
// the next. The first failed write aborts the stream with a
// WriteError carrying the chunk index; the caller may retry the whole
// payload, never a suffix. A nil return means the transport accepted
// every chunk, not that the paper finished printing.
func (l *Link) SendReceipt(ctx context.Context, text string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.readyLocked() {
		return ErrNotConnected
	}

	payload := []byte(text + trailer)
	chunks := splitChunks(payload, ChunkSize)

	l.log.Info("sending receipt",
		zap.String("device", l.device),
		zap.Int("bytes", len(payload)),
		zap.Int("chunks", len(chunks)),
	)

	for i, chunk := range chunks {
		if err := l.channel.Write(chunk); err != nil {
			l.log.Error("receipt write aborted",
				zap.Int("chunk", i),
				zap.Error(err),
			)
			return &WriteError{Chunk: i, Err: err}
		}
	}

	return nil
}

// splitChunks partitions data into contiguous chunks of at most size
// bytes. Concatenating the result reproduces data exactly.
func splitChunks(data []byte, size int) [][]byte {
	chunks := make([][]byte, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}
