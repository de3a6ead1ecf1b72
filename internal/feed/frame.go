package feed

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// maxFrameSize caps a single decoded relay frame. Relay documents are a
// few kilobytes; anything near this limit is a broken or hostile stream.
const maxFrameSize = 4 << 20

// errFrameTooLarge indicates a length prefix beyond maxFrameSize.
var errFrameTooLarge = errors.New("frame exceeds size limit")

// readFrame reads one length-prefixed zlib frame and returns the inflated
// payload. The prefix is a 4-byte big-endian length of the compressed body.
func readFrame(r io.Reader) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, fmt.Errorf("read frame length: %w", err)
	}

	length := binary.BigEndian.Uint32(prefix[:])
	if length > maxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", errFrameTooLarge, length)
	}

	compressed := make([]byte, length)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}

	inflater, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("open zlib frame: %w", err)
	}
	defer inflater.Close()

	payload, err := io.ReadAll(io.LimitReader(inflater, maxFrameSize+1))
	if err != nil {
		return nil, fmt.Errorf("inflate frame: %w", err)
	}

	if len(payload) > maxFrameSize {
		return nil, errFrameTooLarge
	}

	return payload, nil
}

// writeFrame compresses the payload and writes it with a length prefix.
// The server side of the protocol, used by tests and local relays.
func writeFrame(w io.Writer, payload []byte) error {
	var body bytes.Buffer

	deflater := zlib.NewWriter(&body)
	if _, err := deflater.Write(payload); err != nil {
		return fmt.Errorf("compress frame: %w", err)
	}

	if err := deflater.Close(); err != nil {
		return fmt.Errorf("finish frame: %w", err)
	}

	var prefix [4]byte

	binary.BigEndian.PutUint32(prefix[:], uint32(body.Len()))

	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}

	if _, err := w.Write(body.Bytes()); err != nil {
		return fmt.Errorf("write frame body: %w", err)
	}

	return nil
}
