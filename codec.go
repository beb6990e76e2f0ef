package sortedmap

import "encoding/binary"

// appendLength appends n as a uvarint.
func appendLength(buf []byte, n int) []byte {
	var tmpbuf [binary.MaxVarintLen64]byte
	used := binary.PutUvarint(tmpbuf[:], uint64(n))
	return append(buf, tmpbuf[:used]...)
}

// appendBytes appends body with a uvarint length prefix, framing it
// unambiguously regardless of its content.
func appendBytes(buf, body []byte) []byte {
	buf = appendLength(buf, len(body))
	return append(buf, body...)
}
