package qrsegment

import (
	"fmt"

	"github.com/go-qr/qrcore/qrerror"
)

/*---- Bit buffer functionality ----*/

// BitBuffer is an ordered sequence of bits with an independent write head
// and read cursor, backed by a byte vector padded with zero bits at the
// tail. It is the single data structure used to both assemble a QR Code's
// bit stream during encoding and walk it back apart during decoding.
type BitBuffer struct {
	buf    []byte
	length uint // total bits written
	read   uint // read cursor, in bits from the start
}

// NewBitBuffer returns an empty bit buffer ready for writing.
func NewBitBuffer() *BitBuffer {
	return &BitBuffer{}
}

// NewBitBufferFromBytes returns a bit buffer preloaded with the given
// codeword bytes and a read cursor at the start, for decoding.
func NewBitBufferFromBytes(data []byte) *BitBuffer {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &BitBuffer{buf: buf, length: uint(len(data)) * 8}
}

// Put appends the low `width` bits of value (MSB first) to the buffer.
//
// Requires width <= 32 and value < 2^width.
func (b *BitBuffer) Put(value uint32, width uint8) *BitBuffer {
	if width > 32 {
		panic("qrsegment: bit width out of range")
	}
	if width < 32 && value>>width != 0 {
		panic("qrsegment: value does not fit in width bits")
	}
	for i := int(width) - 1; i >= 0; i-- {
		b.appendBit((value>>uint(i))&1 != 0)
	}
	return b
}

func (b *BitBuffer) appendBit(bit bool) {
	byteIndex := b.length / 8
	if byteIndex >= uint(len(b.buf)) {
		b.buf = append(b.buf, 0)
	}
	if bit {
		b.buf[byteIndex] |= 1 << (7 - (b.length % 8))
	}
	b.length++
}

// Read pulls `width` bits from the read cursor, MSB first, and advances the
// cursor. Fails with qrerror.ErrNotEnoughBits if fewer than width bits
// remain unread.
func (b *BitBuffer) Read(width uint8) (uint32, error) {
	if uint(width) > b.Available() {
		return 0, fmt.Errorf("%w: need %d bits, have %d", qrerror.ErrNotEnoughBits, width, b.Available())
	}
	var result uint32
	for i := uint8(0); i < width; i++ {
		byteIndex := b.read / 8
		bitIndex := 7 - (b.read % 8)
		bit := (b.buf[byteIndex] >> bitIndex) & 1
		result = (result << 1) | uint32(bit)
		b.read++
	}
	return result, nil
}

// Available returns the number of unread bits remaining.
func (b *BitBuffer) Available() uint {
	return b.length - b.read
}

// Clear resets the buffer to empty, discarding its contents and cursors.
func (b *BitBuffer) Clear() {
	b.buf = nil
	b.length = 0
	b.read = 0
}

// GetLength returns the total number of bits written.
func (b *BitBuffer) GetLength() uint {
	return b.length
}

// GetBuffer returns the underlying byte vector, zero-padded at the tail to
// a whole number of bytes.
func (b *BitBuffer) GetBuffer() []byte {
	return b.buf
}
