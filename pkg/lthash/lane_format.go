package lthash

import (
	"encoding/binary"
)

// LaneFormat describes how the state of a Hasher is partitioned into
// lanes. Each lane holds an unsigned little endian integer that is
// updated independently of all other lanes, using arithmetic modulo
// 2^(8*GetLaneSizeBytes()).
type LaneFormat interface {
	GetLaneSizeBytes() int

	// AddLanes adds the lanes of y to the lanes of x, storing the
	// results in x. Overflows wrap around.
	AddLanes(x, y []byte)
	// SubtractLanes subtracts the lanes of y from the lanes of x,
	// storing the results in x. Underflows wrap around.
	SubtractLanes(x, y []byte)
}

type littleEndianLaneFormat[T uint16 | uint32 | uint64] struct {
	laneSizeBytes int
	get           func([]byte) T
	put           func([]byte, T)
}

var (
	// Lanes16 partitions the state into 16-bit lanes. This is the
	// lane format used by the reference LtHash16 construction.
	Lanes16 LaneFormat = &littleEndianLaneFormat[uint16]{
		laneSizeBytes: 2,
		get:           binary.LittleEndian.Uint16,
		put:           binary.LittleEndian.PutUint16,
	}
	// Lanes32 partitions the state into 32-bit lanes.
	Lanes32 LaneFormat = &littleEndianLaneFormat[uint32]{
		laneSizeBytes: 4,
		get:           binary.LittleEndian.Uint32,
		put:           binary.LittleEndian.PutUint32,
	}
	// Lanes64 partitions the state into 64-bit lanes.
	Lanes64 LaneFormat = &littleEndianLaneFormat[uint64]{
		laneSizeBytes: 8,
		get:           binary.LittleEndian.Uint64,
		put:           binary.LittleEndian.PutUint64,
	}
)

func (lf *littleEndianLaneFormat[T]) GetLaneSizeBytes() int {
	return lf.laneSizeBytes
}

func (lf *littleEndianLaneFormat[T]) AddLanes(x, y []byte) {
	if len(x) != len(y) {
		panic("lane buffers have different sizes")
	}
	for off := 0; off < len(x); off += lf.laneSizeBytes {
		lf.put(x[off:], lf.get(x[off:])+lf.get(y[off:]))
	}
}

func (lf *littleEndianLaneFormat[T]) SubtractLanes(x, y []byte) {
	if len(x) != len(y) {
		panic("lane buffers have different sizes")
	}
	for off := 0; off < len(x); off += lf.laneSizeBytes {
		lf.put(x[off:], lf.get(x[off:])-lf.get(y[off:]))
	}
}
