package lthash

import (
	"crypto/sha3"
	"encoding/binary"
	"hash"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Expander maps elements of arbitrary length to pseudorandom data
// that is as large as the state of a Hasher. The resulting data is
// added to or subtracted from the state of the Hasher.
//
// Implementations of Expander are safe for concurrent use, allowing a
// single instance to be shared by many Hashers.
type Expander interface {
	// GetBlockSizeBytes returns the granularity at which the
	// Expander produces output. The size of the output buffer
	// provided to Expand() must be a multiple of this value.
	GetBlockSizeBytes() int

	// Expand the element, filling all of out. The output only
	// depends on the element and the parameters of the Expander.
	Expand(element, out []byte)
}

// DefaultBLAKE2bKey is the key that is used by the reference LtHash16
// construction. It is public, and only serves to domain separate the
// keyed hash function.
var DefaultBLAKE2bKey [blake2b.Size]byte

type blake2bExpander struct {
	blockSizeBytes int
	hashers        sync.Pool
}

// NewBLAKE2bExpander creates an Expander that tiles the output with
// keyed BLAKE2b digests of size blockSizeBytes. The digest placed at
// offset i is computed over the element, followed by i encoded as a
// 32-bit little endian integer.
func NewBLAKE2bExpander(key []byte, blockSizeBytes int) (Expander, error) {
	if len(key) > blake2b.Size {
		return nil, status.Errorf(codes.InvalidArgument, "Key is %d bytes in size, while BLAKE2b supports keys of at most %d bytes", len(key), blake2b.Size)
	}
	if blockSizeBytes < 1 || blockSizeBytes > blake2b.Size {
		return nil, status.Errorf(codes.InvalidArgument, "Block size must be between 1 and %d bytes, while %d bytes was provided", blake2b.Size, blockSizeBytes)
	}
	ownedKey := append([]byte(nil), key...)
	e := &blake2bExpander{
		blockSizeBytes: blockSizeBytes,
	}
	e.hashers.New = func() any {
		h, err := blake2b.New(blockSizeBytes, ownedKey)
		if err != nil {
			panic(err)
		}
		return h
	}
	return e, nil
}

// DefaultBLAKE2bExpander is the Expander used by the reference LtHash16
// construction, yielding 64-byte blocks keyed with DefaultBLAKE2bKey.
var DefaultBLAKE2bExpander = mustNewBLAKE2bExpander(DefaultBLAKE2bKey[:], blake2b.Size)

func mustNewBLAKE2bExpander(key []byte, blockSizeBytes int) Expander {
	e, err := NewBLAKE2bExpander(key, blockSizeBytes)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *blake2bExpander) GetBlockSizeBytes() int {
	return e.blockSizeBytes
}

func (e *blake2bExpander) Expand(element, out []byte) {
	if len(out)%e.blockSizeBytes != 0 {
		panic("output size is not a multiple of the block size")
	}
	h := e.hashers.Get().(hash.Hash)
	defer e.hashers.Put(h)

	var offset [4]byte
	var digest [blake2b.Size]byte
	for off := 0; off < len(out); off += e.blockSizeBytes {
		h.Reset()
		h.Write(element)
		binary.LittleEndian.PutUint32(offset[:], uint32(off))
		h.Write(offset[:])
		copy(out[off:off+e.blockSizeBytes], h.Sum(digest[:0]))
	}
}

type shake128Expander struct {
	shakes sync.Pool
}

// NewSHAKE128Expander creates an Expander that uses the output of the
// SHAKE128 extendable-output function (XOF), as opposed to tiling the
// output with digests of a fixed size hash function.
func NewSHAKE128Expander() Expander {
	return &shake128Expander{
		shakes: sync.Pool{
			New: func() any {
				return sha3.NewSHAKE128()
			},
		},
	}
}

func (e *shake128Expander) GetBlockSizeBytes() int {
	return 1
}

func (e *shake128Expander) Expand(element, out []byte) {
	shake := e.shakes.Get().(*sha3.SHAKE)
	defer e.shakes.Put(shake)

	shake.Reset()
	if _, err := shake.Write(element); err != nil {
		panic(err)
	}
	if _, err := io.ReadFull(shake, out); err != nil {
		panic(err)
	}
}
