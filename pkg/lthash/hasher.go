package lthash

import (
	"crypto/sha3"
	"slices"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ReferenceStateSizeBytes is the size of the state of the reference
// LtHash16 construction, holding 1024 16-bit lanes.
const ReferenceStateSizeBytes = 2048

// Configuration of a Hasher. These parameters determine the format of
// the state, meaning that states can only be exchanged between Hashers
// that use the same configuration.
type Configuration struct {
	Expander       Expander
	LaneFormat     LaneFormat
	StateSizeBytes int
}

// Hasher of multisets, yielding a hash that is independent of the
// order in which elements are added and removed. This is achieved by
// implementing the LtHash algorithm, as described in the following two
// papers:
//
//   - A New Paradigm for Collision-free Hashing: Incrementality at
//     Reduced Cost, by Bellare and Micciancio.
//     https://cseweb.ucsd.edu/~daniele/papers/IncHash.pdf
//   - Secure Update Propagation with Homomorphic Hashing, by Lewi, Kim,
//     Maykov, and Weis.
//     https://eprint.iacr.org/2019/227.pdf
//
// Every element is expanded to pseudorandom data that is as large as
// the state, which is then added to the state lane by lane. Removing
// the element subtracts the same data.
//
// Hasher is not safe for concurrent use. Wrap it using
// NewSynchronizedHash() if that is required.
type Hasher struct {
	expander   Expander
	laneFormat LaneFormat
	scratch    []byte
	currentSum []byte
}

var _ Hash = (*Hasher)(nil)

// NewHasher creates a new Hasher that is in the initial state,
// representing the empty set.
func NewHasher(configuration Configuration) (*Hasher, error) {
	if configuration.Expander == nil {
		return nil, status.Error(codes.InvalidArgument, "No expander provided")
	}
	if configuration.LaneFormat == nil {
		return nil, status.Error(codes.InvalidArgument, "No lane format provided")
	}
	stateSizeBytes := configuration.StateSizeBytes
	if stateSizeBytes <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "State size must be positive, while %d bytes was provided", stateSizeBytes)
	}
	if laneSizeBytes := configuration.LaneFormat.GetLaneSizeBytes(); stateSizeBytes%laneSizeBytes != 0 {
		return nil, status.Errorf(codes.InvalidArgument, "State size of %d bytes is not a multiple of the lane size of %d bytes", stateSizeBytes, laneSizeBytes)
	}
	if blockSizeBytes := configuration.Expander.GetBlockSizeBytes(); stateSizeBytes%blockSizeBytes != 0 {
		return nil, status.Errorf(codes.InvalidArgument, "State size of %d bytes is not a multiple of the expander's block size of %d bytes", stateSizeBytes, blockSizeBytes)
	}
	return &Hasher{
		expander:   configuration.Expander,
		laneFormat: configuration.LaneFormat,
		scratch:    make([]byte, stateSizeBytes),
		currentSum: make([]byte, stateSizeBytes),
	}, nil
}

// ReferenceConfiguration is the configuration of the reference
// LtHash16 construction: 1024 16-bit lanes, filled using BLAKE2b
// digests of 64 bytes that are keyed with DefaultBLAKE2bKey.
var ReferenceConfiguration = Configuration{
	Expander:       DefaultBLAKE2bExpander,
	LaneFormat:     Lanes16,
	StateSizeBytes: ReferenceStateSizeBytes,
}

// NewHasher16 creates a new Hasher that uses ReferenceConfiguration.
func NewHasher16() *Hasher {
	h, err := NewHasher(ReferenceConfiguration)
	if err != nil {
		panic(err)
	}
	return h
}

// GetStateSizeBytes returns the size of the state of the Hasher, which
// is equal to the size of the data returned by Sum(nil).
func (h *Hasher) GetStateSizeBytes() int {
	return len(h.currentSum)
}

// Add an element to the set for which a hash is computed.
//
// Though it is possible to add the same element to the set multiple
// times, for 16-bit lanes this can only be done up to 2^16 times, as
// it leads to trivial hash collisions otherwise.
func (h *Hasher) Add(element []byte) {
	h.expander.Expand(element, h.scratch)
	h.laneFormat.AddLanes(h.currentSum, h.scratch)
}

// Remove an element from the set for which a hash is computed. The
// Hasher does not track which elements are present. Removing an
// element that was never added yields a state that does not
// correspond to any set.
func (h *Hasher) Remove(element []byte) {
	h.expander.Expand(element, h.scratch)
	h.laneFormat.SubtractLanes(h.currentSum, h.scratch)
}

// Sum appends the state of the Hasher to a prefix. The prefix is not
// hashed, nor is it modified. A new slice is always returned.
func (h *Hasher) Sum(prefix []byte) []byte {
	return slices.Concat(prefix, h.currentSum)
}

// SetState replaces the state of the Hasher with one previously
// obtained through Sum(nil). Shorter states are padded with zeroes,
// while excess bytes of longer states are discarded.
func (h *Hasher) SetState(state []byte) {
	clear(h.currentSum)
	copy(h.currentSum, state)
}

// SetStateExact is identical to SetState, except that it rejects
// states whose size differs from the size of the state of the Hasher.
// Upon failure, the state of the Hasher is left untouched.
func (h *Hasher) SetStateExact(state []byte) error {
	if len(state) != len(h.currentSum) {
		return status.Errorf(codes.InvalidArgument, "State is %d bytes in size, while %d bytes were expected", len(state), len(h.currentSum))
	}
	copy(h.currentSum, state)
	return nil
}

func (h *Hasher) checkCompatible(other *Hasher) error {
	if len(other.currentSum) != len(h.currentSum) {
		return status.Errorf(codes.InvalidArgument, "Other hasher has a state of %d bytes, while this hasher has a state of %d bytes", len(other.currentSum), len(h.currentSum))
	}
	if other.laneFormat != h.laneFormat {
		return status.Error(codes.InvalidArgument, "Hashers use different lane formats")
	}
	return nil
}

// Combine the set of another Hasher into this one. This is equivalent
// to adding all elements that were added to the other Hasher. Both
// Hashers must use the same configuration.
func (h *Hasher) Combine(other *Hasher) error {
	if err := h.checkCompatible(other); err != nil {
		return err
	}
	h.laneFormat.AddLanes(h.currentSum, other.currentSum)
	return nil
}

// Subtract the set of another Hasher from this one. This is the
// inverse of Combine().
func (h *Hasher) Subtract(other *Hasher) error {
	if err := h.checkCompatible(other); err != nil {
		return err
	}
	h.laneFormat.SubtractLanes(h.currentSum, other.currentSum)
	return nil
}

// Clone the Hasher, so that the copy can be modified independently.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{
		expander:   h.expander,
		laneFormat: h.laneFormat,
		scratch:    make([]byte, len(h.scratch)),
		currentSum: slices.Clone(h.currentSum),
	}
}

// Reset the Hasher to the initial state, representing the empty set.
func (h *Hasher) Reset() {
	clear(h.currentSum)
}

// IsEmpty returns true if all lanes of the state are zero. This is the
// case for the empty set, and for sets whose elements cancel out.
func (h *Hasher) IsEmpty() bool {
	for _, b := range h.currentSum {
		if b != 0 {
			return false
		}
	}
	return true
}

// Checksum returns a 256-bit hash of the state. It may be used in
// places where the full state is too large to be embedded, such as
// keys of cache entries. Unlike the state, it cannot be updated
// incrementally.
func (h *Hasher) Checksum() [32]byte {
	return sha3.Sum256(h.currentSum)
}
