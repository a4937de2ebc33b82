package lthash

// Hash of a multiset of byte strings that can be updated
// incrementally. The resulting hash does not depend on the order in
// which elements are added and removed.
type Hash interface {
	Add(element []byte)
	Remove(element []byte)
	Sum(prefix []byte) []byte
	SetState(state []byte)
}
