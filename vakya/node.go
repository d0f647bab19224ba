package vakya

import "github.com/hareeshbabu82ns/sanskrit-parser/tagset"

// NodeID indexes into a Graph's node arena. Zero value is a valid ID (the
// first node ever added), so callers must not treat 0 as "absent" — use the
// bool returned by lookups instead.
type NodeID int32

// Node is one (surface form, candidate tag) pairing placed at a fixed
// sentence position. A sentence position with N candidate analyses becomes
// N distinct, mutually exclusive Nodes sharing the same Index (spec §4.E).
type Node struct {
	Form  tagset.SurfaceForm
	Tag   tagset.TagSet
	Index int
}

// isA reports whether n's tag carries any feature in fs (original source's
// node_is_a over a morphological-tag set).
func (n Node) isA(fs tagset.FeatureSet) bool {
	return n.Tag.IsAny(fs)
}

// base returns n's lemma (original source's _get_base).
func (n Node) base() string {
	return n.Tag.Base
}

// IsA reports whether n's tag carries any feature in fs, exported for the
// parse package's ranker and validator.
func (n Node) IsA(fs tagset.FeatureSet) bool { return n.isA(fs) }

// Base returns n's lemma.
func (n Node) Base() string { return n.base() }
