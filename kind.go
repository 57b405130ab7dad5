package schemacache

// Kind identifies which enablement flag governs a cache instance. The kind
// is consulted once, when the Registry constructs the strategy; strategies
// themselves do not know their kind.
type Kind string

const (
	KindSchema       Kind = "schema"
	KindParamBinding Kind = "parambinding"
	KindModel        Kind = "model"
	KindMetadata     Kind = "metadata"
	KindGeneral      Kind = "general"
)

func (k Kind) String() string { return string(k) }
