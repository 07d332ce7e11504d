package geoindex

import (
	"bytes"

	"github.com/google/uuid"
)

// RibID identifies a stored undirected edge. Identifiers are random
// 128-bit values, unique across the process.
type RibID struct{ uuid.UUID }

// NewRibID returns a fresh rib identifier.
func NewRibID() RibID { return RibID{uuid.New()} }

// Less orders rib identifiers byte-wise, for deterministic iteration.
func (a RibID) Less(b RibID) bool { return bytes.Compare(a.UUID[:], b.UUID[:]) < 0 }

// SegID identifies one traversal for the surrounding kernel's
// bookkeeping. The traversal layer itself never consumes it.
type SegID struct{ uuid.UUID }

// NewSegID returns a fresh traversal identifier.
func NewSegID() SegID { return SegID{uuid.New()} }
