// Package geoindex maintains directed traversals (segs) over shared
// undirected edges (ribs) held in a central index. Entities are
// identifier-only values; geometry is resolved on demand through
// contextual references bound to the index, so no coordinate is ever
// cached across a mutation. The same rib may be traversed forward and
// reverse by any number of segs without duplicating its geometry.
package geoindex
