package grid

// CornerSource resolves a mini-cube corner by its bit-pattern index
// (bit d selects floor vs floor+1 in dimension d). minicube.Source
// implements it by lazily locating and populating grid cells; a
// corner-pointer cache hit implements it by indexing already-resolved
// pointers. Interpolators and the linearity validator consume this
// interface rather than either concrete type, so a cache hit and a
// cache miss look identical to them.
type CornerSource interface {
	Get(k int) (*Cell, error)
}
