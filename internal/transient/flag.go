package transient

// Token identifies a single Set of a Flag. A Clear carrying a token only
// takes effect while that Set is still the most recent one.
type Token struct {
	Generation uint64
	Seq        uint64
}

// Flag holds a value that the presentation layer clears after a delay.
// Flag is a value type; every mutation returns the updated flag.
type Flag[T any] struct {
	value T
	set   bool
	gen   uint64
	seq   uint64
}

// Set stores v and returns the token a deferred Clear must present.
func (f Flag[T]) Set(v T) (Flag[T], Token) {
	f.seq++
	f.value = v
	f.set = true
	return f, Token{Generation: f.gen, Seq: f.seq}
}

// Clear unsets the flag if tok belongs to the current Set.
// A stale token leaves the flag untouched and reports false.
func (f Flag[T]) Clear(tok Token) (Flag[T], bool) {
	if !f.set || tok.Generation != f.gen || tok.Seq != f.seq {
		return f, false
	}
	return f.Drop(), true
}

// Drop unsets the flag immediately. Outstanding tokens stay harmless
// because the next Set advances the sequence.
func (f Flag[T]) Drop() Flag[T] {
	var zero T
	f.value = zero
	f.set = false
	return f
}

// Invalidate unsets the flag and starts a new generation, so no token
// issued before the call can clear a later Set.
func (f Flag[T]) Invalidate() Flag[T] {
	f = f.Drop()
	f.gen++
	f.seq = 0
	return f
}

// Get returns the stored value and whether the flag is set.
func (f Flag[T]) Get() (T, bool) {
	return f.value, f.set
}

// Active reports whether the flag is set.
func (f Flag[T]) Active() bool {
	return f.set
}

// Generation returns the current generation counter.
func (f Flag[T]) Generation() uint64 {
	return f.gen
}
