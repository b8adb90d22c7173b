package ferrous

import "fmt"

// Pair is an immutable two-element product. Both fields are required to be
// non-nil at construction; Zip operations use it to carry combined values.
type Pair[A, B any] struct {
	a A
	b B
}

func NewPair[A, B any](a A, b B) Pair[A, B] {
	if IsNil(a) {
		panic(NewOptionError(msgNilPairA))
	}
	if IsNil(b) {
		panic(NewOptionError(msgNilPairB))
	}
	return Pair[A, B]{a: a, b: b}
}

func (p Pair[A, B]) A() A {
	return p.a
}

func (p Pair[A, B]) B() B {
	return p.b
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("Pair(%v, %v)", p.a, p.b)
}
