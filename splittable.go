package frp

import "container/list"

// Splittable is the capability contract of §6: a container type M holding
// elements of type A that can be mapped over and built empty. It exists so
// an external `split` operator (out of scope here — see spec's Non-goals)
// has a uniform way to redistribute a stream's values across containers.
// Only the contract and its provided instances ship; no split operator is
// defined.
type Splittable[M any, A any] interface {
	MapInto(A) M
	Empty() M
}

// SliceOf adapts a single element into a one-element slice, and a nil slice
// stands in for Empty — the ordered-sequence (and native-array) instance of
// Splittable; a Go slice is the native array type, so one instance serves
// both of spec §6's "ordered sequence" and "native array" entries.
type SliceOf[A any] struct{}

func (SliceOf[A]) MapInto(a A) []A { return []A{a} }
func (SliceOf[A]) Empty() []A      { return nil }

// OptionalOf adapts a single element into a pointer, nil standing in for
// Empty — the optional-container instance of Splittable.
type OptionalOf[A any] struct{}

func (OptionalOf[A]) MapInto(a A) *A { return &a }
func (OptionalOf[A]) Empty() *A      { return nil }

// SetOf adapts a single element into a one-element set (map to struct{}) —
// the set instance of Splittable.
type SetOf[A comparable] struct{}

func (SetOf[A]) MapInto(a A) map[A]struct{} { return map[A]struct{}{a: {}} }
func (SetOf[A]) Empty() map[A]struct{}      { return map[A]struct{}{} }

// ListOf adapts a single element into a one-element doubly linked list,
// built on container/list — the linked-list instance of Splittable. An
// empty *list.List (rather than nil) stands in for Empty so callers can
// call its methods (PushBack, Len, ...) without a nil check.
type ListOf[A any] struct{}

func (ListOf[A]) MapInto(a A) *list.List {
	l := list.New()
	l.PushBack(a)
	return l
}
func (ListOf[A]) Empty() *list.List { return list.New() }

// Vector is a minimal persistent vector: Append returns a new Vector
// backed by a fresh copy of the receiver's slice, never mutating it in
// place, so two Vectors never alias each other's elements after a split. It trades the
// branching/tail-buffer structure of a real persistent vector (e.g.
// Clojure's) for a plain copy-on-grow slice — adequate for MapInto's single
// -element case, which never needs the structural-sharing win a real one
// gives repeated appends.
type Vector[A any] struct{ items []A }

// Append returns a new Vector with v appended, leaving the receiver and its
// backing array untouched.
func (v Vector[A]) Append(a A) Vector[A] {
	items := make([]A, len(v.items)+1)
	copy(items, v.items)
	items[len(v.items)] = a
	return Vector[A]{items: items}
}

// Len reports the number of elements in v.
func (v Vector[A]) Len() int { return len(v.items) }

// At returns the element at index i.
func (v Vector[A]) At(i int) A { return v.items[i] }

// VectorOf is the persistent-vector instance of Splittable.
type VectorOf[A any] struct{}

func (VectorOf[A]) MapInto(a A) Vector[A] { return Vector[A]{}.Append(a) }
func (VectorOf[A]) Empty() Vector[A]      { return Vector[A]{} }
