package sfmt

// ListKind is the ordering policy of a repeating IE list, carried by
// the REPEAT-INDICATOR preceding the list on the wire.
type ListKind uint8

const (
	// ListNormal is a non-prioritized list.
	ListNormal ListKind = 0x1
	// ListPrioritized is a prioritized list.
	ListPrioritized ListKind = 0x2
)

// List is an ordered sequence of same-type IEs. On the wire a
// single-element list omits the REPEAT-INDICATOR; a list with two or
// more elements is introduced by one.
type List struct {
	Common
	Kind  ListKind
	Elems []IE
}

// NewList creates an empty list with the given ordering policy.
func NewList(kind ListKind) *List {
	return &List{Kind: kind}
}

// Add appends an IE to the list.
func (l *List) Add(ie IE) {
	l.Elems = append(l.Elems, ie)
}

// Len returns the number of elements, treating a nil list as empty.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Elems)
}

// HoldList takes a reference on the list. The elements are covered by
// the list-level reference: releasing the last list reference releases
// one reference on each element.
func HoldList(l *List) *List {
	if l == nil {
		return nil
	}
	Hold(l)
	return l
}

// PutList drops a reference on the list, cascading to the elements
// when the last reference is released.
func PutList(l *List) {
	if l == nil {
		return
	}
	last := l.Refs() == 1
	Put(l)
	if last {
		for _, ie := range l.Elems {
			Put(ie)
		}
	}
}
