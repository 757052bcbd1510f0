package sfmt

// Collection is a set of parsed or to-be-sent IEs keyed by the grammar
// slot they occupy; the wire order comes from the message grammar. It backs both the parser's result and
// the parameter collections handed to application callbacks.
//
// A collection owns one reference per IE slot. Releasing the
// collection with PutCollection releases every slot exactly once.
type Collection struct {
	Common
	single map[Type]IE
	lists  map[Type]*List
}

// NewCollection creates an empty collection holding one reference.
func NewCollection() *Collection {
	c := &Collection{
		single: make(map[Type]IE),
		lists:  make(map[Type]*List),
	}
	ieInit(c)
	return c
}

// Add stores ie under the grammar slot t, taking a reference. A nil
// ie is ignored.
func (c *Collection) Add(t Type, ie IE) {
	if ie == nil {
		return
	}
	if prev, ok := c.single[t]; ok {
		Put(prev)
	}
	c.single[t] = Hold(ie)
}

// AddList stores a repeating list under the element slot t, taking a
// list-level reference.
func (c *Collection) AddList(t Type, l *List) {
	if l == nil {
		return
	}
	if prev, ok := c.lists[t]; ok {
		PutList(prev)
	}
	c.lists[t] = HoldList(l)
}

// Get returns the IE stored under slot t, or nil.
func (c *Collection) Get(t Type) IE {
	return c.single[t]
}

// GetList returns the repeating list stored under element slot t, or
// nil.
func (c *Collection) GetList(t Type) *List {
	return c.lists[t]
}

// add stores a parser-allocated IE, transferring its initial
// reference to the collection.
func (c *Collection) add(t Type, ie IE) {
	if prev, ok := c.single[t]; ok {
		Put(prev)
	}
	c.single[t] = ie
}

// addList stores a parser-allocated list, transferring its initial
// reference to the collection.
func (c *Collection) addList(t Type, l *List) {
	if prev, ok := c.lists[t]; ok {
		PutList(prev)
	}
	c.lists[t] = l
}

// Merge holds every slot of src into c.
func (c *Collection) Merge(src *Collection) {
	if src == nil {
		return
	}
	for t, ie := range src.single {
		c.Add(t, ie)
	}
	for t, l := range src.lists {
		c.AddList(t, l)
	}
}

// HoldCollection takes a reference on the collection.
func HoldCollection(c *Collection) *Collection {
	if c == nil {
		return nil
	}
	Hold(c)
	return c
}

// PutCollection drops a reference on the collection, cascading to
// every slot when the last reference is released.
func PutCollection(c *Collection) {
	if c == nil {
		return
	}
	last := c.Refs() == 1
	Put(c)
	if !last {
		return
	}
	for t, ie := range c.single {
		Put(ie)
		delete(c.single, t)
	}
	for t, l := range c.lists {
		PutList(l)
		delete(c.lists, t)
	}
}
