package memory

// collection keeps entities by id and remembers insertion order,
// so listings are stable and match creation order.
type collection[T any] struct {
	order []string
	items map[string]T
}

func newCollection[T any]() collection[T] {
	return collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) len() int {
	return len(c.order)
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.items[id]
	return ok
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

// put inserts a new entity at the end or replaces an existing one in place.
func (c *collection[T]) put(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = v
}

func (c *collection[T]) remove(id string) (T, bool) {
	v, ok := c.items[id]
	if !ok {
		return v, false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return v, true
}

// filter returns the entities matching keep, in insertion order.
// A nil keep returns everything.
func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		v := c.items[id]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// removeWhere deletes every entity matching match and returns them in insertion order.
func (c *collection[T]) removeWhere(match func(T) bool) []T {
	var removed []T
	kept := c.order[:0]
	for _, id := range c.order {
		v := c.items[id]
		if match(v) {
			removed = append(removed, v)
			delete(c.items, id)
			continue
		}
		kept = append(kept, id)
	}
	c.order = kept
	return removed
}
