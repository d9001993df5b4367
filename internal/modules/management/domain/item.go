package domain

// Item is what the table engine needs from an entity
type Item interface {
	ItemID() int
	Fields() map[string]any
}

// Lookup resolves a foreign id to a display name. It is built once per
// render from the full related collection.
type Lookup map[int]string

// Name returns the name for id, or "N/A" when id is nil or unknown
func (l Lookup) Name(id *int) string {
	if id == nil {
		return NotAvailable
	}
	if name, ok := l[*id]; ok && name != "" {
		return name
	}
	return NotAvailable
}

// NewLookup builds a Lookup from items; name extracts the display name
func NewLookup[T Item](items []T, name func(T) string) Lookup {
	l := make(Lookup, len(items))
	for _, item := range items {
		l[item.ItemID()] = name(item)
	}
	return l
}
