package domain

import "fmt"

type Status struct {
	ID       int
	Name     string
	IsClosed bool
	Order    int
}

// StatusCatalog maps status ids to display names for one project. It is
// immutable for the duration of a run.
type StatusCatalog struct {
	names map[int]string
}

func NewStatusCatalog(statuses []Status) StatusCatalog {
	names := make(map[int]string, len(statuses))
	for _, s := range statuses {
		names[s.ID] = s.Name
	}
	return StatusCatalog{names: names}
}

// NameFor resolves a status id to its display name. Ids missing from the
// catalog get a synthesized placeholder so the engine never drops a story
// over an unknown status.
func (c StatusCatalog) NameFor(id int) string {
	if name, ok := c.names[id]; ok {
		return name
	}
	return fmt.Sprintf("Status %d", id)
}

func (c StatusCatalog) Len() int {
	return len(c.names)
}
