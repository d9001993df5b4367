package application

import (
	"fmt"
	"strings"

	authDomain "github.com/saransh1220/artist-console/internal/modules/auth/domain"
	"github.com/saransh1220/artist-console/internal/modules/management/domain"
	resourceDomain "github.com/saransh1220/artist-console/internal/modules/resource/domain"
)

// Row is one rendered table row
type Row struct {
	ID    int
	Cells []string
}

// Table is the view model of a management page
type Table struct {
	Kind        resourceDomain.Kind
	Title       string
	CreateLabel string
	Headers     []string
	Rows        []Row
	Caps        domain.Capabilities
	CanCreate   bool
	Term        string
	Empty       string
	Total       int
}

// Filter keeps the items whose search fields contain term, ignoring case.
// An empty or blank term returns items unchanged.
func Filter[T domain.Item](items []T, term string, cfg Config[T], lookup domain.Lookup) []T {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" || cfg.Search == nil {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range cfg.Search(item, lookup) {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// EmptyMessage tells "nothing exists" apart from "nothing matches". An empty
// collection reads as nothing exists whatever the search term.
func EmptyMessage[T domain.Item](cfg Config[T], total int, term string) string {
	term = strings.TrimSpace(term)
	if total == 0 || term == "" {
		return fmt.Sprintf("No %s found.", cfg.Noun)
	}
	return fmt.Sprintf("No %s match %q.", cfg.Noun, term)
}

// BuildTable filters items and renders every cell. Capabilities are
// computed once for the whole table.
func BuildTable[T domain.Item](cfg Config[T], items []T, lookup domain.Lookup, role authDomain.Role, term string) Table {
	t := Table{
		Kind:        cfg.Kind,
		Title:       cfg.Title,
		CreateLabel: cfg.CreateLabel,
		Caps:        domain.Permit(role, cfg.Kind),
		CanCreate:   domain.CanCreate(role, cfg.Kind),
		Term:        strings.TrimSpace(term),
		Total:       len(items),
	}
	for _, col := range cfg.Columns {
		t.Headers = append(t.Headers, col.Label)
	}

	for _, item := range Filter(items, term, cfg, lookup) {
		row := Row{ID: item.ItemID(), Cells: make([]string, 0, len(cfg.Columns))}
		for _, col := range cfg.Columns {
			row.Cells = append(row.Cells, col.Cell(item, lookup))
		}
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		t.Empty = EmptyMessage(cfg, t.Total, term)
	}
	return t
}
