package product

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Low, High decimal.Decimal
}

// Filter composes the optional predicates of a product listing.
// A zero Filter matches every product.
type Filter struct {
	CategoryIDs []string
	Price       *PriceRange
}

var ErrBadPriceRange = errors.New("radio must be empty or [low, high]")

// NewFilter maps the storefront's {checked, radio} form onto a Filter.
func NewFilter(checked []string, radio []decimal.Decimal) (Filter, error) {
	var f Filter
	for _, id := range checked {
		if id = strings.TrimSpace(id); id != "" {
			f.CategoryIDs = append(f.CategoryIDs, id)
		}
	}
	switch len(radio) {
	case 0:
	case 2:
		f.Price = &PriceRange{Low: radio[0], High: radio[1]}
	default:
		return Filter{}, ErrBadPriceRange
	}
	return f, nil
}

// Query is everything a listing can ask the repository for.
type Query struct {
	Filter Filter
	// Q matches name or description, case-insensitively.
	Q         string
	ExcludeID string
	// Limit 0 means no limit.
	Limit    int
	Offset   int
	Populate bool
}

// where renders the WHERE clause with placeholders numbered from 1.
func (q Query) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(q.Filter.CategoryIDs) > 0 {
		conds = append(conds, "p.category_id = ANY("+next(q.Filter.CategoryIDs)+"::uuid[])")
	}
	if pr := q.Filter.Price; pr != nil {
		conds = append(conds, fmt.Sprintf("p.price BETWEEN %s::numeric AND %s::numeric",
			next(pr.Low.String()), next(pr.High.String())))
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		ph := next("%" + escapeLike(s) + "%")
		conds = append(conds, "(p.name ILIKE "+ph+" OR p.description ILIKE "+ph+")")
	}
	if q.ExcludeID != "" {
		conds = append(conds, "p.id <> "+next(q.ExcludeID)+"::uuid")
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// sql builds the full listing statement. Photo bytes are never selected.
func (q Query) sql() (string, []any) {
	where, args := q.where()
	var b strings.Builder
	b.WriteString(selectColumns)
	if where != "" {
		b.WriteString("\n\t\t")
		b.WriteString(where)
	}
	b.WriteString("\n\t\tORDER BY p.created_at DESC")
	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, "\n\t\tLIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}
	return b.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
