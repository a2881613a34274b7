package product

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewFilter(t *testing.T) {
	f, err := NewFilter(nil, nil)
	if err != nil || len(f.CategoryIDs) != 0 || f.Price != nil {
		t.Fatalf("empty filter: %+v %v", f, err)
	}

	f, err = NewFilter([]string{"a", " ", "b"}, []decimal.Decimal{decimal.NewFromInt(0), decimal.NewFromInt(20)})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(f.CategoryIDs, []string{"a", "b"}) || f.Price == nil || f.Price.High.IntPart() != 20 {
		t.Fatalf("filter=%+v", f)
	}

	if _, err := NewFilter(nil, []decimal.Decimal{decimal.NewFromInt(5)}); !errors.Is(err, ErrBadPriceRange) {
		t.Fatalf("expected ErrBadPriceRange, got %v", err)
	}
}

func TestQueryWhere(t *testing.T) {
	tests := []struct {
		name      string
		q         Query
		wantWhere string
		wantArgs  []any
	}{
		{"nothing", Query{}, "", nil},
		{
			"categories only",
			Query{Filter: Filter{CategoryIDs: []string{"c1", "c2"}}},
			"WHERE p.category_id = ANY($1::uuid[])",
			[]any{[]string{"c1", "c2"}},
		},
		{
			"categories and price intersect",
			Query{Filter: Filter{CategoryIDs: []string{"c1"}, Price: &PriceRange{Low: decimal.NewFromInt(10), High: decimal.RequireFromString("19.99")}}},
			"WHERE p.category_id = ANY($1::uuid[]) AND p.price BETWEEN $2::numeric AND $3::numeric",
			[]any{[]string{"c1"}, "10", "19.99"},
		},
		{
			"search escapes like wildcards",
			Query{Q: " 50%_off "},
			"WHERE (p.name ILIKE $1 OR p.description ILIKE $1)",
			[]any{`%50\%\_off%`},
		},
		{
			"related",
			Query{Filter: Filter{CategoryIDs: []string{"c1"}}, ExcludeID: "p1"},
			"WHERE p.category_id = ANY($1::uuid[]) AND p.id <> $2::uuid",
			[]any{[]string{"c1"}, "p1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.q.where()
			if where != tt.wantWhere {
				t.Fatalf("where=%q\nwant %q", where, tt.wantWhere)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("args=%#v want %#v", args, tt.wantArgs)
			}
		})
	}
}

func TestQuerySQL_Paging(t *testing.T) {
	sql, args := Query{Limit: 6, Offset: 12}.sql()
	if !strings.Contains(sql, "ORDER BY p.created_at DESC") || !strings.HasSuffix(sql, "LIMIT $1 OFFSET $2") {
		t.Fatalf("sql=%s", sql)
	}
	if !reflect.DeepEqual(args, []any{6, 12}) {
		t.Fatalf("args=%v", args)
	}
	if strings.Contains(sql, "photo_data,") {
		t.Fatalf("listing must not select photo bytes: %s", sql)
	}

	sql, args = Query{Q: "x"}.sql()
	if strings.Contains(sql, "LIMIT") || len(args) != 1 {
		t.Fatalf("unbounded query got LIMIT: %s %v", sql, args)
	}
}
