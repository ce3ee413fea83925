// Package query implements declarative filtering, search and ordering for
// list endpoints.
//
// A FilterSet lists what a resource allows; Parse turns request query
// parameters into a Filter, and Apply narrows a GORM query with it:
//
//	var ShlokaFilters = query.FilterSet{
//		Exact:    map[string]string{"chapter": "chapter_id"},
//		Search:   []string{"shlok_text"},
//		Ordering: map[string]string{"shloka_number": "shloka_number"},
//	}
//
//	filter, err := ShlokaFilters.Parse(c.Request.URL.Query())
//	err = filter.Apply(db).Find(&shlokas).Error
package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/audiobook/internal/database"
)

const (
	SearchParam   = "search"
	OrderingParam = "ordering"
)

// FilterSet declares the filters a list endpoint accepts.
// Column names are trusted and interpolated into SQL; never build them from input.
type FilterSet struct {
	Exact    map[string]string // query param -> integer column
	Search   []string          // text columns matched by the "search" param
	Ordering map[string]string // ordering name -> column
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type exactMatch struct {
	column string
	value  int64
}

type orderTerm struct {
	column string
	desc   bool
}

// Filter is a parsed, validated set of predicates. The zero value matches
// everything and orders by id.
type Filter struct {
	exact         []exactMatch
	searchTerms   []string
	searchColumns []string
	order         []orderTerm
}

// Parse validates query parameters against the set. Unknown parameters and
// unknown ordering fields are ignored; malformed integers are a ValidationError.
func (fs FilterSet) Parse(values url.Values) (Filter, error) {
	var f Filter
	var verr *database.ValidationError

	params := make([]string, 0, len(fs.Exact))
	for p := range fs.Exact {
		params = append(params, p)
	}
	sort.Strings(params)

	for _, p := range params {
		raw := strings.TrimSpace(values.Get(p))
		if raw == "" {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr = verr.Add(p, "Enter a whole number.")
			continue
		}
		f.exact = append(f.exact, exactMatch{column: fs.Exact[p], value: n})
	}
	if verr != nil {
		return Filter{}, verr
	}

	if len(fs.Search) > 0 {
		f.searchTerms = strings.Fields(values.Get(SearchParam))
		f.searchColumns = fs.Search
	}

	if raw := values.Get(OrderingParam); raw != "" && len(fs.Ordering) > 0 {
		for _, field := range strings.Split(raw, ",") {
			field = strings.TrimSpace(field)
			desc := strings.HasPrefix(field, "-")
			column, ok := fs.Ordering[strings.TrimPrefix(field, "-")]
			if !ok {
				continue
			}
			f.order = append(f.order, orderTerm{column: column, desc: desc})
		}
	}

	return f, nil
}

// Where adds an exact predicate that is not driven by query parameters,
// e.g. the parent scope of a nested route.
func (f Filter) Where(column string, value int64) Filter {
	exact := make([]exactMatch, len(f.exact), len(f.exact)+1)
	copy(exact, f.exact)
	f.exact = append(exact, exactMatch{column: column, value: value})
	return f
}

// Apply narrows db with the filter's predicates and ordering.
func (f Filter) Apply(db *gorm.DB) *gorm.DB {
	for _, m := range f.exact {
		db = db.Where(m.column+" = ?", m.value)
	}

	for _, term := range f.searchTerms {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		clauses := make([]string, 0, len(f.searchColumns))
		args := make([]any, 0, len(f.searchColumns))
		for _, col := range f.searchColumns {
			clauses = append(clauses, "LOWER("+col+`) LIKE LOWER(?) ESCAPE '\'`)
			args = append(args, pattern)
		}
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	for _, o := range f.order {
		if o.desc {
			db = db.Order(o.column + " DESC")
		} else {
			db = db.Order(o.column + " ASC")
		}
	}
	return db.Order("id ASC")
}
