package bd

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"gearguard/pkg/types"
)

// ApplyListParams adds filter, sort and pagination from f. Only keys present in
// allowedMap reach the SQL; the map translates JSON field names to qualified columns.
func ApplyListParams(builder sq.SelectBuilder, f types.Filter, allowedMap map[string]string) sq.SelectBuilder {
	for _, jsonField := range sortedKeys(f.Filter) {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		val := f.Filter[jsonField]
		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			builder = builder.Where(sq.Eq{dbCol: strings.Split(s, ",")})
		} else {
			builder = builder.Where(sq.Eq{dbCol: val})
		}
	}

	sortFields := make([]string, 0, len(f.Sort))
	for k := range f.Sort {
		sortFields = append(sortFields, k)
	}
	sort.Strings(sortFields)
	for _, jsonField := range sortFields {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		sqlDir := "ASC"
		if strings.EqualFold(f.Sort[jsonField], "desc") {
			sqlDir = "DESC"
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
	}

	if f.WithPagination {
		if f.Limit > 0 {
			builder = builder.Limit(uint64(f.Limit))
		}
		if f.Offset > 0 {
			builder = builder.Offset(uint64(f.Offset))
		}
	}

	return builder
}

// ApplySearch adds an OR of ILIKE matches over cols when search is set.
func ApplySearch(builder sq.SelectBuilder, search string, cols ...string) sq.SelectBuilder {
	if search == "" || len(cols) == 0 {
		return builder
	}
	pat := "%" + search + "%"
	or := make(sq.Or, 0, len(cols))
	for _, c := range cols {
		or = append(or, sq.ILike{c: pat})
	}
	return builder.Where(or)
}

// ForCount strips sort and pagination so the same filter can drive a COUNT query.
func ForCount(f types.Filter) types.Filter {
	f.WithPagination = false
	f.Sort = nil
	return f
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
