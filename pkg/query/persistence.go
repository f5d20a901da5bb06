package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rhq-project/rhq-in-go/pkg/paging"
)

//go:generate go run github.com/dmarkham/enumer -type Dialect -trimprefix Dialect -transform lower -output dialect.gen.go

// Dialect selects the native paging syntax.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectH2
	DialectOracle
	DialectSQLServer
)

var (
	countQueryPattern = regexp.MustCompile(`(?is)^(\s*SELECT\s+)(.*?)(\s+FROM.*)`)
	fetchPattern      = regexp.MustCompile(`(?i)FETCH`)
)

// CountQuery rewrites the select list of query to COUNT(countItem) and drops
// FETCH keywords, which have no meaning in a count.
func CountQuery(query, countItem string) (string, error) {
	m := countQueryPattern.FindStringSubmatch(query)
	if m == nil {
		return "", fmt.Errorf("%w: cannot derive a count query from %q", ErrIllegalArgument, query)
	}
	count := m[1] + "COUNT(" + countItem + ")" + m[3]
	return fetchPattern.ReplaceAllString(count, ""), nil
}

// OrderByFragment renders " ORDER BY f1 o1, f2 o2", or "" when fields is empty.
func OrderByFragment(fields ...paging.OrderingField) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + " " + f.Ordering.String()
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// WithOrderBy appends the ordering of pc to query.
func WithOrderBy(query string, pc *paging.PageControl) string {
	if pc == nil {
		return query
	}
	return query + OrderByFragment(pc.OrderingFields()...)
}

// SetDataPage appends the window of pc to a query that is already sorted.
// Unlimited controls leave the query untouched.
func SetDataPage(dialect Dialect, query string, pc *paging.PageControl) string {
	if pc == nil || pc.PageSize <= 0 {
		return query
	}
	switch dialect {
	case DialectOracle, DialectSQLServer:
		return fmt.Sprintf("%s OFFSET %d ROWS FETCH NEXT %d ROWS ONLY", query, pc.StartRow(), pc.PageSize)
	default:
		return fmt.Sprintf("%s LIMIT %d OFFSET %d", query, pc.PageSize, pc.StartRow())
	}
}

// AddNativePagingSorting sorts and pages an unsorted native query.
func AddNativePagingSorting(dialect Dialect, query string, pc *paging.PageControl) (string, error) {
	switch dialect {
	case DialectPostgres:
		return AddPostgresNativePagingSorting(query, pc), nil
	case DialectH2:
		return AddH2NativePagingSorting(query, pc), nil
	case DialectOracle:
		return AddOracleNativePagingSorting(query, pc), nil
	case DialectSQLServer:
		return AddSQLServerNativePagingSorting(query, pc, false)
	}
	return "", fmt.Errorf("%w: unsupported dialect %s", ErrIllegalArgument, dialect)
}

func AddPostgresNativePagingSorting(query string, pc *paging.PageControl) string {
	return limitOffset(query, pc)
}

func AddH2NativePagingSorting(query string, pc *paging.PageControl) string {
	return limitOffset(query, pc)
}

func limitOffset(query string, pc *paging.PageControl) string {
	q := WithOrderBy(query, pc)
	if pc.IsUnlimited() {
		return q
	}
	return q + " LIMIT " + strconv.Itoa(pc.PageSize) + " OFFSET " + strconv.Itoa(pc.StartRow())
}

// AddOracleNativePagingSorting wraps query in the ROWNUM double projection.
func AddOracleNativePagingSorting(query string, pc *paging.PageControl) string {
	if pc.IsUnlimited() {
		return WithOrderBy(query, pc)
	}
	minRow := pc.StartRow() + 1
	maxRow := minRow + pc.PageSize - 1

	var sb strings.Builder
	sb.WriteString("SELECT outerResults.* FROM ( ")
	sb.WriteString("SELECT innerResults.*, ROWNUM rnum FROM ( ")
	sb.WriteString(WithOrderBy(query, pc))
	sb.WriteString(" ) innerResults ")
	sb.WriteString(" WHERE ROWNUM <= " + strconv.Itoa(maxRow) + " ) outerResults ")
	sb.WriteString(" WHERE rnum >= " + strconv.Itoa(minRow))
	return sb.String()
}

// AddSQLServerNativePagingSorting numbers the rows with ROW_NUMBER() OVER the
// ordering of pc. The default style wraps query as a derived table. The
// alternate style splices the row number into query's own select list.
func AddSQLServerNativePagingSorting(query string, pc *paging.PageControl, alternate bool) (string, error) {
	if pc.IsUnlimited() {
		return WithOrderBy(query, pc), nil
	}
	orderBy := strings.TrimPrefix(OrderByFragment(pc.OrderingFields()...), " ")
	if orderBy == "" {
		orderBy = "ORDER BY (SELECT NULL)"
	}
	minRow := pc.StartRow() + 1
	maxRow := minRow + pc.PageSize - 1
	where := "WHERE rownum <= " + strconv.Itoa(maxRow) + " AND rownum >= " + strconv.Itoa(minRow)

	var sb strings.Builder
	if !alternate {
		sb.WriteString("SELECT outerResults.* FROM ( ")
		sb.WriteString("   SELECT innerResults.*, ")
		sb.WriteString("          ROW_NUMBER() OVER( " + orderBy + " ) AS rownum ")
		sb.WriteString("   FROM ( " + query + " ) AS innerResults ")
		sb.WriteString(" ) AS outerResults ")
		sb.WriteString(where)
		return sb.String(), nil
	}

	end, err := findSelectListEndIndex(query)
	if err != nil {
		return "", err
	}
	sb.WriteString("SELECT singleResults.* FROM ( ")
	sb.WriteString(query[:end])
	sb.WriteString(", ROW_NUMBER() OVER( " + orderBy + " ) AS rownum ")
	sb.WriteString(query[end:])
	sb.WriteString(") AS singleResults ")
	sb.WriteString(where)
	return sb.String(), nil
}

// findSelectListEndIndex returns the index just past the select list of
// query, the position of the first top level FROM. Sub-selects in
// parentheses are skipped.
func findSelectListEndIndex(query string) (int, error) {
	lower := strings.ToLower(query)
	nesting := 0
	var word strings.Builder
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		switch {
		case c == '(':
			nesting++
			word.Reset()
		case c == ')':
			nesting--
			word.Reset()
		case isWordChar(c):
			word.WriteByte(c)
			if nesting == 0 && word.String() == "from" && (i+1 == len(lower) || !isWordChar(lower[i+1])) {
				return i - 4, nil
			}
		default:
			word.Reset()
		}
	}
	return 0, fmt.Errorf("%w: no top level FROM in %q", ErrIllegalArgument, query)
}

// isWordChar reports whether c can be part of a lower cased SQL identifier.
func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '$'
}
