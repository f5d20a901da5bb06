package query

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
)

const (
	// EscapeClause follows every generated LIKE comparison.
	EscapeClause = ` ESCAPE '\'`

	paramRequiredPerms     = "requiredPerms"
	paramRequiredPermsSize = "requiredPermsSize"
)

// Query is a statement with named parameters bound from Args.
type Query struct {
	SQL  string
	Args map[string]interface{}
}

// Values returns the arguments in the shape gorm's Raw expects.
func (q *Query) Values() []interface{} {
	if len(q.Args) == 0 {
		return nil
	}
	return []interface{}{q.Args}
}

// Generator builds SQL for one criteria.
type Generator struct {
	criteria *criteria.Criteria
	entity   *Entity

	authzFragment       string
	authzSubjectID      int
	customAuthzFragment string
	searchExpression    string

	projection      string
	countProjection string
	groupBy         string
	having          string
}

// NewGenerator returns a generator for c. The criteria entity must be
// registered.
func NewGenerator(c *criteria.Criteria) (*Generator, error) {
	e, err := Lookup(c.Entity())
	if err != nil {
		return nil, err
	}
	return &Generator{criteria: c, entity: e}, nil
}

func (g *Generator) Criteria() *criteria.Criteria {
	return g.criteria
}

func (g *Generator) Entity() *Entity {
	return g.entity
}

// SetAuthorizationResourceFragment restricts results to entities the subject
// may see. fragment names the relation (or column) leading from the searched
// entity to the resource or group being checked; empty means the searched
// entity is that resource or group.
func (g *Generator) SetAuthorizationResourceFragment(t AuthorizationTokenType, fragment string, subjectID int) error {
	column, err := g.authorizationColumn(fragment)
	if err != nil {
		return err
	}
	switch t {
	case AuthorizationTokenTypeResource:
		g.authzFragment = resourceAuthorizationFragment(column, subjectID)
	case AuthorizationTokenTypeGroup:
		g.authzFragment = groupAuthorizationFragment(column, subjectID)
	default:
		return fmt.Errorf("%w: authorization token type %s is not supported", ErrIllegalArgument, t)
	}
	g.authzSubjectID = subjectID
	return nil
}

func (g *Generator) authorizationColumn(fragment string) (string, error) {
	alias := g.entity.Alias
	if fragment == "" {
		return alias + ".id", nil
	}
	if rel, ok := g.entity.Relations[fragment]; ok && !rel.Many {
		return alias + "." + rel.ForeignKey, nil
	}
	if col, ok := g.entity.Column(fragment); ok {
		return alias + "." + col, nil
	}
	return "", fmt.Errorf("%w: %s has no to-one relation %q", ErrIllegalArgument, g.entity.Name, fragment)
}

// SetAuthorizationCustomConditionFragment adds a hand written authorization
// condition. It is ANDed with everything else.
func (g *Generator) SetAuthorizationCustomConditionFragment(fragment string) {
	g.customAuthzFragment = fragment
}

// SetSearchExpressionWhereClause adds a condition produced by the search bar.
func (g *Generator) SetSearchExpressionWhereClause(clause string) {
	g.searchExpression = clause
}

// AlterProjection replaces the selected expression of the data query.
func (g *Generator) AlterProjection(projection string) {
	g.projection = projection
}

// AlterCountProjection replaces the selected expression of the count query.
func (g *Generator) AlterCountProjection(projection string) {
	g.countProjection = projection
}

// IsProjectionAltered reports whether AlterProjection was called.
func (g *Generator) IsProjectionAltered() bool {
	return g.projection != ""
}

// SetGroupByClause groups a projected query.
func (g *Generator) SetGroupByClause(groupBy string) error {
	if !g.IsProjectionAltered() {
		return fmt.Errorf("%w: group by requires an altered projection", ErrIllegalArgument)
	}
	g.groupBy = groupBy
	return nil
}

// SetHavingClause filters groups.
func (g *Generator) SetHavingClause(having string) error {
	if g.groupBy == "" {
		return fmt.Errorf("%w: having requires a group by clause", ErrIllegalArgument)
	}
	g.having = having
	return nil
}

// JoinFetchFields returns the to-one relations fetched with the results.
func (g *Generator) JoinFetchFields() []string {
	var out []string
	for _, f := range g.criteria.Fetches() {
		if rel, ok := g.entity.Relations[f]; ok && !rel.Many {
			out = append(out, f)
		}
	}
	return out
}

// BagFields returns the collections fetched with the results.
func (g *Generator) BagFields() []string {
	var out []string
	for _, f := range g.criteria.Fetches() {
		if rel, ok := g.entity.Relations[f]; ok && rel.Many {
			out = append(out, f)
		}
	}
	return out
}

// Preloads returns the gorm association names of every fetched relation.
func (g *Generator) Preloads() ([]string, error) {
	fetches := g.criteria.Fetches()
	out := make([]string, 0, len(fetches))
	for _, f := range fetches {
		rel, ok := g.entity.Relations[f]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no relation %q to fetch", ErrIllegalArgument, g.entity.Name, f)
		}
		out = append(out, rel.Preload)
	}
	return out, nil
}

// Build returns the data query, or the count query when count is set.
func (g *Generator) Build(count bool) (*Query, error) {
	if _, err := g.Preloads(); err != nil {
		return nil, err
	}

	b := &builder{g: g, args: map[string]interface{}{}, joinAliases: map[string]string{}}
	where, err := b.whereClause()
	if err != nil {
		return nil, err
	}

	var orderBy string
	if !count {
		if orderBy, err = b.orderByClause(); err != nil {
			return nil, err
		}
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	if count {
		sb.WriteString(g.countSelect())
	} else {
		sb.WriteString(g.dataSelect())
	}
	sb.WriteString(" FROM " + g.entity.Table + " " + g.entity.Alias)
	if !count {
		for _, j := range b.joins {
			sb.WriteString(j)
		}
	}
	if where != "" {
		sb.WriteString(" WHERE " + where)
	}
	if !count && g.groupBy != "" {
		sb.WriteString(" GROUP BY " + g.groupBy)
		if g.having != "" {
			sb.WriteString(" HAVING " + g.having)
		}
	}
	if orderBy != "" {
		sb.WriteString(" ORDER BY " + orderBy)
	}
	return &Query{SQL: sb.String(), Args: b.args}, nil
}

// ParameterReplacedQuery renders the query with its parameters inlined. It
// is meant for logs and never for execution.
func (g *Generator) ParameterReplacedQuery(count bool) (string, error) {
	q, err := g.Build(count)
	if err != nil {
		return "", err
	}
	return replaceParameters(q.SQL, q.Args), nil
}

func (g *Generator) dataSelect() string {
	if g.projection != "" {
		return g.projection
	}
	return g.entity.Alias + ".*"
}

func (g *Generator) countSelect() string {
	switch {
	case g.countProjection != "":
		return g.countProjection
	case g.groupBy != "":
		return "COUNT(DISTINCT " + g.groupBy + ")"
	default:
		return "COUNT(*)"
	}
}

type builder struct {
	g           *Generator
	args        map[string]interface{}
	joins       []string
	joinAliases map[string]string
}

func (b *builder) whereClause() (string, error) {
	c := b.g.criteria

	var conditions []string
	for _, f := range c.Filters() {
		cond, err := b.filterCondition(f)
		if err != nil {
			return "", err
		}
		if cond != "" {
			conditions = append(conditions, cond)
		}
	}

	var parts []string
	if len(conditions) > 0 {
		conjunction := " AND "
		if c.FiltersOptional {
			conjunction = " OR "
		}
		parts = append(parts, "( "+strings.Join(conditions, conjunction)+" )")
	}

	for i, e := range c.Expressions() {
		parts = append(parts, "( "+b.bindPositional(e, i)+" )")
	}

	if b.g.authzFragment != "" {
		parts = append(parts, b.g.authzFragment)
		if perms := c.RequiredPermissions(); len(perms) > 0 {
			parts = append(parts, requiredPermissionsFragment(b.g.authzSubjectID))
			b.args[paramRequiredPerms] = perms
			b.args[paramRequiredPermsSize] = len(perms)
		}
	}
	if b.g.customAuthzFragment != "" {
		parts = append(parts, b.g.customAuthzFragment)
	}
	if b.g.searchExpression != "" {
		parts = append(parts, b.g.searchExpression)
	}
	return strings.Join(parts, " AND "), nil
}

func (b *builder) bindPositional(e criteria.Expression, index int) string {
	var sb strings.Builder
	arg := 0
	for _, r := range e.SQL {
		if r == '?' && arg < len(e.Args) {
			name := fmt.Sprintf("expression%d_%d", index, arg)
			b.args[name] = e.Args[arg]
			sb.WriteString("@" + name)
			arg++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (b *builder) filterCondition(f criteria.Filter) (string, error) {
	c := b.g.criteria
	name := parameterName(f.Field)

	if override, ok := c.FilterOverride(f.Field); ok {
		if nb, ok := f.Value.(criteria.NonBinding); ok {
			if nb == criteria.NonBindingOff {
				return "", nil
			}
			return b.g.fixFilterOverride(override, name), nil
		}
		if strings.Contains(override, "?") {
			if containsFold(override, " like ") {
				b.args[name] = b.g.likeValue(f.Value)
			} else {
				b.args[name] = f.Value
			}
		}
		return b.g.fixFilterOverride(override, name), nil
	}

	if _, ok := f.Value.(criteria.NonBinding); ok {
		return "", fmt.Errorf("%w: filter %q binds no value but has no override", ErrIllegalArgument, f.Field)
	}
	column, ok := b.g.entity.Column(f.Field)
	if !ok {
		return "", fmt.Errorf("%w: %s has no filter field %q", ErrIllegalArgument, b.g.entity.Name, f.Field)
	}
	qualified := b.g.entity.Alias + "." + column

	if s, ok := f.Value.(string); ok {
		b.args[name] = b.g.likeValue(s)
		if !c.CaseSensitive {
			return "LOWER( " + qualified + " ) like @" + name + EscapeClause, nil
		}
		return qualified + " like @" + name + EscapeClause, nil
	}
	b.args[name] = f.Value
	if isList(f.Value) {
		return qualified + " IN @" + name, nil
	}
	return qualified + " = @" + name, nil
}

// fixFilterOverride qualifies an override with the entity alias and binds
// its placeholders to the field's named parameter.
func (g *Generator) fixFilterOverride(expression, name string) string {
	fuzzy := containsFold(expression, " like ") && !containsFold(expression, "select")
	insensitive := !g.criteria.CaseSensitive && fuzzy

	expression = strings.ReplaceAll(expression, "?", "@"+name)
	alias := g.entity.Alias

	if !startsWithKeyword(expression) {
		if i := strings.Index(expression, " "); insensitive && i > 0 {
			expression = "LOWER( " + alias + "." + expression[:i] + " )" + expression[i:]
		} else {
			expression = alias + "." + expression
		}
	}

	if fuzzy {
		expression += EscapeClause
	}
	return expression
}

// likeValue prepares a value compared with LIKE.
func (g *Generator) likeValue(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return v
	}
	s = EscapeSearchParameter(s)
	if !g.criteria.Strict {
		s = "%" + s + "%"
	}
	if !g.criteria.CaseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

func (b *builder) orderByClause() (string, error) {
	c := b.g.criteria
	var parts []string
	for _, f := range c.PageControl().OrderingFields() {
		field := f.Field
		if override, ok := c.SortOverride(field); ok {
			field = override
		}
		expr, err := b.sortExpression(field)
		if err != nil {
			return "", err
		}
		parts = append(parts, expr+" "+f.Ordering.String())
	}
	return strings.Join(parts, ", "), nil
}

// sortExpression qualifies field with the alias that owns it. Each relation
// hop of a dotted path is LEFT JOINed once and reused by later fields.
func (b *builder) sortExpression(field string) (string, error) {
	if b.g.criteria.CustomizedSorting || isNumeric(field) {
		return field, nil
	}

	path := strings.Split(field, ".")
	e, alias := b.g.entity, b.g.entity.Alias
	prefix := ""
	for _, hop := range path[:len(path)-1] {
		rel, ok := e.Relations[hop]
		if !ok || rel.Many {
			return "", fmt.Errorf("%w: cannot sort %s on %q", ErrIllegalArgument, b.g.entity.Name, field)
		}
		target, err := Lookup(rel.Target)
		if err != nil {
			return "", err
		}
		prefix += hop + "."
		joinAlias, ok := b.joinAliases[prefix]
		if !ok {
			joinAlias = fmt.Sprintf("orderingField%d", len(b.joinAliases))
			b.joinAliases[prefix] = joinAlias
			b.joins = append(b.joins, fmt.Sprintf(" LEFT JOIN %s %s ON %s.id = %s.%s",
				target.Table, joinAlias, joinAlias, alias, rel.ForeignKey))
		}
		e, alias = target, joinAlias
	}

	column, ok := e.Column(path[len(path)-1])
	if !ok {
		return "", fmt.Errorf("%w: cannot sort %s on %q", ErrIllegalArgument, b.g.entity.Name, field)
	}
	return alias + "." + column, nil
}

// EscapeSearchParameter escapes the LIKE wildcards and the escape character.
func EscapeSearchParameter(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `_`, `\_`, `%`, `\%`)
	return r.Replace(s)
}

func parameterName(field string) string {
	return strings.ReplaceAll(field, ".", "_")
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func isList(v interface{}) bool {
	if _, ok := v.([]byte); ok {
		return false
	}
	if _, ok := v.(driver.Valuer); ok {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// expressionStartKeywords open overrides that must not be qualified.
var expressionStartKeywords = []string{"NOT", "EXISTS"}

// startsWithKeyword reports whether the first whitespace separated token of
// expression is one of expressionStartKeywords.
func startsWithKeyword(expression string) bool {
	fields := strings.Fields(expression)
	if len(fields) == 0 {
		return false
	}
	for _, k := range expressionStartKeywords {
		if strings.EqualFold(fields[0], k) {
			return true
		}
	}
	return false
}

func replaceParameters(query string, args map[string]interface{}) string {
	var sb strings.Builder
	for i := 0; i < len(query); i++ {
		if query[i] != '@' {
			sb.WriteByte(query[i])
			continue
		}
		j := i + 1
		for j < len(query) && isNameByte(query[j]) {
			j++
		}
		v, ok := args[query[i+1:j]]
		if !ok {
			sb.WriteString(query[i:j])
		} else {
			sb.WriteString(literal(v))
		}
		i = j - 1
	}
	return sb.String()
}

func isNameByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func literal(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case time.Time:
		return "'" + x.Format(time.RFC3339) + "'"
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil {
			return "?"
		}
		return literal(dv)
	}
	if isList(v) {
		rv := reflect.ValueOf(v)
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = literal(rv.Index(i).Interface())
		}
		return "( " + strings.Join(items, ", ") + " )"
	}
	return fmt.Sprint(v)
}
