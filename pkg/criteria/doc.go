// Package criteria describes searches over inventory entities.
//
// A Criteria names the entity it searches and collects, in call order:
//
//   - filters: field/value pairs. Strings match with LIKE, slices with IN,
//     everything else with equality. A filter override replaces the generated
//     fragment with SQL whose ? placeholders bind the filter value.
//   - fetches: relations to load together with each row
//   - sorts: fields with a direction, optionally rewritten by a sort override
//   - paging: a page number and size, or an explicit PageControl
//   - expressions: ad-hoc SQL with positional ? placeholders
//   - required permissions: narrow authorized queries to subjects holding all
//     of them
//
// Typed criteria such as ResourceCriteria wrap the base with AddFilterX,
// FetchX and AddSortX methods. The query package turns a criteria into SQL.
package criteria
