/*
Package query turns criteria into SQL and runs it.

A Generator builds the data and count statements for one criteria over the
entity metadata registered in this package. Filters become WHERE conditions
with named parameters (@field) that gorm binds from a map. Sort fields that
walk relations are resolved with LEFT JOINs aliased orderingField0,
orderingField1 and so on. Authorization fragments restrict results to what a
subject may see through its roles.

Execute runs both statements and returns a paging.PageList whose total is
consistent with the page it carries. The persistence helpers rewrite plain
SQL for counting and for native paging on several databases.
*/
package query
