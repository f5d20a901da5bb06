/*
Package disambiguation renders a resource together with its ancestry so
that resources sharing a name can be told apart.

A segment template describes how one resource is printed. A % starts a field
reference, optionally preceded by a [prefix] and followed by a [suffix]; the
prefix and suffix are only printed when the field has a value. Fields are
id, name and type, and the type has name, plugin and singleton. A backslash
escapes the next character.

	%type.name[ ]%[(]type.plugin[) ]%name

renders "Apache HTTPD (Apache) www" for a resource named www.
*/
package disambiguation
