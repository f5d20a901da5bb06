// Package yamlfile is a plugin managing a resource whose configuration is a
// single YAML file. The raw configuration is the file itself. The structured
// configuration flattens the document into dotted key paths, so
//
//	server:
//	  port: 8080
//
// becomes the property server.port=8080. Sequence elements are addressed
// by index.
package yamlfile
