// Package configmgmt loads and updates resource configurations through the
// facets of a plugin component. The strategy used for a resource depends on
// the AMPS version of its plugin and the configuration format of its type.
package configmgmt
