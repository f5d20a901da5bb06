package disambiguation

import "strings"

//go:generate go run github.com/dmarkham/enumer -type RenderingOrder -trimprefix RenderingOrder -transform lower -json -output rendering_order.gen.go

const (
	DefaultSegmentTemplate  = "%type.name[ ]%[(]type.plugin[) ]%name"
	DefaultSegmentSeparator = " > "
)

// RenderingOrder decides whether a rendering starts at the resource or at
// the root of its ancestry.
type RenderingOrder int

const (
	// RenderingOrderAscending renders the resource first, then its parents
	// from the nearest to the root.
	RenderingOrderAscending RenderingOrder = iota
	// RenderingOrderDescending renders the root first and the resource last.
	RenderingOrderDescending
)

// Renderer prints reports. The zero value is not usable, use NewRenderer.
type Renderer struct {
	IncludeResource  bool
	IncludeParents   bool
	Order            RenderingOrder
	SegmentSeparator string

	segmentTemplate          string
	singletonSegmentTemplate string
	parsed                   []segment
	parsedSingleton          []segment
}

// NewRenderer returns a renderer printing the resource and all its parents in
// ascending order with the default templates.
func NewRenderer() *Renderer {
	r := &Renderer{
		IncludeResource:  true,
		IncludeParents:   true,
		Order:            RenderingOrderAscending,
		SegmentSeparator: DefaultSegmentSeparator,
	}
	r.SetSegmentTemplate(DefaultSegmentTemplate)
	r.SetSingletonSegmentTemplate(DefaultSegmentTemplate)
	return r
}

func (r *Renderer) SegmentTemplate() string {
	return r.segmentTemplate
}

// SetSegmentTemplate sets the template used for every resource whose type is
// not a singleton.
func (r *Renderer) SetSegmentTemplate(template string) {
	r.segmentTemplate = template
	r.parsed = parseTemplate(template)
}

func (r *Renderer) SingletonSegmentTemplate() string {
	return r.singletonSegmentTemplate
}

// SetSingletonSegmentTemplate sets the template used for resources of
// singleton types, which usually need no name.
func (r *Renderer) SetSingletonSegmentTemplate(template string) {
	r.singletonSegmentTemplate = template
	r.parsedSingleton = parseTemplate(template)
}

// Render prints the report, joining the resources with the separator.
func (r *Renderer) Render(report Report) string {
	var resources []*Resource
	switch r.Order {
	case RenderingOrderAscending:
		if r.IncludeResource {
			resources = append(resources, &report.Resource)
		}
		if r.IncludeParents {
			for i := range report.Parents {
				resources = append(resources, &report.Parents[i])
			}
		}
	case RenderingOrderDescending:
		if r.IncludeParents {
			for i := len(report.Parents) - 1; i >= 0; i-- {
				resources = append(resources, &report.Parents[i])
			}
		}
		if r.IncludeResource {
			resources = append(resources, &report.Resource)
		}
	}

	parts := make([]string, len(resources))
	for i, res := range resources {
		parts[i] = r.RenderResource(res)
	}
	return strings.Join(parts, r.SegmentSeparator)
}

// RenderResource prints a single resource with the template matching its type.
func (r *Renderer) RenderResource(res *Resource) string {
	template := r.parsed
	if res.Type != nil && res.Type.Singleton {
		template = r.parsedSingleton
	}
	var sb strings.Builder
	for _, s := range template {
		s.render(res, &sb)
	}
	return sb.String()
}
