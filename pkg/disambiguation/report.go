package disambiguation

import "github.com/rhq-project/rhq-in-go/pkg/model"

// ResourceType is the part of a resource type a template can print.
type ResourceType struct {
	Name      string `json:"name"`
	Plugin    string `json:"plugin"`
	Singleton bool   `json:"singleton"`
}

func (t *ResourceType) String() string {
	return t.Name
}

// Resource is the part of a resource a template can print.
type Resource struct {
	ID   int           `json:"id"`
	Name string        `json:"name"`
	Type *ResourceType `json:"type,omitempty"`
}

// Report is a resource and its parents, nearest parent first.
type Report struct {
	Resource Resource   `json:"resource"`
	Parents  []Resource `json:"parents"`
}

// FromModel converts an inventory resource. The resource type is used when
// it has been loaded.
func FromModel(r model.Resource) Resource {
	out := Resource{ID: r.ID, Name: r.Name}
	if r.ResourceType != nil {
		out.Type = &ResourceType{
			Name:      r.ResourceType.Name,
			Plugin:    r.ResourceType.Plugin,
			Singleton: r.ResourceType.Singleton,
		}
	}
	return out
}

// NewReport builds a report from a resource and its ancestry, nearest
// parent first.
func NewReport(r model.Resource, parents []model.Resource) Report {
	report := Report{Resource: FromModel(r), Parents: make([]Resource, 0, len(parents))}
	for _, p := range parents {
		report.Parents = append(report.Parents, FromModel(p))
	}
	return report
}
