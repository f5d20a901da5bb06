package disambiguation

// field resolves one step of a template field path.
type field interface {
	value(object interface{}) interface{}
	// representation is the field set used for the next path step, nil when
	// the value has no sub fields.
	representation() field
	sibling(name string) field
}

type resourceField int

const (
	resourceAny resourceField = iota
	resourceID
	resourceName
	resourceTypeRef
)

var resourceFieldNames = map[string]resourceField{
	"":     resourceAny,
	"id":   resourceID,
	"name": resourceName,
	"type": resourceTypeRef,
}

func (f resourceField) value(object interface{}) interface{} {
	r, ok := object.(*Resource)
	if !ok {
		return nil
	}
	switch f {
	case resourceID:
		return r.ID
	case resourceName:
		return r.Name
	case resourceTypeRef:
		if r.Type == nil {
			return nil
		}
		return r.Type
	}
	return nil
}

func (f resourceField) representation() field {
	if f == resourceTypeRef {
		return typeAny
	}
	return nil
}

func (f resourceField) sibling(name string) field {
	if s, ok := resourceFieldNames[name]; ok {
		return s
	}
	return nil
}

type typeField int

const (
	typeAny typeField = iota
	typeName
	typePlugin
	typeSingleton
)

var typeFieldNames = map[string]typeField{
	"":          typeAny,
	"name":      typeName,
	"plugin":    typePlugin,
	"singleton": typeSingleton,
}

func (f typeField) value(object interface{}) interface{} {
	t, ok := object.(*ResourceType)
	if !ok {
		return nil
	}
	switch f {
	case typeName:
		return t.Name
	case typePlugin:
		return t.Plugin
	case typeSingleton:
		return t.Singleton
	}
	return nil
}

func (f typeField) representation() field {
	return nil
}

func (f typeField) sibling(name string) field {
	if s, ok := typeFieldNames[name]; ok {
		return s
	}
	return nil
}
