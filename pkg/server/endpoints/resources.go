package endpoints

import (
	"net/http"
	"strings"

	"github.com/rhq-project/rhq-in-go/pkg/audit"
	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/disambiguation"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/server"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

var resourceSorts = map[string]string{
	"id":              "id",
	"name":            "name",
	"version":         "version",
	"inventoryStatus": "inventoryStatus",
	"ctime":           "ctime",
	"type":            "resourceTypeName",
	"plugin":          "pluginName",
	"category":        "resourceCategory",
	"parent":          "parentResourceName",
	"agent":           "agentName",
}

// AncestryResponse is the breadcrumb of a resource.
type AncestryResponse struct {
	Report   disambiguation.Report `json:"report"`
	Rendered string                `json:"rendered"`
}

// RegisterResourcesEndpoints registers the inventory API endpoints
func RegisterResourcesEndpoints(s *server.Server) {
	resourcesRouter := s.Router.PathPrefix("/resources").Subrouter()
	resourcesRouter.Use(s.JWTMiddleware.Middleware)

	resourcesRouter.HandleFunc("", handleSearchResources(s.ResourcesStore, s.Config)).Methods("GET")
	resourcesRouter.HandleFunc("/{id:[0-9]+}", handleFetchResource(s.ResourcesStore, s.AuthzStore, s.Config)).Methods("GET")
	resourcesRouter.HandleFunc("/{id:[0-9]+}/ancestry", handleAncestry(s.ResourcesStore, s.AuthzStore)).Methods("GET")
}

// resourceCriteria builds a search from query parameters.
func resourceCriteria(r *http.Request, maxPageSize int) (*criteria.ResourceCriteria, error) {
	q := r.URL.Query()
	c := criteria.NewResourceCriteria()

	if v := q.Get("name"); v != "" {
		c.AddFilterName(v)
	}
	if v := q.Get("type"); v != "" {
		c.AddFilterResourceTypeName(v)
	}
	if v := q.Get("plugin"); v != "" {
		c.AddFilterPluginName(v)
	}
	if v := q.Get("category"); v != "" {
		var categories []model.Category
		for _, name := range strings.Split(v, ",") {
			category, err := model.CategoryString(strings.ToUpper(strings.TrimSpace(name)))
			if err != nil {
				return nil, badRequest("invalid category %q", name)
			}
			categories = append(categories, category)
		}
		c.AddFilterResourceCategories(categories...)
	}
	if v := q.Get("inventoryStatus"); v != "" {
		status, err := model.InventoryStatusString(strings.ToUpper(v))
		if err != nil {
			return nil, badRequest("invalid inventoryStatus %q", v)
		}
		c.AddFilterInventoryStatus(status)
	}
	parent, ok, err := queryInt(q, "parent")
	if err != nil {
		return nil, err
	}
	if ok {
		c.AddFilterParentResourceID(parent)
	}
	for _, f := range q["fetch"] {
		switch f {
		case "resourceType":
			c.FetchResourceType(true)
		case "parentResource":
			c.FetchParentResource(true)
		case "agent":
			c.FetchAgent(true)
		default:
			return nil, badRequest("cannot fetch %q", f)
		}
	}

	if err := applySearchParams(c.Criteria, q, resourceSorts, maxPageSize); err != nil {
		return nil, err
	}
	return c, nil
}

func handleSearchResources(resources store.ResourcesStore, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject := subjectOf(r)
		event := audit.ListEvent{
			Subject:  subject.Name,
			ClientIP: clientIP(r, cfg),
			Entity:   criteria.EntityResource,
			Search:   r.URL.RawQuery,
		}

		c, err := resourceCriteria(r, cfg.MaxPageSize)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		pc := c.PageControl()
		event.PageNumber, event.PageSize = pc.PageNumber, pc.PageSize

		page, err := resources.SearchResources(r.Context(), c, subject.ID)
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			respondWithStoreError(w, err)
			return
		}

		event.Success = true
		audit.Log(event)
		respondWithJSON(w, http.StatusOK, listOf(page))
	}
}

// visible fails with ErrForbidden unless the subject may view the resource.
func visible(authz store.AuthzStore, subject *model.Subject, resourceID int) error {
	if authz.HasGlobalPermission(subject.ID, model.PermissionManageInventory) ||
		authz.CanViewResource(subject.ID, resourceID) {
		return nil
	}
	return store.ErrForbidden
}

func handleFetchResource(resources store.ResourcesStore, authz store.AuthzStore, cfg *config.RhqConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		subject := subjectOf(r)
		event := audit.ShowEvent{
			Subject:  subject.Name,
			ClientIP: clientIP(r, cfg),
			Entity:   criteria.EntityResource,
			ID:       id,
		}

		resource, err := resources.FetchResource(id)
		if err == nil {
			err = visible(authz, subject, id)
		}
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			respondWithStoreError(w, err)
			return
		}

		event.Success = true
		audit.Log(event)
		respondWithJSON(w, http.StatusOK, resource)
	}
}

// rendererFor reads template, singletonTemplate, order, separator,
// includeResource and includeParents.
func rendererFor(r *http.Request) (*disambiguation.Renderer, error) {
	q := r.URL.Query()
	renderer := disambiguation.NewRenderer()

	if v, ok := q["template"]; ok {
		renderer.SetSegmentTemplate(v[0])
		renderer.SetSingletonSegmentTemplate(v[0])
	}
	if v, ok := q["singletonTemplate"]; ok {
		renderer.SetSingletonSegmentTemplate(v[0])
	}
	if v, ok := q["separator"]; ok {
		renderer.SegmentSeparator = v[0]
	}
	if v := q.Get("order"); v != "" {
		order, err := disambiguation.RenderingOrderString(strings.ToLower(v))
		if err != nil {
			return nil, badRequest("invalid order %q", v)
		}
		renderer.Order = order
	}
	for name, target := range map[string]*bool{
		"includeResource": &renderer.IncludeResource,
		"includeParents":  &renderer.IncludeParents,
	} {
		if q.Get(name) == "" {
			continue
		}
		b, err := queryBool(q, name)
		if err != nil {
			return nil, err
		}
		*target = b
	}
	return renderer, nil
}

func handleAncestry(resources store.ResourcesStore, authz store.AuthzStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		renderer, err := rendererFor(r)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		resource, err := resources.FetchResource(id)
		if err == nil {
			err = visible(authz, subjectOf(r), id)
		}
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		parents, err := resources.Ancestry(id)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		report := disambiguation.NewReport(*resource, parents)
		respondWithJSON(w, http.StatusOK, AncestryResponse{
			Report:   report,
			Rendered: renderer.Render(report),
		})
	}
}
