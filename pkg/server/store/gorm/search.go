package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/query"
)

// scope restricts a search to what a subject may see.
type scope struct {
	tokenType query.AuthorizationTokenType
	fragment  string
	subjectID int
}

// unscoped searches skip authorization.
var unscoped *scope

// search compiles c and runs it. Subjects managing inventory are not
// scoped.
func search[T any](ctx context.Context, db *gorm.DB, authz *AuthzStore, c *criteria.Criteria, sc *scope) (*paging.PageList[T], error) {
	g, err := query.NewGenerator(c)
	if err != nil {
		return nil, err
	}
	if sc != nil && !authz.HasGlobalPermission(sc.subjectID, model.PermissionManageInventory) {
		if err := g.SetAuthorizationResourceFragment(sc.tokenType, sc.fragment, sc.subjectID); err != nil {
			return nil, err
		}
	}
	return query.Execute[T](ctx, query.NewRunner(db), g)
}

func resourceScope(fragment string, subjectID int) *scope {
	return &scope{tokenType: query.AuthorizationTokenTypeResource, fragment: fragment, subjectID: subjectID}
}
