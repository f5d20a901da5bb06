package gorm

import (
	"github.com/rhq-project/rhq-in-go/pkg/query"
)

const (
	queryResourceAncestry      = "Resource.findAncestry"
	queryResourcePluginVersion = "Resource.findPluginAmpsVersion"
	queryLatestConfiguration   = "ResourceConfigurationUpdate.findLatestSuccessfulConfiguration"
	queryUpdatesInProgress     = "ResourceConfigurationUpdate.findInProgressByResource"
	queryGroupMemberStatuses   = "GroupConfigurationUpdate.findMemberStatuses"
	queryGroupMembers          = "ResourceGroup.findImplicitMemberIds"
)

var namedQueries = query.NewNamedQueries()

func init() {
	namedQueries.MustRegister(queryResourceAncestry, `
		WITH RECURSIVE ancestry(id, depth) AS (
			SELECT r.parent_resource_id, 1 FROM rhq_resource r WHERE r.id = ?
			UNION ALL
			SELECT p.parent_resource_id, a.depth + 1
			FROM rhq_resource p JOIN ancestry a ON p.id = a.id
		)
		SELECT r.* FROM rhq_resource r JOIN ancestry a ON r.id = a.id`)

	namedQueries.MustRegister(queryResourcePluginVersion, `
		SELECT p.amps_version
		FROM rhq_resource r
		JOIN rhq_resource_type rt ON rt.id = r.resource_type_id
		JOIN rhq_plugin p ON p.name = rt.plugin
		WHERE r.id = ?`)

	namedQueries.MustRegister(queryLatestConfiguration, `
		SELECT c.*
		FROM rhq_config c
		JOIN rhq_resource_config_update u ON u.config_id = c.id
		WHERE u.resource_id = ? AND u.status = 'SUCCESS'`)

	namedQueries.MustRegister(queryUpdatesInProgress, `
		SELECT u.id
		FROM rhq_resource_config_update u
		WHERE u.resource_id = ? AND u.status = 'INPROGRESS'`)

	namedQueries.MustRegister(queryGroupMemberStatuses, `
		SELECT u.status
		FROM rhq_resource_config_update u
		WHERE u.group_config_update_id = ?`)

	namedQueries.MustRegister(queryGroupMembers, `
		SELECT m.resource_id
		FROM rhq_resource_group_res_imp_map m
		WHERE m.resource_group_id = ?`)
}
