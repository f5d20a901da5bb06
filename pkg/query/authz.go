package query

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type AuthorizationTokenType -trimprefix AuthorizationTokenType -transform snake-upper -output authorization_token_type.gen.go

// ErrIllegalArgument is returned for generator calls that can never succeed.
var ErrIllegalArgument = errors.New("illegal argument")

// AuthorizationTokenType names what an authorization fragment checks access to.
type AuthorizationTokenType int

const (
	AuthorizationTokenTypeResource AuthorizationTokenType = iota
	AuthorizationTokenTypeGroup
	AuthorizationTokenTypeBundle
	AuthorizationTokenTypeBundleGroup
)

func resourceAuthorizationFragment(column string, subjectID int) string {
	return column + " IN ( SELECT g.resource_id" +
		" FROM rhq_resource_group_res_imp_map g" +
		" JOIN rhq_role_resource_group_map r ON r.resource_group_id = g.resource_group_id" +
		" JOIN rhq_subject_role_map s ON s.role_id = r.role_id" +
		fmt.Sprintf(" WHERE s.subject_id = %d )", subjectID)
}

func groupAuthorizationFragment(column string, subjectID int) string {
	var sb strings.Builder
	sb.WriteString("( ")
	// visible through a role
	sb.WriteString(column + " IN ( SELECT rg.id FROM rhq_resource_group rg" +
		" JOIN rhq_role_resource_group_map r ON r.resource_group_id = rg.id" +
		" JOIN rhq_subject_role_map s ON s.role_id = r.role_id" +
		fmt.Sprintf(" WHERE s.subject_id = %d )", subjectID))
	// auto cluster backing group of a visible recursive group
	sb.WriteString(" OR " + column + " IN ( SELECT rg.id FROM rhq_resource_group rg" +
		" JOIN rhq_resource_group cg ON rg.cluster_resource_group_id = cg.id" +
		" JOIN rhq_role_resource_group_map r ON r.resource_group_id = cg.id" +
		" JOIN rhq_subject_role_map s ON s.role_id = r.role_id" +
		fmt.Sprintf(" WHERE s.subject_id = %d )", subjectID))
	// private group
	sb.WriteString(" OR " + column + " IN ( SELECT rg.id FROM rhq_resource_group rg" +
		fmt.Sprintf(" WHERE rg.subject_id = %d )", subjectID))
	sb.WriteString(" )")
	return sb.String()
}

func requiredPermissionsFragment(subjectID int) string {
	return "( SELECT COUNT(DISTINCT p.operation)" +
		" FROM rhq_subject_role_map rsm" +
		" JOIN rhq_permission p ON p.role_id = rsm.role_id" +
		fmt.Sprintf(" WHERE rsm.subject_id = %d", subjectID) +
		" AND p.operation IN @" + paramRequiredPerms + " ) = @" + paramRequiredPermsSize
}
