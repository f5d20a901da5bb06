package configuration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/rhq-project/rhq-in-go/pkg/criteria"
	"github.com/rhq-project/rhq-in-go/pkg/logger"
	"github.com/rhq-project/rhq-in-go/pkg/model"
	"github.com/rhq-project/rhq-in-go/pkg/paging"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
)

// DefaultGroupWorkers bounds how many members of a group are updated at once.
const DefaultGroupWorkers = 8

// Agent is the agent side of configuration management as seen by the server.
type Agent interface {
	LoadConfiguration(ctx context.Context, resourceID int) (*model.Configuration, error)
	ValidateConfiguration(ctx context.Context, resourceID int, c *model.Configuration, structured bool) error
	MergeConfiguration(ctx context.Context, resourceID int, c *model.Configuration, fromStructured bool) error
	UpdateConfiguration(ctx context.Context, req model.ConfigurationUpdateRequest) error
}

// Manager records configuration updates and dispatches them to the agent.
type Manager struct {
	configs store.ConfigurationStore
	authz   store.AuthzStore
	groups  store.GroupsStore
	agent   Agent

	// GroupWorkers bounds the fan-out of group updates.
	GroupWorkers int

	log *zap.Logger
	// serializes the in-progress check with the creation of an update
	mu sync.Mutex
}

func NewManager(configs store.ConfigurationStore, authz store.AuthzStore, groups store.GroupsStore, agent Agent) *Manager {
	return &Manager{
		configs:      configs,
		authz:        authz,
		groups:       groups,
		agent:        agent,
		GroupWorkers: DefaultGroupWorkers,
		log:          logger.Named("configuration"),
	}
}

func (m *Manager) authorize(subject *model.Subject, permission model.Permission, resourceID int) error {
	if !m.authz.HasResourcePermission(subject.ID, permission, resourceID) {
		return fmt.Errorf("%w: %s lacks %s on resource %d", store.ErrForbidden, subject.Name, permission, resourceID)
	}
	return nil
}

func (m *Manager) format(resourceID int) (model.ConfigFormat, error) {
	rt, err := m.configs.ResourceType(resourceID)
	if err != nil {
		return model.ConfigFormatNone, err
	}
	if rt.ConfigFormat == model.ConfigFormatNone {
		return rt.ConfigFormat, ErrConfigurationNotSupported
	}
	return rt.ConfigFormat, nil
}

// LatestConfiguration returns the configuration of the last successful
// update of a resource.
func (m *Manager) LatestConfiguration(subject *model.Subject, resourceID int) (*model.Configuration, error) {
	if err := m.authorize(subject, model.PermissionConfigureRead, resourceID); err != nil {
		return nil, err
	}
	return m.configs.LatestConfiguration(resourceID)
}

// LiveConfiguration asks the agent for the configuration the resource has now.
func (m *Manager) LiveConfiguration(ctx context.Context, subject *model.Subject, resourceID int) (*model.Configuration, error) {
	if err := m.authorize(subject, model.PermissionConfigureRead, resourceID); err != nil {
		return nil, err
	}
	if _, err := m.format(resourceID); err != nil {
		return nil, err
	}
	c, err := m.agent.LoadConfiguration(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNullConfiguration
	}
	return c, nil
}

// SearchUpdates returns the update history visible to the subject.
func (m *Manager) SearchUpdates(ctx context.Context, subject *model.Subject, c *criteria.ResourceConfigurationUpdateCriteria) (*paging.PageList[model.ResourceConfigurationUpdate], error) {
	return m.configs.SearchUpdates(ctx, c, subject.ID)
}

// UpdateStructuredConfiguration updates a resource from structured
// configuration only. Types that manage raw files too must go through
// UpdateStructuredOrRawConfiguration.
func (m *Manager) UpdateStructuredConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration) (*model.ResourceConfigurationUpdate, error) {
	if err := m.authorize(subject, model.PermissionConfigureWrite, resourceID); err != nil {
		return nil, err
	}
	f, err := m.format(resourceID)
	if err != nil {
		return nil, err
	}
	if f == model.ConfigFormatStructuredAndRaw {
		return nil, ErrUpdateNotSupported
	}
	return m.update(ctx, subject, resourceID, f, c, true, nil)
}

// UpdateStructuredOrRawConfiguration updates a resource from the structured
// or the raw side of c. Updates from raw are merged into structured form
// before they are stored.
func (m *Manager) UpdateStructuredOrRawConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration, fromStructured bool) (*model.ResourceConfigurationUpdate, error) {
	if err := m.authorize(subject, model.PermissionConfigureWrite, resourceID); err != nil {
		return nil, err
	}
	f, err := m.format(resourceID)
	if err != nil {
		return nil, err
	}
	return m.update(ctx, subject, resourceID, f, c, fromStructured, nil)
}

// TranslateConfiguration returns c with one representation regenerated from
// the other: the raw files from the properties when fromStructured is set,
// the properties from the raw files otherwise. Nothing is stored.
func (m *Manager) TranslateConfiguration(ctx context.Context, subject *model.Subject, resourceID int, c *model.Configuration, fromStructured bool) (*model.Configuration, error) {
	rt, err := m.configs.ResourceType(resourceID)
	if err != nil {
		return nil, err
	}
	if rt.ConfigFormat != model.ConfigFormatStructuredAndRaw {
		return nil, fmt.Errorf("%w: resource %d has format %s", ErrTranslationNotSupported, resourceID, rt.ConfigFormat)
	}
	if err := m.authorize(subject, model.PermissionConfigureRead, resourceID); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNullConfiguration
	}
	translated := c.Clone()
	if err := m.agent.MergeConfiguration(ctx, resourceID, translated, fromStructured); err != nil {
		return nil, fmt.Errorf("translating configuration of resource %d: %w", resourceID, err)
	}
	return translated, nil
}

// update validates and merges through the agent only for types managing
// both structured and raw configuration. Plugins older than AMPS 2.1 have
// no facet for either.
func (m *Manager) update(ctx context.Context, subject *model.Subject, resourceID int, format model.ConfigFormat, c *model.Configuration, fromStructured bool, groupUpdateID *int) (*model.ResourceConfigurationUpdate, error) {
	if c == nil {
		return nil, ErrNullConfiguration
	}
	c = c.Clone()
	c.ID = 0

	if format == model.ConfigFormatStructuredAndRaw {
		if err := m.agent.ValidateConfiguration(ctx, resourceID, c, fromStructured); err != nil {
			return nil, err
		}
		if !fromStructured {
			if err := m.agent.MergeConfiguration(ctx, resourceID, c, false); err != nil {
				return nil, fmt.Errorf("merging raw configuration: %w", err)
			}
		}
	}

	u, err := m.createUpdate(resourceID, c, subject.Name, groupUpdateID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		m.log.Debug("configuration unchanged, nothing sent to the agent", zap.Int("resource", resourceID))
		return &model.ResourceConfigurationUpdate{
			ResourceID:          resourceID,
			Configuration:       c,
			Status:              model.UpdateStatusNoChange,
			SubjectName:         subject.Name,
			GroupConfigUpdateID: groupUpdateID,
		}, nil
	}

	req := model.ConfigurationUpdateRequest{UpdateID: u.ID, ResourceID: resourceID, Configuration: c.Clone()}
	if err := m.agent.UpdateConfiguration(ctx, req); err != nil {
		m.log.Warn("configuration update could not be sent to the agent",
			zap.Int("update", u.ID), zap.Int("resource", resourceID), zap.Error(err))
		failed, cerr := m.configs.CompleteUpdate(u.ID, model.UpdateStatusFailure, err.Error(), nil)
		if cerr != nil {
			return nil, errors.Join(err, cerr)
		}
		return failed, nil
	}
	return u, nil
}

// createUpdate stores c as a new INPROGRESS update of the resource. It
// stores nothing and returns a nil update when c equals the latest
// configuration.
func (m *Manager) createUpdate(resourceID int, c *model.Configuration, subjectName string, groupUpdateID *int) (*model.ResourceConfigurationUpdate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inProgress, err := m.configs.HasUpdateInProgress(resourceID)
	if err != nil {
		return nil, err
	}
	if inProgress {
		return nil, fmt.Errorf("resource %d: %w", resourceID, ErrUpdateInProgress)
	}
	latest, err := m.configs.LatestConfiguration(resourceID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if latest != nil && latest.Equal(c) {
		return nil, nil
	}
	u := &model.ResourceConfigurationUpdate{
		ResourceID:          resourceID,
		Configuration:       c,
		Status:              model.UpdateStatusInProgress,
		SubjectName:         subjectName,
		GroupConfigUpdateID: groupUpdateID,
	}
	if err := m.configs.CreateUpdate(u); err != nil {
		return nil, err
	}
	return u, nil
}

// CompleteUpdate records the agent's response to an update request and
// refreshes the aggregate status of its group update. A failed update keeps
// the configuration the agent returned, which carries its property errors.
func (m *Manager) CompleteUpdate(ctx context.Context, resp model.ConfigurationUpdateResponse) error {
	var c *model.Configuration
	switch resp.Status {
	case model.UpdateStatusSuccess, model.UpdateStatusFailure:
		c = resp.Configuration
	}
	u, err := m.configs.CompleteUpdate(resp.UpdateID, resp.Status, resp.ErrorMessage, c)
	if err != nil {
		return fmt.Errorf("completing update %d: %w", resp.UpdateID, err)
	}
	m.log.Debug("configuration update completed",
		zap.Int("update", u.ID),
		zap.Int("resource", u.ResourceID),
		zap.Stringer("status", resp.Status))

	if u.GroupConfigUpdateID != nil {
		return m.refreshGroupUpdate(*u.GroupConfigUpdateID)
	}
	return nil
}

// HandleResponse adapts CompleteUpdate to the agent's response callback.
func (m *Manager) HandleResponse(ctx context.Context, resp model.ConfigurationUpdateResponse) {
	if err := m.CompleteUpdate(ctx, resp); err != nil {
		m.log.Error("could not record configuration update response", zap.Int("update", resp.UpdateID), zap.Error(err))
	}
}

// DriftSubject is recorded as the requester of updates the agent detected
// on its own.
const DriftSubject = "agent"

// RecordDrift stores a configuration found on the agent that differs from
// the latest stored one as a completed update. It reports whether an update
// was recorded.
func (m *Manager) RecordDrift(ctx context.Context, resourceID int, c *model.Configuration) (bool, error) {
	if c == nil {
		return false, ErrNullConfiguration
	}
	c = c.Clone()
	c.ID = 0
	u, err := m.createUpdate(resourceID, c, DriftSubject, nil)
	if err != nil || u == nil {
		return false, err
	}
	if _, err := m.configs.CompleteUpdate(u.ID, model.UpdateStatusSuccess, "", nil); err != nil {
		return false, fmt.Errorf("completing drift update %d: %w", u.ID, err)
	}
	m.log.Info("recorded configuration drift", zap.Int("resource", resourceID), zap.Int("update", u.ID))
	return true, nil
}

// UpdateGroupConfiguration applies c to every member of a group. Members
// that cannot be updated get a FAILURE update so the group outcome reflects
// them.
func (m *Manager) UpdateGroupConfiguration(ctx context.Context, subject *model.Subject, groupID int, c *model.Configuration, fromStructured bool) (*model.GroupConfigurationUpdate, error) {
	if !m.authz.HasGroupPermission(subject.ID, model.PermissionConfigureWrite, groupID) {
		return nil, fmt.Errorf("%w: %s lacks %s on group %d", store.ErrForbidden, subject.Name, model.PermissionConfigureWrite, groupID)
	}
	if c == nil {
		return nil, ErrNullConfiguration
	}
	members, err := m.groups.MemberIDs(groupID)
	if err != nil {
		return nil, err
	}

	gu := &model.GroupConfigurationUpdate{GroupID: groupID, Status: model.UpdateStatusInProgress, SubjectName: subject.Name}
	if err := m.configs.CreateGroupUpdate(gu); err != nil {
		return nil, err
	}
	if len(members) == 0 {
		gu.Status = model.UpdateStatusSuccess
		return gu, m.configs.CompleteGroupUpdate(gu.ID, gu.Status, "")
	}

	workers := m.GroupWorkers
	if workers <= 0 {
		workers = DefaultGroupWorkers
	}
	p := pool.New().WithMaxGoroutines(workers)
	for _, id := range members {
		p.Go(func() {
			m.updateMember(ctx, subject, gu.ID, id, c, fromStructured)
		})
	}
	p.Wait()

	if err := m.refreshGroupUpdate(gu.ID); err != nil {
		return nil, err
	}
	return m.configs.GroupUpdate(gu.ID)
}

func (m *Manager) updateMember(ctx context.Context, subject *model.Subject, groupUpdateID, resourceID int, c *model.Configuration, fromStructured bool) {
	f, err := m.format(resourceID)
	if err == nil {
		_, err = m.update(ctx, subject, resourceID, f, c, fromStructured, &groupUpdateID)
	}
	if err == nil {
		return
	}
	m.log.Warn("group member update rejected",
		zap.Int("groupUpdate", groupUpdateID), zap.Int("resource", resourceID), zap.Error(err))

	u := &model.ResourceConfigurationUpdate{
		ResourceID:          resourceID,
		Status:              model.UpdateStatusFailure,
		ErrorMessage:        err.Error(),
		SubjectName:         subject.Name,
		GroupConfigUpdateID: &groupUpdateID,
	}
	if err := m.configs.CreateUpdate(u); err != nil {
		m.log.Error("could not record failed group member update", zap.Int("resource", resourceID), zap.Error(err))
	}
}

func (m *Manager) refreshGroupUpdate(groupUpdateID int) error {
	statuses, err := m.configs.GroupMemberStatuses(groupUpdateID)
	if err != nil {
		return err
	}
	status, failed := AggregateStatus(statuses)
	if status == model.UpdateStatusInProgress {
		return nil
	}
	var msg string
	if failed > 0 {
		msg = fmt.Sprintf("%d of %d member updates failed", failed, len(statuses))
	}
	return m.configs.CompleteGroupUpdate(groupUpdateID, status, msg)
}

// AggregateStatus folds member update statuses into a group status. Any
// member still in progress keeps the group in progress. Otherwise a single
// failure fails the group. It also returns the number of failed members.
func AggregateStatus(statuses []model.UpdateStatus) (model.UpdateStatus, int) {
	failed := 0
	inProgress := false
	for _, s := range statuses {
		switch s {
		case model.UpdateStatusInProgress:
			inProgress = true
		case model.UpdateStatusFailure:
			failed++
		}
	}
	switch {
	case inProgress:
		return model.UpdateStatusInProgress, failed
	case failed > 0:
		return model.UpdateStatusFailure, failed
	default:
		return model.UpdateStatusSuccess, failed
	}
}
