package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// ListAgentDataOptions holds the parameters of ListAgentData.
type ListAgentDataOptions struct {
	Offset  *int64  `param:"offset"`
	Limit   *int64  `param:"limit"`
	Profile *string `param:"profile"`
	Filter  *string `param:"filter"`

	Headers map[string]string
}

// ListAgentData lists registered agents.
func (s *SchematicsV1) ListAgentData(ctx context.Context, opts *ListAgentDataOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListAgentData", opts)
}

// RegisterAgentOptions holds the parameters of RegisterAgent.
type RegisterAgentOptions struct {
	Name          *string             `param:"name"`
	AgentLocation *string             `param:"agentLocation"`
	Location      *string             `param:"location"`
	ProfileID     *string             `param:"profileID"`
	Description   *string             `param:"description"`
	ResourceGroup *string             `param:"resourceGroup"`
	Tags          []string            `param:"tags"`
	AgentMetadata []AgentMetadataInfo `param:"agentMetadata"`
	AgentInputs   []VariableData      `param:"agentInputs"`
	UserState     *UserState          `param:"userState"`
	AgentKPI      *AgentKPIData       `param:"agentKPI"`

	Headers map[string]string
}

// RegisterAgent registers a Schematics agent.
func (s *SchematicsV1) RegisterAgent(ctx context.Context, opts *RegisterAgentOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "RegisterAgent", opts)
}

// GetAgentVersionsOptions holds the parameters of GetAgentVersions.
type GetAgentVersionsOptions struct {
	Headers map[string]string
}

// GetAgentVersions lists the supported agent versions.
func (s *SchematicsV1) GetAgentVersions(ctx context.Context, opts *GetAgentVersionsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetAgentVersions", opts)
}

// GetAgentDataOptions holds the parameters of GetAgentData.
type GetAgentDataOptions struct {
	AgentID string  `param:"agentID"`
	Profile *string `param:"profile"`

	Headers map[string]string
}

// NewGetAgentDataOptions creates GetAgentDataOptions with its required parameters set.
func NewGetAgentDataOptions(agentID string) *GetAgentDataOptions {
	return &GetAgentDataOptions{
		AgentID: agentID,
	}
}

// GetAgentData returns an agent.
func (s *SchematicsV1) GetAgentData(ctx context.Context, opts *GetAgentDataOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetAgentData", opts)
}

// UpdateAgentDataOptions holds the parameters of UpdateAgentData.
type UpdateAgentDataOptions struct {
	AgentID       string              `param:"agentID"`
	Name          *string             `param:"name"`
	AgentLocation *string             `param:"agentLocation"`
	Location      *string             `param:"location"`
	ProfileID     *string             `param:"profileID"`
	Description   *string             `param:"description"`
	ResourceGroup *string             `param:"resourceGroup"`
	Tags          []string            `param:"tags"`
	AgentMetadata []AgentMetadataInfo `param:"agentMetadata"`
	AgentInputs   []VariableData      `param:"agentInputs"`
	UserState     *UserState          `param:"userState"`
	AgentKPI      *AgentKPIData       `param:"agentKPI"`

	Headers map[string]string
}

// NewUpdateAgentDataOptions creates UpdateAgentDataOptions with its required parameters set.
func NewUpdateAgentDataOptions(agentID string) *UpdateAgentDataOptions {
	return &UpdateAgentDataOptions{
		AgentID: agentID,
	}
}

// UpdateAgentData updates an agent registration.
func (s *SchematicsV1) UpdateAgentData(ctx context.Context, opts *UpdateAgentDataOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "UpdateAgentData", opts)
}

// DeleteAgentDataOptions holds the parameters of DeleteAgentData.
type DeleteAgentDataOptions struct {
	AgentID string `param:"agentID"`
	Force   *bool  `param:"force"`

	Headers map[string]string
}

// NewDeleteAgentDataOptions creates DeleteAgentDataOptions with its required parameters set.
func NewDeleteAgentDataOptions(agentID string) *DeleteAgentDataOptions {
	return &DeleteAgentDataOptions{
		AgentID: agentID,
	}
}

// DeleteAgentData deregisters an agent.
func (s *SchematicsV1) DeleteAgentData(ctx context.Context, opts *DeleteAgentDataOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DeleteAgentData", opts)
}

// DeployAgentJobOptions holds the parameters of DeployAgentJob.
type DeployAgentJobOptions struct {
	AgentID      string `param:"agentID"`
	RefreshToken string `param:"refreshToken"`
	Force        *bool  `param:"force"`

	Headers map[string]string
}

// NewDeployAgentJobOptions creates DeployAgentJobOptions with its required parameters set.
func NewDeployAgentJobOptions(agentID string, refreshToken string) *DeployAgentJobOptions {
	return &DeployAgentJobOptions{
		AgentID:      agentID,
		RefreshToken: refreshToken,
	}
}

// DeployAgentJob deploys an agent to its infrastructure.
func (s *SchematicsV1) DeployAgentJob(ctx context.Context, opts *DeployAgentJobOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DeployAgentJob", opts)
}
