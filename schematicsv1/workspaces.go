package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// ListWorkspacesOptions holds the parameters of ListWorkspaces.
type ListWorkspacesOptions struct {
	Offset *int64 `param:"offset"`
	Limit  *int64 `param:"limit"`

	Headers map[string]string
}

// ListWorkspaces lists the workspaces the caller can see.
func (s *SchematicsV1) ListWorkspaces(ctx context.Context, opts *ListWorkspacesOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListWorkspaces", opts)
}

// CreateWorkspaceOptions holds the parameters of CreateWorkspace.
type CreateWorkspaceOptions struct {
	// Personal access token for a private template repository.
	XGithubToken         *string                     `param:"xGithubToken"`
	AppliedShareddataIDs []string                    `param:"appliedShareddataIDs"`
	CatalogRef           *CatalogRef                 `param:"catalogRef"`
	Dependencies         *Dependencies               `param:"dependencies"`
	Description          *string                     `param:"description"`
	Location             *string                     `param:"location"`
	Name                 *string                     `param:"name"`
	ResourceGroup        *string                     `param:"resourceGroup"`
	SharedData           *SharedTargetData           `param:"sharedData"`
	Tags                 []string                    `param:"tags"`
	TemplateData         []TemplateSourceDataRequest `param:"templateData"`
	TemplateRef          *string                     `param:"templateRef"`
	TemplateRepo         *TemplateRepoRequest        `param:"templateRepo"`
	Type                 []string                    `param:"type"`
	WorkspaceStatus      *WorkspaceStatusRequest     `param:"workspaceStatus"`
	AgentID              *string                     `param:"agentID"`
	Settings             []VariableData              `param:"settings"`

	Headers map[string]string
}

// CreateWorkspace creates a workspace for a Terraform template.
func (s *SchematicsV1) CreateWorkspace(ctx context.Context, opts *CreateWorkspaceOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "CreateWorkspace", opts)
}

// GetWorkspaceOptions holds the parameters of GetWorkspace.
type GetWorkspaceOptions struct {
	WID string `param:"wID"`

	Headers map[string]string
}

// NewGetWorkspaceOptions creates GetWorkspaceOptions with its required parameters set.
func NewGetWorkspaceOptions(wID string) *GetWorkspaceOptions {
	return &GetWorkspaceOptions{
		WID: wID,
	}
}

// GetWorkspace returns a workspace.
func (s *SchematicsV1) GetWorkspace(ctx context.Context, opts *GetWorkspaceOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetWorkspace", opts)
}

// ReplaceWorkspaceOptions holds the parameters of ReplaceWorkspace.
type ReplaceWorkspaceOptions struct {
	WID                string                      `param:"wID"`
	XGithubToken       *string                     `param:"xGithubToken"`
	CatalogRef         *CatalogRef                 `param:"catalogRef"`
	Description        *string                     `param:"description"`
	Name               *string                     `param:"name"`
	SharedData         *SharedTargetData           `param:"sharedData"`
	Tags               []string                    `param:"tags"`
	TemplateData       []TemplateSourceDataRequest `param:"templateData"`
	TemplateRepo       *TemplateRepoRequest        `param:"templateRepo"`
	Type               []string                    `param:"type"`
	WorkspaceStatus    *WorkspaceStatusRequest     `param:"workspaceStatus"`
	WorkspaceStatusMsg *WorkspaceStatusMessage     `param:"workspaceStatusMsg"`
	AgentID            *string                     `param:"agentID"`
	Settings           []VariableData              `param:"settings"`

	Headers map[string]string
}

// NewReplaceWorkspaceOptions creates ReplaceWorkspaceOptions with its required parameters set.
func NewReplaceWorkspaceOptions(wID string) *ReplaceWorkspaceOptions {
	return &ReplaceWorkspaceOptions{
		WID: wID,
	}
}

// ReplaceWorkspace replaces the settings of a workspace.
func (s *SchematicsV1) ReplaceWorkspace(ctx context.Context, opts *ReplaceWorkspaceOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ReplaceWorkspace", opts)
}

// UpdateWorkspaceOptions holds the parameters of UpdateWorkspace.
type UpdateWorkspaceOptions struct {
	WID                string                      `param:"wID"`
	XGithubToken       *string                     `param:"xGithubToken"`
	CatalogRef         *CatalogRef                 `param:"catalogRef"`
	Description        *string                     `param:"description"`
	Name               *string                     `param:"name"`
	SharedData         *SharedTargetData           `param:"sharedData"`
	Tags               []string                    `param:"tags"`
	TemplateData       []TemplateSourceDataRequest `param:"templateData"`
	TemplateRepo       *TemplateRepoRequest        `param:"templateRepo"`
	Type               []string                    `param:"type"`
	WorkspaceStatus    *WorkspaceStatusRequest     `param:"workspaceStatus"`
	WorkspaceStatusMsg *WorkspaceStatusMessage     `param:"workspaceStatusMsg"`
	AgentID            *string                     `param:"agentID"`
	Settings           []VariableData              `param:"settings"`

	Headers map[string]string
}

// NewUpdateWorkspaceOptions creates UpdateWorkspaceOptions with its required parameters set.
func NewUpdateWorkspaceOptions(wID string) *UpdateWorkspaceOptions {
	return &UpdateWorkspaceOptions{
		WID: wID,
	}
}

// UpdateWorkspace updates the given settings of a workspace.
func (s *SchematicsV1) UpdateWorkspace(ctx context.Context, opts *UpdateWorkspaceOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "UpdateWorkspace", opts)
}

// DeleteWorkspaceOptions holds the parameters of DeleteWorkspace.
type DeleteWorkspaceOptions struct {
	WID string `param:"wID"`

	// IAM refresh token. Schematics uses it to act on the caller's behalf.
	RefreshToken string `param:"refreshToken"`

	// Also destroy the resources the workspace provisioned.
	DestroyResources *bool `param:"destroyResources"`

	Headers map[string]string
}

// NewDeleteWorkspaceOptions creates DeleteWorkspaceOptions with its required parameters set.
func NewDeleteWorkspaceOptions(wID string, refreshToken string) *DeleteWorkspaceOptions {
	return &DeleteWorkspaceOptions{
		WID:          wID,
		RefreshToken: refreshToken,
	}
}

// DeleteWorkspace deletes a workspace, and with DestroyResources set, the
// resources it provisioned.
func (s *SchematicsV1) DeleteWorkspace(ctx context.Context, opts *DeleteWorkspaceOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DeleteWorkspace", opts)
}

// GetWorkspaceReadmeOptions holds the parameters of GetWorkspaceReadme.
type GetWorkspaceReadmeOptions struct {
	WID       string  `param:"wID"`
	Ref       *string `param:"ref"`
	Formatted *bool   `param:"formatted"`

	Headers map[string]string
}

// NewGetWorkspaceReadmeOptions creates GetWorkspaceReadmeOptions with its required parameters set.
func NewGetWorkspaceReadmeOptions(wID string) *GetWorkspaceReadmeOptions {
	return &GetWorkspaceReadmeOptions{
		WID: wID,
	}
}

// GetWorkspaceReadme returns the README of the workspace template.
func (s *SchematicsV1) GetWorkspaceReadme(ctx context.Context, opts *GetWorkspaceReadmeOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetWorkspaceReadme", opts)
}

// TemplateRepoUploadOptions holds the parameters of TemplateRepoUpload.
type TemplateRepoUploadOptions struct {
	WID  string `param:"wID"`
	TID  string `param:"tID"`
	File []byte `param:"file"`

	// Content type of File; application/octet-stream when unset.
	FileContentType *string `param:"fileContentType"`

	Headers map[string]string
}

// NewTemplateRepoUploadOptions creates TemplateRepoUploadOptions with its required parameters set.
func NewTemplateRepoUploadOptions(wID string, tID string) *TemplateRepoUploadOptions {
	return &TemplateRepoUploadOptions{
		WID: wID,
		TID: tID,
	}
}

// TemplateRepoUpload uploads a tar archive as the source of a workspace template.
func (s *SchematicsV1) TemplateRepoUpload(ctx context.Context, opts *TemplateRepoUploadOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "TemplateRepoUpload", opts)
}

// GetWorkspaceInputsOptions holds the parameters of GetWorkspaceInputs.
type GetWorkspaceInputsOptions struct {
	WID string `param:"wID"`
	TID string `param:"tID"`

	Headers map[string]string
}

// NewGetWorkspaceInputsOptions creates GetWorkspaceInputsOptions with its required parameters set.
func NewGetWorkspaceInputsOptions(wID string, tID string) *GetWorkspaceInputsOptions {
	return &GetWorkspaceInputsOptions{
		WID: wID,
		TID: tID,
	}
}

// GetWorkspaceInputs returns the input variables of a workspace template.
func (s *SchematicsV1) GetWorkspaceInputs(ctx context.Context, opts *GetWorkspaceInputsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetWorkspaceInputs", opts)
}

// ReplaceWorkspaceInputsOptions holds the parameters of ReplaceWorkspaceInputs.
type ReplaceWorkspaceInputsOptions struct {
	WID               string                     `param:"wID"`
	TID               string                     `param:"tID"`
	EnvValues         []map[string]any           `param:"envValues"`
	EnvValuesMetadata []EnvironmentValueMetadata `param:"envValuesMetadata"`
	Values            *string                    `param:"values"`
	Variablestore     []WorkspaceVariableRequest `param:"variablestore"`

	Headers map[string]string
}

// NewReplaceWorkspaceInputsOptions creates ReplaceWorkspaceInputsOptions with its required parameters set.
func NewReplaceWorkspaceInputsOptions(wID string, tID string) *ReplaceWorkspaceInputsOptions {
	return &ReplaceWorkspaceInputsOptions{
		WID: wID,
		TID: tID,
	}
}

// ReplaceWorkspaceInputs replaces the input variables of a workspace template.
func (s *SchematicsV1) ReplaceWorkspaceInputs(ctx context.Context, opts *ReplaceWorkspaceInputsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ReplaceWorkspaceInputs", opts)
}

// GetWorkspaceOutputsOptions holds the parameters of GetWorkspaceOutputs.
type GetWorkspaceOutputsOptions struct {
	WID string `param:"wID"`

	Headers map[string]string
}

// NewGetWorkspaceOutputsOptions creates GetWorkspaceOutputsOptions with its required parameters set.
func NewGetWorkspaceOutputsOptions(wID string) *GetWorkspaceOutputsOptions {
	return &GetWorkspaceOutputsOptions{
		WID: wID,
	}
}

// GetWorkspaceOutputs returns the Terraform outputs of a workspace.
func (s *SchematicsV1) GetWorkspaceOutputs(ctx context.Context, opts *GetWorkspaceOutputsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetWorkspaceOutputs", opts)
}

// GetWorkspaceResourcesOptions holds the parameters of GetWorkspaceResources.
type GetWorkspaceResourcesOptions struct {
	WID string `param:"wID"`

	Headers map[string]string
}

// NewGetWorkspaceResourcesOptions creates GetWorkspaceResourcesOptions with its required parameters set.
func NewGetWorkspaceResourcesOptions(wID string) *GetWorkspaceResourcesOptions {
	return &GetWorkspaceResourcesOptions{
		WID: wID,
	}
}

// GetWorkspaceResources lists the resources a workspace manages.
func (s *SchematicsV1) GetWorkspaceResources(ctx context.Context, opts *GetWorkspaceResourcesOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetWorkspaceResources", opts)
}

// GetWorkspaceStateOptions holds the parameters of GetWorkspaceState.
type GetWorkspaceStateOptions struct {
	WID string `param:"wID"`

	Headers map[string]string
}

// NewGetWorkspaceStateOptions creates GetWorkspaceStateOptions with its required parameters set.
func NewGetWorkspaceStateOptions(wID string) *GetWorkspaceStateOptions {
	return &GetWorkspaceStateOptions{
		WID: wID,
	}
}

// GetWorkspaceState returns the Terraform state of a workspace.
func (s *SchematicsV1) GetWorkspaceState(ctx context.Context, opts *GetWorkspaceStateOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetWorkspaceState", opts)
}

// ListWorkspaceActivitiesOptions holds the parameters of ListWorkspaceActivities.
type ListWorkspaceActivitiesOptions struct {
	WID    string `param:"wID"`
	Offset *int64 `param:"offset"`
	Limit  *int64 `param:"limit"`

	Headers map[string]string
}

// NewListWorkspaceActivitiesOptions creates ListWorkspaceActivitiesOptions with its required parameters set.
func NewListWorkspaceActivitiesOptions(wID string) *ListWorkspaceActivitiesOptions {
	return &ListWorkspaceActivitiesOptions{
		WID: wID,
	}
}

// ListWorkspaceActivities lists the jobs run against a workspace.
func (s *SchematicsV1) ListWorkspaceActivities(ctx context.Context, opts *ListWorkspaceActivitiesOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListWorkspaceActivities", opts)
}

// GetWorkspaceActivityOptions holds the parameters of GetWorkspaceActivity.
type GetWorkspaceActivityOptions struct {
	WID        string `param:"wID"`
	ActivityID string `param:"activityID"`

	Headers map[string]string
}

// NewGetWorkspaceActivityOptions creates GetWorkspaceActivityOptions with its required parameters set.
func NewGetWorkspaceActivityOptions(wID string, activityID string) *GetWorkspaceActivityOptions {
	return &GetWorkspaceActivityOptions{
		WID:        wID,
		ActivityID: activityID,
	}
}

// GetWorkspaceActivity returns one workspace job.
func (s *SchematicsV1) GetWorkspaceActivity(ctx context.Context, opts *GetWorkspaceActivityOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetWorkspaceActivity", opts)
}

// ApplyWorkspaceCommandOptions holds the parameters of ApplyWorkspaceCommand.
type ApplyWorkspaceCommandOptions struct {
	WID string `param:"wID"`

	// IAM refresh token. Schematics uses it to act on the caller's behalf.
	RefreshToken string `param:"refreshToken"`

	// Token used in place of the refresh token for delegated runs.
	DelegatedToken *string                           `param:"delegatedToken"`
	ActionOptions  *WorkspaceActivityOptionsTemplate `param:"actionOptions"`

	Headers map[string]string
}

// NewApplyWorkspaceCommandOptions creates ApplyWorkspaceCommandOptions with its required parameters set.
func NewApplyWorkspaceCommandOptions(wID string, refreshToken string) *ApplyWorkspaceCommandOptions {
	return &ApplyWorkspaceCommandOptions{
		WID:          wID,
		RefreshToken: refreshToken,
	}
}

// ApplyWorkspaceCommand runs terraform apply.
func (s *SchematicsV1) ApplyWorkspaceCommand(ctx context.Context, opts *ApplyWorkspaceCommandOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ApplyWorkspaceCommand", opts)
}

// DestroyWorkspaceCommandOptions holds the parameters of DestroyWorkspaceCommand.
type DestroyWorkspaceCommandOptions struct {
	WID            string                            `param:"wID"`
	RefreshToken   string                            `param:"refreshToken"`
	DelegatedToken *string                           `param:"delegatedToken"`
	ActionOptions  *WorkspaceActivityOptionsTemplate `param:"actionOptions"`

	Headers map[string]string
}

// NewDestroyWorkspaceCommandOptions creates DestroyWorkspaceCommandOptions with its required parameters set.
func NewDestroyWorkspaceCommandOptions(wID string, refreshToken string) *DestroyWorkspaceCommandOptions {
	return &DestroyWorkspaceCommandOptions{
		WID:          wID,
		RefreshToken: refreshToken,
	}
}

// DestroyWorkspaceCommand runs terraform destroy.
func (s *SchematicsV1) DestroyWorkspaceCommand(ctx context.Context, opts *DestroyWorkspaceCommandOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DestroyWorkspaceCommand", opts)
}

// PlanWorkspaceCommandOptions holds the parameters of PlanWorkspaceCommand.
type PlanWorkspaceCommandOptions struct {
	WID            string  `param:"wID"`
	RefreshToken   string  `param:"refreshToken"`
	DelegatedToken *string `param:"delegatedToken"`

	Headers map[string]string
}

// NewPlanWorkspaceCommandOptions creates PlanWorkspaceCommandOptions with its required parameters set.
func NewPlanWorkspaceCommandOptions(wID string, refreshToken string) *PlanWorkspaceCommandOptions {
	return &PlanWorkspaceCommandOptions{
		WID:          wID,
		RefreshToken: refreshToken,
	}
}

// PlanWorkspaceCommand runs terraform plan.
func (s *SchematicsV1) PlanWorkspaceCommand(ctx context.Context, opts *PlanWorkspaceCommandOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "PlanWorkspaceCommand", opts)
}

// RefreshWorkspaceCommandOptions holds the parameters of RefreshWorkspaceCommand.
type RefreshWorkspaceCommandOptions struct {
	WID            string  `param:"wID"`
	RefreshToken   string  `param:"refreshToken"`
	DelegatedToken *string `param:"delegatedToken"`

	Headers map[string]string
}

// NewRefreshWorkspaceCommandOptions creates RefreshWorkspaceCommandOptions with its required parameters set.
func NewRefreshWorkspaceCommandOptions(wID string, refreshToken string) *RefreshWorkspaceCommandOptions {
	return &RefreshWorkspaceCommandOptions{
		WID:          wID,
		RefreshToken: refreshToken,
	}
}

// RefreshWorkspaceCommand runs terraform refresh.
func (s *SchematicsV1) RefreshWorkspaceCommand(ctx context.Context, opts *RefreshWorkspaceCommandOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "RefreshWorkspaceCommand", opts)
}

// GetWorkspaceLogUrlsOptions holds the parameters of GetWorkspaceLogUrls.
type GetWorkspaceLogUrlsOptions struct {
	WID string `param:"wID"`

	Headers map[string]string
}

// NewGetWorkspaceLogUrlsOptions creates GetWorkspaceLogUrlsOptions with its required parameters set.
func NewGetWorkspaceLogUrlsOptions(wID string) *GetWorkspaceLogUrlsOptions {
	return &GetWorkspaceLogUrlsOptions{
		WID: wID,
	}
}

// GetWorkspaceLogUrls returns the log URLs of recent workspace jobs.
func (s *SchematicsV1) GetWorkspaceLogUrls(ctx context.Context, opts *GetWorkspaceLogUrlsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetWorkspaceLogUrls", opts)
}

// GetTemplateLogsOptions holds the parameters of GetTemplateLogs.
type GetTemplateLogsOptions struct {
	WID               string  `param:"wID"`
	TID               string  `param:"tID"`
	LogTFCmd          *string `param:"logTFCmd"`
	LogTFPrefix       *string `param:"logTFPrefix"`
	LogTFNullResource *bool   `param:"logTFNullResource"`
	LogTFAnsible      *bool   `param:"logTFAnsible"`

	Headers map[string]string
}

// NewGetTemplateLogsOptions creates GetTemplateLogsOptions with its required parameters set.
func NewGetTemplateLogsOptions(wID string, tID string) *GetTemplateLogsOptions {
	return &GetTemplateLogsOptions{
		WID: wID,
		TID: tID,
	}
}

// GetTemplateLogs returns the latest Terraform logs of a workspace template.
func (s *SchematicsV1) GetTemplateLogs(ctx context.Context, opts *GetTemplateLogsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetTemplateLogs", opts)
}
