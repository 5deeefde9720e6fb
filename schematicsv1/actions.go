package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// ListActionsOptions holds the parameters of ListActions.
type ListActionsOptions struct {
	Offset  *int64  `param:"offset"`
	Limit   *int64  `param:"limit"`
	Sort    *string `param:"sort"`
	Profile *string `param:"profile"`

	Headers map[string]string
}

// ListActions lists Ansible actions.
func (s *SchematicsV1) ListActions(ctx context.Context, opts *ListActionsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListActions", opts)
}

// CreateActionOptions holds the parameters of CreateAction.
type CreateActionOptions struct {
	XGithubToken            *string                    `param:"xGithubToken"`
	Name                    *string                    `param:"name"`
	Description             *string                    `param:"description"`
	Location                *string                    `param:"location"`
	ResourceGroup           *string                    `param:"resourceGroup"`
	BastionConnectionType   *string                    `param:"bastionConnectionType"`
	InventoryConnectionType *string                    `param:"inventoryConnectionType"`
	Tags                    []string                   `param:"tags"`
	UserState               *UserState                 `param:"userState"`
	SourceReadmeURL         *string                    `param:"sourceReadmeURL"`
	Source                  *ExternalSource            `param:"source"`
	SourceType              *string                    `param:"sourceType"`
	CommandParameter        *string                    `param:"commandParameter"`
	Inventory               *string                    `param:"inventory"`
	Credentials             []VariableData             `param:"credentials"`
	Bastion                 *BastionResourceDefinition `param:"bastion"`
	BastionCredential       *VariableData              `param:"bastionCredential"`
	TargetsINI              *string                    `param:"targetsINI"`
	Inputs                  []VariableData             `param:"inputs"`
	Outputs                 []VariableData             `param:"outputs"`
	Settings                []VariableData             `param:"settings"`

	Headers map[string]string
}

// CreateAction creates an Ansible action.
func (s *SchematicsV1) CreateAction(ctx context.Context, opts *CreateActionOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "CreateAction", opts)
}

// GetActionOptions holds the parameters of GetAction.
type GetActionOptions struct {
	ActionID string  `param:"actionID"`
	Profile  *string `param:"profile"`

	Headers map[string]string
}

// NewGetActionOptions creates GetActionOptions with its required parameters set.
func NewGetActionOptions(actionID string) *GetActionOptions {
	return &GetActionOptions{
		ActionID: actionID,
	}
}

// GetAction returns an action.
func (s *SchematicsV1) GetAction(ctx context.Context, opts *GetActionOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetAction", opts)
}

// UpdateActionOptions holds the parameters of UpdateAction.
type UpdateActionOptions struct {
	ActionID                string                     `param:"actionID"`
	XGithubToken            *string                    `param:"xGithubToken"`
	Name                    *string                    `param:"name"`
	Description             *string                    `param:"description"`
	Location                *string                    `param:"location"`
	ResourceGroup           *string                    `param:"resourceGroup"`
	BastionConnectionType   *string                    `param:"bastionConnectionType"`
	InventoryConnectionType *string                    `param:"inventoryConnectionType"`
	Tags                    []string                   `param:"tags"`
	UserState               *UserState                 `param:"userState"`
	SourceReadmeURL         *string                    `param:"sourceReadmeURL"`
	Source                  *ExternalSource            `param:"source"`
	SourceType              *string                    `param:"sourceType"`
	CommandParameter        *string                    `param:"commandParameter"`
	Inventory               *string                    `param:"inventory"`
	Credentials             []VariableData             `param:"credentials"`
	Bastion                 *BastionResourceDefinition `param:"bastion"`
	BastionCredential       *VariableData              `param:"bastionCredential"`
	TargetsINI              *string                    `param:"targetsINI"`
	Inputs                  []VariableData             `param:"inputs"`
	Outputs                 []VariableData             `param:"outputs"`
	Settings                []VariableData             `param:"settings"`

	Headers map[string]string
}

// NewUpdateActionOptions creates UpdateActionOptions with its required parameters set.
func NewUpdateActionOptions(actionID string) *UpdateActionOptions {
	return &UpdateActionOptions{
		ActionID: actionID,
	}
}

// UpdateAction updates an action.
func (s *SchematicsV1) UpdateAction(ctx context.Context, opts *UpdateActionOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "UpdateAction", opts)
}

// DeleteActionOptions holds the parameters of DeleteAction.
type DeleteActionOptions struct {
	ActionID string `param:"actionID"`

	// Delete even if the resource is in use.
	Force *bool `param:"force"`

	// Apply the delete to dependent resources as well.
	Propagate *bool `param:"propagate"`

	Headers map[string]string
}

// NewDeleteActionOptions creates DeleteActionOptions with its required parameters set.
func NewDeleteActionOptions(actionID string) *DeleteActionOptions {
	return &DeleteActionOptions{
		ActionID: actionID,
	}
}

// DeleteAction deletes an action.
func (s *SchematicsV1) DeleteAction(ctx context.Context, opts *DeleteActionOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DeleteAction", opts)
}

// UploadTemplateTarActionOptions holds the parameters of UploadTemplateTarAction.
type UploadTemplateTarActionOptions struct {
	ActionID        string  `param:"actionID"`
	File            []byte  `param:"file"`
	FileContentType *string `param:"fileContentType"`

	Headers map[string]string
}

// NewUploadTemplateTarActionOptions creates UploadTemplateTarActionOptions with its required parameters set.
func NewUploadTemplateTarActionOptions(actionID string) *UploadTemplateTarActionOptions {
	return &UploadTemplateTarActionOptions{
		ActionID: actionID,
	}
}

// UploadTemplateTarAction uploads a tar archive as the source of an action.
func (s *SchematicsV1) UploadTemplateTarAction(ctx context.Context, opts *UploadTemplateTarActionOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "UploadTemplateTarAction", opts)
}
