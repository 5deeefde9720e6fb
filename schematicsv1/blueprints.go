package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// ListBlueprintOptions holds the parameters of ListBlueprint.
type ListBlueprintOptions struct {
	Offset *int64 `param:"offset"`
	Limit  *int64 `param:"limit"`

	Headers map[string]string
}

// ListBlueprint lists blueprints.
func (s *SchematicsV1) ListBlueprint(ctx context.Context, opts *ListBlueprintOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListBlueprint", opts)
}

// CreateBlueprintOptions holds the parameters of CreateBlueprint.
type CreateBlueprintOptions struct {
	XGithubToken  *string               `param:"xGithubToken"`
	Name          *string               `param:"name"`
	SchemaVersion *string               `param:"schemaVersion"`
	Source        *ExternalSource       `param:"source"`
	Config        []BlueprintConfigItem `param:"config"`
	Description   *string               `param:"description"`
	ResourceGroup *string               `param:"resourceGroup"`
	Tags          []string              `param:"tags"`
	Location      *string               `param:"location"`
	Inputs        []VariableData        `param:"inputs"`
	Settings      []VariableData        `param:"settings"`
	Flow          BlueprintFlow         `param:"flow"`

	Headers map[string]string
}

// CreateBlueprint creates a blueprint from a blueprint definition.
func (s *SchematicsV1) CreateBlueprint(ctx context.Context, opts *CreateBlueprintOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "CreateBlueprint", opts)
}

// GetBlueprintOptions holds the parameters of GetBlueprint.
type GetBlueprintOptions struct {
	BlueprintID string  `param:"blueprintID"`
	Profile     *string `param:"profile"`

	Headers map[string]string
}

// NewGetBlueprintOptions creates GetBlueprintOptions with its required parameters set.
func NewGetBlueprintOptions(blueprintID string) *GetBlueprintOptions {
	return &GetBlueprintOptions{
		BlueprintID: blueprintID,
	}
}

// GetBlueprint returns a blueprint.
func (s *SchematicsV1) GetBlueprint(ctx context.Context, opts *GetBlueprintOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetBlueprint", opts)
}

// ReplaceBlueprintOptions holds the parameters of ReplaceBlueprint.
type ReplaceBlueprintOptions struct {
	BlueprintID   string                `param:"blueprintID"`
	XGithubToken  *string               `param:"xGithubToken"`
	Name          *string               `param:"name"`
	SchemaVersion *string               `param:"schemaVersion"`
	Source        *ExternalSource       `param:"source"`
	Config        []BlueprintConfigItem `param:"config"`
	Description   *string               `param:"description"`
	ResourceGroup *string               `param:"resourceGroup"`
	Tags          []string              `param:"tags"`
	Location      *string               `param:"location"`
	Inputs        []VariableData        `param:"inputs"`
	Settings      []VariableData        `param:"settings"`
	Flow          BlueprintFlow         `param:"flow"`

	Headers map[string]string
}

// NewReplaceBlueprintOptions creates ReplaceBlueprintOptions with its required parameters set.
func NewReplaceBlueprintOptions(blueprintID string) *ReplaceBlueprintOptions {
	return &ReplaceBlueprintOptions{
		BlueprintID: blueprintID,
	}
}

// ReplaceBlueprint replaces a blueprint definition.
func (s *SchematicsV1) ReplaceBlueprint(ctx context.Context, opts *ReplaceBlueprintOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ReplaceBlueprint", opts)
}

// DeleteBlueprintOptions holds the parameters of DeleteBlueprint.
type DeleteBlueprintOptions struct {
	BlueprintID  string `param:"blueprintID"`
	RefreshToken string `param:"refreshToken"`
	Force        *bool  `param:"force"`
	Propagate    *bool  `param:"propagate"`
	Destroy      *bool  `param:"destroy"`

	Headers map[string]string
}

// NewDeleteBlueprintOptions creates DeleteBlueprintOptions with its required parameters set.
func NewDeleteBlueprintOptions(blueprintID string, refreshToken string) *DeleteBlueprintOptions {
	return &DeleteBlueprintOptions{
		BlueprintID:  blueprintID,
		RefreshToken: refreshToken,
	}
}

// DeleteBlueprint deletes a blueprint, and with Destroy set, its resources.
func (s *SchematicsV1) DeleteBlueprint(ctx context.Context, opts *DeleteBlueprintOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DeleteBlueprint", opts)
}
