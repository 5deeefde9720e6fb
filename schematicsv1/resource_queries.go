package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// ListResourceQueryOptions holds the parameters of ListResourceQuery.
type ListResourceQueryOptions struct {
	Offset  *int64  `param:"offset"`
	Limit   *int64  `param:"limit"`
	Sort    *string `param:"sort"`
	Profile *string `param:"profile"`

	Headers map[string]string
}

// ListResourceQuery lists resource queries.
func (s *SchematicsV1) ListResourceQuery(ctx context.Context, opts *ListResourceQueryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListResourceQuery", opts)
}

// CreateResourceQueryOptions holds the parameters of CreateResourceQuery.
type CreateResourceQueryOptions struct {
	Type    *string         `param:"type"`
	Name    *string         `param:"name"`
	Queries []ResourceQuery `param:"queries"`

	Headers map[string]string
}

// CreateResourceQuery creates a resource query.
func (s *SchematicsV1) CreateResourceQuery(ctx context.Context, opts *CreateResourceQueryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "CreateResourceQuery", opts)
}

// GetResourcesQueryOptions holds the parameters of GetResourcesQuery.
type GetResourcesQueryOptions struct {
	QueryID string `param:"queryID"`

	Headers map[string]string
}

// NewGetResourcesQueryOptions creates GetResourcesQueryOptions with its required parameters set.
func NewGetResourcesQueryOptions(queryID string) *GetResourcesQueryOptions {
	return &GetResourcesQueryOptions{
		QueryID: queryID,
	}
}

// GetResourcesQuery returns a resource query.
func (s *SchematicsV1) GetResourcesQuery(ctx context.Context, opts *GetResourcesQueryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetResourcesQuery", opts)
}

// ReplaceResourcesQueryOptions holds the parameters of ReplaceResourcesQuery.
type ReplaceResourcesQueryOptions struct {
	QueryID string          `param:"queryID"`
	Type    *string         `param:"type"`
	Name    *string         `param:"name"`
	Queries []ResourceQuery `param:"queries"`

	Headers map[string]string
}

// NewReplaceResourcesQueryOptions creates ReplaceResourcesQueryOptions with its required parameters set.
func NewReplaceResourcesQueryOptions(queryID string) *ReplaceResourcesQueryOptions {
	return &ReplaceResourcesQueryOptions{
		QueryID: queryID,
	}
}

// ReplaceResourcesQuery replaces a resource query.
func (s *SchematicsV1) ReplaceResourcesQuery(ctx context.Context, opts *ReplaceResourcesQueryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ReplaceResourcesQuery", opts)
}

// ExecuteResourceQueryOptions holds the parameters of ExecuteResourceQuery.
type ExecuteResourceQueryOptions struct {
	QueryID string `param:"queryID"`

	Headers map[string]string
}

// NewExecuteResourceQueryOptions creates ExecuteResourceQueryOptions with its required parameters set.
func NewExecuteResourceQueryOptions(queryID string) *ExecuteResourceQueryOptions {
	return &ExecuteResourceQueryOptions{
		QueryID: queryID,
	}
}

// ExecuteResourceQuery runs a resource query and returns the matching resources.
func (s *SchematicsV1) ExecuteResourceQuery(ctx context.Context, opts *ExecuteResourceQueryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ExecuteResourceQuery", opts)
}

// DeleteResourcesQueryOptions holds the parameters of DeleteResourcesQuery.
type DeleteResourcesQueryOptions struct {
	QueryID   string `param:"queryID"`
	Force     *bool  `param:"force"`
	Propagate *bool  `param:"propagate"`

	Headers map[string]string
}

// NewDeleteResourcesQueryOptions creates DeleteResourcesQueryOptions with its required parameters set.
func NewDeleteResourcesQueryOptions(queryID string) *DeleteResourcesQueryOptions {
	return &DeleteResourcesQueryOptions{
		QueryID: queryID,
	}
}

// DeleteResourcesQuery deletes a resource query.
func (s *SchematicsV1) DeleteResourcesQuery(ctx context.Context, opts *DeleteResourcesQueryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DeleteResourcesQuery", opts)
}
