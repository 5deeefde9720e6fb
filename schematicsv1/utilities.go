package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// ListResourceGroupOptions holds the parameters of ListResourceGroup.
type ListResourceGroupOptions struct {
	Headers map[string]string
}

// ListResourceGroup lists the resource groups in the account.
func (s *SchematicsV1) ListResourceGroup(ctx context.Context, opts *ListResourceGroupOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListResourceGroup", opts)
}

// GetSchematicsVersionOptions holds the parameters of GetSchematicsVersion.
type GetSchematicsVersionOptions struct {
	Headers map[string]string
}

// GetSchematicsVersion returns the service version.
func (s *SchematicsV1) GetSchematicsVersion(ctx context.Context, opts *GetSchematicsVersionOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetSchematicsVersion", opts)
}

// ListLocationsOptions holds the parameters of ListLocations.
type ListLocationsOptions struct {
	Headers map[string]string
}

// ListLocations lists the locations where Schematics can run jobs.
func (s *SchematicsV1) ListLocations(ctx context.Context, opts *ListLocationsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListLocations", opts)
}
