package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// ListInventoriesOptions holds the parameters of ListInventories.
type ListInventoriesOptions struct {
	Offset  *int64  `param:"offset"`
	Limit   *int64  `param:"limit"`
	Sort    *string `param:"sort"`
	Profile *string `param:"profile"`

	Headers map[string]string
}

// ListInventories lists resource inventories.
func (s *SchematicsV1) ListInventories(ctx context.Context, opts *ListInventoriesOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListInventories", opts)
}

// CreateInventoryOptions holds the parameters of CreateInventory.
type CreateInventoryOptions struct {
	Name            *string  `param:"name"`
	Description     *string  `param:"description"`
	Location        *string  `param:"location"`
	ResourceGroup   *string  `param:"resourceGroup"`
	InventoriesINI  *string  `param:"inventoriesINI"`
	ResourceQueries []string `param:"resourceQueries"`

	Headers map[string]string
}

// CreateInventory creates a resource inventory.
func (s *SchematicsV1) CreateInventory(ctx context.Context, opts *CreateInventoryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "CreateInventory", opts)
}

// GetInventoryOptions holds the parameters of GetInventory.
type GetInventoryOptions struct {
	InventoryID string  `param:"inventoryID"`
	Profile     *string `param:"profile"`

	Headers map[string]string
}

// NewGetInventoryOptions creates GetInventoryOptions with its required parameters set.
func NewGetInventoryOptions(inventoryID string) *GetInventoryOptions {
	return &GetInventoryOptions{
		InventoryID: inventoryID,
	}
}

// GetInventory returns an inventory.
func (s *SchematicsV1) GetInventory(ctx context.Context, opts *GetInventoryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetInventory", opts)
}

// ReplaceInventoryOptions holds the parameters of ReplaceInventory.
type ReplaceInventoryOptions struct {
	InventoryID     string   `param:"inventoryID"`
	Name            *string  `param:"name"`
	Description     *string  `param:"description"`
	Location        *string  `param:"location"`
	ResourceGroup   *string  `param:"resourceGroup"`
	InventoriesINI  *string  `param:"inventoriesINI"`
	ResourceQueries []string `param:"resourceQueries"`

	Headers map[string]string
}

// NewReplaceInventoryOptions creates ReplaceInventoryOptions with its required parameters set.
func NewReplaceInventoryOptions(inventoryID string) *ReplaceInventoryOptions {
	return &ReplaceInventoryOptions{
		InventoryID: inventoryID,
	}
}

// ReplaceInventory replaces an inventory.
func (s *SchematicsV1) ReplaceInventory(ctx context.Context, opts *ReplaceInventoryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ReplaceInventory", opts)
}

// UpdateInventoryOptions holds the parameters of UpdateInventory.
type UpdateInventoryOptions struct {
	InventoryID     string   `param:"inventoryID"`
	Name            *string  `param:"name"`
	Description     *string  `param:"description"`
	Location        *string  `param:"location"`
	ResourceGroup   *string  `param:"resourceGroup"`
	InventoriesINI  *string  `param:"inventoriesINI"`
	ResourceQueries []string `param:"resourceQueries"`

	Headers map[string]string
}

// NewUpdateInventoryOptions creates UpdateInventoryOptions with its required parameters set.
func NewUpdateInventoryOptions(inventoryID string) *UpdateInventoryOptions {
	return &UpdateInventoryOptions{
		InventoryID: inventoryID,
	}
}

// UpdateInventory updates the given fields of an inventory.
func (s *SchematicsV1) UpdateInventory(ctx context.Context, opts *UpdateInventoryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "UpdateInventory", opts)
}

// DeleteInventoryOptions holds the parameters of DeleteInventory.
type DeleteInventoryOptions struct {
	InventoryID string `param:"inventoryID"`
	Force       *bool  `param:"force"`
	Propagate   *bool  `param:"propagate"`

	Headers map[string]string
}

// NewDeleteInventoryOptions creates DeleteInventoryOptions with its required parameters set.
func NewDeleteInventoryOptions(inventoryID string) *DeleteInventoryOptions {
	return &DeleteInventoryOptions{
		InventoryID: inventoryID,
	}
}

// DeleteInventory deletes an inventory.
func (s *SchematicsV1) DeleteInventory(ctx context.Context, opts *DeleteInventoryOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DeleteInventory", opts)
}
