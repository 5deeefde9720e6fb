package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// GetKmsSettingsOptions holds the parameters of GetKmsSettings.
type GetKmsSettingsOptions struct {
	Location string `param:"location"`

	Headers map[string]string
}

// NewGetKmsSettingsOptions creates GetKmsSettingsOptions with its required parameters set.
func NewGetKmsSettingsOptions(location string) *GetKmsSettingsOptions {
	return &GetKmsSettingsOptions{
		Location: location,
	}
}

// GetKmsSettings returns the KMS settings for a location.
func (s *SchematicsV1) GetKmsSettings(ctx context.Context, opts *GetKmsSettingsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetKmsSettings", opts)
}

// ReplaceKmsSettingsOptions holds the parameters of ReplaceKmsSettings.
type ReplaceKmsSettingsOptions struct {
	Location         *string `param:"location"`
	EncryptionScheme *string `param:"encryptionScheme"`
	ResourceGroup    *string `param:"resourceGroup"`
	PrimaryCRK       *KMSCRK `param:"primaryCRK"`
	SecondaryCRK     *KMSCRK `param:"secondaryCRK"`

	Headers map[string]string
}

// ReplaceKmsSettings replaces the KMS settings for a location.
func (s *SchematicsV1) ReplaceKmsSettings(ctx context.Context, opts *ReplaceKmsSettingsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ReplaceKmsSettings", opts)
}

// ListKmsOptions holds the parameters of ListKms.
type ListKmsOptions struct {
	// EncryptionSchemeBYOK or EncryptionSchemeKYOK.
	EncryptionScheme string  `param:"encryptionScheme"`
	Location         string  `param:"location"`
	ResourceGroup    *string `param:"resourceGroup"`
	Limit            *int64  `param:"limit"`
	Sort             *string `param:"sort"`

	Headers map[string]string
}

// NewListKmsOptions creates ListKmsOptions with its required parameters set.
func NewListKmsOptions(encryptionScheme string, location string) *ListKmsOptions {
	return &ListKmsOptions{
		EncryptionScheme: encryptionScheme,
		Location:         location,
	}
}

// ListKms lists the KMS instances usable for an encryption scheme.
func (s *SchematicsV1) ListKms(ctx context.Context, opts *ListKmsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListKms", opts)
}
