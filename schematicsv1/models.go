package schematicsv1

// Request models. Optional properties are pointers or nil-able slices and
// are omitted from the JSON body when unset.

// CatalogRef references an IBM Cloud catalog offering a workspace was created from.
type CatalogRef struct {
	DryRun          *bool   `json:"dry_run,omitempty"`
	OwningAccount   *string `json:"owning_account,omitempty"`
	ItemIconURL     *string `json:"item_icon_url,omitempty"`
	ItemID          *string `json:"item_id,omitempty"`
	ItemName        *string `json:"item_name,omitempty"`
	ItemReadmeURL   *string `json:"item_readme_url,omitempty"`
	ItemURL         *string `json:"item_url,omitempty"`
	LaunchURL       *string `json:"launch_url,omitempty"`
	OfferingVersion *string `json:"offering_version,omitempty"`
}

// Dependencies lists the workspaces a workspace depends on and is depended on by.
type Dependencies struct {
	Parents  []string `json:"parents,omitempty"`
	Children []string `json:"children,omitempty"`
}

// SharedTargetData describes the target cluster shared by workspace templates.
type SharedTargetData struct {
	ClusterCreatedOn  *string          `json:"cluster_created_on,omitempty"`
	ClusterID         *string          `json:"cluster_id,omitempty"`
	ClusterName       *string          `json:"cluster_name,omitempty"`
	ClusterType       *string          `json:"cluster_type,omitempty"`
	EntitlementKeys   []map[string]any `json:"entitlement_keys,omitempty"`
	Namespace         *string          `json:"namespace,omitempty"`
	Region            *string          `json:"region,omitempty"`
	ResourceGroupID   *string          `json:"resource_group_id,omitempty"`
	WorkerCount       *int64           `json:"worker_count,omitempty"`
	WorkerMachineType *string          `json:"worker_machine_type,omitempty"`
}

// TemplateSourceDataRequest is one template of a workspace.
type TemplateSourceDataRequest struct {
	EnvValues           []map[string]any           `json:"env_values,omitempty"`
	EnvValuesMetadata   []EnvironmentValueMetadata `json:"env_values_metadata,omitempty"`
	Folder              *string                    `json:"folder,omitempty"`
	Compact             *bool                      `json:"compact,omitempty"`
	InitStateFile       *string                    `json:"init_state_file,omitempty"`
	Injectors           []map[string]any           `json:"injectors,omitempty"`
	Type                *string                    `json:"type,omitempty"`
	UninstallScriptName *string                    `json:"uninstall_script_name,omitempty"`
	Values              *string                    `json:"values,omitempty"`
	ValuesMetadata      []map[string]any           `json:"values_metadata,omitempty"`
	Variablestore       []WorkspaceVariableRequest `json:"variablestore,omitempty"`
}

// EnvironmentValueMetadata flags an environment value as hidden or secure.
type EnvironmentValueMetadata struct {
	Hidden *bool   `json:"hidden,omitempty"`
	Name   *string `json:"name,omitempty"`
	Secure *bool   `json:"secure,omitempty"`
}

// WorkspaceVariableRequest is one Terraform input variable.
type WorkspaceVariableRequest struct {
	Description *string `json:"description,omitempty"`
	Name        *string `json:"name,omitempty"`
	Secure      *bool   `json:"secure,omitempty"`
	Type        *string `json:"type,omitempty"`
	UseDefault  *bool   `json:"use_default,omitempty"`
	Value       *string `json:"value,omitempty"`
}

// TemplateRepoRequest points a workspace at its template repository.
type TemplateRepoRequest struct {
	Branch       *string `json:"branch,omitempty"`
	Release      *string `json:"release,omitempty"`
	RepoShaValue *string `json:"repo_sha_value,omitempty"`
	RepoURL      *string `json:"repo_url,omitempty"`
	URL          *string `json:"url,omitempty"`
}

// WorkspaceStatusRequest freezes or locks a workspace.
type WorkspaceStatusRequest struct {
	Frozen     *bool   `json:"frozen,omitempty"`
	FrozenAt   *string `json:"frozen_at,omitempty"`
	FrozenBy   *string `json:"frozen_by,omitempty"`
	Locked     *bool   `json:"locked,omitempty"`
	LockedBy   *string `json:"locked_by,omitempty"`
	LockedTime *string `json:"locked_time,omitempty"`
}

// WorkspaceStatusMessage carries a status code and message for a workspace.
type WorkspaceStatusMessage struct {
	StatusCode *string `json:"status_code,omitempty"`
	StatusMsg  *string `json:"status_msg,omitempty"`
}

// WorkspaceActivityOptionsTemplate narrows an apply or destroy run.
type WorkspaceActivityOptionsTemplate struct {
	Target []string `json:"target,omitempty"`
	TfVars []string `json:"tf_vars,omitempty"`
}

// VariableData is a named input, output, setting or credential.
type VariableData struct {
	Name       *string           `json:"name,omitempty"`
	Value      *string           `json:"value,omitempty"`
	UseDefault *bool             `json:"use_default,omitempty"`
	Metadata   *VariableMetadata `json:"metadata,omitempty"`
	Link       *string           `json:"link,omitempty"`
}

// VariableMetadata describes how a variable is typed, validated and shown.
type VariableMetadata struct {
	Type          *string  `json:"type,omitempty"`
	Aliases       []string `json:"aliases,omitempty"`
	Description   *string  `json:"description,omitempty"`
	CloudDataType *string  `json:"cloud_data_type,omitempty"`
	DefaultValue  *string  `json:"default_value,omitempty"`
	LinkStatus    *string  `json:"link_status,omitempty"`
	Secure        *bool    `json:"secure,omitempty"`
	Immutable     *bool    `json:"immutable,omitempty"`
	Hidden        *bool    `json:"hidden,omitempty"`
	Required      *bool    `json:"required,omitempty"`
	Options       []string `json:"options,omitempty"`
	MinValue      *int64   `json:"min_value,omitempty"`
	MaxValue      *int64   `json:"max_value,omitempty"`
	MinLength     *int64   `json:"min_length,omitempty"`
	MaxLength     *int64   `json:"max_length,omitempty"`
	Matches       *string  `json:"matches,omitempty"`
	Position      *int64   `json:"position,omitempty"`
	GroupBy       *string  `json:"group_by,omitempty"`
	Source        *string  `json:"source,omitempty"`
}

// UserState records who set an action or agent state and when.
type UserState struct {
	State *string `json:"state,omitempty"`
	SetBy *string `json:"set_by,omitempty"`
	SetAt *string `json:"set_at,omitempty"`
}

// ExternalSource locates the template or playbook an action or blueprint runs.
type ExternalSource struct {
	SourceType string         `json:"source_type"`
	Git        *GitSource     `json:"git,omitempty"`
	Catalog    *CatalogSource `json:"catalog,omitempty"`
}

// GitSource is a Git repository source.
type GitSource struct {
	ComputedGitRepoURL *string `json:"computed_git_repo_url,omitempty"`
	GitRepoURL         *string `json:"git_repo_url,omitempty"`
	GitToken           *string `json:"git_token,omitempty"`
	GitRepoFolder      *string `json:"git_repo_folder,omitempty"`
	GitRelease         *string `json:"git_release,omitempty"`
	GitBranch          *string `json:"git_branch,omitempty"`
}

// CatalogSource is an IBM Cloud catalog source.
type CatalogSource struct {
	CatalogName                         *string `json:"catalog_name,omitempty"`
	CatalogID                           *string `json:"catalog_id,omitempty"`
	OfferingName                        *string `json:"offering_name,omitempty"`
	OfferingVersion                     *string `json:"offering_version,omitempty"`
	OfferingKind                        *string `json:"offering_kind,omitempty"`
	OfferingID                          *string `json:"offering_id,omitempty"`
	OfferingVersionID                   *string `json:"offering_version_id,omitempty"`
	OfferingRepoURL                     *string `json:"offering_repo_url,omitempty"`
	OfferingProvisionerWorkingDirectory *string `json:"offering_provisioner_working_directory,omitempty"`
}

// BastionResourceDefinition is the bastion host used to reach targets.
type BastionResourceDefinition struct {
	Name *string `json:"name,omitempty"`
	Host *string `json:"host,omitempty"`
}

// AgentInfo assigns a job to an agent.
type AgentInfo struct {
	ID                 *string `json:"id,omitempty"`
	Name               *string `json:"name,omitempty"`
	AssignmentPolicyID *string `json:"assignment_policy_id,omitempty"`
}

// JobStatus, JobData and JobLogSummary are polymorphic on the job's command
// object and are sent as given.
type (
	JobStatus     map[string]any
	JobData       map[string]any
	JobLogSummary map[string]any
)

// ResourceQuery is one query of a resource query definition.
type ResourceQuery struct {
	QueryType      *string              `json:"query_type,omitempty"`
	QueryCondition []ResourceQueryParam `json:"query_condition,omitempty"`
	QuerySelect    []string             `json:"query_select,omitempty"`
}

// ResourceQueryParam is a name/value condition of a resource query.
type ResourceQueryParam struct {
	Name        *string `json:"name,omitempty"`
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BlueprintConfigItem is one module of a blueprint.
type BlueprintConfigItem struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Source      *ExternalSource `json:"source,omitempty"`
	Inputs      []VariableData  `json:"inputs,omitempty"`
}

// BlueprintFlow orders blueprint modules. Its shape is defined by the
// blueprint schema version and is sent as given.
type BlueprintFlow map[string]any

// AgentMetadataInfo is a name with one or more values describing an agent.
type AgentMetadataInfo struct {
	Name  *string  `json:"name,omitempty"`
	Value []string `json:"value,omitempty"`
}

// AgentKPIData reports agent health indicators.
type AgentKPIData struct {
	AvailabilityIndicator *string          `json:"availability_indicator,omitempty"`
	LifecycleIndicator    *string          `json:"lifecycle_indicator,omitempty"`
	PercentUsageIndicator *string          `json:"percent_usage_indicator,omitempty"`
	ApplicationIndicators []map[string]any `json:"application_indicators,omitempty"`
	InfraIndicators       []map[string]any `json:"infra_indicators,omitempty"`
}

// KMSCRK identifies a customer root key in a KMS instance.
type KMSCRK struct {
	KMSName            *string `json:"kms_name,omitempty"`
	KMSPrivateEndpoint *string `json:"kms_private_endpoint,omitempty"`
	KeyCRN             *string `json:"key_crn,omitempty"`
}
