package schematicsv1

import (
	"net/http"

	"github.com/IBM/schematics-go-sdk/operation"
)

// operations is the table behind every service method, grouped by API area.
// It keeps the layout cmd/generate-operations renders so a regenerated table
// diffs cleanly against it.
var operations = []operation.Operation{
	// utilities
	{
		ID:     "ListResourceGroup",
		Method: http.MethodGet,
		Path:   "/v1/resource_groups",
	},
	{
		ID:     "GetSchematicsVersion",
		Method: http.MethodGet,
		Path:   "/v1/version",
	},
	{
		ID:     "ListLocations",
		Method: http.MethodGet,
		Path:   "/v2/locations",
	},

	// workspaces
	{
		ID:     "ListWorkspaces",
		Method: http.MethodGet,
		Path:   "/v1/workspaces",
		Fields: []operation.Field{
			operation.Query("offset", "offset"),
			operation.Query("limit", "limit"),
		},
	},
	{
		ID:     "CreateWorkspace",
		Method: http.MethodPost,
		Path:   "/v1/workspaces",
		Fields: []operation.Field{
			operation.Header("xGithubToken", "X-Github-token"),
			operation.Body("appliedShareddataIDs", "applied_shareddata_ids"),
			operation.Body("catalogRef", "catalog_ref"),
			operation.Body("dependencies", "dependencies"),
			operation.Body("description", "description"),
			operation.Body("location", "location"),
			operation.Body("name", "name"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("sharedData", "shared_data"),
			operation.Body("tags", "tags"),
			operation.Body("templateData", "template_data"),
			operation.Body("templateRef", "template_ref"),
			operation.Body("templateRepo", "template_repo"),
			operation.Body("type", "type"),
			operation.Body("workspaceStatus", "workspace_status"),
			operation.Body("agentID", "agent_id"),
			operation.Body("settings", "settings"),
		},
	},
	{
		ID:     "GetWorkspace",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
		},
	},
	{
		ID:     "ReplaceWorkspace",
		Method: http.MethodPut,
		Path:   "/v1/workspaces/{w_id}",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Header("xGithubToken", "X-Github-token"),
			operation.Body("catalogRef", "catalog_ref"),
			operation.Body("description", "description"),
			operation.Body("name", "name"),
			operation.Body("sharedData", "shared_data"),
			operation.Body("tags", "tags"),
			operation.Body("templateData", "template_data"),
			operation.Body("templateRepo", "template_repo"),
			operation.Body("type", "type"),
			operation.Body("workspaceStatus", "workspace_status"),
			operation.Body("workspaceStatusMsg", "workspace_status_msg"),
			operation.Body("agentID", "agent_id"),
			operation.Body("settings", "settings"),
		},
	},
	{
		ID:     "UpdateWorkspace",
		Method: http.MethodPatch,
		Path:   "/v1/workspaces/{w_id}",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Header("xGithubToken", "X-Github-token"),
			operation.Body("catalogRef", "catalog_ref"),
			operation.Body("description", "description"),
			operation.Body("name", "name"),
			operation.Body("sharedData", "shared_data"),
			operation.Body("tags", "tags"),
			operation.Body("templateData", "template_data"),
			operation.Body("templateRepo", "template_repo"),
			operation.Body("type", "type"),
			operation.Body("workspaceStatus", "workspace_status"),
			operation.Body("workspaceStatusMsg", "workspace_status_msg"),
			operation.Body("agentID", "agent_id"),
			operation.Body("settings", "settings"),
		},
	},
	{
		ID:     "DeleteWorkspace",
		Method: http.MethodDelete,
		Path:   "/v1/workspaces/{w_id}",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Query("destroyResources", "destroy_resources"),
		},
	},
	{
		ID:     "GetWorkspaceReadme",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/templates/readme",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Query("ref", "ref"),
			operation.Query("formatted", "formatted"),
		},
	},
	{
		ID:     "TemplateRepoUpload",
		Method: http.MethodPut,
		Path:   "/v1/workspaces/{w_id}/template_data/{t_id}/template_repo_upload",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Path("tID", "t_id"),
			operation.FormFile("file", "file"),
			operation.FormContentType("fileContentType", "file"),
		},
	},
	{
		ID:     "GetWorkspaceInputs",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/template_data/{t_id}/values",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Path("tID", "t_id"),
		},
	},
	{
		ID:     "ReplaceWorkspaceInputs",
		Method: http.MethodPut,
		Path:   "/v1/workspaces/{w_id}/template_data/{t_id}/values",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Path("tID", "t_id"),
			operation.Body("envValues", "env_values"),
			operation.Body("envValuesMetadata", "env_values_metadata"),
			operation.Body("values", "values"),
			operation.Body("variablestore", "variablestore"),
		},
	},
	{
		ID:     "GetWorkspaceOutputs",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/output_values",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
		},
	},
	{
		ID:     "GetWorkspaceResources",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/resources",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
		},
	},
	{
		ID:     "GetWorkspaceState",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/state_stores",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
		},
	},
	{
		ID:     "ListWorkspaceActivities",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/actions",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Query("offset", "offset"),
			operation.Query("limit", "limit"),
		},
	},
	{
		ID:     "GetWorkspaceActivity",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/actions/{activity_id}",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Path("activityID", "activity_id"),
		},
	},
	{
		ID:     "ApplyWorkspaceCommand",
		Method: http.MethodPut,
		Path:   "/v1/workspaces/{w_id}/apply",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Header("delegatedToken", "delegated_token"),
			operation.Body("actionOptions", "action_options"),
		},
	},
	{
		ID:     "DestroyWorkspaceCommand",
		Method: http.MethodPut,
		Path:   "/v1/workspaces/{w_id}/destroy",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Header("delegatedToken", "delegated_token"),
			operation.Body("actionOptions", "action_options"),
		},
	},
	{
		ID:     "PlanWorkspaceCommand",
		Method: http.MethodPost,
		Path:   "/v1/workspaces/{w_id}/plan",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Header("delegatedToken", "delegated_token"),
		},
	},
	{
		ID:     "RefreshWorkspaceCommand",
		Method: http.MethodPut,
		Path:   "/v1/workspaces/{w_id}/refresh",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Header("delegatedToken", "delegated_token"),
		},
	},
	{
		ID:     "GetWorkspaceLogUrls",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/log_stores",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
		},
	},
	{
		ID:     "GetTemplateLogs",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{w_id}/runtime_data/{t_id}/log_store",
		Fields: []operation.Field{
			operation.Path("wID", "w_id"),
			operation.Path("tID", "t_id"),
			operation.Query("logTFCmd", "log_tf_cmd"),
			operation.Query("logTFPrefix", "log_tf_prefix"),
			operation.Query("logTFNullResource", "log_tf_null_resource"),
			operation.Query("logTFAnsible", "log_tf_ansible"),
		},
	},

	// actions
	{
		ID:     "ListActions",
		Method: http.MethodGet,
		Path:   "/v2/actions",
		Fields: []operation.Field{
			operation.Query("offset", "offset"),
			operation.Query("limit", "limit"),
			operation.Query("sort", "sort"),
			operation.Query("profile", "profile"),
		},
	},
	{
		ID:     "CreateAction",
		Method: http.MethodPost,
		Path:   "/v2/actions",
		Fields: []operation.Field{
			operation.Header("xGithubToken", "X-Github-token"),
			operation.Body("name", "name"),
			operation.Body("description", "description"),
			operation.Body("location", "location"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("bastionConnectionType", "bastion_connection_type"),
			operation.Body("inventoryConnectionType", "inventory_connection_type"),
			operation.Body("tags", "tags"),
			operation.Body("userState", "user_state"),
			operation.Body("sourceReadmeURL", "source_readme_url"),
			operation.Body("source", "source"),
			operation.Body("sourceType", "source_type"),
			operation.Body("commandParameter", "command_parameter"),
			operation.Body("inventory", "inventory"),
			operation.Body("credentials", "credentials"),
			operation.Body("bastion", "bastion"),
			operation.Body("bastionCredential", "bastion_credential"),
			operation.Body("targetsINI", "targets_ini"),
			operation.Body("inputs", "inputs"),
			operation.Body("outputs", "outputs"),
			operation.Body("settings", "settings"),
		},
	},
	{
		ID:     "GetAction",
		Method: http.MethodGet,
		Path:   "/v2/actions/{action_id}",
		Fields: []operation.Field{
			operation.Path("actionID", "action_id"),
			operation.Query("profile", "profile"),
		},
	},
	{
		ID:     "UpdateAction",
		Method: http.MethodPatch,
		Path:   "/v2/actions/{action_id}",
		Fields: []operation.Field{
			operation.Path("actionID", "action_id"),
			operation.Header("xGithubToken", "X-Github-token"),
			operation.Body("name", "name"),
			operation.Body("description", "description"),
			operation.Body("location", "location"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("bastionConnectionType", "bastion_connection_type"),
			operation.Body("inventoryConnectionType", "inventory_connection_type"),
			operation.Body("tags", "tags"),
			operation.Body("userState", "user_state"),
			operation.Body("sourceReadmeURL", "source_readme_url"),
			operation.Body("source", "source"),
			operation.Body("sourceType", "source_type"),
			operation.Body("commandParameter", "command_parameter"),
			operation.Body("inventory", "inventory"),
			operation.Body("credentials", "credentials"),
			operation.Body("bastion", "bastion"),
			operation.Body("bastionCredential", "bastion_credential"),
			operation.Body("targetsINI", "targets_ini"),
			operation.Body("inputs", "inputs"),
			operation.Body("outputs", "outputs"),
			operation.Body("settings", "settings"),
		},
	},
	{
		ID:     "DeleteAction",
		Method: http.MethodDelete,
		Path:   "/v2/actions/{action_id}",
		Fields: []operation.Field{
			operation.Path("actionID", "action_id"),
			operation.Header("force", "force"),
			operation.Header("propagate", "propagate"),
		},
	},
	{
		ID:     "UploadTemplateTarAction",
		Method: http.MethodPut,
		Path:   "/v2/actions/{action_id}/template_repo_upload",
		Fields: []operation.Field{
			operation.Path("actionID", "action_id"),
			operation.FormFile("file", "file"),
			operation.FormContentType("fileContentType", "file"),
		},
	},

	// jobs
	{
		ID:     "ListJobs",
		Method: http.MethodGet,
		Path:   "/v2/jobs",
		Fields: []operation.Field{
			operation.Query("offset", "offset"),
			operation.Query("limit", "limit"),
			operation.Query("sort", "sort"),
			operation.Query("profile", "profile"),
			operation.Query("resource", "resource"),
			operation.Query("resourceID", "resource_id"),
			operation.Query("actionID", "action_id"),
			operation.Query("workspaceID", "workspace_id"),
			operation.Query("list", "list"),
		},
	},
	{
		ID:     "CreateJob",
		Method: http.MethodPost,
		Path:   "/v2/jobs",
		Fields: []operation.Field{
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Body("commandObject", "command_object"),
			operation.Body("commandObjectID", "command_object_id"),
			operation.Body("commandName", "command_name"),
			operation.Body("commandParameter", "command_parameter"),
			operation.Body("commandOptions", "command_options"),
			operation.Body("inputs", "inputs"),
			operation.Body("settings", "settings"),
			operation.Body("tags", "tags"),
			operation.Body("location", "location"),
			operation.Body("status", "status"),
			operation.Body("data", "data"),
			operation.Body("bastion", "bastion"),
			operation.Body("logSummary", "log_summary"),
			operation.Body("agent", "agent"),
		},
	},
	{
		ID:     "GetJob",
		Method: http.MethodGet,
		Path:   "/v2/jobs/{job_id}",
		Fields: []operation.Field{
			operation.Path("jobID", "job_id"),
			operation.Query("profile", "profile"),
		},
	},
	{
		ID:     "UpdateJob",
		Method: http.MethodPut,
		Path:   "/v2/jobs/{job_id}",
		Fields: []operation.Field{
			operation.Path("jobID", "job_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Body("commandObject", "command_object"),
			operation.Body("commandObjectID", "command_object_id"),
			operation.Body("commandName", "command_name"),
			operation.Body("commandParameter", "command_parameter"),
			operation.Body("commandOptions", "command_options"),
			operation.Body("inputs", "inputs"),
			operation.Body("settings", "settings"),
			operation.Body("tags", "tags"),
			operation.Body("location", "location"),
			operation.Body("status", "status"),
			operation.Body("data", "data"),
			operation.Body("bastion", "bastion"),
			operation.Body("logSummary", "log_summary"),
			operation.Body("agent", "agent"),
		},
	},
	{
		ID:     "DeleteJob",
		Method: http.MethodDelete,
		Path:   "/v2/jobs/{job_id}",
		Fields: []operation.Field{
			operation.Path("jobID", "job_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Header("force", "force"),
			operation.Header("propagate", "propagate"),
		},
	},
	{
		ID:     "ListJobLogs",
		Method: http.MethodGet,
		Path:   "/v2/jobs/{job_id}/logs",
		Fields: []operation.Field{
			operation.Path("jobID", "job_id"),
		},
	},

	// inventories
	{
		ID:     "ListInventories",
		Method: http.MethodGet,
		Path:   "/v2/inventories",
		Fields: []operation.Field{
			operation.Query("offset", "offset"),
			operation.Query("limit", "limit"),
			operation.Query("sort", "sort"),
			operation.Query("profile", "profile"),
		},
	},
	{
		ID:     "CreateInventory",
		Method: http.MethodPost,
		Path:   "/v2/inventories",
		Fields: []operation.Field{
			operation.Body("name", "name"),
			operation.Body("description", "description"),
			operation.Body("location", "location"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("inventoriesINI", "inventories_ini"),
			operation.Body("resourceQueries", "resource_queries"),
		},
	},
	{
		ID:     "GetInventory",
		Method: http.MethodGet,
		Path:   "/v2/inventories/{inventory_id}",
		Fields: []operation.Field{
			operation.Path("inventoryID", "inventory_id"),
			operation.Query("profile", "profile"),
		},
	},
	{
		ID:     "ReplaceInventory",
		Method: http.MethodPut,
		Path:   "/v2/inventories/{inventory_id}",
		Fields: []operation.Field{
			operation.Path("inventoryID", "inventory_id"),
			operation.Body("name", "name"),
			operation.Body("description", "description"),
			operation.Body("location", "location"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("inventoriesINI", "inventories_ini"),
			operation.Body("resourceQueries", "resource_queries"),
		},
	},
	{
		ID:     "UpdateInventory",
		Method: http.MethodPatch,
		Path:   "/v2/inventories/{inventory_id}",
		Fields: []operation.Field{
			operation.Path("inventoryID", "inventory_id"),
			operation.Body("name", "name"),
			operation.Body("description", "description"),
			operation.Body("location", "location"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("inventoriesINI", "inventories_ini"),
			operation.Body("resourceQueries", "resource_queries"),
		},
	},
	{
		ID:     "DeleteInventory",
		Method: http.MethodDelete,
		Path:   "/v2/inventories/{inventory_id}",
		Fields: []operation.Field{
			operation.Path("inventoryID", "inventory_id"),
			operation.Header("force", "force"),
			operation.Header("propagate", "propagate"),
		},
	},

	// resource queries
	{
		ID:     "ListResourceQuery",
		Method: http.MethodGet,
		Path:   "/v2/resources_query",
		Fields: []operation.Field{
			operation.Query("offset", "offset"),
			operation.Query("limit", "limit"),
			operation.Query("sort", "sort"),
			operation.Query("profile", "profile"),
		},
	},
	{
		ID:     "CreateResourceQuery",
		Method: http.MethodPost,
		Path:   "/v2/resources_query",
		Fields: []operation.Field{
			operation.Body("type", "type"),
			operation.Body("name", "name"),
			operation.Body("queries", "queries"),
		},
	},
	{
		ID:     "GetResourcesQuery",
		Method: http.MethodGet,
		Path:   "/v2/resources_query/{query_id}",
		Fields: []operation.Field{
			operation.Path("queryID", "query_id"),
		},
	},
	{
		ID:     "ReplaceResourcesQuery",
		Method: http.MethodPut,
		Path:   "/v2/resources_query/{query_id}",
		Fields: []operation.Field{
			operation.Path("queryID", "query_id"),
			operation.Body("type", "type"),
			operation.Body("name", "name"),
			operation.Body("queries", "queries"),
		},
	},
	{
		ID:     "ExecuteResourceQuery",
		Method: http.MethodPost,
		Path:   "/v2/resources_query/{query_id}/execute",
		Fields: []operation.Field{
			operation.Path("queryID", "query_id"),
		},
	},
	{
		ID:     "DeleteResourcesQuery",
		Method: http.MethodDelete,
		Path:   "/v2/resources_query/{query_id}",
		Fields: []operation.Field{
			operation.Path("queryID", "query_id"),
			operation.Header("force", "force"),
			operation.Header("propagate", "propagate"),
		},
	},

	// blueprints
	{
		ID:     "ListBlueprint",
		Method: http.MethodGet,
		Path:   "/v2/blueprints",
		Fields: []operation.Field{
			operation.Query("offset", "offset"),
			operation.Query("limit", "limit"),
		},
	},
	{
		ID:     "CreateBlueprint",
		Method: http.MethodPost,
		Path:   "/v2/blueprints",
		Fields: []operation.Field{
			operation.Header("xGithubToken", "X-Github-token"),
			operation.Body("name", "name"),
			operation.Body("schemaVersion", "schema_version"),
			operation.Body("source", "source"),
			operation.Body("config", "config"),
			operation.Body("description", "description"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("tags", "tags"),
			operation.Body("location", "location"),
			operation.Body("inputs", "inputs"),
			operation.Body("settings", "settings"),
			operation.Body("flow", "flow"),
		},
	},
	{
		ID:     "GetBlueprint",
		Method: http.MethodGet,
		Path:   "/v2/blueprints/{blueprint_id}",
		Fields: []operation.Field{
			operation.Path("blueprintID", "blueprint_id"),
			operation.Query("profile", "profile"),
		},
	},
	{
		ID:     "ReplaceBlueprint",
		Method: http.MethodPut,
		Path:   "/v2/blueprints/{blueprint_id}",
		Fields: []operation.Field{
			operation.Path("blueprintID", "blueprint_id"),
			operation.Header("xGithubToken", "X-Github-token"),
			operation.Body("name", "name"),
			operation.Body("schemaVersion", "schema_version"),
			operation.Body("source", "source"),
			operation.Body("config", "config"),
			operation.Body("description", "description"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("tags", "tags"),
			operation.Body("location", "location"),
			operation.Body("inputs", "inputs"),
			operation.Body("settings", "settings"),
			operation.Body("flow", "flow"),
		},
	},
	{
		ID:     "DeleteBlueprint",
		Method: http.MethodDelete,
		Path:   "/v2/blueprints/{blueprint_id}",
		Fields: []operation.Field{
			operation.Path("blueprintID", "blueprint_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Header("force", "force"),
			operation.Header("propagate", "propagate"),
			operation.Query("destroy", "destroy"),
		},
	},

	// agents
	{
		ID:     "ListAgentData",
		Method: http.MethodGet,
		Path:   "/v2/agents",
		Fields: []operation.Field{
			operation.Query("offset", "offset"),
			operation.Query("limit", "limit"),
			operation.Query("profile", "profile"),
			operation.Query("filter", "filter"),
		},
	},
	{
		ID:     "RegisterAgent",
		Method: http.MethodPost,
		Path:   "/v2/agents",
		Fields: []operation.Field{
			operation.Body("name", "name"),
			operation.Body("agentLocation", "agent_location"),
			operation.Body("location", "location"),
			operation.Body("profileID", "profile_id"),
			operation.Body("description", "description"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("tags", "tags"),
			operation.Body("agentMetadata", "agent_metadata"),
			operation.Body("agentInputs", "agent_inputs"),
			operation.Body("userState", "user_state"),
			operation.Body("agentKPI", "agent_kpi"),
		},
	},
	{
		ID:     "GetAgentVersions",
		Method: http.MethodGet,
		Path:   "/v2/agents/versions",
	},
	{
		ID:     "GetAgentData",
		Method: http.MethodGet,
		Path:   "/v2/agents/{agent_id}",
		Fields: []operation.Field{
			operation.Path("agentID", "agent_id"),
			operation.Query("profile", "profile"),
		},
	},
	{
		ID:     "UpdateAgentData",
		Method: http.MethodPut,
		Path:   "/v2/agents/{agent_id}",
		Fields: []operation.Field{
			operation.Path("agentID", "agent_id"),
			operation.Body("name", "name"),
			operation.Body("agentLocation", "agent_location"),
			operation.Body("location", "location"),
			operation.Body("profileID", "profile_id"),
			operation.Body("description", "description"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("tags", "tags"),
			operation.Body("agentMetadata", "agent_metadata"),
			operation.Body("agentInputs", "agent_inputs"),
			operation.Body("userState", "user_state"),
			operation.Body("agentKPI", "agent_kpi"),
		},
	},
	{
		ID:     "DeleteAgentData",
		Method: http.MethodDelete,
		Path:   "/v2/agents/{agent_id}",
		Fields: []operation.Field{
			operation.Path("agentID", "agent_id"),
			operation.Header("force", "force"),
		},
	},
	{
		ID:     "DeployAgentJob",
		Method: http.MethodPut,
		Path:   "/v2/agents/{agent_id}/deploy",
		Fields: []operation.Field{
			operation.Path("agentID", "agent_id"),
			operation.Header("refreshToken", "refresh_token").MarkRequired(),
			operation.Header("force", "force"),
		},
	},

	// settings
	{
		ID:     "GetKmsSettings",
		Method: http.MethodGet,
		Path:   "/v2/settings/kms",
		Fields: []operation.Field{
			operation.Query("location", "location").MarkRequired(),
		},
	},
	{
		ID:     "ReplaceKmsSettings",
		Method: http.MethodPut,
		Path:   "/v2/settings/kms",
		Fields: []operation.Field{
			operation.Body("location", "location"),
			operation.Body("encryptionScheme", "encryption_scheme"),
			operation.Body("resourceGroup", "resource_group"),
			operation.Body("primaryCRK", "primary_crk"),
			operation.Body("secondaryCRK", "secondary_crk"),
		},
	},
	{
		ID:     "ListKms",
		Method: http.MethodGet,
		Path:   "/v2/settings/kms_instances",
		Fields: []operation.Field{
			operation.Query("encryptionScheme", "encryption_scheme").MarkRequired(),
			operation.Query("location", "location").MarkRequired(),
			operation.Query("resourceGroup", "resource_group"),
			operation.Query("limit", "limit"),
			operation.Query("sort", "sort"),
		},
	},
}
