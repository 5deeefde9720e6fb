package main

import (
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/IBM/schematics-go-sdk/operation"
	"github.com/IBM/schematics-go-sdk/schematicsv1"
)

const testSpec = `
openapi: 3.0.3
info:
  title: Schematics
  version: "1.0"
paths:
  /v1/workspaces/{w_id}:
    parameters:
      - name: w_id
        in: path
        required: true
        schema: {type: string}
    get:
      operationId: get_workspace
      tags: [workspaces]
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema: {type: object}
    delete:
      operationId: delete_workspace
      tags: [workspaces]
      parameters:
        - name: refresh_token
          in: header
          required: true
          schema: {type: string}
        - name: destroy_resources
          in: query
          schema: {type: string}
      responses:
        "200":
          description: ok
  /v1/workspaces/{w_id}/template_data/{t_id}/template_repo_upload:
    put:
      operationId: template_repo_upload
      tags: [workspaces]
      parameters:
        - {name: w_id, in: path, required: true, schema: {type: string}}
        - {name: t_id, in: path, required: true, schema: {type: string}}
      requestBody:
        content:
          multipart/form-data:
            schema:
              type: object
              properties:
                file: {type: string, format: binary}
      responses:
        "200":
          description: ok
  /v1/workspaces/{w_id}/template_data/{t_id}/log:
    get:
      operationId: get_template_log
      tags: [workspace-activities]
      parameters:
        - {name: w_id, in: path, required: true, schema: {type: string}}
        - {name: t_id, in: path, required: true, schema: {type: string}}
        - {name: log_tf_cmd, in: query, schema: {type: boolean}}
      responses:
        "200":
          description: ok
          content:
            text/plain:
              schema: {type: string}
  /v2/settings/kms_instances:
    get:
      operationId: list_kms
      tags: [settings-kms]
      parameters:
        - {name: encryption_scheme, in: query, required: true, schema: {type: string}}
      responses:
        "200":
          description: ok
  /v1/workspaces:
    post:
      operationId: create_workspace
      tags: [workspaces]
      x-order: 0
      parameters:
        - {name: X-Github-token, in: header, schema: {type: string}}
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                name: {type: string, x-order: 1}
                applied_shareddata_ids: {type: array, items: {type: string}, x-order: 0}
                tags: {type: array, items: {type: string}}
                description: {type: string}
      responses:
        "201":
          description: created
`

func loadTestSpec(t *testing.T) *openapi3.T {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromData([]byte(testSpec))
	if err != nil {
		t.Fatalf("loading spec: %v", err)
	}
	return doc
}

func TestExtractGroups(t *testing.T) {
	groups, err := extractGroups(loadTestSpec(t))
	if err != nil {
		t.Fatalf("extractGroups() error = %v", err)
	}

	want := []Group{
		{Name: "workspaces", Operations: []Operation{
			{
				ID: "CreateWorkspace", Method: "POST", Path: "/v1/workspaces",
				Fields: []Field{
					{Helper: "Header", Name: "xGithubToken", Wire: "X-Github-token"},
					{Helper: "Body", Name: "appliedShareddataIDs", Wire: "applied_shareddata_ids"},
					{Helper: "Body", Name: "name", Wire: "name"},
					{Helper: "Body", Name: "description", Wire: "description"},
					{Helper: "Body", Name: "tags", Wire: "tags"},
				},
			},
			{
				ID: "GetWorkspace", Method: "GET", Path: "/v1/workspaces/{w_id}",
				Fields: []Field{{Helper: "Path", Name: "wID", Wire: "w_id"}},
			},
			{
				ID: "DeleteWorkspace", Method: "DELETE", Path: "/v1/workspaces/{w_id}",
				Fields: []Field{
					{Helper: "Path", Name: "wID", Wire: "w_id"},
					{Helper: "Header", Name: "refreshToken", Wire: "refresh_token", Required: true},
					{Helper: "Query", Name: "destroyResources", Wire: "destroy_resources"},
				},
			},
			{
				ID: "GetTemplateLog", Method: "GET", Path: "/v1/workspaces/{w_id}/template_data/{t_id}/log",
				Accept: "text/plain",
				Fields: []Field{
					{Helper: "Path", Name: "wID", Wire: "w_id"},
					{Helper: "Path", Name: "tID", Wire: "t_id"},
					{Helper: "Query", Name: "logTFCmd", Wire: "log_tf_cmd"},
				},
			},
			{
				ID: "TemplateRepoUpload", Method: "PUT", Path: "/v1/workspaces/{w_id}/template_data/{t_id}/template_repo_upload",
				Fields: []Field{
					{Helper: "Path", Name: "wID", Wire: "w_id"},
					{Helper: "Path", Name: "tID", Wire: "t_id"},
					{Helper: "FormFile", Name: "file", Wire: "file"},
					{Helper: "FormContentType", Name: "fileContentType", Wire: "file"},
				},
			},
		}},
		{Name: "settings", Operations: []Operation{
			{
				ID: "ListKms", Method: "GET", Path: "/v2/settings/kms_instances",
				Fields: []Field{{Helper: "Query", Name: "encryptionScheme", Wire: "encryption_scheme", Required: true}},
			},
		}},
	}

	if diff := cmp.Diff(want, groups, cmpopts.IgnoreUnexported(Operation{})); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	groups, err := extractGroups(loadTestSpec(t))
	if err != nil {
		t.Fatal(err)
	}
	src, err := render("schematicsv1", groups)
	if err != nil {
		t.Fatalf("render() error = %v", err)
	}

	out := string(src)
	for _, want := range []string{
		"// Code generated by generate-operations. DO NOT EDIT.",
		"package schematicsv1",
		"var operations = []operation.Operation{",
		"\t// workspaces\n\t{",
		"},\n\n\t// settings\n",
		`operation.Path("wID", "w_id"),`,
		`operation.Header("refreshToken", "refresh_token").MarkRequired(),`,
		`operation.FormContentType("fileContentType", "file"),`,
		`Accept: "text/plain",`,
		"Method: http.MethodDelete,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRecordName(t *testing.T) {
	tests := map[string]string{
		"w_id":                   "wID",
		"refresh_token":          "refreshToken",
		"X-Github-token":         "xGithubToken",
		"applied_shareddata_ids": "appliedShareddataIDs",
		"source_readme_url":      "sourceReadmeURL",
		"agent_kpi":              "agentKPI",
		"primary_crk":            "primaryCRK",
		"targets_ini":            "targetsINI",
		"log_tf_null_resource":   "logTFNullResource",
		"offset":                 "offset",
	}
	for wire, want := range tests {
		if got := recordName(wire); got != want {
			t.Errorf("recordName(%q) = %q, want %q", wire, got, want)
		}
	}
}

func TestOperationName(t *testing.T) {
	tests := map[string]string{
		"get_workspace":          "GetWorkspace",
		"list_kms":               "ListKms",
		"get_workspace_log_urls": "GetWorkspaceLogUrls",
		"get_schematics_version": "GetSchematicsVersion",
	}
	for id, want := range tests {
		if got := operationName(id); got != want {
			t.Errorf("operationName(%q) = %q, want %q", id, got, want)
		}
	}
}

// The checked-in table must follow the naming rules the generator applies.
func TestOperationTableNaming(t *testing.T) {
	for _, op := range schematicsv1.Operations() {
		for _, f := range op.Fields {
			want := recordName(f.Wire)
			if f.In == operation.InFormContentType {
				want += "ContentType"
			}
			if f.Name != want {
				t.Errorf("%s: field %q for wire %q, want %q", op.ID, f.Name, f.Wire, want)
			}
		}
	}
}
