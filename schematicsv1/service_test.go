package schematicsv1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/IBM/schematics-go-sdk/core"
	"github.com/IBM/schematics-go-sdk/operation"
)

// mockInvoker implements Invoker and records every descriptor it receives.
type mockInvoker struct {
	mu       sync.Mutex
	requests []*operation.Request
	response *core.DetailedResponse
	err      error
}

func (m *mockInvoker) Invoke(ctx context.Context, req *operation.Request) (*core.DetailedResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.response == nil && m.err == nil {
		return &core.DetailedResponse{StatusCode: http.StatusOK}, nil
	}
	return m.response, m.err
}

func (m *mockInvoker) last(t *testing.T) *operation.Request {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		t.Fatal("no request was invoked")
	}
	return m.requests[len(m.requests)-1]
}

func (m *mockInvoker) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func TestGetWorkspace(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	_, err := service.GetWorkspace(context.Background(), NewGetWorkspaceOptions("testString"))
	if err != nil {
		t.Fatalf("GetWorkspace() error = %v", err)
	}

	req := mock.last(t)
	if req.Method != http.MethodGet {
		t.Errorf("Method = %q, want GET", req.Method)
	}
	if req.Path != "/v1/workspaces/testString" {
		t.Errorf("Path = %q", req.Path)
	}
	if len(req.Query) != 0 {
		t.Errorf("Query = %v, want none", req.Query)
	}
	if req.Body != nil || req.Form != nil {
		t.Errorf("expected no body, got body=%v form=%v", req.Body, req.Form)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
}

func TestCreateWorkspace_NoParameters(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	if _, err := service.CreateWorkspace(context.Background(), &CreateWorkspaceOptions{}); err != nil {
		t.Fatalf("CreateWorkspace() error = %v", err)
	}

	req := mock.last(t)
	if req.Method != http.MethodPost || req.Path != "/v1/workspaces" {
		t.Errorf("got %s %s", req.Method, req.Path)
	}
	if diff := cmp.Diff(map[string]any{}, req.Body); diff != "" {
		t.Errorf("Body mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateWorkspace_Body(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	opts := &CreateWorkspaceOptions{
		XGithubToken: core.Ptr("ghp_token"),
		Name:         core.Ptr("demo"),
		Location:     core.Ptr("us-south"),
		Tags:         []string{"env:dev"},
		Type:         []string{"terraform_v1.5"},
		TemplateRepo: &TemplateRepoRequest{URL: core.Ptr("https://github.com/org/repo")},
		TemplateData: []TemplateSourceDataRequest{{
			Folder: core.Ptr("."),
			Type:   core.Ptr("terraform_v1.5"),
		}},
	}
	if _, err := service.CreateWorkspace(context.Background(), opts); err != nil {
		t.Fatalf("CreateWorkspace() error = %v", err)
	}

	req := mock.last(t)
	want := map[string]any{
		"name":          "demo",
		"location":      "us-south",
		"tags":          []string{"env:dev"},
		"type":          []string{"terraform_v1.5"},
		"template_repo": TemplateRepoRequest{URL: core.Ptr("https://github.com/org/repo")},
		"template_data": []TemplateSourceDataRequest{{Folder: core.Ptr("."), Type: core.Ptr("terraform_v1.5")}},
	}
	if diff := cmp.Diff(want, req.Body); diff != "" {
		t.Errorf("Body mismatch (-want +got):\n%s", diff)
	}
	if got := req.Header.Get("X-Github-token"); got != "ghp_token" {
		t.Errorf("X-Github-token = %q", got)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestDeleteAction_ForceAndPropagate(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	opts := NewDeleteActionOptions("x")
	opts.Force = core.Ptr(true)
	opts.Propagate = core.Ptr(true)
	if _, err := service.DeleteAction(context.Background(), opts); err != nil {
		t.Fatalf("DeleteAction() error = %v", err)
	}

	req := mock.last(t)
	if req.Method != http.MethodDelete {
		t.Errorf("Method = %q, want DELETE", req.Method)
	}
	if req.Path != "/v2/actions/x" {
		t.Errorf("Path = %q", req.Path)
	}
	for _, h := range []string{"force", "propagate"} {
		if got := req.Header.Get(h); got != "true" {
			t.Errorf("header %s = %q, want true", h, got)
		}
	}
}

func TestTemplateRepoUpload(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	data := []byte("\x1f\x8b\x08\x00tar-bytes")
	opts := NewTemplateRepoUploadOptions("w1", "t1")
	opts.File = data
	opts.FileContentType = core.Ptr("application/gzip")

	if _, err := service.TemplateRepoUpload(context.Background(), opts); err != nil {
		t.Fatalf("TemplateRepoUpload() error = %v", err)
	}

	req := mock.last(t)
	if req.Path != "/v1/workspaces/w1/template_data/t1/template_repo_upload" {
		t.Errorf("Path = %q", req.Path)
	}
	if len(req.Form) != 1 {
		t.Fatalf("Form has %d parts, want 1", len(req.Form))
	}
	part := req.Form[0]
	if part.Name != "file" {
		t.Errorf("part name = %q", part.Name)
	}
	if !reflect.DeepEqual(part.Data, data) {
		t.Errorf("part data = %q, want %q", part.Data, data)
	}
	if part.ContentType != "application/gzip" {
		t.Errorf("part content type = %q", part.ContentType)
	}
}

func TestUploadTemplateTarAction_DefaultContentType(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	opts := NewUploadTemplateTarActionOptions("a1")
	opts.File = []byte("playbook")
	if _, err := service.UploadTemplateTarAction(context.Background(), opts); err != nil {
		t.Fatalf("UploadTemplateTarAction() error = %v", err)
	}

	part := mock.last(t).Form[0]
	if part.ContentType != "application/octet-stream" {
		t.Errorf("part content type = %q", part.ContentType)
	}
}

func TestListJobs_Query(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	opts := &ListJobsOptions{
		Offset:      core.Ptr(int64(10)),
		Limit:       core.Ptr(int64(50)),
		Profile:     core.Ptr(ProfileSummary),
		WorkspaceID: core.Ptr("ws-1"),
		List:        core.Ptr(ListAll),
	}
	if _, err := service.ListJobs(context.Background(), opts); err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}

	want := url.Values{
		"offset":       {"10"},
		"limit":        {"50"},
		"profile":      {"summary"},
		"workspace_id": {"ws-1"},
		"list":         {"all"},
	}
	if diff := cmp.Diff(want, mock.last(t).Query); diff != "" {
		t.Errorf("Query mismatch (-want +got):\n%s", diff)
	}
}

func TestCallerHeadersWin(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	opts := NewDeleteJobOptions("job-1", "refresh")
	opts.Headers = map[string]string{
		"refresh_token": "override",
		"Accept":        "text/plain",
		"X-Trace":       "abc",
	}
	if _, err := service.DeleteJob(context.Background(), opts); err != nil {
		t.Fatalf("DeleteJob() error = %v", err)
	}

	h := mock.last(t).Header
	tests := map[string]string{
		"refresh_token": "override",
		"Accept":        "text/plain",
		"X-Trace":       "abc",
	}
	for name, want := range tests {
		if got := h.Get(name); got != want {
			t.Errorf("header %s = %q, want %q", name, got, want)
		}
	}
}

func TestMissingRequiredParameters(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		missing []string
	}{
		{"GetWorkspace nil options", func() error {
			_, err := service.GetWorkspace(ctx, nil)
			return err
		}, []string{"wID"}},
		{"DeleteWorkspace without token", func() error {
			_, err := service.DeleteWorkspace(ctx, &DeleteWorkspaceOptions{WID: "w"})
			return err
		}, []string{"refreshToken"}},
		{"GetWorkspaceActivity", func() error {
			_, err := service.GetWorkspaceActivity(ctx, &GetWorkspaceActivityOptions{})
			return err
		}, []string{"wID", "activityID"}},
		{"ListKms", func() error {
			_, err := service.ListKms(ctx, &ListKmsOptions{Limit: core.Ptr(int64(1))})
			return err
		}, []string{"encryptionScheme", "location"}},
		{"CreateJob empty token", func() error {
			_, err := service.CreateJob(ctx, NewCreateJobOptions(""))
			return err
		}, []string{"refreshToken"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, core.ErrMissingParameters) {
				t.Fatalf("error = %v, want ErrMissingParameters", err)
			}
			var missing *core.MissingParametersError
			if !errors.As(err, &missing) {
				t.Fatalf("error %T is not *MissingParametersError", err)
			}
			if diff := cmp.Diff(tt.missing, missing.Missing); diff != "" {
				t.Errorf("missing names (-want +got):\n%s", diff)
			}
		})
	}

	if n := mock.count(); n != 0 {
		t.Errorf("invoker called %d times, want 0", n)
	}
}

// Every operation with required fields must refuse an empty record without
// invoking, and every operation without them must go through.
func TestAllOperations_EmptyParameters(t *testing.T) {
	for _, op := range Operations() {
		t.Run(op.ID, func(t *testing.T) {
			mock := &mockInvoker{}
			service := New(mock)

			_, err := service.Call(context.Background(), op.ID, nil)
			required := op.RequiredFields()
			if len(required) > 0 {
				if !errors.Is(err, core.ErrMissingParameters) {
					t.Errorf("error = %v, want ErrMissingParameters", err)
				}
				if mock.count() != 0 {
					t.Error("invoker was called")
				}
				return
			}
			if err != nil {
				t.Fatalf("Call() error = %v", err)
			}
			req := mock.last(t)
			if req.Method != op.Method || req.Path != op.Path {
				t.Errorf("got %s %s, want %s %s", req.Method, req.Path, op.Method, op.Path)
			}
		})
	}
}

func TestOperationsTable(t *testing.T) {
	ops := Operations()
	if len(ops) != len(operations) {
		t.Fatalf("Operations() returned %d, want %d", len(ops), len(operations))
	}

	seen := map[string]bool{}
	for i, op := range ops {
		if seen[op.ID] {
			t.Errorf("duplicate operation %s", op.ID)
		}
		seen[op.ID] = true
		if i > 0 && ops[i-1].ID >= op.ID {
			t.Errorf("operations not sorted at %s", op.ID)
		}
		for _, f := range op.FieldsIn(operation.InPath) {
			if !f.Required {
				t.Errorf("%s: path field %s is not required", op.ID, f.Name)
			}
		}
	}

	// Mutating the returned copy must not affect the table.
	ops[0].ID = "changed"
	if _, ok := LookupOperation("changed"); ok {
		t.Error("Operations() returned the table itself")
	}
}

func TestLookupOperation(t *testing.T) {
	op, ok := LookupOperation("GetJob")
	if !ok {
		t.Fatal("GetJob not found")
	}
	if op.Method != http.MethodGet || op.Path != "/v2/jobs/{job_id}" {
		t.Errorf("GetJob = %s %s", op.Method, op.Path)
	}
	if _, ok := LookupOperation("NoSuchOperation"); ok {
		t.Error("unknown operation found")
	}
}

func TestCall(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	_, err := service.Call(context.Background(), "GetInventory", operation.Params{"inventoryID": "inv-1"})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if got := mock.last(t).Path; got != "/v2/inventories/inv-1" {
		t.Errorf("Path = %q", got)
	}

	if _, err := service.Call(context.Background(), "Nope", nil); err == nil {
		t.Error("expected error for unknown operation")
	}
}

func TestCall_UntypedMissingValues(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		params operation.Params
	}{
		{"nil path value", "GetWorkspace", operation.Params{"wID": nil}},
		{"empty path value", "DeleteWorkspace", operation.Params{"wID": "", "refreshToken": "rt"}},
		{"nil header value", "CreateJob", operation.Params{"refreshToken": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockInvoker{}
			_, err := New(mock).Call(context.Background(), tt.id, tt.params)
			if !errors.Is(err, core.ErrMissingParameters) {
				t.Fatalf("Call() error = %v, want ErrMissingParameters", err)
			}
			if mock.count() != 0 {
				t.Errorf("invoker called %d times, want 0", mock.count())
			}
		})
	}
}

func TestInvokerErrorPassthrough(t *testing.T) {
	want := &core.NotFoundError{SchematicsError: core.SchematicsError{Message: "gone", StatusCode: 404}}
	mock := &mockInvoker{
		response: &core.DetailedResponse{StatusCode: 404},
		err:      want,
	}
	service := New(mock)

	resp, err := service.GetJob(context.Background(), NewGetJobOptions("j"))
	var nf *core.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Errorf("response = %+v", resp)
	}
}

func TestBuildRequest_Idempotent(t *testing.T) {
	opts := &UpdateJobOptions{
		JobID:        "j1",
		RefreshToken: "r",
		CommandName:  core.Ptr("ansible_playbook_run"),
		Inputs:       []VariableData{{Name: core.Ptr("k"), Value: core.Ptr("v")}},
	}
	first, err := BuildRequest("UpdateJob", opts)
	if err != nil {
		t.Fatalf("BuildRequest() error = %v", err)
	}
	second, err := BuildRequest("UpdateJob", opts)
	if err != nil {
		t.Fatalf("BuildRequest() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("descriptors differ (-first +second):\n%s", diff)
	}
}

func TestConcurrentCalls(t *testing.T) {
	mock := &mockInvoker{}
	service := New(mock)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		i := i
		g.Go(func() error {
			_, err := service.GetWorkspace(context.Background(), NewGetWorkspaceOptions(fmt.Sprintf("ws-%d", i)))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent call error = %v", err)
	}
	if n := mock.count(); n != 32 {
		t.Fatalf("invoked %d times, want 32", n)
	}

	paths := map[string]bool{}
	for _, req := range mock.requests {
		paths[req.Path] = true
	}
	if len(paths) != 32 {
		t.Errorf("got %d distinct paths, want 32", len(paths))
	}
}

// optionRecords holds one value of every options type.
var optionRecords = []any{
	&ListResourceGroupOptions{},
	&GetSchematicsVersionOptions{},
	&ListLocationsOptions{},
	&ListWorkspacesOptions{},
	&CreateWorkspaceOptions{},
	&GetWorkspaceOptions{},
	&ReplaceWorkspaceOptions{},
	&UpdateWorkspaceOptions{},
	&DeleteWorkspaceOptions{},
	&GetWorkspaceReadmeOptions{},
	&TemplateRepoUploadOptions{},
	&GetWorkspaceInputsOptions{},
	&ReplaceWorkspaceInputsOptions{},
	&GetWorkspaceOutputsOptions{},
	&GetWorkspaceResourcesOptions{},
	&GetWorkspaceStateOptions{},
	&ListWorkspaceActivitiesOptions{},
	&GetWorkspaceActivityOptions{},
	&ApplyWorkspaceCommandOptions{},
	&DestroyWorkspaceCommandOptions{},
	&PlanWorkspaceCommandOptions{},
	&RefreshWorkspaceCommandOptions{},
	&GetWorkspaceLogUrlsOptions{},
	&GetTemplateLogsOptions{},
	&ListActionsOptions{},
	&CreateActionOptions{},
	&GetActionOptions{},
	&UpdateActionOptions{},
	&DeleteActionOptions{},
	&UploadTemplateTarActionOptions{},
	&ListJobsOptions{},
	&CreateJobOptions{},
	&GetJobOptions{},
	&UpdateJobOptions{},
	&DeleteJobOptions{},
	&ListJobLogsOptions{},
	&ListInventoriesOptions{},
	&CreateInventoryOptions{},
	&GetInventoryOptions{},
	&ReplaceInventoryOptions{},
	&UpdateInventoryOptions{},
	&DeleteInventoryOptions{},
	&ListResourceQueryOptions{},
	&CreateResourceQueryOptions{},
	&GetResourcesQueryOptions{},
	&ReplaceResourcesQueryOptions{},
	&ExecuteResourceQueryOptions{},
	&DeleteResourcesQueryOptions{},
	&ListBlueprintOptions{},
	&CreateBlueprintOptions{},
	&GetBlueprintOptions{},
	&ReplaceBlueprintOptions{},
	&DeleteBlueprintOptions{},
	&ListAgentDataOptions{},
	&RegisterAgentOptions{},
	&GetAgentVersionsOptions{},
	&GetAgentDataOptions{},
	&UpdateAgentDataOptions{},
	&DeleteAgentDataOptions{},
	&DeployAgentJobOptions{},
	&GetKmsSettingsOptions{},
	&ReplaceKmsSettingsOptions{},
	&ListKmsOptions{},
}

func TestOptionRecordsMatchOperations(t *testing.T) {
	seen := map[string]bool{}
	for _, record := range optionRecords {
		rt := reflect.TypeOf(record).Elem()
		id := strings.TrimSuffix(rt.Name(), "Options")
		t.Run(id, func(t *testing.T) {
			op, ok := LookupOperation(id)
			if !ok {
				t.Fatalf("no operation %q for %s", id, rt.Name())
			}
			seen[id] = true

			var tags []string
			hasHeaders := false
			for i := 0; i < rt.NumField(); i++ {
				sf := rt.Field(i)
				if sf.Name == "Headers" {
					hasHeaders = sf.Type == reflect.TypeOf(map[string]string{})
					continue
				}
				tag := sf.Tag.Get("param")
				if tag == "" {
					t.Errorf("field %s has no param tag", sf.Name)
					continue
				}
				tags = append(tags, tag)
			}
			if !hasHeaders {
				t.Errorf("%s has no Headers map[string]string field", rt.Name())
			}

			var names []string
			for _, f := range op.Fields {
				names = append(names, f.Name)
			}
			if diff := cmp.Diff(names, tags); diff != "" {
				t.Errorf("param tags differ from operation fields (-fields +tags):\n%s", diff)
			}
		})
	}

	for _, op := range Operations() {
		if !seen[op.ID] {
			t.Errorf("operation %s has no options record", op.ID)
		}
	}
}
