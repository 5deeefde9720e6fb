// Package schematicsv1 is the Schematics v1/v2 REST API: one method per
// remote operation, each taking a typed options record.
//
// Every method follows the same path. The options record is flattened into
// parameters, checked against the operation's required fields and turned
// into a request descriptor by the operation package; only then is the
// descriptor handed to the Invoker. A call missing required parameters
// fails with core.ErrMissingParameters and sends nothing.
//
// Each options record has a Headers map; its entries are sent verbatim and
// override every header the SDK would otherwise set.
//
//	service := schematicsv1.New(transport)
//	resp, err := service.GetWorkspace(ctx, &schematicsv1.GetWorkspaceOptions{
//	    WID: "us-south.workspace.demo.1a2b3c4d",
//	})
package schematicsv1

import (
	"context"
	"fmt"
	"sort"

	"github.com/IBM/schematics-go-sdk/core"
	"github.com/IBM/schematics-go-sdk/operation"
)

// Profile values accepted by list and get operations.
const (
	ProfileSummary  = "summary"
	ProfileDetailed = "detailed"
	ProfileIDs      = "ids"
)

// ListJobs scope values.
const (
	ListAll   = "all"
	ListLimit = "limit"
)

// KMS encryption schemes.
const (
	EncryptionSchemeBYOK = "byok"
	EncryptionSchemeKYOK = "kyok"
)

// Job command objects.
const (
	CommandObjectWorkspace   = "workspace"
	CommandObjectAction      = "action"
	CommandObjectSystem      = "system"
	CommandObjectEnvironment = "environment"
)

// Invoker performs request descriptors. It is implemented by *client.Client
// (and transitively by *schematics.Client).
//
// Depending on this interface keeps the service testable with a recording
// fake and free of transport concerns.
type Invoker interface {
	Invoke(ctx context.Context, req *operation.Request) (*core.DetailedResponse, error)
}

// SchematicsV1 exposes the Schematics API operations.
type SchematicsV1 struct {
	invoker Invoker
}

// New creates the service over invoker.
func New(invoker Invoker) *SchematicsV1 {
	return &SchematicsV1{invoker: invoker}
}

var operationIndex = func() map[string]operation.Operation {
	index := make(map[string]operation.Operation, len(operations))
	for _, op := range operations {
		index[op.ID] = op
	}
	return index
}()

// Operations returns a copy of the operation table, sorted by ID.
func Operations() []operation.Operation {
	ops := make([]operation.Operation, len(operations))
	copy(ops, operations)
	sort.Slice(ops, func(i, j int) bool { return ops[i].ID < ops[j].ID })
	return ops
}

// LookupOperation returns the operation with the given ID.
func LookupOperation(id string) (operation.Operation, bool) {
	op, ok := operationIndex[id]
	return op, ok
}

// BuildRequest validates opts against the operation and returns the request
// descriptor without sending it.
func BuildRequest(operationID string, opts any) (*operation.Request, error) {
	op, ok := operationIndex[operationID]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", operationID)
	}
	return operation.Build(op, operation.ParamsOf(opts))
}

// Call invokes an operation by ID with untyped parameters, e.g. values read
// from a configuration file. Required parameters are still checked before
// anything is sent.
func (s *SchematicsV1) Call(ctx context.Context, operationID string, params operation.Params) (*core.DetailedResponse, error) {
	op, ok := operationIndex[operationID]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", operationID)
	}
	req, err := operation.Build(op, params)
	if err != nil {
		return nil, err
	}
	return s.invoker.Invoke(ctx, req)
}

func (s *SchematicsV1) invoke(ctx context.Context, operationID string, opts any) (*core.DetailedResponse, error) {
	req, err := BuildRequest(operationID, opts)
	if err != nil {
		return nil, err
	}
	return s.invoker.Invoke(ctx, req)
}
