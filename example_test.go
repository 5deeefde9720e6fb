package schematics_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/IBM/schematics-go-sdk"
	"github.com/IBM/schematics-go-sdk/auth"
	"github.com/IBM/schematics-go-sdk/schematicsv1"
)

// Create a client for a regional endpoint with an IAM bearer token.
func ExampleNew() {
	svc, err := schematics.New(
		schematics.WithBearerToken(os.Getenv("SCHEMATICS_BEARER_TOKEN")),
		schematics.WithRegion("eu-de"),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Use svc to call Schematics operations
	_ = svc
}

// Configure a client with multiple options for production use.
func ExampleNew_withOptions() {
	svc, err := schematics.New(
		schematics.WithBearerToken("eyJhbGciOi...",
			auth.WithExpiryLeeway(time.Minute), // refuse tokens about to expire
		),
		schematics.WithURL("https://us.schematics.cloud.ibm.com"),

		// Retry 429, 5xx and connection errors up to 4 times
		schematics.WithRetries(4, 30*time.Second),

		// Timeout per attempt
		schematics.WithTimeout(60*time.Second),

		// Proactive rate limiting
		schematics.WithThrottle(50, 10*time.Second),

		// Request metrics
		schematics.WithMetrics(prometheus.DefaultRegisterer),
	)
	if err != nil {
		log.Fatal(err)
	}
	_ = svc
}

// Look up the endpoint for a region.
func ExampleGetServiceURLForRegion() {
	url, err := schematics.GetServiceURLForRegion("us-east")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(url)

	_, err = schematics.GetServiceURLForRegion("mars-north")
	fmt.Println(err != nil)
	// Output:
	// https://us.schematics.cloud.ibm.com
	// true
}

// Fetch a workspace and read a field from the decoded result.
func ExampleClient_GetWorkspace() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"ws-1","name":"demo","status":"ACTIVE"}`)
	}))
	defer srv.Close()

	svc, err := schematics.New(schematics.WithNoAuth(), schematics.WithURL(srv.URL))
	if err != nil {
		log.Fatal(err)
	}

	resp, err := svc.GetWorkspace(context.Background(), schematicsv1.NewGetWorkspaceOptions("ws-1"))
	if err != nil {
		log.Fatal(err)
	}
	result, _ := resp.GetResultAsMap()
	fmt.Println(resp.StatusCode, result["name"], result["status"])
	// Output: 200 demo ACTIVE
}

// Required parameters are checked before anything is sent.
func ExampleClient_DeleteWorkspace_missingParameters() {
	svc, _ := schematics.New(schematics.WithNoAuth(), schematics.WithURL("http://127.0.0.1:1"))

	_, err := svc.DeleteWorkspace(context.Background(), &schematicsv1.DeleteWorkspaceOptions{WID: "ws-1"})

	var missing *schematics.MissingParametersError
	if errors.As(err, &missing) {
		fmt.Println(missing.Missing)
	}
	fmt.Println(errors.Is(err, schematics.ErrMissingParameters))
	// Output:
	// [refreshToken]
	// true
}

// Handle typed errors returned for non-2xx responses.
func ExampleNotFoundError() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"workspace not found"}`)
	}))
	defer srv.Close()

	svc, _ := schematics.New(schematics.WithNoAuth(), schematics.WithURL(srv.URL))

	_, err := svc.GetWorkspace(context.Background(), schematicsv1.NewGetWorkspaceOptions("missing"))

	var notFound *schematics.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Println(notFound.StatusCode, notFound.Message)
	}
	// Output: 404 workspace not found
}

// Run a job against a workspace with typed options.
func ExampleClient_CreateJob() {
	svc, _ := schematics.New(schematics.WithBearerToken("token"))

	opts := schematicsv1.NewCreateJobOptions("refresh-token")
	opts.CommandObject = schematics.Ptr(schematicsv1.CommandObjectWorkspace)
	opts.CommandObjectID = schematics.Ptr("us-south.workspace.demo.1a2b3c4d")
	opts.CommandName = schematics.Ptr("workspace_plan")

	resp, err := svc.CreateJob(context.Background(), opts)
	if err != nil {
		log.Fatal(err)
	}
	_ = resp
}
