package schematicsv1

import (
	"context"

	"github.com/IBM/schematics-go-sdk/core"
)

// ListJobsOptions holds the parameters of ListJobs.
type ListJobsOptions struct {
	Offset *int64  `param:"offset"`
	Limit  *int64  `param:"limit"`
	Sort   *string `param:"sort"`

	// One of ProfileSummary, ProfileDetailed or ProfileIDs.
	Profile     *string `param:"profile"`
	Resource    *string `param:"resource"`
	ResourceID  *string `param:"resourceID"`
	ActionID    *string `param:"actionID"`
	WorkspaceID *string `param:"workspaceID"`

	// ListAll or ListLimit.
	List *string `param:"list"`

	Headers map[string]string
}

// ListJobs lists jobs, optionally scoped to a workspace or action.
func (s *SchematicsV1) ListJobs(ctx context.Context, opts *ListJobsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListJobs", opts)
}

// CreateJobOptions holds the parameters of CreateJob.
type CreateJobOptions struct {
	RefreshToken     string                     `param:"refreshToken"`
	CommandObject    *string                    `param:"commandObject"`
	CommandObjectID  *string                    `param:"commandObjectID"`
	CommandName      *string                    `param:"commandName"`
	CommandParameter *string                    `param:"commandParameter"`
	CommandOptions   []string                   `param:"commandOptions"`
	Inputs           []VariableData             `param:"inputs"`
	Settings         []VariableData             `param:"settings"`
	Tags             []string                   `param:"tags"`
	Location         *string                    `param:"location"`
	Status           JobStatus                  `param:"status"`
	Data             JobData                    `param:"data"`
	Bastion          *BastionResourceDefinition `param:"bastion"`
	LogSummary       JobLogSummary              `param:"logSummary"`
	Agent            *AgentInfo                 `param:"agent"`

	Headers map[string]string
}

// NewCreateJobOptions creates CreateJobOptions with its required parameters set.
func NewCreateJobOptions(refreshToken string) *CreateJobOptions {
	return &CreateJobOptions{
		RefreshToken: refreshToken,
	}
}

// CreateJob submits a job for a workspace, action or system command.
func (s *SchematicsV1) CreateJob(ctx context.Context, opts *CreateJobOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "CreateJob", opts)
}

// GetJobOptions holds the parameters of GetJob.
type GetJobOptions struct {
	JobID string `param:"jobID"`

	// One of ProfileSummary, ProfileDetailed or ProfileIDs.
	Profile *string `param:"profile"`

	Headers map[string]string
}

// NewGetJobOptions creates GetJobOptions with its required parameters set.
func NewGetJobOptions(jobID string) *GetJobOptions {
	return &GetJobOptions{
		JobID: jobID,
	}
}

// GetJob returns a job.
func (s *SchematicsV1) GetJob(ctx context.Context, opts *GetJobOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "GetJob", opts)
}

// UpdateJobOptions holds the parameters of UpdateJob.
type UpdateJobOptions struct {
	JobID            string                     `param:"jobID"`
	RefreshToken     string                     `param:"refreshToken"`
	CommandObject    *string                    `param:"commandObject"`
	CommandObjectID  *string                    `param:"commandObjectID"`
	CommandName      *string                    `param:"commandName"`
	CommandParameter *string                    `param:"commandParameter"`
	CommandOptions   []string                   `param:"commandOptions"`
	Inputs           []VariableData             `param:"inputs"`
	Settings         []VariableData             `param:"settings"`
	Tags             []string                   `param:"tags"`
	Location         *string                    `param:"location"`
	Status           JobStatus                  `param:"status"`
	Data             JobData                    `param:"data"`
	Bastion          *BastionResourceDefinition `param:"bastion"`
	LogSummary       JobLogSummary              `param:"logSummary"`
	Agent            *AgentInfo                 `param:"agent"`

	Headers map[string]string
}

// NewUpdateJobOptions creates UpdateJobOptions with its required parameters set.
func NewUpdateJobOptions(jobID string, refreshToken string) *UpdateJobOptions {
	return &UpdateJobOptions{
		JobID:        jobID,
		RefreshToken: refreshToken,
	}
}

// UpdateJob re-runs a job with new parameters.
func (s *SchematicsV1) UpdateJob(ctx context.Context, opts *UpdateJobOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "UpdateJob", opts)
}

// DeleteJobOptions holds the parameters of DeleteJob.
type DeleteJobOptions struct {
	JobID        string `param:"jobID"`
	RefreshToken string `param:"refreshToken"`
	Force        *bool  `param:"force"`
	Propagate    *bool  `param:"propagate"`

	Headers map[string]string
}

// NewDeleteJobOptions creates DeleteJobOptions with its required parameters set.
func NewDeleteJobOptions(jobID string, refreshToken string) *DeleteJobOptions {
	return &DeleteJobOptions{
		JobID:        jobID,
		RefreshToken: refreshToken,
	}
}

// DeleteJob stops a job and removes it.
func (s *SchematicsV1) DeleteJob(ctx context.Context, opts *DeleteJobOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "DeleteJob", opts)
}

// ListJobLogsOptions holds the parameters of ListJobLogs.
type ListJobLogsOptions struct {
	JobID string `param:"jobID"`

	Headers map[string]string
}

// NewListJobLogsOptions creates ListJobLogsOptions with its required parameters set.
func NewListJobLogsOptions(jobID string) *ListJobLogsOptions {
	return &ListJobLogsOptions{
		JobID: jobID,
	}
}

// ListJobLogs returns the logs of a job.
func (s *SchematicsV1) ListJobLogs(ctx context.Context, opts *ListJobLogsOptions) (*core.DetailedResponse, error) {
	return s.invoke(ctx, "ListJobLogs", opts)
}
