package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/IBM/schematics-go-sdk"
	"github.com/IBM/schematics-go-sdk/core"
	"github.com/IBM/schematics-go-sdk/operation"
	"github.com/IBM/schematics-go-sdk/schematicsv1"
)

type app struct {
	configPath string
	url        string
	region     string
	output     string
	debug      bool

	cfg    *Config
	client *schematics.Client
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".schematics.yaml"
	}
	return filepath.Join(home, ".schematics.yaml")
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "schematics",
		Short:         "Command-line client for the IBM Cloud Schematics API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", defaultConfigPath(), "YAML profile")
	flags.StringVar(&a.url, "url", "", "service URL (overrides region)")
	flags.StringVar(&a.region, "region", "", "service region, e.g. us-south")
	flags.StringVarP(&a.output, "output", "o", "", "output format: json or yaml")
	flags.BoolVar(&a.debug, "debug", false, "log requests to stderr")

	root.AddCommand(
		a.versionCmd(),
		a.locationsCmd(),
		a.workspacesCmd(),
		a.jobsCmd(),
		a.actionsCmd(),
		a.callCmd(),
		a.operationsCmd(),
	)
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = a.url
	}
	if flags.Changed("region") {
		cfg.Region = a.region
		if !flags.Changed("url") {
			cfg.URL = ""
		}
	}
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	a.cfg = cfg
	return nil
}

// service returns the client, building it on first use so that commands
// which never call the API work without credentials.
func (a *app) service() (*schematics.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	c, err := a.cfg.NewClient()
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

func (a *app) print(w io.Writer, resp *core.DetailedResponse) error {
	if resp == nil {
		return nil
	}
	switch result := resp.Result.(type) {
	case nil:
		_, err := fmt.Fprintf(w, "%d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode))
		return err
	case string:
		_, err := fmt.Fprintln(w, result)
		return err
	}

	if a.cfg.Output == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp.Result); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp.Result)
}

func (a *app) versionCmd() *cobra.Command {
	var server bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version, and with --server the service version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "schematics-cli %s\n", version)
			if !server {
				return nil
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			resp, err := svc.GetSchematicsVersion(cmd.Context(), &schematicsv1.GetSchematicsVersionOptions{})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().BoolVar(&server, "server", false, "also query the service version")
	return cmd
}

func (a *app) locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the locations where Schematics runs jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			resp, err := svc.ListLocations(cmd.Context(), &schematicsv1.ListLocationsOptions{})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
}

func (a *app) workspacesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"ws"},
		Short:   "Manage workspaces",
	}

	var offset, limit int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			opts := &schematicsv1.ListWorkspacesOptions{}
			if cmd.Flags().Changed("offset") {
				opts.Offset = core.Ptr(offset)
			}
			if cmd.Flags().Changed("limit") {
				opts.Limit = core.Ptr(limit)
			}
			resp, err := svc.ListWorkspaces(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
	list.Flags().Int64Var(&offset, "offset", 0, "number of workspaces to skip")
	list.Flags().Int64Var(&limit, "limit", 0, "maximum number of workspaces")

	get := &cobra.Command{
		Use:   "get <workspace-id>",
		Short: "Show a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			resp, err := svc.GetWorkspace(cmd.Context(), schematicsv1.NewGetWorkspaceOptions(args[0]))
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}

	var refreshToken string
	var destroy bool
	del := &cobra.Command{
		Use:   "delete <workspace-id>",
		Short: "Delete a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			opts := schematicsv1.NewDeleteWorkspaceOptions(args[0], refreshToken)
			if destroy {
				opts.DestroyResources = core.Ptr(true)
			}
			resp, err := svc.DeleteWorkspace(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
	del.Flags().StringVar(&refreshToken, "refresh-token", os.Getenv("SCHEMATICS_REFRESH_TOKEN"), "IAM refresh token")
	del.Flags().BoolVar(&destroy, "destroy-resources", false, "also destroy provisioned resources")

	cmd.AddCommand(list, get, del)
	return cmd
}

func (a *app) jobsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect jobs",
	}

	var workspaceID, actionID string
	var limit int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			opts := &schematicsv1.ListJobsOptions{}
			if workspaceID != "" {
				opts.WorkspaceID = core.Ptr(workspaceID)
				opts.Resource = core.Ptr(schematicsv1.CommandObjectWorkspace)
			}
			if actionID != "" {
				opts.ActionID = core.Ptr(actionID)
				opts.Resource = core.Ptr(schematicsv1.CommandObjectAction)
			}
			if limit > 0 {
				opts.Limit = core.Ptr(limit)
			}
			resp, err := svc.ListJobs(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
	list.Flags().StringVar(&workspaceID, "workspace", "", "only jobs of this workspace")
	list.Flags().StringVar(&actionID, "action", "", "only jobs of this action")
	list.Flags().Int64Var(&limit, "limit", 0, "maximum number of jobs")
	list.MarkFlagsMutuallyExclusive("workspace", "action")

	get := &cobra.Command{
		Use:   "get <job-id>",
		Short: "Show a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			resp, err := svc.GetJob(cmd.Context(), schematicsv1.NewGetJobOptions(args[0]))
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

func (a *app) actionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Inspect actions",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			resp, err := svc.ListActions(cmd.Context(), &schematicsv1.ListActionsOptions{})
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	})
	return cmd
}

func (a *app) callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <operation> [name=value ...]",
		Short: "Invoke any operation by ID with string parameters",
		Long: "Invoke any operation by ID. Parameters use the record names shown by\n" +
			"`schematics operations <operation>`; values that parse as JSON objects or\n" +
			"arrays are sent as such.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			svc, err := a.service()
			if err != nil {
				return err
			}
			resp, err := svc.Call(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
}

func parseParams(args []string) (operation.Params, error) {
	params := operation.Params{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("parameter %q is not name=value", arg)
		}
		if strings.HasPrefix(value, "{") || strings.HasPrefix(value, "[") {
			var v any
			if err := json.Unmarshal([]byte(value), &v); err == nil {
				params[name] = v
				continue
			}
		}
		params[name] = value
	}
	return params, nil
}

func (a *app) operationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "operations [operation]",
		Short: "List operations, or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			upper := cases.Upper(language.English)

			if len(args) == 0 {
				fmt.Fprintln(w, upper.String("id\tmethod\tpath\trequired"))
				for _, op := range schematicsv1.Operations() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", op.ID, op.Method, op.Path, strings.Join(op.RequiredFields(), ","))
				}
				return w.Flush()
			}

			op, ok := schematicsv1.LookupOperation(args[0])
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			title := cases.Title(language.English)
			fmt.Fprintf(w, "%s %s\n\n", op.Method, op.Path)
			fmt.Fprintln(w, upper.String("parameter\tin\twire name\trequired"))
			for _, f := range op.Fields {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", f.Name, title.String(f.In.String()), f.Wire, f.Required)
			}
			return w.Flush()
		},
	}
}
