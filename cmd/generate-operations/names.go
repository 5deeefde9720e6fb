package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// groupOrder is the order of the commented blocks in the generated table.
var groupOrder = []string{
	"utilities",
	"workspaces",
	"actions",
	"jobs",
	"inventories",
	"resource queries",
	"blueprints",
	"agents",
	"settings",
}

// tagGroups maps OpenAPI tags to table groups.
var tagGroups = map[string]string{
	"util":                 "utilities",
	"utilities":            "utilities",
	"workspaces":           "workspaces",
	"workspace-activities": "workspaces",
	"workspace-bulk-jobs":  "workspaces",
	"actions":              "actions",
	"jobs":                 "jobs",
	"inventory":            "inventories",
	"inventories":          "inventories",
	"resource-query":       "resource queries",
	"resource-queries":     "resource queries",
	"blueprints":           "blueprints",
	"agents":               "agents",
	"settings-kms":         "settings",
	"settings":             "settings",
}

// initialisms are word segments rendered in upper case inside record names.
var initialisms = map[string]string{
	"id":  "ID",
	"ids": "IDs",
	"url": "URL",
	"kms": "KMS",
	"kpi": "KPI",
	"crk": "CRK",
	"ini": "INI",
	"tf":  "TF",
}

var titleCaser = cases.Title(language.English)

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
}

// recordName converts a wire name to the parameter-record name:
// w_id -> wID, X-Github-token -> xGithubToken, agent_kpi -> agentKPI.
func recordName(wire string) string {
	words := splitWords(wire)
	var b strings.Builder
	for i, w := range words {
		w = strings.ToLower(w)
		switch {
		case i == 0:
			b.WriteString(w)
		case initialisms[w] != "":
			b.WriteString(initialisms[w])
		default:
			b.WriteString(titleCaser.String(w))
		}
	}
	return b.String()
}

// operationName converts an operationId to an exported operation ID:
// get_workspace_log_urls -> GetWorkspaceLogUrls, list_kms -> ListKms.
func operationName(operationID string) string {
	var b strings.Builder
	for _, w := range splitWords(operationID) {
		b.WriteString(titleCaser.String(strings.ToLower(w)))
	}
	return b.String()
}
