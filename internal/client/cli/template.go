package cli

const statusTemplate = `=== Status ===

Server:       {{.Server}}
{{- if .Version }}
Version:      {{.Version}}
{{- end}}
{{- if .ServerError }}
Error:        {{.ServerError}}
{{- end}}
{{- if .Loaded }}
Todos:        {{.Counts.All}} (pending: {{.Counts.Pending}}, completed: {{.Counts.Completed}})
{{- end}}
Filter:       {{.Filter}}
Last refresh: {{.LastRefresh}}
`
