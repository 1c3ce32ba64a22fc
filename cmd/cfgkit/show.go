package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/hizake/cfgkit/spec"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print an analysis report in a readable format",
		Example: `  cfgkit show report.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	report, err := readReport(args[0])
	if err != nil {
		return err
	}

	err = writeReportText(os.Stdout, report)
	if err != nil {
		return err
	}

	err = writeParsingTable(report)
	if err != nil {
		return err
	}

	if len(report.Conflicts) > 0 {
		pterm.Error.Println(fmt.Sprintf("%v conflicts; the grammar is not LL(1)", len(report.Conflicts)))
	} else {
		pterm.Info.Println("no conflicts; the grammar is LL(1)")
	}
	return nil
}

func readReport(path string) (*spec.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the report %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	report := &spec.Report{}
	err = json.Unmarshal(d, report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

const reportTemplate = `# Grammar

start: {{ .Start }}
terminals: {{ join .Terminals }}
non-terminals: {{ join .NonTerminals }}

{{ .Grammar }}
# FIRST

{{ range .First -}}
FIRST({{ .NonTerminal }}) = { {{ join (withEpsilon .Symbols .Empty) }} }
{{ end }}
# FOLLOW

{{ range .Follow -}}
FOLLOW({{ .NonTerminal }}) = { {{ join (withEOF .Symbols .EOF) }} }
{{ end }}
# Validation

undefined: {{ join .Validation.Undefined }}
unreachable: {{ join .Validation.Unreachable }}
never used: {{ join .Validation.NeverUsed }}
non-productive: {{ join .Validation.NonProductive }}
{{ if .SkippedLines }}
# Skipped lines
{{ range .SkippedLines }}
{{ .Row }}: {{ .Text }}
{{- end }}
{{ end }}
# Conflicts
{{ range .Conflicts }}
{{ .NonTerminal }} / {{ .LookAhead }}: {{ join .Alternatives }}
{{- else }}
(none)
{{ end }}
`

func writeReportText(w io.Writer, report *spec.Report) error {
	fns := template.FuncMap{
		"join": func(ss []string) string {
			if len(ss) == 0 {
				return "-"
			}
			return strings.Join(ss, ", ")
		},
		"withEpsilon": func(ss []string, empty bool) []string {
			if empty {
				ss = append(ss, "ε")
			}
			return ss
		},
		"withEOF": func(ss []string, eof bool) []string {
			if eof {
				ss = append(ss, "$")
			}
			return ss
		},
	}
	tmpl, err := template.New("report").Funcs(fns).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, report)
}

// writeParsingTable renders the predictive table with one row per
// nonterminal and one column per lookahead, end marker last.
func writeParsingTable(report *spec.Report) error {
	if len(report.Table) == 0 {
		return nil
	}

	laSet := map[string]struct{}{}
	cells := map[string]map[string]string{}
	for _, e := range report.Table {
		laSet[e.LookAhead] = struct{}{}
		row, ok := cells[e.NonTerminal]
		if !ok {
			row = map[string]string{}
			cells[e.NonTerminal] = row
		}
		row[e.LookAhead] = strings.Join(e.Alternatives, " / ")
	}
	var las []string
	for la := range laSet {
		if la == "$" {
			continue
		}
		las = append(las, la)
	}
	sort.Strings(las)
	if _, ok := laSet["$"]; ok {
		las = append(las, "$")
	}

	data := pterm.TableData{append([]string{""}, las...)}
	for _, nt := range report.NonTerminals {
		row := []string{nt}
		for _, la := range las {
			row = append(row, cells[nt][la])
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
