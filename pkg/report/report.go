// Package report prints what a configure run resolved and wrote.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/bsconf/pkg/errors"
	"github.com/arthur-debert/bsconf/pkg/pipeline"
	"github.com/arthur-debert/bsconf/pkg/vars"
)

// Variable is one resolved installation variable.
type Variable struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Given bool   `json:"given" yaml:"given"`
}

// Program is one located program.
type Program struct {
	Token string `json:"token" yaml:"token"`
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty"`
	Value string `json:"value" yaml:"value"`
}

// Summary is everything a report can show.
type Summary struct {
	Host      string                `json:"host" yaml:"host"`
	DryRun    bool                  `json:"dry_run" yaml:"dry_run"`
	Variables []Variable            `json:"variables" yaml:"variables"`
	Programs  []Program             `json:"programs" yaml:"programs"`
	Files     []pipeline.FileResult `json:"files" yaml:"files"`
}

// FromContext collects the resolved state of ctx. files may be nil.
func FromContext(ctx *pipeline.Context, files []pipeline.FileResult, dryRun bool) *Summary {
	s := &Summary{
		Host:   ctx.Host.Triple(),
		DryRun: dryRun,
		Files:  files,
	}
	for _, v := range vars.All() {
		s.Variables = append(s.Variables, Variable{
			Name:  v.Name(),
			Value: ctx.Vars.SubstitutionValue(v),
			Given: ctx.Vars.Given(v),
		})
	}
	for _, p := range ctx.Programs {
		s.Programs = append(s.Programs, Program{Token: p.Token, Name: p.Name, Path: p.Path, Value: p.Value})
	}
	return s
}

// Write renders s to w. FormatAuto is treated as text; callers resolve it
// against the output device first.
func Write(w io.Writer, format Format, s *Summary) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode report")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode report")
		}
		return enc.Close()
	case FormatTerminal:
		_, err := io.WriteString(w, terminal(s))
		return err
	default:
		_, err := io.WriteString(w, text(s))
		return err
	}
}

// WriteFiles reports only the written files, one line each, the way a
// configure run does by default.
func WriteFiles(w io.Writer, format Format, s *Summary) error {
	switch format {
	case FormatJSON, FormatYAML:
		return Write(w, format, s)
	}

	verb := "creating"
	if s.DryRun {
		verb = "would create"
	}
	for _, f := range s.Files {
		line := fmt.Sprintf("%s %s", verb, f.Output)
		if format == FormatTerminal {
			line = fmt.Sprintf("%s %s", foundStyle.Sprint(verb), valueStyle.Render(f.Output))
			if s.DryRun {
				line = fmt.Sprintf("%s %s", dryRunStyle.Sprint(verb), valueStyle.Render(f.Output))
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Error formats err for the terminal or for plain output.
func Error(err error, format Format) string {
	if format != FormatTerminal {
		return "bsconf: " + err.Error()
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

func text(s *Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "host: %s\n", s.Host)
	for _, v := range s.Variables {
		fmt.Fprintf(&b, "%s=%s\n", v.Name, v.Value)
	}
	for _, p := range s.Programs {
		state := "not found"
		if p.Path != "" {
			state = p.Path
		}
		fmt.Fprintf(&b, "%s: %s (%s)\n", p.Token, p.Value, state)
	}
	for _, f := range s.Files {
		fmt.Fprintf(&b, "wrote %s: %d bytes, %d replacements\n", f.Output, f.Bytes, f.Replacements)
	}
	return b.String()
}

func terminal(s *Summary) string {
	width := 0
	for _, v := range s.Variables {
		width = max(width, len(v.Name))
	}
	for _, p := range s.Programs {
		width = max(width, len(p.Token))
	}
	key := keyStyle.Width(width + 4)

	var sections []string

	lines := []string{titleStyle.Render("Installation directories")}
	for _, v := range s.Variables {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, key.Render(v.Name), valueStyle.Render(v.Value)))
	}
	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))

	if len(s.Programs) > 0 {
		lines = []string{titleStyle.Render("Programs")}
		for _, p := range s.Programs {
			state := notFoundStyle.Sprint("not found")
			if p.Path != "" {
				state = foundStyle.Sprint(p.Path)
			}
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, key.Render(p.Token), valueStyle.Render(p.Value), " ", state))
		}
		sections = append(sections, sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	if len(s.Files) > 0 {
		lines = []string{titleStyle.Render("Files")}
		for _, f := range s.Files {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				key.Render(f.Name),
				fmt.Sprintf("%d bytes, %d replacements", f.Bytes, f.Replacements)))
		}
		sections = append(sections, sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	header := titleStyle.Render("Host ") + valueStyle.Render(s.Host)
	if s.DryRun {
		header += " " + dryRunStyle.Sprint("(dry run)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, sections...)...) + "\n"
}
