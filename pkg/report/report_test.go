// pkg/report/report_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test report formats and format selection

package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/bsconf/pkg/errors"
	"github.com/arthur-debert/bsconf/pkg/filesystem"
	"github.com/arthur-debert/bsconf/pkg/host"
	"github.com/arthur-debert/bsconf/pkg/pipeline"
	"github.com/arthur-debert/bsconf/pkg/programs"
	"github.com/arthur-debert/bsconf/pkg/project"
	"github.com/arthur-debert/bsconf/pkg/vars"
)

func testSummary(t *testing.T) *Summary {
	t.Helper()
	vs, err := vars.Resolve(vars.Overrides{vars.Prefix: "/opt/app"}, vars.HostDetectorFunc(func() (string, error) {
		return "x86_64-unknown-linux", nil
	}))
	require.NoError(t, err)

	progs := []programs.Resolved{
		{Entry: programs.Entry{Token: "CC", Name: "gcc", NotFound: "cc"}, Path: "/usr/bin/gcc", Value: "/usr/bin/gcc"},
		{Entry: programs.Entry{Token: "RANLIB", Name: "ranlib", NotFound: "touch"}, Value: "touch"},
	}
	ctx := pipeline.New(&project.Project{BufferSize: 64}, vs, host.New("x86_64", "Linux"), progs, filesystem.NewOS(), nil)
	files := []pipeline.FileResult{{Name: "Config.mk", Input: "Config.mk.in", Output: "Config.mk", Bytes: 120, Replacements: 7}}
	return FromContext(ctx, files, false)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"Terminal", FormatTerminal},
		{"plain", FormatText},
		{"json", FormatJSON},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDetectFormatNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, FormatText, DetectFormat(f))
	assert.Equal(t, FormatJSON, FormatJSON.Resolve(f))
	assert.Equal(t, FormatText, FormatAuto.Resolve(f))
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
}

func TestFromContext(t *testing.T) {
	s := testSummary(t)

	assert.Equal(t, "x86_64-unknown-linux", s.Host)
	require.Len(t, s.Variables, vars.Count)
	assert.Equal(t, Variable{Name: "prefix", Value: "/opt/app", Given: true}, s.Variables[0])
	assert.Equal(t, Variable{Name: "exec_prefix", Value: "/opt/app", Given: false}, s.Variables[1])
	require.Len(t, s.Programs, 2)
	assert.Equal(t, "touch", s.Programs[1].Value)
}

func TestWriteText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, FormatText, testSummary(t)))

	text := out.String()
	assert.Contains(t, text, "host: x86_64-unknown-linux\n")
	assert.Contains(t, text, "bindir=/opt/app/bin\n")
	assert.Contains(t, text, "CC: /usr/bin/gcc (/usr/bin/gcc)\n")
	assert.Contains(t, text, "RANLIB: touch (not found)\n")
	assert.Contains(t, text, "wrote Config.mk: 120 bytes, 7 replacements\n")
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, FormatJSON, testSummary(t)))

	var decoded Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "x86_64-unknown-linux", decoded.Host)
	assert.Equal(t, 7, decoded.Files[0].Replacements)
}

func TestWriteYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, FormatYAML, testSummary(t)))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "x86_64-unknown-linux", decoded["host"])
	assert.Equal(t, false, decoded["dry_run"])
}

func TestWriteTerminalMentionsEverything(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Write(&out, FormatTerminal, testSummary(t)))

	text := out.String()
	for _, want := range []string{"x86_64-unknown-linux", "exec_prefix", "/opt/app/bin", "RANLIB", "not found", "Config.mk"} {
		assert.Contains(t, text, want)
	}
}

func TestWriteFiles(t *testing.T) {
	s := testSummary(t)

	var out bytes.Buffer
	require.NoError(t, WriteFiles(&out, FormatText, s))
	assert.Equal(t, "creating Config.mk\n", out.String())

	s.DryRun = true
	out.Reset()
	require.NoError(t, WriteFiles(&out, FormatText, s))
	assert.Equal(t, "would create Config.mk\n", out.String())
}

func TestError(t *testing.T) {
	err := errors.New(errors.ErrBufferOverflow, "buffer overflow")
	assert.Equal(t, "bsconf: [BUFFER_OVERFLOW] buffer overflow", Error(err, FormatText))
	assert.Contains(t, Error(err, FormatTerminal), "buffer overflow")
}
