// pkg/pipeline/pipeline_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: afero MemMapFs, real filesystem (t.TempDir)
// PURPOSE: Test pass ordering, file handling and failure behavior of configure runs

package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bsconf/pkg/errors"
	"github.com/arthur-debert/bsconf/pkg/filesystem"
	"github.com/arthur-debert/bsconf/pkg/host"
	"github.com/arthur-debert/bsconf/pkg/programs"
	"github.com/arthur-debert/bsconf/pkg/project"
	"github.com/arthur-debert/bsconf/pkg/vars"
)

func resolve(t *testing.T, overrides vars.Overrides) *vars.VariableSet {
	t.Helper()
	vs, err := vars.Resolve(overrides, vars.HostDetectorFunc(func() (string, error) {
		return "x86_64-unknown-linux", nil
	}))
	require.NoError(t, err)
	return vs
}

func testProject(templates ...string) *project.Project {
	return &project.Project{
		Package:    project.Package{Name: "ustl", Version: "1.3", Tarname: "ustl", String: "ustl 1.3"},
		BufferSize: 4096,
		Templates:  templates,
		EnvVars:    []string{"CC", "CFLAGS", "LDFLAGS"},
		Headers: []project.Header{
			{File: "stdio.h", Match: "#undef HAVE_STDIO_H", Found: "#define HAVE_STDIO_H 1"},
			{File: "missing.h", Match: "#undef HAVE_MISSING_H", Found: "#define HAVE_MISSING_H 1"},
		},
		Functions: []project.Function{
			{Name: "strerror", Match: "#undef HAVE_STRERROR", Replacement: "#define HAVE_STRERROR 1"},
		},
		CustomVars: []project.CustomVar{
			{Name: "LIB_MAJOR", Value: "1"},
			{Name: "LIB_MINOR", Value: "3"},
			{Name: "LIB_BUILD", Value: "0"},
		},
	}
}

func env(values map[string]string) EnvLookup {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

func memFS(t *testing.T, files map[string]string) (afero.Fs, filesystem.FS) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return mem, filesystem.NewAferoFS(mem)
}

func readMem(t *testing.T, mem afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(mem, path)
	require.NoError(t, err)
	return string(data)
}

func TestRunSubstitutesPrefix(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Config.mk.in"), []byte("path=@prefix@/bin"), 0644))

	ctx := New(testProject("Config.mk"), resolve(t, vars.Overrides{vars.Prefix: "/opt/app"}),
		host.New("x86_64", "Linux"), nil, filesystem.NewOS(), env(nil))
	ctx.Dir = dir

	results, err := ctx.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)

	data, err := os.ReadFile(filepath.Join(dir, "Config.mk"))
	require.NoError(t, err)
	assert.Equal(t, "path=/opt/app/bin", string(data))
	assert.Equal(t, len("path=/opt/app/bin"), results[0].Bytes)
	assert.Equal(t, 1, results[0].Replacements)
}

func TestRunAllPasses(t *testing.T) {
	template := "" +
		"CFLAGS = @SYSWARNS@ @CFLAGS@\n" +
		"LDFLAGS = @LDFLAGS@\n" +
		"BINDIR = @bindir@\n" +
		"CC = @CC@\n" +
		"INSTALL = @INSTALL@\n" +
		"@BUILD_SHARED_LIBRARIES@\n" +
		"#undef HAVE_STDIO_H\n" +
		"#undef HAVE_MISSING_H\n" +
		"#undef HAVE_STRERROR\n" +
		"#undef PACKAGE_NAME\n" +
		"#undef const\n"

	mem, fsys := memFS(t, map[string]string{
		"/src/config.h.in":           template,
		"/opt/app/include/stdio.h":   "",
		"/usr/include/unrelated.h":   "",
		"/usr/include/sys/missing.h": "",
	})

	progs := []programs.Resolved{
		{Entry: programs.Entry{Token: "CC", Name: "gcc", Found: "gcc", NotFound: "cc"}, Path: "/usr/bin/gcc", Value: "gcc"},
		{Entry: programs.Entry{Token: "INSTALL", Name: "install", NotFound: "cp"}, Value: "cp"},
	}

	ctx := New(testProject("config.h"), resolve(t, vars.Overrides{vars.Prefix: "/opt/app"}),
		host.New("x86_64", "Linux"), progs, fsys, env(map[string]string{"CFLAGS": "-O2"}))
	ctx.Dir = "/src"

	_, err := ctx.Run()
	require.NoError(t, err)

	want := "" +
		"CFLAGS =  -O2\n" +
		"LDFLAGS = \n" +
		"BINDIR = /opt/app/bin\n" +
		"CC = gcc\n" +
		"INSTALL = cp\n" +
		"MAJOR\t\t= 1\nMINOR\t\t= 3\nBUILD\t\t= 0\n" +
		"#define HAVE_STDIO_H 1\n" +
		"#undef HAVE_MISSING_H\n" +
		"#define HAVE_STRERROR 1\n" +
		"#define PACKAGE_NAME \"ustl\"\n" +
		"/* #define const */\n"
	assert.Equal(t, want, readMem(t, mem, "/src/config.h"))
}

func TestPassOrder(t *testing.T) {
	names := make([]string, 0, 8)
	ctx := New(testProject(), resolve(t, nil), host.New("x86_64", "Linux"), nil, filesystem.NewOS(), env(nil))
	for _, p := range ctx.Passes() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"host", "paths", "environment", "programs", "headers", "functions", "custom", "environment-forced",
	}, names)
}

func TestLaterPassesSeeEarlierReplacements(t *testing.T) {
	tests := []struct {
		name     string
		template string
		env      map[string]string
		progs    []programs.Resolved
		want     string
	}{
		{
			name:     "environment value naming a path token stays literal",
			template: "@CFLAGS@",
			env:      map[string]string{"CFLAGS": "-I@includedir@"},
			want:     "-I@includedir@",
		},
		{
			name:     "environment value naming a program token is filled in",
			template: "@LDFLAGS@",
			env:      map[string]string{"LDFLAGS": "@CC@"},
			progs: []programs.Resolved{
				{Entry: programs.Entry{Token: "CC", Name: "gcc", NotFound: "cc"}, Value: "cc"},
			},
			want: "cc",
		},
		{
			name:     "program value naming a custom variable is filled in",
			template: "@CC@",
			progs: []programs.Resolved{
				{Entry: programs.Entry{Token: "CC", Name: "gcc", NotFound: "gcc-@LIB_MAJOR@"}, Value: "gcc-@LIB_MAJOR@"},
			},
			want: "gcc-1",
		},
		{
			name:     "unset variable survives until the forced pass",
			template: "[@LDFLAGS@]",
			want:     "[]",
		},
		{
			name:     "set but empty variable is substituted",
			template: "[@LDFLAGS@]",
			env:      map[string]string{"LDFLAGS": ""},
			want:     "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, fsys := memFS(t, map[string]string{"/src/out.in": tt.template})
			ctx := New(testProject("out"), resolve(t, nil), host.New("x86_64", "Linux"), tt.progs, fsys, env(tt.env))
			ctx.Dir = "/src"

			_, err := ctx.Run()
			require.NoError(t, err)
			assert.Equal(t, tt.want, readMem(t, mem, "/src/out"))
		})
	}
}

func TestHeaderSubstitutedPerReadableDirectory(t *testing.T) {
	mem, fsys := memFS(t, map[string]string{
		"/src/config.h.in":           "#undef HAVE_STDIO_H",
		"/usr/local/include/stdio.h": "",
		"/usr/include/stdio.h":       "",
	})
	p := testProject("config.h")
	p.Headers = []project.Header{{File: "stdio.h", Match: "#undef HAVE_STDIO_H", Found: "#undef HAVE_STDIO_H/*seen*/"}}

	ctx := New(p, resolve(t, nil), host.New("x86_64", "Linux"), nil, fsys, env(nil))
	ctx.Dir = "/src"
	assert.Equal(t, []string{"/usr/local/include", "/usr/include"}, ctx.IncludeDirs())

	_, err := ctx.Run()
	require.NoError(t, err)
	assert.Equal(t, "#undef HAVE_STDIO_H/*seen*//*seen*/", readMem(t, mem, "/src/config.h"))
}

func TestRootPrefixWrittenAsSlash(t *testing.T) {
	mem, fsys := memFS(t, map[string]string{"/src/Makefile.in": "@prefix@ @exec_prefix@ @bindir@"})
	ctx := New(testProject("Makefile"), resolve(t, vars.Overrides{vars.Prefix: "/"}),
		host.New("x86_64", "Linux"), nil, fsys, env(nil))
	ctx.Dir = "/src"

	_, err := ctx.Run()
	require.NoError(t, err)
	assert.Equal(t, "/ / /bin", readMem(t, mem, "/src/Makefile"))
}

func TestRunOverflowKeepsEarlierFiles(t *testing.T) {
	mem, fsys := memFS(t, map[string]string{
		"/src/first.in":  "@prefix@",
		"/src/second.in": "@bindir@@bindir@",
		"/src/third.in":  "@prefix@",
	})
	p := testProject("first", "second", "third")
	p.BufferSize = 24

	ctx := New(p, resolve(t, nil), host.New("x86_64", "Linux"), nil, fsys, env(nil))
	ctx.Dir = "/src"

	results, err := ctx.Run()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBufferOverflow))
	assert.Equal(t, "/src/second.in", errors.GetErrorDetails(err)["file"])

	require.Len(t, results, 1)
	assert.Equal(t, "/usr/local", readMem(t, mem, "/src/first"))

	for _, name := range []string{"/src/second", "/src/third"} {
		exists, err := afero.Exists(mem, name)
		require.NoError(t, err)
		assert.False(t, exists, name)
	}
}

func TestRunFileErrors(t *testing.T) {
	t.Run("missing template", func(t *testing.T) {
		_, fsys := memFS(t, nil)
		ctx := New(testProject("absent"), resolve(t, nil), host.New("x86_64", "Linux"), nil, fsys, env(nil))

		results, err := ctx.Run()
		assert.Empty(t, results)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileOpen))
	})

	t.Run("template too large", func(t *testing.T) {
		_, fsys := memFS(t, map[string]string{"big.in": "0123456789"})
		p := testProject("big")
		p.BufferSize = 4
		ctx := New(p, resolve(t, nil), host.New("x86_64", "Linux"), nil, fsys, env(nil))

		_, err := ctx.Run()
		assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateTooLarge))
	})

	t.Run("output not writable", func(t *testing.T) {
		mem := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(mem, "/src/out.in", []byte("x"), 0644))
		fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(mem))

		ctx := New(testProject("out"), resolve(t, nil), host.New("x86_64", "Linux"), nil, fsys, env(nil))
		ctx.Dir = "/src"

		_, err := ctx.Run()
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	})
}

func TestRunNoTemplates(t *testing.T) {
	_, fsys := memFS(t, nil)
	ctx := New(testProject(), resolve(t, nil), host.New("x86_64", "Linux"), nil, fsys, env(nil))

	results, err := ctx.Run()
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunDryRunLeavesDiskUntouched(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Config.mk.in"), []byte("@prefix@"), 0644))

	ctx := New(testProject("Config.mk"), resolve(t, nil), host.New("x86_64", "Linux"), nil,
		filesystem.NewDryRun(filesystem.NewOS()), env(nil))
	ctx.Dir = dir

	results, err := ctx.Run()
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, len("/usr/local"), results[0].Bytes)

	_, err = os.Stat(filepath.Join(dir, "Config.mk"))
	assert.True(t, os.IsNotExist(err))
}
