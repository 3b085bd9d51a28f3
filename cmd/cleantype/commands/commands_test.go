package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cleantype/am"
	"github.com/teranos/cleantype/errors"
)

const (
	msvcPairLambda = "class std::_Mem_fn<struct std::pair<int,double> (__thiscall <lambda_e15113958de8c2368f6f706484d8ddc7>::*)(int,int)const >"
	libcxxVector   = "std::__1::vector<int, std::__1::allocator<int> >"
	libcxxMap      = "std::__1::map<int, std::__1::vector<int, std::__1::allocator<int>>, std::__1::less<int>, " +
		"std::__1::allocator<std::__1::pair<int const, std::__1::vector<int, std::__1::allocator<int>>>>>"
)

// isolate points HOME and the working directory at fresh temp dirs and
// returns the project directory
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	t.Chdir(project)
	am.Reset()
	t.Cleanup(am.Reset)
	return project
}

// execute runs the CLI with args and stdin, returning what it wrote to stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	am.Reset()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return out.String(), err
}

func writeProjectConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, am.ProjectConfigName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestClean(t *testing.T) {
	isolate(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name: "argument",
			args: []string{"clean", libcxxVector},
			want: "std::vector<int>\n",
		},
		{
			name:  "stdin lines",
			stdin: libcxxVector + "\n\nstd::__1::basic_string<char, std::__1::char_traits<char>, std::__1::allocator<char> >\n",
			args:  []string{"clean"},
			want:  "std::vector<int>\nstd::string\n",
		},
		{
			name: "with name",
			args: []string{"clean", "--name", "v", libcxxVector},
			want: "[std::vector<int>] v\n",
		},
		{
			name: "full keeps spelling",
			args: []string{"clean", "--full", "--name", "v", "std::__1::vector<int>"},
			want: "[std::__1::vector<int>] v\n",
		},
		{
			name: "indent",
			args: []string{"clean", "--indent", "--depth-limit", "1", libcxxMap},
			want: "std::map<\n  int,\n  std::vector<int>\n>\n",
		},
		{
			name: "indent within default limit",
			args: []string{"clean", "--indent", libcxxMap},
			want: "std::map<int, std::vector<int>>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestClean_FullAndIndentConflict(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "clean", "--full", "--indent", "int")
	assert.Error(t, err)
}

func TestClean_UsesProjectConfig(t *testing.T) {
	project := isolate(t)
	writeProjectConfig(t, project, "[clean]\nforce_east_const = true\n")

	out, err := execute(t, "", "clean", "const std::__1::basic_string<char> &")
	require.NoError(t, err)
	assert.Equal(t, "std::string const &\n", out)
}

func TestClean_ConfigFlag(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte("[clean]\nextra_namespaces = [\"__debug\"]\n"), 0644))

	out, err := execute(t, "", "--config", path, "clean", "std::__debug::vector<int>")
	require.NoError(t, err)
	assert.Equal(t, "std::vector<int>\n", out)
}

func TestClean_InvalidConfig(t *testing.T) {
	project := isolate(t)
	writeProjectConfig(t, project, "[display]\nindent_depth_limit = -1\n")

	_, err := execute(t, "", "clean", "int")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestLambda(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "lambda", msvcPairLambda)
	require.NoError(t, err)
	assert.Equal(t, "lambda: (int, int) -> std::pair<int, double>\n", out)

	out, err = execute(t, "", "lambda", "--scheme", "--name", "f", "std::__1::__mem_fn<void(Foo::$_0:: *)()const>")
	require.NoError(t, err)
	assert.Equal(t, "libcxx\t[lambda: () -> void] f\n", out)

	out, err = execute(t, "", "lambda", "--raw", msvcPairLambda)
	require.NoError(t, err)
	assert.Equal(t, "lambda: (int, int) -> struct std::pair<int,double>\n", out)
}

func TestLambda_JSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "lambda", "--json", msvcPairLambda, "std::__1::__mem_fn<void(Foo::$_0:: *)()const>")
	require.NoError(t, err)

	var results []lambdaOutput
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "msvc", results[0].Scheme)
	assert.Equal(t, []string{"int", "int"}, results[0].Params)
	assert.Equal(t, "std::pair<int, double>", results[0].ReturnType)

	assert.Equal(t, []string{}, results[1].Params)
	assert.Equal(t, "lambda: () -> void", results[1].Signature)
}

func TestLambda_Errors(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "lambda", "std::function<int(int)>")
	require.Error(t, err)
	assert.True(t, errors.IsUnrecognizedScheme(err))
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, err = execute(t, "", "lambda", "std::__1::__mem_fn<int>")
	require.Error(t, err)
	assert.True(t, errors.IsMalformedSignature(err))
}

func TestTokenize(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "tokenize", "--json", "--normalize", "int, std::__1::basic_string<char>, std::map<int, double>")
	require.NoError(t, err)

	var tokens []string
	require.NoError(t, json.Unmarshal([]byte(out), &tokens))
	assert.Equal(t, []string{"int", "std::string", "std::map<int, double>"}, tokens)

	out, err = execute(t, "", "tokenize", "int, std::map<int, double>")
	require.NoError(t, err)
	assert.Contains(t, out, "Parameter")
	assert.Contains(t, out, "std::map<int, double>")

	out, err = execute(t, "int, char\n", "tokenize", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &tokens))
	assert.Equal(t, []string{"int", "char"}, tokens)
}

func TestExtract(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "extract", "--json", "ABC(DEF)(GHI)KLM")
	require.NoError(t, err)

	var result extractOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "GHI", result.ParenthesisContent)
	assert.Equal(t, "ABC(DEF)", result.RemainingAtStart)

	out, err = execute(t, "", "extract", "f(a(b)c)")
	require.NoError(t, err)
	assert.Contains(t, out, "a(b)c")

	_, err = execute(t, "", "extract", "no group here")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnmatchedParenthesis))
}

func TestDecipher(t *testing.T) {
	isolate(t)

	stdin := "main.cpp:4:5: error: no viable conversion from '" + libcxxVector + "' to 'int'\n" +
		"    if (a < b && c > d) return;\n" +
		"1 error generated.\n"

	out, err := execute(t, stdin, "decipher")
	require.NoError(t, err)
	assert.Equal(t,
		"main.cpp:4:5: error: no viable conversion from 'std::vector<int>' to 'int'\n"+
			"    if (a < b && c > d) return;\n"+
			"1 error generated.\n",
		out)
}

func TestDecipher_WatchConfigWithoutFiles(t *testing.T) {
	isolate(t)

	out, err := execute(t, libcxxVector+"\n", "decipher", "--watch-config")
	require.NoError(t, err)
	assert.Equal(t, "std::vector<int>\n", out)
}

func TestDecipher_WatchConfig(t *testing.T) {
	project := isolate(t)
	writeProjectConfig(t, project, "[log]\njson = false\n")

	out, err := execute(t, libcxxVector+"\n", "decipher", "--watch-config")
	require.NoError(t, err)
	assert.Equal(t, "std::vector<int>\n", out)
}

func TestDecipherFilter_Reload(t *testing.T) {
	filter := newDecipherFilter(am.DefaultConfig().Cleaner())
	assert.Equal(t, "std::__debug::vector<int>", filter.line("std::__debug::vector<int>"))

	cfg := am.DefaultConfig()
	cfg.Clean.ExtraNamespaces = []string{"__debug"}
	require.NoError(t, filter.reload(cfg))

	var out bytes.Buffer
	require.NoError(t, filter.run(strings.NewReader("std::__debug::vector<int>\n"), &out))
	assert.Equal(t, "std::vector<int>\n", out.String())
}

func TestConfigShow(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "config", "show", "--format", "json")
	require.NoError(t, err)
	var cfg am.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, am.DefaultIndentDepthLimit, cfg.Display.IndentDepthLimit)
	assert.True(t, cfg.Clean.SuppressElaboratedKeywords)

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "indent_depth_limit = 3")

	out, err = execute(t, "", "config", "show", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "indent_depth_limit: 3")

	_, err = execute(t, "", "config", "show", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigGet(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "config", "get", "display.indent_depth_limit")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = execute(t, "", "config", "get", "clean.undesirable_nodes")
	require.NoError(t, err)
	assert.Contains(t, out, "std::allocator\n")

	_, err = execute(t, "", "config", "get", "clean.nope")
	assert.Error(t, err)
}

func TestConfigSetInitCheck(t *testing.T) {
	project := isolate(t)

	_, err := execute(t, "", "config", "set", "display.indent_depth_limit", "1")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(project, am.ProjectConfigName))

	out, err := execute(t, "", "config", "get", "display.indent_depth_limit")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = execute(t, "", "config", "init")
	assert.Error(t, err, "init must not clobber an existing file")

	_, err = execute(t, "", "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "", "config", "check")
	require.NoError(t, err)
	assert.Contains(t, out, am.ProjectConfigName)

	_, err = execute(t, "", "config", "validate")
	require.NoError(t, err)
}

func TestConfigCheck_UnknownKey(t *testing.T) {
	project := isolate(t)
	path := writeProjectConfig(t, project, "[clean]\nforce_east_konst = true\n")

	out, err := execute(t, "", "config", "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "unknown key: clean.force_east_konst")
}

func TestConfigValidate_Invalid(t *testing.T) {
	project := isolate(t)
	writeProjectConfig(t, project, "[[clean.replacements]]\nfrom = \"\"\nto = \"x\"\n")

	_, err := execute(t, "", "config", "validate")
	assert.Error(t, err)
}

func TestConfigWhere(t *testing.T) {
	project := isolate(t)
	writeProjectConfig(t, project, "[clean]\nforce_east_const = true\n")

	out, err := execute(t, "", "config", "where")
	require.NoError(t, err)
	assert.Contains(t, out, "[PROJECT]")
	assert.Contains(t, out, "clean.force_east_const")
	assert.Contains(t, out, "project")
	assert.Contains(t, out, "CLEANTYPE_* environment variables")
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "commit_hash")

	out, err = execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cleantype "))

	// untagged test builds cannot satisfy a constraint
	_, err = execute(t, "", "version", "--require", ">= 0.1")
	assert.Error(t, err)
}
