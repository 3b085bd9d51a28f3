package typename

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowDetails(t *testing.T) {
	assert.Equal(t, "[std::vector<int>] v", ShowDetails("std::__1::vector<int, std::__1::allocator<int> >", "v"))
	assert.Equal(t, "[std::__1::vector<int>] v", ShowDetailsFull("  std::__1::vector<int> ", "v"))
}

func TestShowDetailsLambda(t *testing.T) {
	tests := []struct {
		memfn string
		want  string
	}{
		{
			memfn: "std::__1::__mem_fn<void(_DOCTEST_ANON_FUNC_2()::$_0:: *)()const>",
			want:  "[lambda: () -> void] f",
		},
		{
			memfn: "class std::_Mem_fn<double (__thiscall <lambda_2>::*)(int,int)const >",
			want:  "[lambda: (int, int) -> double] f",
		},
		{
			memfn: "std::__1::__mem_fn<std::__1::basic_string<char>(_DOCTEST_ANON_FUNC_2()::$_6:: *)(std::__1::basic_string<char> const &)const>",
			want:  "[lambda: (std::string const &) -> std::string] f",
		},
	}

	for _, tt := range tests {
		got, err := ShowDetailsLambda(tt.memfn, "f")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ShowDetailsLambda("int", "f")
	assert.Error(t, err)
}

func TestTemplateDepth(t *testing.T) {
	assert.Equal(t, 0, TemplateDepth("int"))
	assert.Equal(t, 1, TemplateDepth("std::vector<int>"))
	assert.Equal(t, 2, TemplateDepth(libcxxMapOfVectors))
	// basic_string collapses to std::string
	assert.Equal(t, 1, TemplateDepth("std::vector<std::__1::basic_string<char>>"))
	assert.Equal(t, 0, TemplateDepth("std::vector<int"))
}

func TestIndentTypeTree(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{
			name:  "within limit stays on one line",
			input: libcxxMapOfVectors,
			limit: 3,
			want:  "std::map<int, std::vector<int>>",
		},
		{
			name:  "map of vectors",
			input: libcxxMapOfVectors,
			limit: 1,
			want:  "std::map<\n  int,\n  std::vector<int>\n>",
		},
		{
			name:  "three levels",
			input: "std::vector<std::map<int, std::vector<double>>> const &",
			limit: 0,
			want:  "std::vector<\n  std::map<\n    int,\n    std::vector<double>\n  >\n> const &",
		},
		{
			name:  "malformed passes through",
			input: "std::vector<int",
			limit: 0,
			want:  "std::vector<int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndentTypeTree(tt.input, tt.limit))
		})
	}
}
