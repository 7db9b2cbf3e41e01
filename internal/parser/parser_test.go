package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/diag"
)

func parse(t *testing.T, src string) *cst.Node {
	t.Helper()
	root, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, cst.KindModule, root.Kind)
	return root
}

func TestParseModule_Empty(t *testing.T) {
	root := parse(t, "")
	require.Empty(t, root.Children)
}

func TestParseModule_CommentsOnly(t *testing.T) {
	root := parse(t, "# nothing here\n# or here\n")
	require.Empty(t, root.Children)
}

func TestParse_Import(t *testing.T) {
	root := parse(t, "import foo.bar.baz;")
	require.Len(t, root.Children, 1)

	imp := root.Children[0]
	require.Equal(t, cst.KindImport, imp.Kind)

	name := imp.FirstOfKind(cst.KindDottedName)
	require.NotNil(t, name)
	require.Len(t, name.Children, 3)
	require.Equal(t, "foo", name.Children[0].Tok.Raw)
	require.Equal(t, "baz", name.Children[2].Tok.Raw)
}

func TestParse_FunctionForms(t *testing.T) {
	tests := []struct {
		src          string
		hasTemplates bool
		hasIndices   bool
	}{
		{"proc foo() { }", false, false},
		{"proc foo<T>() { }", true, false},
		{"proc foo[m]() { }", false, true},
		{"proc foo<T, U>[m, n]() { }", true, true},
	}

	for _, tt := range tests {
		root := parse(t, tt.src)
		require.Len(t, root.Children, 1, "src %q", tt.src)

		fn := root.Children[0]
		require.Equal(t, cst.KindFunction, fn.Kind, "src %q", tt.src)
		require.Equal(t, "proc", fn.Child(0).Tok.Raw, "src %q", tt.src)
		require.Equal(t, "foo", fn.Child(1).Tok.Raw, "src %q", tt.src)

		require.Equal(t, tt.hasTemplates, fn.FirstOfKind(cst.KindTemplateList) != nil, "src %q", tt.src)
		require.Equal(t, tt.hasIndices, fn.FirstOfKind(cst.KindIndexParamList) != nil, "src %q", tt.src)
		require.NotNil(t, fn.FirstOfKind(cst.KindArgumentList), "src %q", tt.src)
		require.NotNil(t, fn.FirstOfKind(cst.KindBlock), "src %q", tt.src)
	}
}

func TestParse_FunctionReturnType(t *testing.T) {
	root := parse(t, "op foo() -> output int32 { }")
	fn := root.Children[0]
	require.NotNil(t, fn.FirstOfKind(cst.KindQualifiedType))
}

func TestParse_MissingFunctionName(t *testing.T) {
	_, err := Parse("proc () { }")
	requireSyntaxError(t, err, diag.CodeSyntaxUnexpectedToken)
}

func TestParse_UnnamedArgumentStaysGrammatical(t *testing.T) {
	// An argument without a name parses; rejecting it is the
	// converter's job.
	root := parse(t, "proc foo(input int32) { }")
	arg := root.Children[0].FirstOfKind(cst.KindArgumentList).Child(0)
	require.Equal(t, cst.KindArgument, arg.Kind)
	require.Nil(t, arg.FirstOfKind(cst.KindToken))
}

func TestParse_InvalidKeywordStaysGrammatical(t *testing.T) {
	root := parse(t, "def foo() { }")
	fn := root.Children[0]
	require.Equal(t, cst.KindFunction, fn.Kind)
	require.Equal(t, "def", fn.Child(0).Tok.Raw)
}

func TestParse_Gibberish(t *testing.T) {
	for _, src := range []string{
		"lorem ipsum dolor sit amet",
		"lorem ipsum dolor sit amet;",
	} {
		_, err := Parse(src)
		requireSyntaxError(t, err, diag.CodeSyntaxUnexpectedToken)
	}
}

func TestParse_TemplateCallVersusComparison(t *testing.T) {
	root := parse(t, "x = a < b;")
	stmt := root.Children[0]
	require.Equal(t, cst.KindExpressionStmt, stmt.Kind)
	require.Equal(t, cst.KindBinaryExpr, stmt.Children[1].Kind)

	root = parse(t, "x = f<int32>(y);")
	stmt = root.Children[0]
	call := stmt.Children[1]
	require.Equal(t, cst.KindFunctionCall, call.Kind)
	require.NotNil(t, call.FirstOfKind(cst.KindTemplateArgs))
}

func TestParse_IndexArgsVersusArrayAccess(t *testing.T) {
	root := parse(t, "x = f[i](y);")
	call := root.Children[0].Children[1]
	require.Equal(t, cst.KindFunctionCall, call.Kind)
	require.NotNil(t, call.FirstOfKind(cst.KindIndexArgs))

	root = parse(t, "A[i] = 1;")
	stmt := root.Children[0]
	require.Equal(t, cst.KindArrayAccess, stmt.Children[0].Kind)
}

func TestParse_TupleAccessFloatSplit(t *testing.T) {
	// ".1" after an expression lexes as one float token; postfix
	// position splits it back into a tuple access.
	root := parse(t, "x = A.1;")
	access := root.Children[0].Children[1]
	require.Equal(t, cst.KindTupleAccess, access.Kind)
	require.Equal(t, "1", access.Children[1].Tok.Raw)

	root = parse(t, "x = f().1;")
	access = root.Children[0].Children[1]
	require.Equal(t, cst.KindTupleAccess, access.Kind)
	require.Equal(t, cst.KindFunctionCall, access.Children[0].Kind)
}

func TestParse_IndexTypeDeclaration(t *testing.T) {
	root := parse(t, "temp index[1:m] i;")
	decl := root.Children[0]
	require.Equal(t, cst.KindDeclaration, decl.Kind)

	qt := decl.FirstOfKind(cst.KindQualifiedType)
	require.NotNil(t, qt)
	require.Equal(t, cst.KindIndexType, qt.Child(1).Kind)
	require.Len(t, qt.Child(1).Children, 2)
}

func TestParse_ShapeVersusRange(t *testing.T) {
	root := parse(t, "temp int32[m, n] x;")
	qt := root.Children[0].FirstOfKind(cst.KindQualifiedType)
	typ := qt.Child(1)
	require.Equal(t, cst.KindNumericalType, typ.Kind)
	require.Len(t, typ.FirstOfKind(cst.KindShape).Children, 2)

	root = parse(t, "temp int32[1:m] x;")
	qt = root.Children[0].FirstOfKind(cst.KindQualifiedType)
	require.Equal(t, cst.KindIndexType, qt.Child(1).Kind)
}

func TestParse_TupleTypeTrailingComma(t *testing.T) {
	for _, src := range []string{
		"temp tuple[int32[m, n], int32] t;",
		"temp tuple[int32[m, n], int32,] t;",
	} {
		root := parse(t, src)
		qt := root.Children[0].FirstOfKind(cst.KindQualifiedType)
		typ := qt.Child(1)
		require.Equal(t, cst.KindTupleType, typ.Kind, "src %q", src)
		require.Len(t, typ.Children, 2, "src %q", src)
	}
}

func TestParse_SpanMerging(t *testing.T) {
	root := parse(t, "import foo;")
	imp := root.Children[0]
	require.Equal(t, 1, imp.Span().Column)
	require.Equal(t, 12, imp.Span().EndColumn)
}

func requireSyntaxError(t *testing.T, err error, code diag.Code) {
	t.Helper()
	require.Error(t, err)
	var syntaxErr *diag.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, code, syntaxErr.Diagnostic.Code)
}
