package resolve

import (
	"testing"

	"github.com/NickyBoy89/sigfind/descriptor"
	"github.com/NickyBoy89/sigfind/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desc(t *testing.T, text string) descriptor.Descriptor {
	t.Helper()
	d, err := descriptor.ParseOne(text)
	require.NoError(t, err)
	return d
}

func TestClassifyImport(t *testing.T) {
	assert.Equal(t, Import{Kind: Wildcard, Prefix: "java.util."}, ClassifyImport("java.util.*"))
	assert.Equal(t, Import{Kind: Single, Prefix: "java.util.", SimpleName: "List"}, ClassifyImport("java.util.List"))
	assert.Equal(t, Import{Kind: Single, Prefix: "", SimpleName: "Bare"}, ClassifyImport("Bare"))
}

func TestParseTypeName(t *testing.T) {
	tests := []struct {
		text string
		want TypeName
	}{
		{text: "String", want: TypeName{Element: "String"}},
		{text: "List<String>", want: TypeName{Element: "List"}},
		{text: "Map<String, List<Integer>>", want: TypeName{Element: "Map"}},
		{text: "int[]", want: TypeName{Element: "int", Dimensions: 1}},
		{text: "List<String> [] []", want: TypeName{Element: "List", Dimensions: 2}},
		{text: "Object...", want: TypeName{Element: "Object", Dimensions: 1}},
		{text: "String[]...", want: TypeName{Element: "String", Dimensions: 2}},
		{text: "java.util.Map.Entry<K,V>", want: TypeName{Element: "java.util.Map.Entry"}},
		{text: "Broken<String", want: TypeName{Element: "Broken"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTypeName(tt.text))
		})
	}
}

func TestTypeName_WithElement(t *testing.T) {
	name := ParseTypeName("T[]")
	assert.Equal(t, TypeName{Element: "Comparable", Dimensions: 1}, name.WithElement("Comparable<T>"))
	assert.Equal(t, "Comparable[]", name.WithElement("Comparable<T>").String())
}

func TestJVMForm(t *testing.T) {
	assert.Equal(t, "Ljava/util/List;", JVMForm("java.util.", TypeName{Element: "List"}))
	assert.Equal(t, "[[I", JVMForm("com.acme.", TypeName{Element: "int", Dimensions: 2}))
	assert.Equal(t, "[LFoo;", JVMForm("", TypeName{Element: "Foo", Dimensions: 1}))
}

func TestMatches_JavaLangWithoutImports(t *testing.T) {
	ctx := NewContext("", nil)
	assert.True(t, Matches(desc(t, "Ljava/lang/String;"), "String", ctx))
	assert.True(t, Matches(desc(t, "[Ljava/lang/Object;"), "Object[]", ctx))
	assert.False(t, Matches(desc(t, "Ljava/util/List;"), "List", ctx))
}

func TestMatches_Primitives(t *testing.T) {
	ctx := NewContext("p", []string{"java.util.*"})
	for keyword, code := range map[string]string{
		"boolean": "Z", "byte": "B", "char": "C", "double": "D",
		"float": "F", "int": "I", "long": "J", "short": "S",
	} {
		assert.True(t, Matches(desc(t, code), keyword, ctx), keyword)
		assert.True(t, Matches(desc(t, "[["+code), keyword+"[][]", ctx), keyword)
	}
	assert.False(t, Matches(desc(t, "I"), "long", ctx))
	assert.False(t, Matches(desc(t, "I"), "Integer", ctx))
}

func TestMatches_ArrayDepthMismatch(t *testing.T) {
	ctx := NewContext("", nil)
	assert.False(t, Matches(desc(t, "[Ljava/lang/String;"), "String", ctx))
	assert.False(t, Matches(desc(t, "Ljava/lang/String;"), "String[]", ctx))
	assert.False(t, Matches(desc(t, "[[I"), "int[]", ctx))
	assert.True(t, Matches(desc(t, "[Ljava/lang/String;"), "String...", ctx))
}

func TestMatches_OwnPackage(t *testing.T) {
	ctx := NewContext("com.acme", nil)
	assert.True(t, Matches(desc(t, "Lcom/acme/Widget;"), "Widget", ctx))
	assert.False(t, Matches(desc(t, "Lcom/other/Widget;"), "Widget", ctx))
}

func TestMatches_DefaultPackageAndQualifiedNames(t *testing.T) {
	ctx := NewContext("com.acme", nil)
	assert.True(t, Matches(desc(t, "LTopLevel;"), "TopLevel", ctx))
	assert.True(t, Matches(desc(t, "Ljava/util/List;"), "java.util.List<String>", ctx))
}

func TestResolve_PackageBeatsImports(t *testing.T) {
	ctx := NewContext("com.acme", []string{"java.util.*", "com.acme.*"})

	candidates := Candidates("List", ctx)
	require.Len(t, candidates, 5)
	assert.Equal(t, []string{"package", "java.lang", "default", "import", "import"},
		[]string{candidates[0].Rule, candidates[1].Rule, candidates[2].Rule, candidates[3].Rule, candidates[4].Rule})

	// Both the package rule and the com.acme.* import produce com.acme.List; the
	// package rule is the one reported
	candidate, ok := Resolve(desc(t, "Lcom/acme/List;"), ParseTypeName("List"), ctx)
	require.True(t, ok)
	assert.Equal(t, "package", candidate.Rule)

	// The same short name still reaches java.util.List through the wildcard
	candidate, ok = Resolve(desc(t, "Ljava/util/List;"), ParseTypeName("List<String>"), ctx)
	require.True(t, ok)
	assert.Equal(t, "import", candidate.Rule)
	assert.Equal(t, "java.util.", candidate.Prefix)
}

func TestMatches_SingleImportPrecision(t *testing.T) {
	ctx := NewContext("p", []string{"java.util.List"})

	assert.True(t, Matches(desc(t, "Ljava/util/List;"), "List", ctx))
	assert.True(t, Matches(desc(t, "[Ljava/util/List;"), "List<String>[]", ctx))

	// Only the imported simple name can use the import's prefix
	assert.False(t, Matches(desc(t, "Ljava/util/ArrayList;"), "ArrayList", ctx))
	assert.False(t, Matches(desc(t, "Ljava/util/Set;"), "Set", ctx))
	assert.False(t, Matches(desc(t, "Ljava/awt/List;"), "List", ctx))
}

func TestMatches_WildcardPrefixExcludesStar(t *testing.T) {
	ctx := NewContext("", []string{"java.util.concurrent.*"})
	assert.True(t, Matches(desc(t, "Ljava/util/concurrent/Future;"), "Future<?>", ctx))
	assert.False(t, Matches(desc(t, "Ljava/util/concurrent/*Future;"), "Future", ctx))
}

func TestMatches_EmptyName(t *testing.T) {
	assert.False(t, Matches(desc(t, "LFoo;"), "", NewContext("", nil)))
}

func TestResolver_Matches(t *testing.T) {
	r := NewResolver(nil)
	ctx := NewContext("", []string{"java.util.Map"})
	assert.True(t, r.Matches(desc(t, "Ljava/util/Map;"), "Map<String,String>", ctx))
	assert.False(t, r.Matches(desc(t, "Ljava/util/List;"), "Map<String,String>", ctx))
}

func TestContextOf_CompiledUnit(t *testing.T) {
	ctx := ContextOf(&symbol.FileScope{
		Package:  "com.x",
		Imports:  []symbol.Import{{Path: "java.util.*"}},
		Compiled: true,
	})
	assert.True(t, ctx.Qualified)
	assert.Empty(t, ctx.Imports)

	candidates := Candidates("java.util.List", ctx)
	require.Len(t, candidates, 1)
	assert.Equal(t, "", candidates[0].Prefix)

	assert.True(t, Matches(desc(t, "Ljava/util/List;"), "java.util.List", ctx))
	assert.False(t, Matches(desc(t, "Lcom/x/java/util/List;"), "java.util.List", ctx))
	assert.False(t, Matches(desc(t, "Ljava/lang/java/util/List;"), "java.util.List", ctx))
	assert.True(t, Matches(desc(t, "[[J"), "long[][]", ctx))
}
