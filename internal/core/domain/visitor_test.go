package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/props/internal/core/domain"
)

func TestOutputFilesVisitor_Empty(t *testing.T) {
	v := domain.NewOutputFilesVisitor()

	assert.False(t, v.HasDeclaredOutputs())

	props, err := v.FileProperties()
	require.NoError(t, err)
	assert.Equal(t, 0, props.Len())
}

func TestOutputFilesVisitor_HasDeclaredOutputs(t *testing.T) {
	v := domain.NewOutputFilesVisitor()
	require.False(t, v.HasDeclaredOutputs())

	v.AcceptOutputFileProperty(domain.NewOutputFileProperty("a", domain.OutputTypeFile, "a"))

	assert.True(t, v.HasDeclaredOutputs())
}

func TestOutputFilesVisitor_Memoizes(t *testing.T) {
	v := domain.NewOutputFilesVisitor()
	v.AcceptOutputFileProperty(domain.NewOutputFileProperty("b", domain.OutputTypeFile, "b"))
	v.AcceptOutputFileProperty(domain.NewOutputFileProperty("a", domain.OutputTypeFile, "a"))

	first, err := v.FileProperties()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, first.Names())

	v.AcceptOutputFileProperty(domain.NewOutputFileProperty("c", domain.OutputTypeFile, "c"))

	second, err := v.FileProperties()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b"}, second.Names())
}

func TestOutputFilesVisitor_Duplicate(t *testing.T) {
	v := domain.NewOutputFilesVisitor()
	v.AcceptOutputFileProperty(domain.NewOutputFileProperty("out", domain.OutputTypeFile, "a"))
	v.AcceptOutputFileProperty(domain.NewOutputFileProperty("out", domain.OutputTypeFile, "b"))

	_, err := v.FileProperties()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicatePropertyName))
	assert.Equal(t, "Multiple output file properties with name 'out'", err.Error())
	assert.True(t, v.HasDeclaredOutputs())

	_, err = v.FileProperties()
	assert.Error(t, err, "a failed collection is not cached")
}

func TestOutputFilesVisitor_DrivenByDispatcher(t *testing.T) {
	v := domain.NewOutputFilesVisitor()
	declared := domain.EnsurePropertiesHaveNames([]domain.DeclaredOutput{
		domain.DeclareCacheable(domain.NewOutputFileProperty("", domain.OutputTypeFile, "")),
		domain.DeclareComposite(domain.NewCompositeOutputProperty("reports", domain.OutputTypeDirectory,
			domain.CompositeEntry{Key: "xml", Path: "r/xml"},
			domain.CompositeEntry{Key: "html", Path: "r/html"})),
		domain.DeclareCacheable(domain.NewOutputFileProperty("", domain.OutputTypeFile, "bin/app")),
	})

	for _, d := range declared {
		domain.ResolveDeclaredOutputFileProperty(v, d)
	}

	props, err := v.FileProperties()
	require.NoError(t, err)
	assert.Equal(t, []string{"$2", "reports.html", "reports.xml"}, props.Names())

	resolved := domain.ResolveFileProperties(props)
	out, ok := resolved.Get("$2")
	require.True(t, ok)
	assert.Equal(t, "bin/app", out.OutputFile)
}

func TestInputFilesVisitor(t *testing.T) {
	v := domain.NewInputFilesVisitor()

	for _, in := range domain.EnsurePropertiesHaveNames([]domain.InputFileProperty{
		domain.NewInputFileProperty("sources", "src"),
		domain.NewInputFileProperty("", "go.sum"),
	}) {
		v.AcceptInputFileProperty(in)
	}

	props, err := v.FileProperties()
	require.NoError(t, err)
	assert.Equal(t, []string{"$1", "sources"}, props.Names())

	v.AcceptInputFileProperty(domain.NewInputFileProperty("sources", "other"))
	again, err := v.FileProperties()
	require.NoError(t, err)
	assert.Equal(t, props, again)
}
