package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/props/internal/core/domain"
)

func TestCheckPropertyName(t *testing.T) {
	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := domain.CheckPropertyName("")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrEmptyPropertyName))
		assert.Equal(t, "Property name must not be empty string", err.Error())
	})

	t.Run("non-empty name is returned unchanged", func(t *testing.T) {
		name, err := domain.CheckPropertyName("x")
		require.NoError(t, err)
		assert.Equal(t, "x", name)
	})
}

func TestEnsurePropertiesHaveNames(t *testing.T) {
	t.Run("numbers anonymous properties only", func(t *testing.T) {
		inputs := []domain.InputFileProperty{
			domain.NewInputFileProperty("", "a.txt"),
			domain.NewInputFileProperty("a", "b.txt"),
			domain.NewInputFileProperty("", "c.txt"),
		}

		named := domain.EnsurePropertiesHaveNames(inputs)

		require.Len(t, named, 3)
		assert.Equal(t, "$1", named[0].PropertyName())
		assert.Equal(t, "a", named[1].PropertyName())
		assert.Equal(t, "$2", named[2].PropertyName())
		assert.Equal(t, []string{"c.txt"}, named[2].Paths())
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		inputs := []domain.InputFileProperty{domain.NewInputFileProperty("", "a.txt")}

		_ = domain.EnsurePropertiesHaveNames(inputs)

		assert.Empty(t, inputs[0].PropertyName())
	})

	t.Run("second pass is a no-op", func(t *testing.T) {
		inputs := []domain.InputFileProperty{
			domain.NewInputFileProperty("", "a.txt"),
			domain.NewInputFileProperty("", "b.txt"),
		}

		once := domain.EnsurePropertiesHaveNames(inputs)
		twice := domain.EnsurePropertiesHaveNames(once)

		assert.Equal(t, once, twice)
	})

	t.Run("names every declared output variant", func(t *testing.T) {
		outputs := []domain.DeclaredOutput{
			domain.DeclareCacheable(domain.NewOutputFileProperty("", domain.OutputTypeFile, "out.bin")),
			domain.DeclareComposite(domain.NewCompositeOutputProperty("", domain.OutputTypeFile,
				domain.CompositeEntry{Path: "a"})),
			domain.DeclareGeneric(domain.NewOutputFilesProperty("logs", domain.OutputTypeFile, "a.log")),
			domain.DeclareGeneric(domain.NewOutputFilesProperty("", domain.OutputTypeFile, "b.log")),
		}

		named := domain.EnsurePropertiesHaveNames(outputs)

		assert.Equal(t, "$1", named[0].PropertyName())
		assert.Equal(t, "$2", named[1].PropertyName())
		assert.Equal(t, "logs", named[2].PropertyName())
		assert.Equal(t, "$3", named[3].PropertyName())

		composite, ok := named[1].Composite()
		require.True(t, ok)
		assert.Equal(t, "$2", composite.PropertyName())
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, domain.EnsurePropertiesHaveNames[domain.InputFileProperty](nil))
	})
}
