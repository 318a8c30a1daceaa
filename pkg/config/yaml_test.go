package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofill/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("empty config", func(t *testing.T) {
		t.Parallel()
		c := &config.Config{}
		clone := c.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, c, clone)
		assert.Nil(t, clone.StrictRanges)
		assert.Nil(t, clone.Regex.Prefix)
	})

	t.Run("pointer fields are copied", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.Regex.Prefix = config.Ptr("^")

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original.MaxLength, clone.MaxLength)
		assert.NotSame(t, original.Regex.Prefix, clone.Regex.Prefix)

		*clone.MaxLength = 5
		*clone.Regex.Prefix = "?!"
		assert.Equal(t, config.DefaultMaxLength, *original.MaxLength)
		assert.Equal(t, "^", *original.Regex.Prefix)
	})

	t.Run("preserves CLI fields", func(t *testing.T) {
		t.Parallel()
		original := &config.Config{ToRegex: true, Seed: 42, Step: 3, Jobs: 4}
		clone := original.Clone()
		assert.True(t, clone.ToRegex)
		assert.Equal(t, uint64(42), clone.Seed)
		assert.Equal(t, 3, clone.Step)
		assert.Equal(t, 4, clone.Jobs)
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		data, err := c.ToYAML()
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		data, err := config.NewConfig().ToYAML()
		require.NoError(t, err)

		out := string(data)
		assert.Contains(t, out, "strict_ranges: false")
		assert.Contains(t, out, "max_length: 100000")
		assert.Contains(t, out, "format: text")
		assert.Contains(t, out, "regex:\n  wrap: false")
		assert.NotContains(t, out, "seed")
	})

	t.Run("with header", func(t *testing.T) {
		t.Parallel()
		data, err := config.NewConfig().ToYAMLWithHeader(config.DefaultTemplateHeader())
		require.NoError(t, err)
		assert.Contains(t, string(data), "# gofill configuration\n")
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("full document", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.FromYAML([]byte(`
strict_ranges: true
step: 2
max_length: 10
format: json
regex:
  capture: true
  prefix: "^"
`))
		require.NoError(t, err)
		require.NotNil(t, cfg.StrictRanges)
		assert.True(t, *cfg.StrictRanges)
		assert.Equal(t, 2, cfg.Step)
		assert.Equal(t, uint64(10), *cfg.MaxLength)
		assert.Equal(t, config.FormatJSON, cfg.Format)
		assert.True(t, *cfg.Regex.Capture)
		assert.Equal(t, "^", *cfg.Regex.Prefix)
		assert.Nil(t, cfg.Regex.Wrap)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Nil(t, cfg.StrictRanges)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := config.FromYAML([]byte("step: [\n"))
		require.Error(t, err)
	})
}
