package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gofill/pkg/config"
)

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal yaml parses", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# strict_ranges: false")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Nil(t, cfg.StrictRanges)
	})

	t.Run("full yaml parses", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		require.NotNil(t, cfg.MaxLength)
		assert.Equal(t, config.DefaultMaxLength, *cfg.MaxLength)
		assert.Equal(t, "\n", *cfg.Separator)
		assert.Equal(t, 1, cfg.Step)
		assert.Equal(t, config.FormatText, cfg.Format)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		data, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "text", doc["format"])
		assert.InDelta(t, 100000, doc["max_length"], 0)
		assert.Contains(t, doc, "regex")
	})
}
