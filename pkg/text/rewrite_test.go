package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var crunchRewrite = Rewrite{
	Marker: "TextureImporter:",
	Rules: []ReplacementRule{
		{FromText: "crunchedCompression: 0", ToText: "crunchedCompression: 1"},
	},
}

func TestRewrite_Apply(t *testing.T) {
	tests := []struct {
		name            string
		rewrite         Rewrite
		content         string
		want            string
		wantCount       int
		wantMarkerFound bool
		wantModified    bool
	}{
		{
			name:            "marker_and_target_present",
			rewrite:         crunchRewrite,
			content:         "TextureImporter:\ncrunchedCompression: 0\n",
			want:            "TextureImporter:\ncrunchedCompression: 1\n",
			wantCount:       1,
			wantMarkerFound: true,
			wantModified:    true,
		},
		{
			name:            "every_occurrence_replaced",
			rewrite:         crunchRewrite,
			content:         "TextureImporter:\n  a:\n    crunchedCompression: 0\n  b:\n    crunchedCompression: 0\n",
			want:            "TextureImporter:\n  a:\n    crunchedCompression: 1\n  b:\n    crunchedCompression: 1\n",
			wantCount:       2,
			wantMarkerFound: true,
			wantModified:    true,
		},
		{
			name:            "marker_missing",
			rewrite:         crunchRewrite,
			content:         "AudioImporter:\ncrunchedCompression: 0\n",
			want:            "AudioImporter:\ncrunchedCompression: 0\n",
			wantMarkerFound: false,
		},
		{
			name:            "already_enabled",
			rewrite:         crunchRewrite,
			content:         "TextureImporter:\ncrunchedCompression: 1\n",
			want:            "TextureImporter:\ncrunchedCompression: 1\n",
			wantMarkerFound: true,
		},
		{
			name:            "no_target_token",
			rewrite:         crunchRewrite,
			content:         "TextureImporter:\nmaxTextureSize: 2048\n",
			want:            "TextureImporter:\nmaxTextureSize: 2048\n",
			wantMarkerFound: true,
		},
		{
			name: "rules_apply_in_order",
			rewrite: Rewrite{
				Marker: "TextureImporter:",
				Rules: []ReplacementRule{
					{FromText: "crunchedCompression: 0", ToText: "crunchedCompression: 1"},
					{FromText: "maxTextureSize: 2048", ToText: "maxTextureSize: 1024"},
				},
			},
			content:         "TextureImporter:\ncrunchedCompression: 0\nmaxTextureSize: 2048\n",
			want:            "TextureImporter:\ncrunchedCompression: 1\nmaxTextureSize: 1024\n",
			wantCount:       2,
			wantMarkerFound: true,
			wantModified:    true,
		},
		{
			name: "empty_marker_always_applies",
			rewrite: Rewrite{
				Rules: []ReplacementRule{{FromText: "foo", ToText: "bar"}},
			},
			content:         "foo foo",
			want:            "bar bar",
			wantCount:       2,
			wantMarkerFound: true,
			wantModified:    true,
		},
		{
			name: "empty_from_text_skipped",
			rewrite: Rewrite{
				Rules: []ReplacementRule{{FromText: "", ToText: "bar"}},
			},
			content:         "foo",
			want:            "foo",
			wantMarkerFound: true,
		},
		{
			name: "identity_rule_is_not_a_modification",
			rewrite: Rewrite{
				Rules: []ReplacementRule{{FromText: "foo", ToText: "foo"}},
			},
			content:         "foo",
			want:            "foo",
			wantCount:       1,
			wantMarkerFound: true,
		},
		{
			name:            "empty_content",
			rewrite:         crunchRewrite,
			content:         "",
			want:            "",
			wantMarkerFound: false,
		},
		{
			name: "stripping_block",
			rewrite: Rewrite{
				Marker: "managedStrippingLevel: {}",
				Rules: []ReplacementRule{
					{FromText: "managedStrippingLevel: {}", ToText: "managedStrippingLevel:\n    Android: 3\n    Standalone: 3"},
				},
			},
			content:         "  stripEngineCode: 1\n  managedStrippingLevel: {}\n  il2cppCompilerConfiguration: {}\n",
			want:            "  stripEngineCode: 1\n  managedStrippingLevel:\n    Android: 3\n    Standalone: 3\n  il2cppCompilerConfiguration: {}\n",
			wantCount:       1,
			wantMarkerFound: true,
			wantModified:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.rewrite.Apply([]byte(tt.content))
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantMarkerFound, result.MarkerFound)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestRewrite_ApplyIsIdempotent(t *testing.T) {
	first := crunchRewrite.Apply([]byte("TextureImporter:\ncrunchedCompression: 0\ncrunchedCompression: 0\n"))
	require.True(t, first.WasModified)

	second := crunchRewrite.Apply(first.ModifiedContent)
	assert.False(t, second.WasModified)
	assert.Equal(t, string(first.ModifiedContent), string(second.ModifiedContent))
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []ReplacementRule
		wantError string
	}{
		{
			name:  "valid_rules",
			rules: []ReplacementRule{{FromText: "foo", ToText: "bar"}},
		},
		{
			name:  "empty_to_text_allowed",
			rules: []ReplacementRule{{FromText: "foo"}},
		},
		{
			name:      "missing_from_text",
			rules:     []ReplacementRule{{FromText: "foo"}, {ToText: "bar"}},
			wantError: "rule 1: from_text is required",
		},
		{
			name:  "empty_rules",
			rules: []ReplacementRule{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRules(tt.rules)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReplacementResult_Diff(t *testing.T) {
	result := crunchRewrite.Apply([]byte("TextureImporter:\ncrunchedCompression: 0\n"))

	diff := result.Diff()
	assert.Contains(t, diff, "TextureImporter:")
	assert.Contains(t, diff, "crunchedCompression: ")

	assert.NotEmpty(t, result.Delta())
}
