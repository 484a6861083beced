package text_test

import (
	"fmt"

	"github.com/walteh/unitytweak/pkg/text"
)

func ExampleRewrite_Apply() {
	rewrite := text.Rewrite{
		Marker: "TextureImporter:",
		Rules: []text.ReplacementRule{
			{FromText: "crunchedCompression: 0", ToText: "crunchedCompression: 1"},
		},
	}

	result := rewrite.Apply([]byte("TextureImporter:\n  crunchedCompression: 0\n"))

	fmt.Printf("Modified: %q\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: "TextureImporter:\n  crunchedCompression: 1\n"
	// Changes: 1
	// Was Modified: true
}

func ExampleValidateRules() {
	err := text.ValidateRules([]text.ReplacementRule{
		{FromText: "crunchedCompression: 0", ToText: "crunchedCompression: 1"},
		{ToText: "maxTextureSize: 1024"},
	})
	fmt.Printf("Validation error: %v\n", err)

	// Output:
	// Validation error: rule 1: from_text is required
}
