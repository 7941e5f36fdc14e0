package mistral

import (
	"testing"
)

func TestRecoverJSONDirect(t *testing.T) {
	got, err := RecoverJSON(`{"a":1}`)
	if err != nil {
		t.Fatalf("direct parse failed: %v", err)
	}
	if got["a"] != float64(1) {
		t.Fatalf("got %v", got)
	}
}

func TestRecoverJSONFenced(t *testing.T) {
	got, err := RecoverJSON("Here is the answer:\n```json\n{\"a\":1}\n```")
	if err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}
	if got["a"] != float64(1) {
		t.Fatalf("got %v", got)
	}
}

func TestRecoverJSONFencedNoLang(t *testing.T) {
	got, err := RecoverJSON("```\n{\"key\": \"value\"}\n```")
	if err != nil {
		t.Fatalf("fenced parse failed: %v", err)
	}
	if got["key"] != "value" {
		t.Fatalf("got %v", got)
	}
}

func TestRecoverJSONEmbedded(t *testing.T) {
	got, err := RecoverJSON(`The model replied: {"nested": {"x": 2}} hope that helps!`)
	if err != nil {
		t.Fatalf("embedded parse failed: %v", err)
	}
	inner, ok := got["nested"].(map[string]any)
	if !ok || inner["x"] != float64(2) {
		t.Fatalf("got %v", got)
	}
}

func TestRecoverJSONRepaired(t *testing.T) {
	// Trailing commas before closing brackets are repaired in the last pass.
	got, err := RecoverJSON("`{\"list\": [1, 2,], \"b\": 3,}`")
	if err != nil {
		t.Fatalf("repaired parse failed: %v", err)
	}
	if got["b"] != float64(3) {
		t.Fatalf("got %v", got)
	}
}

func TestRecoverJSONGarbage(t *testing.T) {
	for _, text := range []string{"", "not json at all", "```also not json```", "{broken"} {
		if got, err := RecoverJSON(text); err == nil {
			t.Fatalf("RecoverJSON(%q) = %v, want error", text, got)
		}
	}
}
