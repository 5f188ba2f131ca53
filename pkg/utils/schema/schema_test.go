package schema

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestGenConfigSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := GenConfigSchema(&buf); err != nil {
		t.Fatalf("GenConfigSchema: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("schema is not valid json: %v", err)
	}
	if doc["title"] != "fsummary configuration" {
		t.Fatalf("unexpected title: %v", doc["title"])
	}
	defs, ok := doc["$defs"].(map[string]any)
	if !ok {
		t.Fatalf("missing $defs: %s", buf.String())
	}
	cfg, ok := defs["Config"].(map[string]any)
	if !ok {
		t.Fatalf("missing Config definition")
	}
	props := cfg["properties"].(map[string]any)
	for _, key := range []string{"log", "app", "output", "load", "watch"} {
		if _, ok := props[key]; !ok {
			t.Fatalf("schema missing section %q", key)
		}
	}
}
