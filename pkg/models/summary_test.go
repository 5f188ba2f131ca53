package models

import (
	"encoding/json"
	"testing"
)

func TestInsights_AddStatKeepsKeysUnique(t *testing.T) {
	var in Insights
	in.AddCount("links", 1)
	in.AddCount("images", 2)
	in.AddCount("links", 3)

	if len(in.Stats) != 2 {
		t.Fatalf("stats %d want 2", len(in.Stats))
	}
	if in.Stats[0].Key != "links" || in.Stats[0].Value != "3" {
		t.Fatalf("first stat %+v", in.Stats[0])
	}
}

func TestInsights_Formatting(t *testing.T) {
	var in Insights
	in.AddFloat("avg", 4)
	in.AddPercent("ratio", 0.25)
	in.AddNote("plain")
	in.AddNote("Functions (%d): %s", 2, "a, b")

	if in.Stats[0].Value != "4.0" {
		t.Fatalf("float %s", in.Stats[0].Value)
	}
	if in.Stats[1].Value != "25.0%" {
		t.Fatalf("percent %s", in.Stats[1].Value)
	}
	if in.Notes[1] != "Functions (2): a, b" {
		t.Fatalf("note %q", in.Notes[1])
	}
}

func TestFormatKind_Text(t *testing.T) {
	for kind := range formatNames {
		b, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", kind, err)
		}
		var got FormatKind
		if err := got.UnmarshalText(b); err != nil || got != kind {
			t.Fatalf("round trip %s => %v (%v)", b, got, err)
		}
	}
	var k FormatKind
	if err := k.UnmarshalText([]byte("binary")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if FormatKind(42).String() != "unknown" {
		t.Fatal("out of range kind should print unknown")
	}
}

func TestFileSummary_JSON(t *testing.T) {
	s := FileSummary{Path: "a.md", Format: Markdown, DetailedStats: []DetailedStat{{Key: "headers", Value: "3"}}}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["format"] != "markdown" {
		t.Fatalf("format %v", m["format"])
	}
	if v, ok := s.Stat("headers"); !ok || v != "3" {
		t.Fatalf("stat lookup %q %v", v, ok)
	}
	if _, ok := s.Stat("missing"); ok {
		t.Fatal("missing key found")
	}
}
