package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dlusion/INFO-474-Midterm/src/pokedex"
)

func writeCSV(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pokemon.csv")
	data := "Name,Type 1,Type 2,Total,Sp. Def,Generation,Legendary\n" +
		"A,Fire,,300,50,1,False\n" +
		"B,Water,Ice,600,80,2,True\n" +
		"C,Water,,450,,2,False\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-file", writeCSV(t), "-gen", "2"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	s := out.String()
	for _, want := range []string{"Records: 2 of 3", "Generation 2: 2", "Water: 2", "Sp. Def: 0..80"} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in:\n%s", want, s)
		}
	}
}

func TestRun_YAML(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-file", writeCSV(t), "-legendary", "True", "-format", "yaml"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var doc struct {
		Of      int             `yaml:"of"`
		Summary pokedex.Summary `yaml:"summary"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if doc.Of != 3 || doc.Summary.Records != 1 || doc.Summary.Legendary != 1 {
		t.Fatalf("unexpected summary: %+v", doc)
	}
}

func TestRun_Errors(t *testing.T) {
	p := writeCSV(t)
	cases := [][]string{
		{"-file", p, "-gen", "7"},
		{"-file", p, "-legendary", "maybe"},
		{"-file", p, "-format", "xml"},
		{"-file", filepath.Join(t.TempDir(), "missing.csv")},
	}
	for _, args := range cases {
		if err := run(args, &bytes.Buffer{}); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
