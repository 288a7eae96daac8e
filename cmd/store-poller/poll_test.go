package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bigkevmcd/store-polling-operator/pkg/baseline"
	"github.com/bigkevmcd/store-polling-operator/pkg/revision"
	"github.com/bigkevmcd/store-polling-operator/pkg/store"
)

func TestPollCommand(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "output")
	writeFile(t, output, "Store-Base\t12\tDevelopment\n")
	script := writeScript(t, dir, `cat "`+output+`"`)
	baselineFile := filepath.Join(dir, "baseline.yaml")
	args := []string{"poll", "--script", script, "--baseline-file", baselineFile,
		"--repository", "psql_public_cst", "--pundle", "Store-Base"}

	out := runCommand(t, args...)
	if out != "BuildNow\n" {
		t.Fatalf("first poll got %#v, want BuildNow", out)
	}
	assertBaseline(t, baselineFile, "Store-Base\t12\tDevelopment\n")

	out = runCommand(t, args...)
	if out != "NoChanges\n" {
		t.Fatalf("second poll got %#v, want NoChanges", out)
	}

	writeFile(t, output, "Store-Base\t13\tDevelopment\n")
	out = runCommand(t, args...)
	if out != "Significant\n~ Store-Base [12 (Development)] -> [13 (Development)]\n" {
		t.Fatalf("third poll got %#v", out)
	}
	assertBaseline(t, baselineFile, "Store-Base\t13\tDevelopment\n")
}

func TestPollCommandWithFailingScript(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "exit 2")
	baselineFile := filepath.Join(dir, "baseline.yaml")
	saved := revision.Parse("Store-Base\t12\tDevelopment\n")
	if err := baseline.NewFileStore(baselineFile).Save(saved); err != nil {
		t.Fatal(err)
	}

	out := runCommand(t, "poll", "--script", script, "--baseline-file", baselineFile, "--repository", "R")

	if out != "NoChanges\n" {
		t.Fatalf("poll got %#v, want NoChanges", out)
	}
	assertBaseline(t, baselineFile, "Store-Base\t12\tDevelopment\n")
}

func TestPollCommandWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, `printf '%s\n' "$*" > "`+filepath.Join(dir, "args")+`"; echo "Glorp 4 Released"`)
	cfg := filepath.Join(dir, "store-poller.yaml")
	writeFile(t, cfg, `script: `+script+`
baselineFile: `+filepath.Join(dir, "baseline.yaml")+`
repository:
  repositoryName: psql_public_cst
  pundles:
    - name: Glorp
    - name: Store-Base
  versionRegex: "8\\..+"
  minimumBlessingLevel: Integrated
`)
	if err := baseline.NewFileStore(filepath.Join(dir, "baseline.yaml")).Save(revision.Parse("")); err != nil {
		t.Fatal(err)
	}

	out := runCommand(t, "poll", "--config", cfg)

	if out != "Significant\n+ Glorp [4 (Released)]\n" {
		t.Fatalf("poll got %#v", out)
	}
	b, err := os.ReadFile(filepath.Join(dir, "args"))
	if err != nil {
		t.Fatal(err)
	}
	want := "-repository psql_public_cst -packages Glorp Store-Base -versionRegex 8\\..+ -blessedAtLeast Integrated\n"
	if diff := cmp.Diff(want, string(b)); diff != "" {
		t.Fatalf("incorrect arguments:\n%s", diff)
	}
}

func TestPollCommandWithInvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"poll", "--script", "/bin/true", "--repository", "R", "--blessed-at-least", "Shipped"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), `unknown blessing level "Shipped"`) {
		t.Fatalf("got %v, want an invalid blessing level error", err)
	}
}

func TestBlessingLevelsCommand(t *testing.T) {
	out := runCommand(t, "blessing-levels")

	if diff := cmp.Diff(strings.Join(store.BlessingLevels, "\n")+"\n", out); diff != "" {
		t.Fatalf("incorrect output:\n%s", diff)
	}
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func assertBaseline(t *testing.T, filename, output string) {
	t.Helper()
	loaded, err := baseline.NewFileStore(filename).Load()
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Equal(revision.Parse(output)) {
		t.Fatalf("baseline got %#v, want %#v", loaded, revision.Parse(output))
	}
}

func writeScript(t *testing.T, dir, body string) string {
	t.Helper()
	name := filepath.Join(dir, "store-query")
	writeFile(t, name, "#!/bin/sh\n"+body+"\n")
	if err := os.Chmod(name, 0755); err != nil {
		t.Fatal(err)
	}
	return name
}

func writeFile(t *testing.T, name, body string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}
