package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "rewire version "+version) {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version --json failed: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got["version"] != version {
		t.Errorf("expected version %q, got %q", version, got["version"])
	}
}

func TestAlgorithmsCmd(t *testing.T) {
	out, err := execute(t, "algorithms")
	if err != nil {
		t.Fatalf("algorithms failed: %v", err)
	}
	for _, k := range []string{"random", "wtf", "jaccard_coefficient", "homophilic_node2vec"} {
		if !strings.Contains(out, k+"\n") {
			t.Errorf("expected %q in output %q", k, out)
		}
	}
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	edgesPath := filepath.Join(dir, "edges.json")
	metricsPath := filepath.Join(dir, "metrics.prom")

	out, err := execute(t, "run",
		"--json", "--log-level", "error",
		"--algorithm", "random",
		"--size", "30", "--rounds", "2", "--seed", "7",
		"--out", edgesPath,
		"--metrics", "--metrics-file", metricsPath,
	)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}

	var s summary
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if s.Algorithm != "random" || s.Rounds != 2 || s.Turns != 60 {
		t.Errorf("unexpected summary: %+v", s)
	}

	data, err := os.ReadFile(edgesPath)
	if err != nil {
		t.Fatalf("edge list not written: %v", err)
	}
	var doc edgeList
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid edge list: %v", err)
	}
	if doc.Agents != 30 || len(doc.Edges) != s.Edges || doc.RunID != s.RunID {
		t.Errorf("edge list does not match summary: agents=%d edges=%d run=%s", doc.Agents, len(doc.Edges), doc.RunID)
	}
	for _, e := range doc.Edges {
		if e.From == e.To {
			t.Fatalf("self-loop %d→%d in output", e.From, e.To)
		}
	}

	prom, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("metrics not written: %v", err)
	}
	if !strings.Contains(string(prom), `rewire_turns_total{algorithm="random"} 60`) {
		t.Errorf("unexpected metrics:\n%s", prom)
	}
}

func TestRunCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewire.yaml")
	content := "algorithm: common_neighbours\nsize: 20\nrounds: 1\nlogging:\n  level: error\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "run", "--json", "--config", path)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	var s summary
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if s.Algorithm != "common_neighbours" || s.Turns != 20 {
		t.Errorf("config file not honoured: %+v", s)
	}
}

func TestRunCmd_UnknownAlgorithm(t *testing.T) {
	_, err := execute(t, "run", "--algorithm", "ordinary", "--size", "10", "--log-level", "error")
	if err == nil || !strings.Contains(err.Error(), "invalid algorithm") {
		t.Errorf("expected invalid algorithm error, got %v", err)
	}
}

func TestCompareCmd(t *testing.T) {
	out, err := execute(t, "compare", "random", "jaccard_coefficient", "wtf",
		"--json", "--log-level", "error", "--size", "25", "--seed", "3")
	if err != nil {
		t.Fatalf("compare failed: %v\n%s", err, out)
	}

	var got struct {
		InitialEdges int       `json:"initial_edges"`
		Results      []summary `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(got.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got.Results))
	}
	for i, want := range []string{"random", "jaccard_coefficient", "wtf"} {
		if got.Results[i].Algorithm != want || got.Results[i].Turns != 25 {
			t.Errorf("result %d: %+v", i, got.Results[i])
		}
	}

	if _, err := execute(t, "compare", "bogus", "--log-level", "error"); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}
