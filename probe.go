package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/textUtil"
	simple_util "github.com/liserjrqlxue/simple-util"
)

const (
	streamStdout = "stdout"
	streamStderr = "stderr"
)

// built-in probe table, same columns as etc/versions.tsv
var defaultProbeCfg = []map[string]string{
	{
		"key":    "star_version",
		"cmd":    "STAR --version",
		"stream": streamStdout,
		"rule":   `trim|split:_:1`,
	},
	{
		"key":    "samtools_version",
		"cmd":    "samtools --version",
		"stream": streamStdout,
		"rule":   `split:\n:0|split:\s:1`,
	},
	{
		"key":    "featurecounts_version",
		"cmd":    "featureCounts -v",
		"stream": streamStderr,
		"rule":   `trim|split:\s:-1`,
	},
	{
		"key":    "multiqc_version",
		"cmd":    "multiqc --version",
		"stream": streamStdout,
		"rule":   `trim|split:,:-1|split:\s:-1`,
	},
	{
		"key":    "fastqc_version",
		"cmd":    "fastqc --version",
		"stream": streamStdout,
		"rule":   `trim|split:\s:-1`,
	},
	{
		"key":    "rseqc_version",
		"cmd":    "pip3 freeze | grep RSeQC",
		"stream": streamStdout,
		"rule":   `trim|split:==:1`,
	},
	{
		"key":    "picard_mark_duplicates_version",
		"cmd":    "java -jar /opt/software/picard/picard.jar MarkDuplicates --version",
		"stream": streamStderr,
		"rule":   `trim`,
	},
}

var ruleEscape = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\s`, " ")

func createProbe(cfg map[string]string) (*Probe, error) {
	probe := Probe{
		Key:    cfg["key"],
		Cmd:    cfg["cmd"],
		Stream: cfg["stream"],
		Rule:   cfg["rule"],
	}
	if probe.Key == "" || probe.Cmd == "" {
		return nil, fmt.Errorf("probe needs key and cmd:%+v", cfg)
	}
	switch probe.Stream {
	case "":
		probe.Stream = streamStdout
	case streamStdout, streamStderr:
	default:
		return nil, fmt.Errorf("probe[%s]: unknown stream %q", probe.Key, probe.Stream)
	}
	steps, err := parseRule(probe.Rule)
	if err != nil {
		return nil, fmt.Errorf("probe[%s]: %w", probe.Key, err)
	}
	probe.steps = steps
	return &probe, nil
}

// parseRule reads "step|step|..." where a step is "trim" or "split:<sep>:<index>".
// An empty rule keeps the output as is.
func parseRule(rule string) (steps []step, err error) {
	if rule == "" {
		return
	}
	for _, s := range strings.Split(rule, "|") {
		switch {
		case s == "trim":
			steps = append(steps, step{op: "trim"})
		case strings.HasPrefix(s, "split:"):
			rest := strings.TrimPrefix(s, "split:")
			i := strings.LastIndex(rest, ":")
			if i <= 0 {
				return nil, fmt.Errorf("bad split step %q", s)
			}
			index, err := strconv.Atoi(rest[i+1:])
			if err != nil {
				return nil, fmt.Errorf("bad split index %q: %w", s, err)
			}
			steps = append(steps, step{op: "split", sep: ruleEscape.Replace(rest[:i]), index: index})
		default:
			return nil, fmt.Errorf("unknown rule step %q", s)
		}
	}
	return
}

// Extract applies the probe's rule to the tool output.
func (probe *Probe) Extract(out string) (string, error) {
	var s = out
	for i, st := range probe.steps {
		switch st.op {
		case "trim":
			s = strings.TrimSpace(s)
		case "split":
			parts := strings.Split(s, st.sep)
			index := st.index
			if index < 0 {
				index += len(parts)
			}
			if index < 0 || index >= len(parts) {
				return "", fmt.Errorf(
					"probe[%s] step %d: field %d of %d after split on %q, output:%q",
					probe.Key, i+1, st.index, len(parts), st.sep, out,
				)
			}
			s = parts[index]
		}
	}
	return s, nil
}

// loadProbes reads the probe table from cfg, falling back to the built-in
// table when cfg is empty or missing.
func loadProbes(cfg string) ([]*Probe, error) {
	var rows = defaultProbeCfg
	if cfg != "" && simple_util.FileExists(cfg) {
		log.Printf("load probe cfg:%s", cfg)
		rows, _ = textUtil.File2MapArray(cfg, "\t", nil)
	}
	var probes []*Probe
	var seen = make(map[string]bool)
	for _, item := range rows {
		if item["key"] == "" && item["cmd"] == "" {
			continue
		}
		probe, err := createProbe(item)
		if err != nil {
			return nil, err
		}
		if seen[probe.Key] {
			return nil, fmt.Errorf("dup probe key:%s", probe.Key)
		}
		seen[probe.Key] = true
		probes = append(probes, probe)
	}
	return probes, nil
}

func getVersions(ctx context.Context, runner Runner, probes []*Probe) (versions Versions, err error) {
	for _, probe := range probes {
		if !hasProg(probe.Cmd) {
			log.Printf("probe[%s]: program not found on PATH:[%s]", probe.Key, probe.Cmd)
		}
		stdout, stderr, err := runner.Run(ctx, probe.Cmd)
		if err != nil {
			return nil, fmt.Errorf("probe[%s]: %w", probe.Key, err)
		}
		var out = stdout
		if probe.Stream == streamStderr {
			out = stderr
		}
		value, err := probe.Extract(out)
		if err != nil {
			return nil, err
		}
		log.Printf("%-32s %s", probe.Key, value)
		versions = append(versions, Version{Key: probe.Key, Value: value})
	}
	return
}
