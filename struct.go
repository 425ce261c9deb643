package main

import (
	"time"
)

// Args holds the parsed command line.
type Args struct {
	R1Files   []string
	R2Files   []string
	Genome    string
	Template  string
	Output    string
	GitRepo   string
	GitCommit string

	Input   string
	Suffix  string
	Cfg     string
	Xlsx    string
	LogFile string
	Timeout time.Duration
}

// Probe is one tool version query, built from a row of the probe config.
type Probe struct {
	Key    string
	Cmd    string
	Stream string
	Rule   string
	steps  []step
}

type step struct {
	op    string
	sep   string
	index int
}

type Version struct {
	Key   string
	Value string
}

// Versions keeps probe order so tables and logs are stable.
type Versions []Version

func (versions Versions) Map() map[string]string {
	var m = make(map[string]string, len(versions))
	for _, v := range versions {
		m[v.Key] = v.Value
	}
	return m
}
