package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/libIM"
)

const defaultR1Suffix = "_R1.fastq.gz"

// sampleName drops suffix from the basename of a read-1 file. A basename
// without the suffix loses the same number of trailing characters.
func sampleName(r1, suffix string) string {
	base := filepath.Base(r1)
	if strings.HasSuffix(base, suffix) {
		return strings.TrimSuffix(base, suffix)
	}
	if len(base) <= len(suffix) {
		return ""
	}
	return base[:len(base)-len(suffix)]
}

// pairSamples zips read-1 and read-2 files into samples.
func pairSamples(r1Files, r2Files []string, suffix string) ([]libIM.Info, error) {
	if len(r1Files) != len(r2Files) {
		return nil, fmt.Errorf("%d read-1 files but %d read-2 files", len(r1Files), len(r2Files))
	}
	var samples = make([]libIM.Info, 0, len(r1Files))
	for i := range r1Files {
		samples = append(samples, libIM.Info{
			SampleID: sampleName(r1Files[i], suffix),
			Fq1:      r1Files[i],
			Fq2:      r2Files[i],
		})
	}
	return samples, nil
}

func fileDisplay(samples []libIM.Info) []string {
	var display = make([]string, 0, len(samples))
	for _, s := range samples {
		display = append(display, fmt.Sprintf("**%s**: %s, %s", s.SampleID, s.Fq1, s.Fq2))
	}
	return display
}

func readFiles(samples []libIM.Info) (r1Files, r2Files []string) {
	for _, s := range samples {
		r1Files = append(r1Files, s.Fq1)
		r2Files = append(r2Files, s.Fq2)
	}
	return
}
