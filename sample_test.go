package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/liserjrqlxue/libIM"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleName(t *testing.T) {
	tests := []struct {
		r1, suffix, want string
	}{
		{"A_R1.fastq.gz", defaultR1Suffix, "A"},
		{"/data/run1/S01_L001_R1.fastq.gz", defaultR1Suffix, "S01_L001"},
		{"B_1.fq.gz", "_1.fq.gz", "B"},
		// no suffix: same number of characters are dropped
		{"sampleX_1.fq.gz.extra", defaultR1Suffix, "sampleX_1"},
		{"short.fq", defaultR1Suffix, ""},
	}
	for _, tt := range tests {
		t.Run(tt.r1, func(t *testing.T) {
			assert.Equal(t, tt.want, sampleName(tt.r1, tt.suffix))
		})
	}
}

func TestPairSamples(t *testing.T) {
	samples, err := pairSamples([]string{"A_R1.fastq.gz"}, []string{"A_R2.fastq.gz"}, defaultR1Suffix)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "A", samples[0].SampleID)
	assert.Equal(t, []string{"**A**: A_R1.fastq.gz, A_R2.fastq.gz"}, fileDisplay(samples))

	t.Run("keeps input order", func(t *testing.T) {
		r1 := []string{"C_R1.fastq.gz", "A_R1.fastq.gz", "B_R1.fastq.gz"}
		r2 := []string{"C_R2.fastq.gz", "A_R2.fastq.gz", "B_R2.fastq.gz"}
		samples, err := pairSamples(r1, r2, defaultR1Suffix)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"**C**: C_R1.fastq.gz, C_R2.fastq.gz",
			"**A**: A_R1.fastq.gz, A_R2.fastq.gz",
			"**B**: B_R1.fastq.gz, B_R2.fastq.gz",
		}, fileDisplay(samples))

		gotR1, gotR2 := readFiles(samples)
		assert.Equal(t, r1, gotR1)
		assert.Equal(t, r2, gotR2)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := pairSamples([]string{"A_R1.fastq.gz", "B_R1.fastq.gz"}, []string{"A_R2.fastq.gz"}, defaultR1Suffix)
		assert.Error(t, err)
	})
}

func TestParseInfoIM(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.list")
	require.NoError(t, os.WriteFile(input, []byte(
		"sampleID\tfq1\tfq2\n"+
			"S2\t/raw/S2_R1.fastq.gz\t/raw/S2_R2.fastq.gz\n"+
			"S1\t/raw/S1_R1.fastq.gz\t/raw/S1_R2.fastq.gz\n",
	), 0644))

	infoList, err := ParseInfoIM(input)
	require.NoError(t, err)
	assert.Equal(t, []libIM.Info{
		{SampleID: "S2", Fq1: "/raw/S2_R1.fastq.gz", Fq2: "/raw/S2_R2.fastq.gz"},
		{SampleID: "S1", Fq1: "/raw/S1_R1.fastq.gz", Fq2: "/raw/S1_R2.fastq.gz"},
	}, infoList)

	t.Run("duplicate sampleID", func(t *testing.T) {
		dup := filepath.Join(dir, "dup.list")
		require.NoError(t, os.WriteFile(dup, []byte(
			"sampleID\tfq1\tfq2\n"+
				"S1\ta_R1.fastq.gz\ta_R2.fastq.gz\n"+
				"S1\tb_R1.fastq.gz\tb_R2.fastq.gz\n",
		), 0644))
		_, err := ParseInfoIM(dup)
		assert.Error(t, err)
	})

	t.Run("missing fq2", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.list")
		require.NoError(t, os.WriteFile(bad, []byte(
			"sampleID\tfq1\n"+
				"S1\ta_R1.fastq.gz\n",
		), 0644))
		_, err := ParseInfoIM(bad)
		assert.Error(t, err)
	})
}
