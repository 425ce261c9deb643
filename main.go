package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/libIM"
	simple_util "github.com/liserjrqlxue/simple-util"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// flags that take every following non-flag argument
var multiFlags = map[string]bool{
	"r1": true,
	"r2": true,
}

type fileList []string

func (l *fileList) String() string {
	return strings.Join(*l, ",")
}

func (l *fileList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func newFlagSet(args *Args, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("rnaseq-report", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Var(
		(*fileList)(&args.R1Files),
		"r1",
		"read-1 fastq files",
	)
	fs.Var(
		(*fileList)(&args.R2Files),
		"r2",
		"read-2 fastq files, paired with -r1 by position",
	)
	fs.StringVar(
		&args.Genome,
		"g",
		"",
		"genome",
	)
	fs.StringVar(
		&args.Template,
		"t",
		"",
		"report template",
	)
	fs.StringVar(
		&args.Output,
		"o",
		"",
		"output report",
	)
	fs.StringVar(
		&args.GitRepo,
		"r",
		"",
		"git repo",
	)
	fs.StringVar(
		&args.GitCommit,
		"c",
		"",
		"git commit",
	)
	fs.StringVar(
		&args.Input,
		"input",
		"",
		"sample list with sampleID, fq1 and fq2 columns, instead of -r1/-r2",
	)
	fs.StringVar(
		&args.Suffix,
		"suffix",
		defaultR1Suffix,
		"read-1 suffix removed to get the sample name",
	)
	fs.StringVar(
		&args.Cfg,
		"cfg",
		filepath.Join(exPath, "etc", "versions.tsv"),
		"version probes, built-in table if missing",
	)
	fs.StringVar(
		&args.Xlsx,
		"xlsx",
		"",
		"also write the version table to this xlsx",
	)
	fs.StringVar(
		&args.LogFile,
		"log",
		"",
		"output log file",
	)
	fs.DurationVar(
		&args.Timeout,
		"timeout",
		0,
		"timeout for each version command, 0 for none",
	)
	return fs
}

// expandMultiFlags rewrites "-r1 a b" into "-r1 a -r1 b" for the flag package.
func expandMultiFlags(argv []string) []string {
	var out []string
	var current string
	for _, arg := range argv {
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			name := strings.TrimLeft(arg, "-")
			if multiFlags[name] {
				current = name
				continue
			}
			current = ""
			out = append(out, arg)
			continue
		}
		if current != "" {
			out = append(out, "-"+current, arg)
			continue
		}
		out = append(out, arg)
	}
	return out
}

func parseArgs(argv []string, output io.Writer) (*Args, error) {
	var args = &Args{}
	fs := newFlagSet(args, output)
	if err := fs.Parse(expandMultiFlags(argv)); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments:%v", fs.Args())
	}

	var missing []string
	if args.Input == "" {
		if len(args.R1Files) == 0 {
			missing = append(missing, "-r1")
		}
		if len(args.R2Files) == 0 {
			missing = append(missing, "-r2")
		}
	}
	for _, f := range []struct {
		name, value string
	}{
		{"-g", args.Genome},
		{"-t", args.Template},
		{"-o", args.Output},
		{"-r", args.GitRepo},
		{"-c", args.GitCommit},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		fs.Usage()
		return nil, fmt.Errorf("%s required", strings.Join(missing, ","))
	}
	return args, nil
}

func loadSamples(args *Args) ([]libIM.Info, error) {
	if args.Input != "" {
		log.Printf("load sample list:%s", args.Input)
		return ParseInfoIM(args.Input)
	}
	return pairSamples(args.R1Files, args.R2Files, args.Suffix)
}

func run(ctx context.Context, args *Args, runner Runner) error {
	// fail before probing any tool
	if err := checkTemplate(args.Template); err != nil {
		return err
	}

	samples, err := loadSamples(args)
	if err != nil {
		return err
	}
	log.Printf("samples:%d", len(samples))

	probes, err := loadProbes(args.Cfg)
	if err != nil {
		return err
	}
	versions, err := getVersions(ctx, runner, probes)
	if err != nil {
		return err
	}
	if args.Xlsx != "" {
		log.Printf("write version table:%s", args.Xlsx)
		if err = writeVersionTable(args.Xlsx, versions); err != nil {
			return err
		}
	}

	log.Printf("write report:%s", args.Output)
	return fillTemplate(buildContext(args, versions, samples), args.Template, args.Output)
}

func realMain(argv []string, stdout, stderr io.Writer) int {
	args, err := parseArgs(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log.SetOutput(stderr)
	if args.LogFile != "" {
		logF, err := os.Create(args.LogFile)
		simple_util.CheckErr(err)
		defer simple_util.DeferClose(logF)
		log.SetOutput(logF)
	}
	log.SetFlags(log.Ldate | log.Ltime)
	log.Printf("Start:%+v", argv)

	err = run(context.Background(), args, ShellRunner{Timeout: args.Timeout})
	if errors.Is(err, errTemplateNotFound) {
		fmt.Fprintf(stdout, "The report template was not valid: %s\n", args.Template)
		return 1
	}
	if err != nil {
		log.Printf("Error:%v", err)
		if args.LogFile != "" {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	log.Printf("Done")
	return 0
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}
