package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/liserjrqlxue/libIM"
	simple_util "github.com/liserjrqlxue/simple-util"
)

// context keys consumed by the report template
const (
	keyR1          = "r1_files"
	keyR2          = "r2_files"
	keyGenome      = "genome"
	keyGitRepo     = "git_repo"
	keyGitCommit   = "git_commit"
	keyFileDisplay = "file_display"
)

var errTemplateNotFound = errors.New("report template not found")

func checkTemplate(templatePath string) error {
	info, err := os.Stat(templatePath)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", errTemplateNotFound, templatePath)
	}
	return nil
}

// getTemplate loads templatePath by its directory and basename.
func getTemplate(templatePath string) (*template.Template, error) {
	dir, name := filepath.Split(templatePath)
	return template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFiles(filepath.Join(dir, name))
}

// buildContext merges versions, the pass-through arguments and the sample
// display lines. Template and output paths are not part of it.
func buildContext(args *Args, versions Versions, samples []libIM.Info) map[string]interface{} {
	var data = make(map[string]interface{})
	for k, v := range versions.Map() {
		data[k] = v
	}
	r1Files, r2Files := readFiles(samples)
	data[keyR1] = r1Files
	data[keyR2] = r2Files
	data[keyGenome] = args.Genome
	data[keyGitRepo] = args.GitRepo
	data[keyGitCommit] = args.GitCommit
	data[keyFileDisplay] = fileDisplay(samples)
	return data
}

// fillTemplate renders in memory first so a failed render leaves output untouched.
func fillTemplate(data map[string]interface{}, templatePath, output string) error {
	if err := checkTemplate(templatePath); err != nil {
		return err
	}
	tmpl, err := getTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", templatePath, err)
	}
	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render template %s: %w", templatePath, err)
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer simple_util.DeferClose(file)

	_, err = buf.WriteTo(file)
	return err
}
