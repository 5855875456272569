package rules

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/herniqeu/version-guard/internal/diff"
)

// Engine runs every applicable validator over each changed file and collects
// warnings in file order, then validator table order. It holds no mutable
// state, so repeated runs over the same diff yield identical results.
type Engine struct {
	packages   []Spec
	containers []Spec
	ignore     []string
}

func NewEngine(ignoreGlobs []string) *Engine {
	return &Engine{
		packages:   PackageValidators(),
		containers: ContainerValidators(),
		ignore:     ignoreGlobs,
	}
}

// Run analyzes the parsed diff and returns every warning, each prefixed with
// the file path it was found in.
func (e *Engine) Run(files []diff.ChangedFile) []string {
	var issues []string
	for _, file := range files {
		if file.Deleted() {
			continue
		}
		if e.isIgnored(file.Path) {
			continue
		}
		blob := Assemble(file)
		for _, warning := range e.checkFile(file.Path, blob) {
			issues = append(issues, fmt.Sprintf("`%s`: %s", file.Path, warning))
		}
	}
	return issues
}

func (e *Engine) checkFile(path string, blob string) []string {
	var warnings []string
	for _, spec := range e.packages {
		if spec.Matches(path) {
			warnings = append(warnings, spec.Check(blob)...)
		}
	}
	for _, spec := range e.containers {
		if spec.Matches(path) {
			warnings = append(warnings, spec.Check(blob)...)
		}
	}
	if IsMigrationPath(path) {
		warnings = append(warnings, CheckMigration(blob)...)
	}
	return warnings
}

func (e *Engine) isIgnored(path string) bool {
	for _, glob := range e.ignore {
		if ok, err := doublestar.Match(glob, path); err == nil && ok {
			return true
		}
	}
	return false
}
