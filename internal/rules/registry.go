package rules

// The two validator tables are static configuration, built once and never
// mutated at runtime. Order matters: it fixes the order of warnings within a
// file.

var packageValidators = []Spec{
	{
		Name:     "node",
		Patterns: []string{"package.json"},
		Check:    CheckNodeManifest,
	},
	{
		Name:     "python",
		Patterns: []string{"requirements*.txt", "requirements/*.txt"},
		Check:    CheckPythonRequirements,
	},
	{
		Name:     "ruby",
		Patterns: []string{"Gemfile", "*.gemspec"},
		Check:    CheckRubyGems,
	},
	{
		Name:       "java",
		Extensions: []string{".gradle", ".gradle.kts"},
		Patterns:   []string{"pom.xml"},
		Check:      CheckJavaBuild,
	},
}

var containerValidators = []Spec{
	{
		Name:     "dockerfile",
		Patterns: []string{"Dockerfile*", "*.dockerfile"},
		Check:    CheckDockerfile,
	},
	{
		Name:       "kubernetes",
		Extensions: []string{".yaml", ".yml"},
		Check:      CheckKubernetesImages,
	},
	{
		Name:     "compose",
		Patterns: []string{"docker-compose*.{yml,yaml}", "compose.{yml,yaml}"},
		Check:    CheckComposeImages,
	},
	{
		Name:     "actions",
		Patterns: []string{".github/workflows/*.{yml,yaml}"},
		Check:    CheckActionsUses,
	},
}

// PackageValidators returns the package-manager validator table.
func PackageValidators() []Spec { return packageValidators }

// ContainerValidators returns the container/orchestration validator table.
func ContainerValidators() []Spec { return containerValidators }
