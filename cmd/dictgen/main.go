// SPDX-License-Identifier: MIT
// Copyright (c) 2026 datamob
// Source: github.com/datamob/dictgen

// dictgen assembles modular schema fragments and generates a
// data-dictionary documentation site from the combined schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/datamob/dictgen"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/datamob/dictgen"
	_buildTime string
)

// cliOptions describes dictgen CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Assemble assembleCommand `command:"assemble" description:"Concatenate schema fragments into one combined schema file"`
	Generate generateCommand `command:"generate" description:"Generate documentation site from a combined schema"`
	Validate validateCommand `command:"validate" description:"Validate a combined schema against the metamodel"`
}

// assembleCommand concatenates schema fragments into one file.
type assembleCommand struct {
	runner *cliRunner

	MetadataPath string `long:"metadata" description:"Schema metadata fragment file (default from DICTGEN_METADATA)"`
	EnumsPath    string `long:"enums" description:"Enumerations fragment file (default from DICTGEN_ENUMS)"`
	ClassesPath  string `long:"classes" description:"Classes fragment file (default from DICTGEN_CLASSES)"`
	SlotsDir     string `long:"slots-dir" description:"Directory of per-field fragment files (default from DICTGEN_SLOTS_DIR)"`

	Args struct {
		Output string `positional-arg-name:"output" description:"Combined schema output path (optional; default entire_schema.yml)"`
	} `positional-args:"yes"`
}

// Execute runs the assemble subcommand.
func (command *assembleCommand) Execute(_ []string) error {
	return command.runner.runAssemble(command)
}

// generateCommand renders the documentation tree from a combined schema.
type generateCommand struct {
	runner *cliRunner

	OutputDir string `short:"o" long:"output" description:"Documentation output directory (default from DICTGEN_DOCS_DIR)"`
	SlotsOnly bool   `long:"slots-only" description:"Generate field pages only; suppress class pages and navigation group"`
	SkipCheck bool   `long:"skip-check" description:"Skip metamodel validation before generating"`

	Args struct {
		Schema string `positional-arg-name:"schema" description:"Combined schema input path (optional; default entire_schema.yml)"`
	} `positional-args:"yes"`
}

// Execute runs the generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command)
}

// validateCommand checks a combined schema against the metamodel.
type validateCommand struct {
	runner *cliRunner

	Args struct {
		Schema string `positional-arg-name:"schema" description:"Combined schema input path (optional; stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs the validate subcommand.
func (command *validateCommand) Execute(_ []string) error {
	return command.runner.runValidate(command.Args.Schema)
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs the version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	config      appConfig
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "dictgen"
	}

	programName = filepath.Base(programName)

	config, err := loadAppConfig()
	if err != nil {
		writeCLIError(stderr, err)
		return 1
	}

	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		config:      config,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runAssemble executes the fragment concatenation flow.
func (runner *cliRunner) runAssemble(command *assembleCommand) error {
	outputPath := strings.TrimSpace(command.Args.Output)
	if outputPath == "" {
		outputPath = dictgen.DefaultCombinedSchemaPath
	}

	opt := dictgen.AssembleOptions{
		MetadataPath: firstNonEmpty(command.MetadataPath, runner.config.MetadataPath),
		EnumsPath:    firstNonEmpty(command.EnumsPath, runner.config.EnumsPath),
		ClassesPath:  firstNonEmpty(command.ClassesPath, runner.config.ClassesPath),
		SlotsDir:     firstNonEmpty(command.SlotsDir, runner.config.SlotsDir),
		OutputPath:   outputPath,
	}

	if err := dictgen.Assemble(opt); err != nil {
		return fmt.Errorf("assemble schema: %w", err)
	}

	_, _ = fmt.Fprintf(runner.stdout, "Schema written to %s\n", outputPath)
	return nil
}

// runGenerate executes the documentation generation flow.
func (runner *cliRunner) runGenerate(command *generateCommand) error {
	schemaPath := firstNonEmpty(command.Args.Schema, runner.config.SchemaPath)

	if !command.SkipCheck {
		if err := dictgen.ValidateFile(schemaPath); err != nil {
			return fmt.Errorf("validate schema: %w", err)
		}
	}

	opt := dictgen.Options{
		OutputDir: firstNonEmpty(command.OutputDir, runner.config.DocsDir),
		SlotsOnly: command.SlotsOnly || runner.config.SlotsOnly,
	}

	stats, err := dictgen.GenerateFile(schemaPath, opt)
	if err != nil {
		return fmt.Errorf("generate documentation: %w", err)
	}

	_, _ = fmt.Fprintf(runner.stdout, "Found %d local slots\n", stats.Slots)
	_, _ = fmt.Fprintf(runner.stdout, "Found %d local classes\n", stats.Classes)
	_, _ = fmt.Fprintf(runner.stdout, "Found %d local enums\n", stats.Enums)
	_, _ = fmt.Fprintf(runner.stdout, "Documentation written to %s\n", opt.OutputDir)
	return nil
}

// runValidate executes the metamodel validation flow.
func (runner *cliRunner) runValidate(schemaPath string) error {
	schemaBytes, sourcePath, err := runner.readSchemaInput(schemaPath)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	if err := dictgen.Validate(schemaBytes); err != nil {
		return fmt.Errorf("validate %s: %w", sourcePath, err)
	}

	_, _ = fmt.Fprintf(runner.stdout, "%s is valid\n", sourcePath)
	return nil
}

// readSchemaInput reads schema from file path or stdin and returns source marker.
func (runner *cliRunner) readSchemaInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read schema file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read schema from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Assemble.runner = runner
	options.Generate.runner = runner
	options.Validate.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"assemble": strings.TrimSpace(fmt.Sprintf(`
Concatenate the metadata, enumerations and classes fragments plus every
field fragment into one combined schema file. Field fragments are merged
in lexicographic file name order under a generated slots section.

Examples:
> $ %s assemble
> $ %s assemble --slots-dir fields build/schema.yml
`, programName, programName)),
		"generate": strings.TrimSpace(fmt.Sprintf(`
Load a combined schema, filter it to locally defined elements and write
one markdown page per field, class and enumeration, plus index.md, an
mkdocs.yml navigation config and a custom stylesheet.

Examples:
> $ %s generate
> $ %s generate --slots-only -o site/docs entire_schema.yml
`, programName, programName)),
		"validate": strings.TrimSpace(fmt.Sprintf(`
Check a combined schema document against the built-in metamodel.
Reads the schema from a file argument or stdin.

Examples:
> $ %s validate entire_schema.yml
> $ cat entire_schema.yml | %s validate
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// firstNonEmpty returns the first value with non-blank content.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
