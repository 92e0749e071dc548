package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mercator-hq/ganymede/pkg/aml/ast"
	amlErrors "mercator-hq/ganymede/pkg/aml/errors"
	"mercator-hq/ganymede/pkg/aml/grammar"
	"mercator-hq/ganymede/pkg/aml/parser"
	"mercator-hq/ganymede/pkg/cli"
)

var dumpFlags struct {
	format   string
	maxDepth int
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE...",
	Short: "Decode AML files and print their trees",
	Long: `Decode AML files and print the resulting trees.

With several files, every file is decoded and the failures are reported
together at the end.

Examples:
  # Print the tree as indented text
  ganymede dump DSDT.aml

  # Print the tree as JSON
  ganymede dump DSDT.aml --format json

  # Decode a whole extracted table set
  ganymede dump tables/*.aml

  # Raise the nesting limit for a deeply nested table
  ganymede dump DSDT.aml --max-depth 512`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVarP(&dumpFlags.format, "format", "f", "text", "output format (text, json)")
	dumpCmd.Flags().IntVar(&dumpFlags.maxDepth, "max-depth", 0, "override the grammar nesting limit")
}

// treeView is the JSON rendering of a decoded subtree.
type treeView struct {
	Tag      string     `json:"tag"`
	Payload  string     `json:"payload,omitempty"`
	Children []treeView `json:"children,omitempty"`
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	switch dumpFlags.format {
	case "json", "text", "":
	default:
		return fmt.Errorf("unsupported format: %s", dumpFlags.format)
	}

	p := parser.NewParser().
		WithMaxDepth(cfg.Parser.MaxDepth).
		WithMaxInput(cfg.Parser.MaxInputBytes)
	if dumpFlags.maxDepth > 0 {
		p.WithMaxDepth(dumpFlags.maxDepth)
	}

	failures := amlErrors.NewErrorList()
	for _, path := range args {
		if err := dumpFile(p, path, len(args) > 1); err != nil {
			failures.Add(asDecodeError(path, err))
		}
	}

	if err := failures.ToError(); err != nil {
		return cli.NewCommandError("dump", err)
	}
	return nil
}

// dumpFile decodes one file and prints its tree in the selected format.
func dumpFile(p *parser.Parser, path string, labeled bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	node, err := p.ParseNamed(data, path, grammar.DataStream)
	if err != nil {
		return err
	}
	defer ast.ReleaseDeep(p.Allocator(), node)

	switch dumpFlags.format {
	case "json":
		formatter := cli.NewFormatter(cli.FormatJSON)
		return formatter.FormatTo(os.Stdout, viewOf(node))
	case "text", "":
		if labeled {
			fmt.Printf("%s:\n", path)
		}
		var sb strings.Builder
		node.Dump(&sb, 0)
		fmt.Print(sb.String())
		fmt.Printf("\n%d node(s), depth %d\n", node.Count(), node.Depth())
	}
	return nil
}

// asDecodeError lifts any failure into the typed error surface so the
// aggregated report carries a category and location for every file.
func asDecodeError(path string, err error) *amlErrors.Error {
	var typed *amlErrors.Error
	if errors.As(err, &typed) {
		return typed
	}
	return &amlErrors.Error{
		Type:     amlErrors.ErrorTypeIO,
		Message:  err.Error(),
		Location: amlErrors.Location{File: path},
		Err:      err,
	}
}

func viewOf(node *ast.Node) treeView {
	view := treeView{Tag: node.Tag.String()}
	if len(node.Payload) > 0 {
		view.Payload = hex.EncodeToString(node.Payload)
	}
	for _, child := range node.Children {
		view.Children = append(view.Children, viewOf(child))
	}
	return view
}
