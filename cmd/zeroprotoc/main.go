// Command zeroprotoc is a thin front-end driver over the schema and ir
// packages. It owns exactly one subcommand, check: parse a schema file,
// run semantic validation, and lower the result, reporting success or the
// first error encountered. Generating code from the lowered IR is left to
// an external emitter — this binary never writes a file.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"go.zeroproto.dev/zeroproto/ir"
	"go.zeroproto.dev/zeroproto/schema"
)

func main() {
	app := &cli.App{
		Name:  "zeroprotoc",
		Usage: "validate zeroproto schema files",
		Commands: []*cli.Command{
			checkCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var checkCmd = &cli.Command{
	Name:      "check",
	Usage:     "parse, validate, and lower a schema file without emitting anything",
	ArgsUsage: "<file.zp>",
	Action:    runCheck,
}

func runCheck(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return cli.Exit("check requires exactly one schema file argument", 1)
	}
	path := c.Args().First()

	src, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", path, err), 1)
	}

	ast, err := schema.Parse(string(src))
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", path, err), 1)
	}

	if err := schema.Validate(ast); err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", path, err), 1)
	}

	lowered := ir.Lower(ast)
	fmt.Printf("%s: ok (%d message(s), %d enum(s))\n", path, len(lowered.Messages), len(lowered.Enums))
	return nil
}
