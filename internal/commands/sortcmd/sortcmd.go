// Package sortcmd implements the "sort" command.
package sortcmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/indaco/semv/pkg/semver"
	"github.com/urfave/cli/v3"
)

// Run returns the "sort" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Sort versions ascending by SemVer precedence",
		UsageText: "semv sort [--reverse] [--json] [<version>...]",
		Description: `Sorts the version arguments, or newline-separated versions from
stdin when no arguments are given.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort descending instead",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the result as a JSON array",
			},
		},
		Action: runSortCmd,
	}
}

func runSortCmd(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		var err error
		inputs, err = readLines(cmd)
		if err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no versions to sort")
	}

	versions := make([]semver.Version, 0, len(inputs))
	for _, input := range inputs {
		v, err := semver.Parse(strings.TrimSpace(input))
		if err != nil {
			return err
		}
		versions = append(versions, v)
	}

	semver.Sort(versions)
	if cmd.Bool("reverse") {
		slices.Reverse(versions)
	}

	if cmd.Bool("json") {
		data, err := json.Marshal(versions)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.Writer, string(data))
		return nil
	}

	for _, v := range versions {
		fmt.Fprintln(cmd.Writer, v.String())
	}
	return nil
}

func readLines(cmd *cli.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.Reader)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
