package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-sort/bench"
	amperrors "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/logger"
	"github.com/amp-labs/amp-sort/sortable"
	"github.com/spf13/cobra"
)

// element is satisfied by every adapter type both engines accept.
type element[T any] interface {
	sortable.Bucketer[T]
	sortable.Digiter[T]
}

func newSortCommand() *cobra.Command {
	var (
		algorithm string
		elemType  string
		verify    bool
	)

	cmd := &cobra.Command{
		Use:   "sort [flags] values...",
		Short: "Sort literal values and print the result with its statistics",
		Example: `  sortbench sort --algorithm radix --type int -- -45 170 75 90 -802 24 2 66
  sortbench sort --type string dog cat bird ant`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := bench.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			return sortArgs(cmd, alg, strings.ToLower(elemType), args, verify)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(bench.Bucket), "bucket|radix")
	cmd.Flags().StringVarP(&elemType, "type", "t", "float", "element type: int|float|string")
	cmd.Flags().BoolVar(&verify, "verify", false, "fail unless the result is a sorted permutation")

	// Negative values after the first one must not be taken for flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func sortArgs(cmd *cobra.Command, alg bench.Algorithm, elemType string, args []string, verify bool) error {
	switch elemType {
	case "int", "int32":
		values, err := parseAll(args, func(s string) (sortable.Int32, error) {
			n, err := strconv.ParseInt(s, 10, 32)

			return sortable.Int32(n), err
		})
		if err != nil {
			return err
		}

		return sortAndPrint(cmd, alg, values, bench.HashInt32, verify)
	case "float", "float64":
		values, err := parseAll(args, func(s string) (sortable.Float64, error) {
			f, err := strconv.ParseFloat(s, 64)

			return sortable.Float64(f), err
		})
		if err != nil {
			return err
		}

		return sortAndPrint(cmd, alg, values, bench.HashFloat64, verify)
	case "string", "str":
		values := make([]sortable.String, len(args))
		for i, a := range args {
			values[i] = sortable.String(a)
		}

		return sortAndPrint(cmd, alg, values, bench.HashString, verify)
	default:
		return fmt.Errorf("%w: %q", amperrors.ErrUnknownType, elemType)
	}
}

func parseAll[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, len(args))

	for i, a := range args {
		v, err := parse(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}

		out[i] = v
	}

	return out, nil
}

func sortAndPrint[T element[T]](
	cmd *cobra.Command, alg bench.Algorithm, values []T, hash bench.Hasher[T], verify bool,
) error {
	engine, err := bench.NewEngine[T](alg, logger.Get(cmd.Context()))
	if err != nil {
		return err
	}

	before := slices.Clone(values)
	engine.Sort(values)

	if verify {
		if err := bench.Verify(before, values, hash); err != nil {
			return err
		}
	}

	return printValues(cmd.OutOrStdout(), values, engine.Stats().String())
}

func printValues[T any](w io.Writer, values []T, summary string) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", strings.Join(parts, " "), summary)

	return err
}
