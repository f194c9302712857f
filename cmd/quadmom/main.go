// Command quadmom inverts moment sequences from the command line.
//
//	quadmom invert --config qbmm.yaml --moments 1,0,1,0,3,0
//	quadmom invert --config qbmm.cfg  --moments 1,2,3,2,5,8,... --dims 3,3
//	quadmom check  --moments 1,0,1,0,1
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/puetzmi/quadmom"
	"github.com/puetzmi/quadmom/config"
	"github.com/puetzmi/quadmom/moments"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quadmom:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quadmom",
		Short:         "Moment inversion for quadrature-based moment methods",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInvertCmd(), newCheckCmd())
	return root
}

func newInvertCmd() *cobra.Command {
	var (
		cfgPath string
		momArg  string
		dimsArg string
	)
	cmd := &cobra.Command{
		Use:   "invert",
		Short: "Invert a moment sequence into a quadrature",
		Long: "Invert reads an algorithm configuration and a comma-separated moment\n" +
			"sequence and prints the quadrature nodes and weights. For multivariate\n" +
			"methods --dims gives the tensor shape and the moments are listed in\n" +
			"row-major order (last index fastest).",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			m, err := quadmom.New(cfg)
			if err != nil {
				return err
			}
			mom, err := parseFloats(momArg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dimsArg == "" {
				q, err := m.Invert(mom)
				if err != nil {
					return err
				}
				for i := 0; i < q.Len(); i++ {
					fmt.Fprintf(out, "%.12g\t%.12g\n", q.Nodes[i], q.Weights[i])
				}
				return nil
			}

			dims, err := parseInts(dimsArg)
			if err != nil {
				return err
			}
			nd, err := moments.NewNDSetFromFlat(mom, dims...)
			if err != nil {
				return err
			}
			g, err := m.InvertND(nd)
			if err != nil {
				return err
			}
			for i, node := range g.Nodes {
				for _, x := range node {
					fmt.Fprintf(out, "%.12g\t", x)
				}
				fmt.Fprintf(out, "%.12g\n", g.Weights[i])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "configuration file (.yaml/.yml or dictionary form)")
	cmd.Flags().StringVarP(&momArg, "moments", "m", "", "comma-separated raw moments")
	cmd.Flags().StringVarP(&dimsArg, "dims", "d", "", "tensor shape for multivariate input, e.g. 3,3")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("moments")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var momArg string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check Hamburger realizability of a moment sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			mom, err := parseFloats(momArg)
			if err != nil {
				return err
			}
			ok, order := moments.Check(mom)
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "realizable")
				return nil
			}
			return fmt.Errorf("%w: violated at order %d", moments.ErrUnrealizable, order)
		},
	}
	cmd.Flags().StringVarP(&momArg, "moments", "m", "", "comma-separated raw moments")
	_ = cmd.MarkFlagRequired("moments")
	return cmd
}

func parseFloats(s string) ([]float64, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty moment list")
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad moment %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	fields := splitList(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad dimension %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
