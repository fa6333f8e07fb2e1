package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/wildfunctions/exprtree/pkg/expr"
)

var demoBufSize int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "evaluate and render a fixed set of reference expressions",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().IntVar(
		&demoBufSize, "buf-size", 256, "capacity of the rendering buffer, terminator included")
}

// demoTrees returns the reference expressions. Each call builds fresh trees
// owned by the caller.
func demoTrees() []expr.Node {
	v := expr.NewValue
	n := expr.NewNode
	return []expr.Node{
		v(23400000),
		v(-1000),
		n(expr.KindAdd, v(1), v(3)),
		n(expr.KindAdd, v(10), v(5)),
		n(expr.KindMul, v(2), n(expr.KindAdd, v(3), v(4))),
		n(expr.KindSub, n(expr.KindMul, v(6), v(2)), v(3)),
		n(expr.KindMul, n(expr.KindAdd, v(2), v(3)), v(4)),
		n(expr.KindNegate, n(expr.KindAdd, v(1), v(2)), nil),
		n(expr.KindPower, v(2), v(10)),
		n(expr.KindDiv, v(1), v(0)),
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if demoBufSize < 0 {
		return errors.Newf("--buf-size must not be negative, got %d", demoBufSize)
	}
	tbl := tablewriter.NewWriter(cmd.OutOrStdout())
	tbl.SetHeader([]string{"Expression", "Rendered", "Len", "Nodes", "Depth", "Value"})
	tbl.SetAutoWrapText(false)

	buf := make([]byte, demoBufSize)
	for _, tree := range demoTrees() {
		n := expr.Tree2String(tree, buf)
		tbl.Append([]string{
			expr.Format(tree),
			string(buf[:n]),
			strconv.Itoa(n),
			strconv.Itoa(expr.Count(tree)),
			strconv.Itoa(expr.Depth(tree)),
			strconv.FormatFloat(expr.Evaluate(tree), 'g', -1, 64),
		})
		expr.Destroy(tree)
	}
	tbl.Render()
	return nil
}
