package expr

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

var testKinds = map[string]Kind{
	"add": KindAdd,
	"sub": KindSub,
	"mul": KindMul,
	"div": KindDiv,
	"pow": KindPower,
	"neg": KindNegate,
}

// buildTree builds a tree from prefix notation such as "(mul 2 (add 3 4))".
func buildTree(s string) (Node, error) {
	s = strings.ReplaceAll(s, "(", " ( ")
	s = strings.ReplaceAll(s, ")", " ) ")
	toks := strings.Fields(s)
	n, rest, err := buildTokens(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		Destroy(n)
		return nil, errors.Newf("trailing input %q", strings.Join(rest, " "))
	}
	return n, nil
}

func buildTokens(toks []string) (Node, []string, error) {
	if len(toks) == 0 {
		return nil, nil, errors.New("unexpected end of input")
	}
	if toks[0] != "(" {
		v, err := strconv.ParseFloat(toks[0], 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "bad value %q", toks[0])
		}
		return NewValue(v), toks[1:], nil
	}
	if len(toks) < 2 {
		return nil, nil, errors.New("unexpected end of input")
	}
	kind, ok := testKinds[toks[1]]
	if !ok {
		return nil, nil, errors.Newf("unknown operator %q", toks[1])
	}
	toks = toks[2:]
	var operands []Node
	for len(toks) > 0 && toks[0] != ")" {
		n, rest, err := buildTokens(toks)
		if err != nil {
			for _, o := range operands {
				Destroy(o)
			}
			return nil, nil, err
		}
		operands = append(operands, n)
		toks = rest
	}
	if len(toks) == 0 {
		return nil, nil, errors.New("missing )")
	}
	toks = toks[1:]
	switch {
	case kind == KindNegate && len(operands) == 1:
		return NewNode(kind, operands[0], nil), toks, nil
	case kind.IsBinary() && len(operands) == 2:
		return NewNode(kind, operands[0], operands[1]), toks, nil
	}
	for _, o := range operands {
		Destroy(o)
	}
	return nil, nil, errors.Newf("%s takes %d operands", kind, len(operands))
}

func mustBuild(t *testing.T, s string) Node {
	t.Helper()
	n, err := buildTree(s)
	require.NoError(t, err)
	return n
}

func TestTreeDataDriven(t *testing.T) {
	before := LiveNodes()
	datadriven.RunTest(t, "testdata/tree", func(t *testing.T, td *datadriven.TestData) string {
		var out strings.Builder
		for line := range crstrings.LinesSeq(td.Input) {
			tree, err := buildTree(line)
			if err != nil {
				td.Fatalf(t, "%s: %v", line, err)
			}
			switch td.Cmd {
			case "render":
				size := 256
				if td.HasArg("buf") {
					td.ScanArgs(t, "buf", &size)
				}
				buf := make([]byte, size)
				n := Tree2String(tree, buf)
				if size > 0 {
					require.Zero(t, buf[n], "missing terminator")
				}
				fmt.Fprintf(&out, "%q len=%d\n", buf[:n], n)
			case "eval":
				fmt.Fprintf(&out, "%s\n", strconv.FormatFloat(Evaluate(tree), 'g', -1, 64))
			case "count":
				fmt.Fprintf(&out, "%d\n", Count(tree))
			case "depth":
				fmt.Fprintf(&out, "%d\n", Depth(tree))
			case "latex":
				fmt.Fprintf(&out, "%s\n", LaTeX(tree))
			default:
				td.Fatalf(t, "unknown command %q", td.Cmd)
			}
			Destroy(tree)
		}
		return out.String()
	})
	require.Equal(t, before, LiveNodes())
}
