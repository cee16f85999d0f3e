// Command mathparse evaluates expressions given as arguments or read
// from standard input, one per line.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/halfmoss/mathparse"
)

type cli struct {
	Prec   uint              `short:"p" default:"64" help:"Precision of calculations in bits."`
	Given  map[string]string `short:"g" help:"Variable definitions as name=expr pairs."`
	Vars   string            `type:"existingfile" help:"YAML file of name: expr variable definitions."`
	Fmt    string            `default:"%g" help:"Result formatting verb."`
	Tokens bool              `help:"Print the token sequence of each expression."`
	Tree   bool              `help:"Print the parse tree of each expression."`

	Exprs []string `arg:"" optional:"" help:"Expressions to evaluate (default stdin, one per line)."`
}

func main() {
	log.SetFlags(0)
	var args cli
	kong.Parse(&args,
		kong.Name("mathparse"),
		kong.Description("Evaluate plain-text mathematical expressions."),
		kong.UsageOnError(),
	)

	ctx := mathparse.NewContext(mathparse.Prec(args.Prec))
	if args.Vars != "" {
		if err := loadVars(ctx, args.Vars); err != nil {
			log.Fatal(err)
		}
	}
	for nm, vl := range args.Given {
		r, err := mathparse.EvalString(vl, mathparse.Prec(args.Prec))
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx.Set(nm, r)
	}

	exprs := args.Exprs
	if len(exprs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) == "" {
				continue
			}
			exprs = append(exprs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	verb := args.Fmt + "\n"
	code := 0
	for _, src := range exprs {
		a, err := mathparse.Parse(src)
		if err != nil {
			log.Println(err)
			code = 1
			continue
		}
		if args.Tokens {
			fmt.Println(tokline(a))
		}
		if args.Tree {
			treeline(os.Stdout, a.AST(), 0)
		}
		r, err := a.Eval(ctx)
		if err != nil {
			log.Println(err)
			code = 1
			continue
		}
		fmt.Printf(verb, r)
	}
	os.Exit(code)
}

// loadVars evaluates each definition in a YAML mapping of names to
// expressions and binds the results in ctx. Definitions may not refer to
// each other.
func loadVars(ctx *mathparse.Context, name string) error {
	b, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	var defs map[string]string
	if err := yaml.Unmarshal(b, &defs); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for nm, vl := range defs {
		r, err := mathparse.EvalString(vl, mathparse.Prec(ctx.Prec()))
		if err != nil {
			return fmt.Errorf("setting %s: %w", nm, err)
		}
		ctx.Set(nm, r)
	}
	return nil
}

func tokline(a *mathparse.Expr) string {
	toks := a.Tokens()
	ss := make([]string, len(toks))
	for i, t := range toks {
		ss[i] = t.String()
	}
	return strings.Join(ss, " ")
}

func treeline(w *os.File, n *mathparse.Node, depth int) {
	fmt.Fprintf(w, "%s%v\n", strings.Repeat("  ", depth), n.Token)
	for _, kid := range n.Children {
		treeline(w, kid, depth+1)
	}
}
