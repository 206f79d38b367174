// Command soy is a small driver around the compiler core: it parses command
// text into expression lists and runs the built-in primitives through either
// backend from the command line.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	soy "github.com/paulscallanjr/closure-templates"
	"github.com/paulscallanjr/closure-templates/pkg/data"
	"github.com/paulscallanjr/closure-templates/pkg/exprtree"
	"github.com/paulscallanjr/closure-templates/pkg/jssrc"
	"github.com/paulscallanjr/closure-templates/pkg/shared"
	"github.com/paulscallanjr/closure-templates/pkg/types"
)

var errColor = color.New(color.FgRed, color.Bold)

var rootCmd = &cobra.Command{
	Use:           "soy",
	Short:         "Template compiler core tools",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var parseCmd = &cobra.Command{
	Use:   "parse <command-text>",
	Short: "Parse command text into an expression list and print the tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exprs, err := soy.ParseExprList(args[0])
		if err != nil {
			return err
		}
		for i, expr := range exprs {
			fmt.Printf("expr %d:\n", i)
			printNode(expr, 1)
		}
		return nil
	},
}

var (
	formatFamily string
	localeString string
)

var formatNumCmd = &cobra.Command{
	Use:   "formatnum <number>",
	Short: "Apply the |formatNum directive to a number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", args[0])
		}
		ctx := shared.Context{Locale: func() string { return localeString }}
		var dirArgs []types.Value
		if formatFamily != "" {
			dirArgs = append(dirArgs, data.NewString(formatFamily))
		}
		out, err := soy.ApplyDirective(ctx, "|formatNum", data.NewFloat(v), dirArgs)
		if err != nil {
			return err
		}
		fmt.Println(out.String())
		return nil
	},
}

var jsSrcCmd = &cobra.Command{
	Use:   "jssrc <value-expr>",
	Short: "Emit the JavaScript expression for |formatNum applied to a value expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := jssrc.New(args[0], jssrc.MaxPrecedence)
		var dirArgs []jssrc.Expr
		if formatFamily != "" {
			dirArgs = append(dirArgs, jssrc.New("'"+formatFamily+"'", jssrc.MaxPrecedence))
		}
		expr, libs, err := soy.ApplyDirectiveForJsSrc("|formatNum", value, dirArgs)
		if err != nil {
			return err
		}
		fmt.Println(expr.Text())
		if len(libs) > 0 {
			fmt.Printf("requires: %s\n", strings.Join(libs, ", "))
		}
		return nil
	},
}

func printNode(n *exprtree.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Type {
	case exprtree.NodeString:
		fmt.Printf("%sstring %q\n", indent, n.StrValue)
	case exprtree.NodeNumber:
		fmt.Printf("%snumber %v\n", indent, n.NumValue)
	case exprtree.NodeBoolean:
		fmt.Printf("%sboolean %v\n", indent, n.BoolValue)
	case exprtree.NodeNull:
		fmt.Printf("%snull\n", indent)
	case exprtree.NodeDataRef:
		fmt.Printf("%sdataref $%s\n", indent, n.StrValue)
	case exprtree.NodeGlobal:
		fmt.Printf("%sglobal %s\n", indent, n.StrValue)
	case exprtree.NodeBinary:
		fmt.Printf("%sbinary %s\n", indent, n.StrValue)
		printNode(n.LHS, depth+1)
		printNode(n.RHS, depth+1)
	case exprtree.NodeFunction:
		fmt.Printf("%sfunction %s\n", indent, n.StrValue)
		for _, child := range n.Children {
			printNode(child, depth+1)
		}
	case exprtree.NodeList:
		fmt.Printf("%slist\n", indent)
		for _, child := range n.Children {
			printNode(child, depth+1)
		}
	}
}

func main() {
	formatNumCmd.Flags().StringVar(&formatFamily, "format", "", "format family (decimal|currency|percent|scientific|compact_short|compact_long)")
	formatNumCmd.Flags().StringVar(&localeString, "locale", "en", "locale identifier for the render")
	jsSrcCmd.Flags().StringVar(&formatFamily, "format", "", "format family literal to pass to the directive")

	rootCmd.Version = soy.Version()
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatNumCmd)
	rootCmd.AddCommand(jsSrcCmd)

	if err := rootCmd.Execute(); err != nil {
		errColor.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
