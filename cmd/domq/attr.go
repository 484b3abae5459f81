package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	minidomext "github.com/hove-io/minidom-ext"
)

// attrType is set by the --type flag.
var attrType string

var attrCmd = &cobra.Command{
	Use:   "attr <file> <path> <name>",
	Short: "Print one attribute of the element at path",
	Long: `Attr resolves <path> from the document root, requiring every step to
match exactly one child, then prints the named attribute of the resolved
element. --type converts the raw text before printing, so malformed values
are reported instead of passed through.

Example:
  domq attr network.xml lines/line code
  domq attr network.xml operator ref --type uint`,
	Args: cobra.ExactArgs(3),
	RunE: runAttr,
}

func init() {
	attrCmd.Flags().StringVar(&attrType, "type", "string", "parse the value as this type (string, int, uint, float, bool, duration)")
}

func runAttr(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	if doc.isHTML() {
		el, err := walk(doc.html, args[1])
		if err != nil {
			return err
		}
		return printAttr(el, args[2])
	}

	el, err := walk(doc.xml, args[1])
	if err != nil {
		return err
	}
	return printAttr(el, args[2])
}

func printAttr[E minidomext.Element[E]](el E, name string) error {
	switch attrType {
	case "string":
		return echoAttr[string](el, name)
	case "int":
		return echoAttr[int64](el, name)
	case "uint":
		return echoAttr[uint64](el, name)
	case "float":
		return echoAttr[float64](el, name)
	case "bool":
		return echoAttr[bool](el, name)
	case "duration":
		return echoAttr[time.Duration](el, name)
	}
	return fmt.Errorf("unknown type %q (valid: string, int, uint, float, bool, duration)", attrType)
}

func echoAttr[T minidomext.Value, E minidomext.Element[E]](el E, name string) error {
	v, err := minidomext.TryAttribute[T](el, name)
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}
