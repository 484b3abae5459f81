package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var childCmd = &cobra.Command{
	Use:   "child <file> <path>",
	Short: "Resolve the element at path and print it",
	Long: `Child resolves <path> from the document root, requiring every step to
match exactly one child, and prints the resolved element's name, attributes
and number of direct children. A step matching zero children or more than
one is reported with the exact match count.

Example:
  domq child network.xml lines/line
  domq child index.html body/div`,
	Args: cobra.ExactArgs(2),
	RunE: runChild,
}

func runChild(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	if doc.isHTML() {
		el, err := walk(doc.html, args[1])
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(el.Name())
		for _, a := range el.HTMLNode().Attr {
			fmt.Fprintf(&b, " %s=%q", a.Key, a.Val)
		}
		fmt.Printf("%s (%d children)\n", b.String(), el.NumChildren())
		return nil
	}

	el, err := walk(doc.xml, args[1])
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(el.Name())
	for _, a := range el.Attrs() {
		fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
	}
	fmt.Printf("%s (%d children)\n", b.String(), el.NumChildren())
	return nil
}
