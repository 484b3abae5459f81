package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	minidomext "github.com/hove-io/minidom-ext"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the parsed element tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	var count int
	if doc.isHTML() {
		count = countElements(doc.html)
		if err := html.Render(os.Stdout, doc.html.HTMLNode()); err != nil {
			return err
		}
		fmt.Println()
	} else {
		count = countElements(doc.xml)
		pp.Println(doc.xml)
	}

	fmt.Printf("%d elements, %s\n", count, humanize.Bytes(uint64(doc.size)))
	return nil
}

func countElements[E minidomext.Element[E]](el E) int {
	n := 1
	for i := 0; i < el.NumChildren(); i++ {
		n += countElements(el.Child(i))
	}
	return n
}
