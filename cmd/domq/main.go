// Package main provides domq, a small query tool over XML and HTML
// documents: resolve an element by a path of unique child names, then print
// the element or one of its attributes converted to a chosen type.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

// flagHTML is set by the --html flag and forces HTML parsing regardless of
// the file extension.
var flagHTML bool

var rootCmd = &cobra.Command{
	Use:   "domq",
	Short: "domq queries elements and attributes of markup documents",
	Long: `domq resolves elements in XML or HTML documents by a slash-separated
path of child names, where every step must match exactly one child.
Ambiguous or missing steps are reported with the number of matches.

Example:
  domq attr network.xml lines/line code
  domq attr network.xml operator ref --type uint
  domq child index.html body/div
  domq dump network.xml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagHTML, "html", false, "treat the input as HTML regardless of file extension")

	rootCmd.AddCommand(attrCmd)
	rootCmd.AddCommand(childCmd)
	rootCmd.AddCommand(dumpCmd)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
