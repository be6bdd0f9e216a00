// Package display renders generation results and errors to the
// terminal. It is the only place anything is printed; the core returns
// structured data and stays silent.
package display

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"rsg/internal/rsg"
)

var (
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	WarnColorFG  = pterm.FgYellow
	InfoColorFG  = pterm.FgLightGreen
)

// Error prints a standard Go error to the console under a styled tag.
func Error(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// Info prints an informational message under a styled tag.
func Info(tag, msg string) {
	InfoColorFG.Print(tag)
	fmt.Println(" " + msg)
}

// Summary prints how many definitions the grammar file contained.
func Summary(path string, definitions int) {
	fmt.Printf("The grammar file called %q contains ", path)
	InfoColorFG.Print(definitions)
	if definitions == 1 {
		fmt.Println(" definition.")
	} else {
		fmt.Println(" definitions.")
	}
}

// Sentence prints one generated version under its banner.
func Sentence(s rsg.Sentence) {
	InfoColorFG.Printf("Version #%d:", s.Version)
	fmt.Println(" ---------------------------")
	fmt.Println(strings.Join(s.Tokens, " "))
	fmt.Println()
}

// Tree prints a derivation tree, one symbol per line, children indented
// under their parent. Nonterminals are highlighted, terminals plain.
func Tree(t *rsg.DerivationTree) {
	printTree(t, 0)
	fmt.Println()
}

func printTree(t *rsg.DerivationTree, indent int) {
	pad := strings.Repeat("  ", indent)
	if len(t.Children) == 0 {
		if t.Value != "" {
			fmt.Println(pad + t.Value)
		} else {
			InfoColorFG.Println(pad + t.Symbol)
		}
		return
	}

	InfoColorFG.Println(pad + t.Symbol)
	for _, child := range t.Children {
		printTree(child, indent+1)
	}
}

// Coverage prints the alternative-coverage summary for a run, listing
// any alternatives the run never exercised.
func Coverage(stats rsg.CoverageStats, uncovered []string) {
	fmt.Printf("Alternative coverage: %d of %d (%.1f%%)\n",
		stats.Covered, stats.Total, stats.Percent)
	for _, alt := range uncovered {
		WarnColorFG.Println("  never chosen: " + alt)
	}
}
