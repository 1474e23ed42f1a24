// Command sigviz runs the signal-visualiser pipeline from the terminal
// and exports its datasets for plotting.
package main

import "github.com/RupanjanSaha123/Realtimesignalvisualiser/internal/cmd"

func main() {
	cmd.Execute()
}
