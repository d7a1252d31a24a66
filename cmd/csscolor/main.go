package main

import (
	"fmt"
	"os"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/term"
)

const helpText = `Usage:
  csscolor [colors...]

Parses each argument as a CSS color and prints it in every supported
notation. On a truecolor terminal a swatch is shown as well.

Examples:
  csscolor tomato
  csscolor '#bad455' 'hwb(from #bad455 h b w)'
  csscolor 'rgb(0, 255, 0)' 'oklch(0.7 0.17 150)'
`

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpText)
		os.Exit(1)
	}
	for _, arg := range args {
		switch arg {
		case "-h", "-help", "--help":
			fmt.Print(helpText)
			return
		}
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	exitCode := 0
	for _, arg := range args {
		c, err := csscolorparser.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "csscolor: %q: %v\n", arg, err)
			exitCode = 1
			continue
		}
		printColor(arg, c, isTTY)
	}
	os.Exit(exitCode)
}

func printColor(input string, c csscolorparser.Color, isTTY bool) {
	fmt.Printf("%s\n", input)
	if isTTY {
		rgba := c.ToRgba8()
		fmt.Printf("  \x1B[48;2;%d;%d;%dm        \x1B[49m\n", rgba[0], rgba[1], rgba[2])
	}
	fmt.Printf("  rgba   %s\n", c)
	fmt.Printf("  hex    %s\n", c.HexString())
	fmt.Printf("  rgb    %s\n", c.RGBString())
	fmt.Printf("  hsl    %s\n", c.HSLString())
	fmt.Printf("  hwb    %s\n", c.HWBString())
	fmt.Printf("  lab    %s\n", c.LabString())
	fmt.Printf("  lch    %s\n", c.LchString())
	fmt.Printf("  oklab  %s\n", c.OklabString())
	fmt.Printf("  oklch  %s\n", c.OklchString())
	if name, ok := c.Name(); ok {
		fmt.Printf("  name   %s\n", name)
	}
}
