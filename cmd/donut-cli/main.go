package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/Lennart1978/donut-cli/engine"
	"github.com/Lennart1978/donut-cli/palette"
	"github.com/Lennart1978/donut-cli/terminal"
)

var colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")

func usage() {
	prog := os.Args[0]
	fmt.Printf("Usage: %s [flags] [color] [speed]\n", prog)
	fmt.Printf("Press 'q' or ESC to quit.\n\n")
	fmt.Printf("Arguments:\n")
	fmt.Printf("  color          Color name (optional, default: green).\n")
	fmt.Printf("                 Available: %s\n", strings.Join(palette.Names(), ", "))
	fmt.Printf("  speed          Positive speed factor (optional, default: 1.0).\n")
	fmt.Printf("                 > 1.0: faster, < 1.0: slower.\n\n")
	fmt.Printf("Flags:\n")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the renderer crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n for raw mode compatibility to avoid zig-zag output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDONUT-CLI CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = usage
	flag.Parse()
	args := flag.Args()

	colorName := "green"
	if len(args) > 0 {
		colorName = args[0]
	}

	speed := 1.0
	if len(args) > 1 {
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil || v <= 0 {
			fmt.Fprintf(os.Stderr, "Warning: Invalid speed factor '%s'. Must be a positive number. Using default 1.0.\n", args[1])
		} else {
			speed = v
		}
	}

	if len(args) > 2 {
		fmt.Fprintf(os.Stderr, "Warning: Too many arguments. Use '%s --help' for help.\n", os.Args[0])
	}

	// Resolve color mode from flag
	var colorMode terminal.ColorMode
	switch *colorModeFlag {
	case "256":
		colorMode = terminal.ColorMode256
	case "truecolor", "true", "24bit":
		colorMode = terminal.ColorModeTrueColor
	default:
		colorMode = terminal.DetectColorMode()
	}

	pal, known := palette.Resolve(colorName, colorMode)
	if !known {
		fmt.Fprintf(os.Stderr, "Warning: Unknown color '%s'. Using default 'green'.\nAvailable: %s\n",
			colorName, strings.Join(palette.Names(), ", "))
	}

	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer term.Restore()

	eng := engine.New(term, os.Stdout, pal, speed)
	if err := eng.Run(); err != nil {
		// os.Exit skips the deferred restore, run it here first
		term.Restore()
		fmt.Fprintf(os.Stderr, "donut-cli: %v\n", err)
		os.Exit(1)
	}
}
