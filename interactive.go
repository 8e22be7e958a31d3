package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// securityTips is shown when the interactive loop starts
const securityTips = `Tips:
  - Do not include any personal information in your password
  - Use a combination of uppercase and lowercase letters
  - Include numbers and special characters
  - Avoid common words or phrases
  - Use a unique password for each account`

const interactiveHelp = `Type a password to check it, or one of:
  :generate [length]   generate a random password
  :export <path>       export check results as JSON
  :quit                exit`

// runInteractive reads lines from in and evaluates them until :quit or
// end of input. Lines starting with ':' are commands; anything else is
// treated as a password to check.
func runInteractive(in io.Reader, out io.Writer, app *App) error {
	fmt.Fprintln(out, securityTips)
	fmt.Fprintln(out)
	fmt.Fprintln(out, interactiveHelp)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if quit := runCommand(out, app, line); quit {
				break
			}
			continue
		}

		result := app.CheckAndRecord(line)
		fmt.Fprintln(out, FormatResult(result))
		fmt.Fprintln(out, app.checker.SuggestImprovements(line))
	}

	return scanner.Err()
}

// runCommand handles a ':' command line; returns true on :quit
func runCommand(out io.Writer, app *App, line string) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true

	case ":generate", ":gen":
		length := app.config.GetSettings().GeneratorLength
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n <= 0 {
				// Malformed length falls back to the default
				fmt.Fprintf(out, "Invalid length %q, using %d.\n", fields[1], length)
			} else {
				length = n
			}
		}
		fmt.Fprintln(out, GeneratePassword(length))

	case ":export":
		if len(fields) < 2 {
			fmt.Fprintln(out, "Usage: :export <path>")
			return false
		}
		if err := ExportResults(app.results.Records(), fields[1]); err != nil {
			fmt.Fprintf(out, "Export failed: %v\n", err)
			return false
		}
		fmt.Fprintf(out, "Results exported to %s.\n", fields[1])

	default:
		fmt.Fprintf(out, "Unknown command %s\n", fields[0])
		fmt.Fprintln(out, interactiveHelp)
	}

	return false
}
