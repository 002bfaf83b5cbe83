package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  ids        List page or post ids")
	fmt.Fprintln(w, "  page       Print a page as JSON")
	fmt.Fprintln(w, "  post       Print a post as JSON")
	fmt.Fprintln(w, "  posts      Print the sorted post listing as JSON")
	fmt.Fprintln(w, "  title      Render a markdown title")
	fmt.Fprintln(w, "  export     Write all page data as JSON files")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --content-dir <dir>   Markdown content directory")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// printIDsUsage prints usage for the ids command.
func printIDsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite ids [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the ids of markdown pages, one per line, sorted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Directory relative to the content directory (default: content root)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --posts               List post ids instead")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPageUsage prints usage for the page command.
func printPageUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite page <id> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the page data of <content-dir>/<id>.md as JSON.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --html                Print the rendered body only")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPostUsage prints usage for the post command.
func printPostUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite post <id> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the page data of a post as JSON. Ids are relative to the posts directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --html                Print the rendered body only")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printPostsUsage prints usage for the posts command.
func printPostsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite posts [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print post metadata sorted newest first, one listing page at a time.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -p, --page <n>            Listing page (default: 1)")
	fmt.Fprintln(w, "      --per-page <n>        Posts per page, 0 = all (default: from config)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printTitleUsage prints usage for the title command.
func printTitleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite title <markdown> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a title as inline HTML and plaintext, printed as JSON.")
	fmt.Fprintln(w, "Math is written $...$; the plaintext form reads each formula once.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite export [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write page data as JSON for the templating layer:")
	fmt.Fprintln(w, "  pages/<id>.json      One file per page")
	fmt.Fprintln(w, "  posts/<id>.json      One file per post")
	fmt.Fprintln(w, "  posts/page-<n>.json  Sorted post listing, paginated")
	fmt.Fprintln(w, "  site.json            Site title and counts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: from config)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after applying the config file,")
	fmt.Fprintln(w, "MDSITE_* environment variables, and flags.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "ids":
		printIDsUsage(env.Stdout)
	case "page":
		printPageUsage(env.Stdout)
	case "post":
		printPostUsage(env.Stdout)
	case "posts":
		printPostsUsage(env.Stdout)
	case "title":
		printTitleUsage(env.Stdout)
	case "export":
		printExportUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
