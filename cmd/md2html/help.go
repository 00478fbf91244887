package main

import (
	"fmt"
	"io"
)

// printUsage prints the top-level usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "md2html converts line-oriented Markdown to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  md2html <command> [flags] [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert Markdown files to HTML")
	fmt.Fprintln(w, "  preview     Render a Markdown file to the terminal")
	fmt.Fprintln(w, "  serve       Run the live editor and render API")
	fmt.Fprintln(w, "  completion  Generate shell completion scripts")
	fmt.Fprintln(w, "  doctor      Check the environment for problems")
	fmt.Fprintln(w, "  version     Print the version")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Convert Markdown files to HTML documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  md2html convert [flags] <input.md|directory>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "When given a directory, every .md and .markdown file under it is")
	fmt.Fprintln(w, "converted, mirroring the directory layout into the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file or directory (\"-\" = stdout)")
	fmt.Fprintln(w, "  -w, --workers <n>       Parallel workers for batch runs (0 = auto)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-file timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document flags:")
	fmt.Fprintln(w, "      --doc-title <text>  Document title (\"\" = auto from first H1)")
	fmt.Fprintln(w, "      --doc-author <text> Author meta tag")
	fmt.Fprintln(w, "      --doc-date <text>   Date meta tag; literal text is used as-is")
	fmt.Fprintln(w, "      --lang <code>       HTML lang attribute (e.g., en, pt-BR)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Date values:")
	fmt.Fprintln(w, "  auto                    Today as YYYY-MM-DD")
	fmt.Fprintln(w, "  auto:<format>           Today in a custom format")
	fmt.Fprintln(w, "                          Tokens: YYYY, MM, DD, MMMM, D")
	fmt.Fprintln(w, "                          Presets: iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Style flags:")
	fmt.Fprintln(w, "  -s, --style <value>     CSS style name, file path, or inline CSS")
	fmt.Fprintln(w, "      --asset-path <dir>  Custom asset directory")
	fmt.Fprintln(w, "      --no-style          Disable CSS styling")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output shape flags:")
	fmt.Fprintln(w, "      --fragment          Emit HTML fragments without the document shell")
	fmt.Fprintln(w, "      --no-front-matter   Treat leading --- blocks as content")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html convert README.md")
	fmt.Fprintln(w, "  md2html convert notes.md -o notes.html --style dark")
	fmt.Fprintln(w, "  md2html convert docs/ -o site/ -w 4")
	fmt.Fprintln(w, "  md2html convert post.md --doc-date auto:long -o -")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Render a Markdown file as colored HTML in the terminal.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  md2html preview [flags] <input.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --theme <name>      Color theme (default "+defaultPreviewTheme+")")
	fmt.Fprintln(w, "      --plain             Disable terminal colors")
	fmt.Fprintln(w, "      --fragment          Preview fragments without the document shell")
	fmt.Fprintln(w, "      --no-front-matter   Treat leading --- blocks as content")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html preview README.md")
	fmt.Fprintln(w, "  md2html preview notes.md --fragment --theme dracula")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Run the live editor page and the JSON render API.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  md2html serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --addr <addr>            Listen address (default :8423)")
	fmt.Fprintln(w, "      --allowed-origins <csv>  CORS origins (default: allow all)")
	fmt.Fprintln(w, "      --log-level <level>      debug, info, warn, or error")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Endpoints:")
	fmt.Fprintln(w, "  GET  /                  Editor page")
	fmt.Fprintln(w, "  POST /api/render        {\"markdown\": \"...\"} -> {\"html\": \"...\"}")
	fmt.Fprintln(w, "  GET  /api/styles        List built-in style names")
	fmt.Fprintln(w, "  GET  /api/styles/{name} Fetch a style sheet")
	fmt.Fprintln(w, "  GET  /healthz           Liveness probe")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html serve")
	fmt.Fprintln(w, "  md2html serve --addr :9000 --log-level debug")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Check the environment for problems.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  md2html doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Checks embedded assets, config file resolution, and the temp")
	fmt.Fprintln(w, "directory, then prints a status report.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json    Emit the report as JSON")
}

// runHelp handles the help command, showing command-specific usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown help topic: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	return ExitSuccess
}
