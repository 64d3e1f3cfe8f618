package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/wikidoc/internal/commands"
	"github.com/gerunddev/wikidoc/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "parse", "p":
		commands.Parse(os.Args[2:])
	case "links":
		commands.Links(os.Args[2:])
	case "index":
		commands.Index()
	case "backlinks":
		commands.Backlinks(os.Args[2:])
	case "dangling":
		commands.Dangling()
	case "diff":
		commands.Diff(os.Args[2:])
	case "browse":
		commands.Browse()
	case "init":
		commands.Init()
	case "version", "-v", "--version":
		fmt.Printf("wikidoc v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`wikidoc - Parse notes into headings, bullets and text with [[wiki-links]]

Usage:
  wikidoc <command> [options]

Commands:
  parse, p    Parse a note (file or stdin) and print its structure
  links       Print every [[link]] target of a note
  index       Index the notes directory
  backlinks   List notes linking to a note
  dangling    List link targets that match no note
  diff        Structural diff of two notes
  browse      Browse indexed notes
  init        Write the default config file
  version     Show version information
  help        Show this help message

Parse options:
  --format, -f <text|json|yaml|markdown|pretty>
  --nest      Group elements under their headings
  --flat      Keep one element per line (default)

Examples:
  wikidoc parse notes/today.md
  wikidoc parse --format json --nest notes/today.md
  cat notes/today.md | wikidoc links
  wikidoc index
  wikidoc backlinks "Project Ideas"
  wikidoc diff old.md new.md

Configuration:
  Config file: %s
  Index file:  %s
`, config.ConfigPath(), config.IndexFilePath())
	fmt.Print(usage)
}
