package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/brick-mosaic-mcp/internal/palette"
	"github.com/ironsheep/brick-mosaic-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("brick-mosaic-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("brick-mosaic-mcp - MCP server that turns images into brick mosaics")
			fmt.Println()
			fmt.Println("Usage: brick-mosaic-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  BRICK_MOSAIC_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println("  BRICK_MOSAIC_PALETTE=/path/to.csv  Use a custom brick palette")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("BRICK_MOSAIC_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Brick Mosaic MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	p, err := loadPalette(os.Getenv("BRICK_MOSAIC_PALETTE"))
	if err != nil {
		log.Fatalf("Palette error: %v", err)
	}
	if debug {
		log.Printf("Loaded palette with %d colors", p.Len())
	}

	srv := server.New(p)
	srv.SetDebug(debug)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func loadPalette(path string) (*palette.Palette, error) {
	if path == "" {
		return palette.Default()
	}
	return palette.LoadFile(path)
}
