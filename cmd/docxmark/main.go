// Command docxmark converts a Word document to Markdown, plain text, or HTML.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/docxmark/docxmark"
	"github.com/docxmark/docxmark/format"
)

var (
	imgDir   string
	textMode bool
	htmlMode bool
	outFile  string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "docxmark [file.docx]",
	Short: "Convert Word documents to Markdown",
	Long: `Converts a .docx file to Markdown, preserving headings, lists, tables,
hyperlinks, footnotes, comments, and embedded charts. Plain text and HTML
output modes are also available.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&imgDir, "img-dir", "i", "", "Directory to extract embedded images into")
	rootCmd.Flags().BoolVarP(&textMode, "text", "t", false, "Emit plain text instead of Markdown")
	rootCmd.Flags().BoolVar(&htmlMode, "html", false, "Emit HTML instead of Markdown")
	rootCmd.Flags().StringVarP(&outFile, "output", "o", "", "Write output to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func runConvert(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	filename := args[0]

	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("cannot access %s: %w", filename, err)
	}
	if f := format.Detect(filename); f != format.DOCX {
		return fmt.Errorf("%s is not a .docx file", filename)
	}
	if textMode && htmlMode {
		return fmt.Errorf("--text and --html are mutually exclusive")
	}

	conv := docxmark.Open(filename)
	if imgDir != "" {
		if err := os.MkdirAll(imgDir, 0o755); err != nil {
			return fmt.Errorf("creating image directory: %w", err)
		}
		conv = conv.ImageDir(imgDir)
		log.Debug("extracting images", "dir", imgDir)
	}

	var (
		out string
		err error
	)
	switch {
	case textMode:
		log.Debug("converting", "file", filename, "mode", "text")
		out, err = conv.Text()
	case htmlMode:
		log.Debug("converting", "file", filename, "mode", "html")
		out, err = conv.HTML()
	default:
		log.Debug("converting", "file", filename, "mode", "markdown")
		out, err = conv.Markdown()
	}
	if err != nil {
		return fmt.Errorf("converting %s: %w", filename, err)
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(out+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		log.Debug("wrote output", "file", outFile, "bytes", len(out))
		return nil
	}

	fmt.Println(out)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
