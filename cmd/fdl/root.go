package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/fdl/internal/version"
	"github.com/arthur-debert/fdl/pkg/fdl"
	"github.com/arthur-debert/fdl/pkg/layout"
	"github.com/arthur-debert/fdl/pkg/logging"
	"github.com/arthur-debert/fdl/pkg/macros"
	"github.com/arthur-debert/fdl/pkg/terminal"
)

var (
	verbosity  int
	width      int
	outputMode string
	macroFile  string

	rootCmd = &cobra.Command{
		Use:   "fdl <template> [value...]",
		Short: "Render an FDL template to terminal, plain, markdown and html",
		Long: `fdl renders a template mixing literal text with <name> variables,
</command, ...> command groups and <type:arg> objects. One pass produces
four synchronized formats; values are substituted in the order given.

Box border styles: ` + strings.Join(layout.BoxStyleNames(), ", ") + `.`,
		Example: `  fdl "Hello </bold><name></end bold>!" World
  fdl --output markdown "</red>Error</end red>: <msg>" "disk full"
  fdl --width 40 "</box rounded, title Status>All good</end box>"`,
		Args: cobra.MinimumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runRender,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().IntVar(&width, "width", 0, "Target width in columns (default: detected terminal width)")
	rootCmd.Flags().StringVarP(&outputMode, "output", "o", "terminal", "Format to print: terminal, plain, markdown, html or all")
	rootCmd.Flags().StringVar(&macroFile, "macros", "", "TOML file defining named format macros")

	rootCmd.AddCommand(versionCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	caps := terminal.Detect(os.Stdout)
	if width > 0 {
		caps.Width = width
	}

	opts := []fdl.Option{fdl.WithCapabilities(caps)}
	if macroFile != "" {
		store, err := macros.LoadTOML(macroFile)
		if err != nil {
			return err
		}
		opts = append(opts, fdl.WithMacros(store))
	}

	values := make([]interface{}, len(args)-1)
	for i, arg := range args[1:] {
		values[i] = arg
	}

	out, err := fdl.New(opts...).Render(args[0], values...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch outputMode {
	case "terminal", "term":
		fmt.Fprintln(w, out.Terminal)
	case "plain":
		fmt.Fprintln(w, out.Plain)
	case "markdown", "md":
		fmt.Fprintln(w, out.Markdown)
	case "html":
		fmt.Fprintln(w, out.HTML)
	case "all":
		fmt.Fprintf(w, "--- terminal ---\n%s\n--- plain ---\n%s\n--- markdown ---\n%s\n--- html ---\n%s\n",
			out.Terminal, out.Plain, out.Markdown, out.HTML)
	default:
		return fmt.Errorf("unknown output format %q", outputMode)
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fdl version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
