package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/clickme/internal/config"
	"github.com/muurk/clickme/internal/editor"
	"github.com/muurk/clickme/internal/logging"
	"github.com/muurk/clickme/internal/render"
	"github.com/muurk/clickme/internal/settings"
	"github.com/muurk/clickme/internal/store"
	"github.com/muurk/clickme/internal/tui"
	"github.com/muurk/clickme/internal/ui"
)

// Command flags
var (
	showFormat string

	renderOutput      string
	renderMenu        bool
	renderTransparent bool
	renderStart       int

	exportCopy bool
	exportYes  bool

	configForce bool
)

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(configCmd)
}

// loadPreferences resolves preferences from the config file, the CLICKME_*
// environment and the global flags, in that order, and starts logging.
func loadPreferences() (*config.Preferences, error) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, err
	}
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	prefs := registry.Preferences.ApplyEnv(env)
	if backendFlag != "" {
		prefs.StoreBackend = backendFlag
	}
	if dataDirFlag != "" {
		prefs.DataDir = dataDirFlag
	}
	if logLevelFlag != "" {
		prefs.LogLevel = logLevelFlag
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	if err := logging.Initialize(prefs.LogLevel); err != nil {
		return nil, err
	}
	return prefs, nil
}

// openStore opens the configured settings store.
func openStore(prefs *config.Preferences) (*store.Store, error) {
	dir, err := prefs.ResolveDataDir()
	if err != nil {
		return nil, settings.NewStorageError("failed to resolve data directory", err)
	}

	backend, err := store.Open(prefs.StoreBackend, dir)
	if err != nil {
		return nil, settings.NewStorageError("failed to open settings store", err)
	}

	logging.Info("Settings store opened",
		zap.String("backend", backend.Name()),
		zap.String("data_dir", dir),
	)
	return store.New(backend), nil
}

// withStore runs fn against the configured store and closes it afterwards.
func withStore(fn func(*config.Preferences, *store.Store) error) error {
	prefs, err := loadPreferences()
	if err != nil {
		return err
	}
	st, err := openStore(prefs)
	if err != nil {
		return err
	}
	defer st.Close()

	return fn(prefs, st)
}

// mutate applies fn to the stored document and saves the result. Write
// failures are reported, unlike in the interactive editor.
func mutate(fn func(editor.State) (editor.State, error)) (editor.State, error) {
	var out editor.State
	err := withStore(func(_ *config.Preferences, st *store.Store) error {
		next, err := fn(editor.NewState(st.Load()))
		if err != nil {
			return err
		}
		if err := st.TrySave(next.Settings); err != nil {
			return err
		}
		out = next
		return nil
	})
	return out, err
}

// fail prints an error box with troubleshooting hints and returns err.
func fail(p *ui.Printer, title string, err error) error {
	p.PrintError(title, err, settings.Hint(err))
	return err
}

// stepID resolves a 1-based position argument to a step ID.
func stepID(st editor.State, arg string) (settings.StepID, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, settings.NewValidationError(fmt.Sprintf("step must be a number, got %q", arg))
	}
	return st.IDAt(pos)
}

// newRand returns the random source for cow placement. A zero seed draws
// one from the clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// editCmd launches the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Launch the interactive editor",
	Long: `Launch the interactive terminal editor.

The editor shows the step list and a preview of the displayed step. Every
change is saved immediately. Press ? inside the editor for all key bindings.

This is the default when clickme is run without a command.`,
	Example: `  # Launch the editor
  clickme edit
  # Or simply:
  clickme

  # Try things out without touching stored settings
  clickme --backend memory`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal() {
		return fmt.Errorf("the editor needs an interactive terminal; see 'clickme --help' for non-interactive commands")
	}

	return withStore(func(_ *config.Preferences, st *store.Store) error {
		session := editor.NewSession(st)
		if err := tui.Run(session, editor.SystemClipboard, newRand(0)); err != nil {
			return fmt.Errorf("editor error: %w", err)
		}
		return nil
	})
}

// showCmd prints the stored document
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the demonstration settings",
	Long: `Display the stored demonstration settings.

When nothing is stored, or the stored settings cannot be parsed, the
defaults are shown.`,
	Example: `  # Show all steps in detail
  clickme show

  # One line per step
  clickme show --format compact

  # The document as stored
  clickme show --format json`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "", "Output format (detailed, compact, json); defaults to show_format from the config file")
}

func runShow(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	return withStore(func(prefs *config.Preferences, st *store.Store) error {
		format := showFormat
		if format == "" {
			format = prefs.ShowFormat
		}

		doc := st.Load()
		switch format {
		case config.FormatCompact:
			p.Println(doc.FormatCompact())
		case config.FormatJSON:
			data, err := settings.Encode(doc)
			if err != nil {
				return err
			}
			pretty, err := settings.Pretty(data)
			if err != nil {
				return err
			}
			p.Println(string(pretty))
		case config.FormatDetailed:
			p.Println(doc.FormatDetailed())
		default:
			return fmt.Errorf("unknown format %q (expected detailed, compact or json)", format)
		}
		return nil
	})
}

// renderCmd writes the demonstration page
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the demonstration page as HTML",
	Long: `Render the stored demonstration as a standalone HTML page.

The page frames the target URL and shows exactly one control per step. It
steps through the sequence by itself: a step without a control advances
after its timeout, and a step with a control advances once the control is
clicked.

--menu adds the editor-style side menu for jumping between steps;
--transparent makes the decoy controls see-through so the framed page is
visible beneath them.`,
	Example: `  # Write the page to a file
  clickme render -o demo.html

  # Include the side menu and start at step 3
  clickme render -o demo.html --menu --start 3

  # Pipe to another tool
  clickme render | wc -c`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default stdout)")
	renderCmd.Flags().BoolVar(&renderMenu, "menu", false, "Include the step menu")
	renderCmd.Flags().BoolVar(&renderTransparent, "transparent", false, "Make controls transparent")
	renderCmd.Flags().IntVar(&renderStart, "start", 1, "Step shown first")
}

func runRender(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.ErrOrStderr())

	return withStore(func(prefs *config.Preferences, st *store.Store) error {
		opts := render.PageOptions{
			Menu:        renderMenu,
			Transparent: renderTransparent,
			Start:       renderStart,
		}
		output := renderOutput
		if rp := prefs.Render; rp != nil {
			if !cmd.Flags().Changed("menu") {
				opts.Menu = rp.Menu
			}
			if !cmd.Flags().Changed("transparent") {
				opts.Transparent = rp.Transparent
			}
			if !cmd.Flags().Changed("output") {
				output = rp.Output
			}
		}

		doc := st.Load()
		if output == "" || output == "-" {
			return render.Page(cmd.OutOrStdout(), doc, opts)
		}

		if err := writePage(output, doc, opts); err != nil {
			return fail(p, "Render failed", err)
		}

		p.PrintSuccess("Page rendered", []ui.Detail{
			{Key: "Output", Value: output},
			{Key: "Target", Value: doc.URL},
			{Key: "Steps", Value: strconv.Itoa(len(doc.Steps))},
			{Key: "Menu", Value: strconv.FormatBool(opts.Menu)},
		})
		return nil
	})
}

// writePage renders to a temporary file and renames it into place.
func writePage(path string, doc *settings.Settings, opts render.PageOptions) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := render.Page(f, doc, opts); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save output file: %w", err)
	}
	return nil
}

// validateCmd checks the stored document
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the settings and step scripts",
	Long: `Validate the stored settings and syntax-check every step script.

Scripts are compiled but never run. A script that does not compile still
renders; the browser will report the same error when the step is shown.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	return withStore(func(_ *config.Preferences, st *store.Store) error {
		doc := st.Load()
		errs := settings.ValidateSettings(doc)
		errs = append(errs, settings.LintSettings(doc)...)

		if len(errs) > 0 {
			hints := settings.Hint(errs[0])
			p.PrintError("Validation failed", fmt.Errorf("%s", settings.JoinErrors(errs)), hints)
			return fmt.Errorf("%d problem(s) found", len(errs))
		}

		p.PrintSuccess("Settings are valid", []ui.Detail{
			{Key: "Target", Value: doc.URL},
			{Key: "Steps", Value: strconv.Itoa(len(doc.Steps))},
		})
		return nil
	})
}

// exportCmd prints or copies the stored document
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored settings",
	Long: `Print the stored settings as indented JSON.

With --copy the settings are copied to the system clipboard and storage is
cleared, so the next session starts from the defaults. Nothing is cleared
if the copy fails.`,
	Example: `  # Print the settings
  clickme export > settings.json

  # Copy and clear, asking for confirmation
  clickme export --copy

  # Copy and clear without asking
  clickme export --copy --yes`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "Copy to the clipboard and clear storage")
	exportCmd.Flags().BoolVar(&exportYes, "yes", false, "Skip the confirmation prompt")
}

func runExport(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	return withStore(func(_ *config.Preferences, st *store.Store) error {
		text := editor.Export(st)
		if !exportCopy {
			p.Println(text)
			return nil
		}

		if !exportYes {
			confirmed := ui.ConfirmDestructive(cmd.InOrStdin(), cmd.OutOrStdout(), "Copy settings and clear storage", []string{
				"The stored settings will be deleted after they are copied",
				"The next session starts from the default demonstration",
			})
			if !confirmed {
				return nil
			}
		}

		if _, err := editor.CopyAndClear(st, text, editor.SystemClipboard); err != nil {
			return fail(p, "Export failed", err)
		}

		p.PrintSuccess("Settings copied to clipboard", []ui.Detail{
			{Key: "Size", Value: fmt.Sprintf("%d bytes", len(text))},
			{Key: "Storage", Value: "cleared"},
		})
		return nil
	})
}

// importCmd replaces the stored document
var importCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Replace the stored settings with an exported document",
	Long: `Store a previously exported settings document.

The document must parse; missing or malformed fields take their defaults.
Use - to read from stdin.`,
	Example: `  # Restore from a file
  clickme import settings.json

  # Restore from the clipboard on macOS
  pbpaste | clickme import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	return withStore(func(_ *config.Preferences, st *store.Store) error {
		doc, err := st.Import(data)
		if err != nil {
			return fail(p, "Import failed", err)
		}
		p.PrintSuccess("Settings imported", []ui.Detail{
			{Key: "Target", Value: doc.URL},
			{Key: "Steps", Value: strconv.Itoa(len(doc.Steps))},
		})
		return nil
	})
}

// readInput reads a file argument, or stdin for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// dropCmd adds a palette element to a step
var dropCmd = &cobra.Command{
	Use:   "drop <button|script> [step]",
	Short: "Drop a button or script onto a step",
	Long: `Add a palette element to a step, as dragging it in the editor would.

A button becomes a default Button control; a script starts from a small
template. Without a step the element goes to the first step, which is
created if there are none. Dropping an element the step already has does
nothing.`,
	Example: `  # Give step 2 a button
  clickme drop button 2

  # Add a script to the first step
  clickme drop script`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDrop,
}

func runDrop(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	tok, err := editor.ParseToken(args[0])
	if err != nil {
		return err
	}

	applied := false
	next, err := mutate(func(st editor.State) (editor.State, error) {
		target := editor.DropOnList
		if len(args) == 2 {
			id, err := stepID(st, args[1])
			if err != nil {
				return st, err
			}
			target = id
		}
		next, ok, err := editor.Drop(st, tok, target)
		applied = ok
		return next, err
	})
	if err != nil {
		return fail(p, "Drop failed", err)
	}

	if !applied {
		p.PrintWarning("Nothing dropped", []ui.Detail{
			{Key: "Reason", Value: fmt.Sprintf("the step already has a %s", tok)},
		})
		return nil
	}
	p.PrintSuccess(fmt.Sprintf("Dropped %s", tok), []ui.Detail{
		{Key: "Steps", Value: strconv.Itoa(next.StepCount())},
	})
	return nil
}

// configCmd groups preference commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the preferences file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective preferences",
	Long: `Show the preferences in effect after applying the config file, the
CLICKME_* environment and command-line flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ui.NewPrinter(cmd.OutOrStdout())

		prefs, err := loadPreferences()
		if err != nil {
			return err
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		dataDir, err := prefs.ResolveDataDir()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(prefs)
		if err != nil {
			return fmt.Errorf("failed to marshal preferences: %w", err)
		}

		p.PrintHeader("PREFERENCES", "clickme config show", []ui.Detail{
			{Key: "Config file", Value: path},
			{Key: "Data dir", Value: dataDir},
		})
		p.PrintCode("Effective preferences", string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default preferences file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ui.NewPrinter(cmd.OutOrStdout())

		path, err := config.CreateDefaultConfig(configForce)
		if err != nil {
			return err
		}
		p.PrintSuccess("Preferences file created", []ui.Detail{{Key: "Path", Value: path}})
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
