package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/clickme/internal/config"
	"github.com/muurk/clickme/internal/editor"
	"github.com/muurk/clickme/internal/render"
	"github.com/muurk/clickme/internal/settings"
	"github.com/muurk/clickme/internal/store"
	"github.com/muurk/clickme/internal/ui"
)

// Step, control and page command flags
var (
	stepClearYes bool

	controlLeft      int
	controlTop       int
	controlWidth     int
	controlHeight    int
	controlText      string
	controlColor     string
	controlPuzzle    int
	controlTotalDots int
	controlFly       string
	controlCows      []string

	cowSeed uint64
)

func init() {
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(controlCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(setCmd)
}

// stepChange is a document edit addressed at a 1-based step argument.
type stepChange func(st editor.State, id settings.StepID) (editor.State, error)

// changeStep applies fn to the step named by arg and prints the result.
func changeStep(cmd *cobra.Command, title, arg string, fn stepChange) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	var pos int
	next, err := mutate(func(st editor.State) (editor.State, error) {
		id, err := stepID(st, arg)
		if err != nil {
			return st, err
		}
		next, err := fn(st, id)
		if err != nil {
			return st, err
		}
		pos = next.Position(id)
		return next, nil
	})
	if err != nil {
		return fail(p, title+" failed", err)
	}

	if step := next.Settings.StepAt(pos); step != nil {
		p.PrintSuccess(title, []ui.Detail{{Key: "Step", Value: step.Summary(pos)}})
	} else {
		p.PrintSuccess(title, []ui.Detail{{Key: "Steps", Value: strconv.Itoa(next.StepCount())}})
	}
	return nil
}

func atoi(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, settings.NewValidationError(fmt.Sprintf("%s must be a number, got %q", name, arg))
	}
	return n, nil
}

// stepCmd groups step commands
var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Add, remove and edit steps",
	Long: `Manage the step sequence.

Steps are addressed by their position in the sequence, starting at 1.
Positions shift when a step is removed or moved; run 'clickme step list'
to see the current order.`,
}

var stepListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the steps in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ui.NewPrinter(cmd.OutOrStdout())

		return withStore(func(_ *config.Preferences, st *store.Store) error {
			state := editor.NewState(st.Load())
			if state.StepCount() == 0 {
				p.PrintWarning("No steps", []ui.Detail{{Key: "Hint", Value: "clickme step add"}})
				return nil
			}

			items := make([]ui.StepItem, state.StepCount())
			for i, step := range state.Settings.Steps {
				items[i] = ui.StepItem{Name: step.DisplayName(i + 1), Note: stepNote(step)}
			}
			p.PrintStepList(items, state.Current)
			return nil
		})
	},
}

// stepNote summarizes a step for the step list.
func stepNote(step *settings.Step) string {
	parts := []string{fmt.Sprintf("%dx%d", step.Frame.Width, step.Frame.Height)}
	if step.HasControl() {
		parts = append(parts, step.Button.Label())
	}
	if step.HasScript() {
		parts = append(parts, "JS")
	}
	parts = append(parts, fmt.Sprintf("%dms", step.Timeout))
	return strings.Join(parts, ", ")
}

var stepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a step with a default frame and no control",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return appendStep(cmd, "Step added", editor.AddStep)
	},
}

var stepSeparatorCmd = &cobra.Command{
	Use:   "separator",
	Short: "Append a pause step with no control",
	Long: `Append a separator: a step without a control that only waits for its
timeout before the sequence moves on.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return appendStep(cmd, "Separator added", editor.AddSeparator)
	},
}

func appendStep(cmd *cobra.Command, title string, fn func(editor.State) editor.State) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	next, err := mutate(func(st editor.State) (editor.State, error) {
		return fn(st), nil
	})
	if err != nil {
		return fail(p, title, err)
	}

	pos := next.StepCount()
	p.PrintSuccess(title, []ui.Detail{{Key: "Step", Value: next.Settings.StepAt(pos).Summary(pos)}})
	return nil
}

var stepRemoveCmd = &cobra.Command{
	Use:   "remove <step>",
	Short: "Remove a step",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeStep(cmd, "Step removed", args[0], editor.RemoveStep)
	},
}

var stepSelectCmd = &cobra.Command{
	Use:   "select <step>",
	Short: "Show what the page displays at a step",
	Long: `Show the step as the page displays it: the frame size, the single
visible control and which controls are hidden.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ui.NewPrinter(cmd.OutOrStdout())

		return withStore(func(_ *config.Preferences, st *store.Store) error {
			state := editor.NewState(st.Load())
			pos, err := atoi("step", args[0])
			if err != nil {
				return err
			}
			if _, err := state.IDAt(pos); err != nil {
				return fail(p, "Select failed", err)
			}
			state = editor.SelectStep(state, pos)

			view := render.Preview(state)
			hidden := make([]string, 0, len(settings.ControlTypes))
			for _, t := range view.Hidden() {
				hidden = append(hidden, t.Label())
			}

			p.PrintHeader("STEP", "clickme step select "+args[0], []ui.Detail{
				{Key: "Name", Value: view.Name},
				{Key: "Frame", Value: fmt.Sprintf("%dx%d", view.Frame.Width, view.Frame.Height)},
				{Key: "Hidden", Value: strings.Join(hidden, ", ")},
			})
			p.Println(state.CurrentStep().FormatStep(pos))
			return nil
		})
	},
}

var stepRenameCmd = &cobra.Command{
	Use:   "rename <step> <name>",
	Short: "Rename a step",
	Long: `Rename a step. Markup is stripped from the name. An empty name, or
"Step N" for the step's own position, restores the default name that
follows the step's position.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeStep(cmd, "Step renamed", args[0], func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.RenameStep(st, id, args[1])
		})
	},
}

var stepFrameCmd = &cobra.Command{
	Use:   "frame <step> <width> <height>",
	Short: "Set a step's frame size in pixels",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := atoi("width", args[1])
		if err != nil {
			return err
		}
		h, err := atoi("height", args[2])
		if err != nil {
			return err
		}
		return changeStep(cmd, "Frame updated", args[0], func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.SetFrame(st, id, w, h)
		})
	},
}

var stepTimeoutCmd = &cobra.Command{
	Use:   "timeout <step> <ms>",
	Short: "Set how long a step is shown before advancing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := atoi("timeout", args[1])
		if err != nil {
			return err
		}
		return changeStep(cmd, "Timeout updated", args[0], func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.SetTimeout(st, id, ms)
		})
	},
}

var stepMoveCmd = &cobra.Command{
	Use:   "move <step> <position>",
	Short: "Move a step to a new position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := atoi("position", args[1])
		if err != nil {
			return err
		}
		return changeStep(cmd, "Step moved", args[0], func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.MoveStep(st, id, to)
		})
	},
}

var stepClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Replace all steps with one default step",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ui.NewPrinter(cmd.OutOrStdout())

		if !stepClearYes {
			confirmed := ui.ConfirmDestructive(cmd.InOrStdin(), cmd.OutOrStdout(), "Clear all steps", []string{
				"Every step, control and script will be removed",
				"Page settings (URL, background, title) are kept",
			})
			if !confirmed {
				return nil
			}
		}

		next, err := mutate(func(st editor.State) (editor.State, error) {
			return editor.ClearSteps(st), nil
		})
		if err != nil {
			return fail(p, "Clear failed", err)
		}
		p.PrintSuccess("Steps cleared", []ui.Detail{{Key: "Steps", Value: strconv.Itoa(next.StepCount())}})
		return nil
	},
}

func init() {
	stepClearCmd.Flags().BoolVar(&stepClearYes, "yes", false, "Skip the confirmation prompt")

	stepCmd.AddCommand(stepListCmd)
	stepCmd.AddCommand(stepAddCmd)
	stepCmd.AddCommand(stepSeparatorCmd)
	stepCmd.AddCommand(stepRemoveCmd)
	stepCmd.AddCommand(stepSelectCmd)
	stepCmd.AddCommand(stepRenameCmd)
	stepCmd.AddCommand(stepFrameCmd)
	stepCmd.AddCommand(stepTimeoutCmd)
	stepCmd.AddCommand(stepMoveCmd)
	stepCmd.AddCommand(stepClearCmd)
}

// controlCmd groups control commands
var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "Assign and adjust a step's decoy control",
	Long: `Manage the single decoy control of a step.

Control types:
  normal            a plain button with text and colour
  captcha-checkbox  an "I'm not a robot" checkbox
  captcha-puzzle    a picture puzzle with indicator dots

Positions are percentages of the frame (0-100) and place the centre of the
control. Switching type keeps the previous type's values, which come back
when that type is assigned again.`,
}

var controlAssignCmd = &cobra.Command{
	Use:   "assign <step> <type>",
	Short: "Make a control type active on a step",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := settings.ControlType(args[1])
		return changeStep(cmd, "Control assigned", args[0], func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.AssignControl(st, id, t)
		})
	},
}

var controlSetCmd = &cobra.Command{
	Use:   "set <step>",
	Short: "Change values of a step's control",
	Long: `Change values of the active control. Only the flags given are changed.
Flags that do not belong to the active control type are rejected.`,
	Example: `  # Move a control
  clickme control set 2 --left 30 --top 70

  # Restyle a button
  clickme control set 1 --text "Claim prize" --color "#e63946" --width 160

  # Puzzle at indicator 2 of 3, with sprites placed by hand
  clickme control set 3 --puzzle-step 2 --total-dots 3 --fly 100,90 \
    --cow 40,60 --cow 200,120 --cow 300,240`,
	Args: cobra.ExactArgs(1),
	RunE: runControlSet,
}

func init() {
	f := controlSetCmd.Flags()
	f.IntVar(&controlLeft, "left", 0, "Horizontal position in percent")
	f.IntVar(&controlTop, "top", 0, "Vertical position in percent")
	f.IntVar(&controlWidth, "width", 0, "Button width in pixels")
	f.IntVar(&controlHeight, "height", 0, "Button height in pixels")
	f.StringVar(&controlText, "text", "", "Button text")
	f.StringVar(&controlColor, "color", "", "Button colour (#rrggbb)")
	f.IntVar(&controlPuzzle, "puzzle-step", 0, "Active puzzle indicator (1-4)")
	f.IntVar(&controlTotalDots, "total-dots", 0, "Number of puzzle indicators (1-4)")
	f.StringVar(&controlFly, "fly", "", "Fly sprite offset in pixels (LEFT,TOP)")
	f.StringArrayVar(&controlCows, "cow", nil, "Cow sprite offset in pixels (LEFT,TOP); give exactly three")
}

func runControlSet(cmd *cobra.Command, args []string) error {
	patch, err := controlPatch(cmd)
	if err != nil {
		return err
	}
	if patch.Empty() {
		return fmt.Errorf("nothing to change; see 'clickme control set --help' for flags")
	}

	return changeStep(cmd, "Control updated", args[0], func(st editor.State, id settings.StepID) (editor.State, error) {
		return editor.UpdateControl(st, id, patch)
	})
}

// controlPatch builds a patch from the flags that were given.
func controlPatch(cmd *cobra.Command) (editor.ControlPatch, error) {
	var patch editor.ControlPatch
	changed := cmd.Flags().Changed

	if changed("left") {
		patch.Left = editor.Ptr(controlLeft)
	}
	if changed("top") {
		patch.Top = editor.Ptr(controlTop)
	}
	if changed("width") {
		patch.Width = editor.Ptr(controlWidth)
	}
	if changed("height") {
		patch.Height = editor.Ptr(controlHeight)
	}
	if changed("text") {
		patch.Text = editor.Ptr(controlText)
	}
	if changed("color") {
		patch.Color = editor.Ptr(controlColor)
	}
	if changed("puzzle-step") {
		patch.Step = editor.Ptr(controlPuzzle)
	}
	if changed("total-dots") {
		patch.TotalDots = editor.Ptr(controlTotalDots)
	}
	if changed("fly") {
		fly, err := parsePoint(controlFly)
		if err != nil {
			return patch, err
		}
		patch.Fly = &fly
	}
	if changed("cow") {
		if len(controlCows) != 3 {
			return patch, settings.NewValidationError(fmt.Sprintf("--cow must be given three times, got %d", len(controlCows)))
		}
		var cows [3]settings.Point
		for i, raw := range controlCows {
			pt, err := parsePoint(raw)
			if err != nil {
				return patch, err
			}
			cows[i] = pt
		}
		patch.Cows = &cows
	}

	return patch, nil
}

// parsePoint parses "LEFT,TOP".
func parsePoint(raw string) (settings.Point, error) {
	left, top, ok := strings.Cut(raw, ",")
	if ok {
		l, errL := strconv.Atoi(strings.TrimSpace(left))
		t, errT := strconv.Atoi(strings.TrimSpace(top))
		if errL == nil && errT == nil {
			return settings.Point{Left: l, Top: t}, nil
		}
	}
	return settings.Point{}, settings.NewValidationError(fmt.Sprintf("offset must look like 120,117, got %q", raw))
}

var controlCenterCmd = &cobra.Command{
	Use:   "center <step>",
	Short: "Move a step's control to the centre of the frame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeStep(cmd, "Control centered", args[0], editor.CenterControl)
	},
}

var controlCowsCmd = &cobra.Command{
	Use:   "randomize-cows <step>",
	Short: "Scatter the cow sprites of a puzzle control",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := newRand(cowSeed)
		return changeStep(cmd, "Cows randomized", args[0], func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.RandomizeCows(st, id, rng)
		})
	},
}

var controlRemoveCmd = &cobra.Command{
	Use:   "remove <step>",
	Short: "Remove a step's control",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeStep(cmd, "Control removed", args[0], editor.RemoveControl)
	},
}

func init() {
	controlCowsCmd.Flags().Uint64Var(&cowSeed, "seed", 0, "Random seed (0 picks one)")

	controlCmd.AddCommand(controlAssignCmd)
	controlCmd.AddCommand(controlSetCmd)
	controlCmd.AddCommand(controlCenterCmd)
	controlCmd.AddCommand(controlCowsCmd)
	controlCmd.AddCommand(controlRemoveCmd)
}

// scriptCmd groups script commands
var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Set or remove a step's script",
	Long: `Manage the script that runs when a step is shown.

A script may be raw JavaScript or one or more <script> elements. It is
syntax-checked when set; a script that does not compile is still saved.`,
}

var scriptSetCmd = &cobra.Command{
	Use:   "set <step> [file|-]",
	Short: "Set a step's script from a file or stdin",
	Example: `  # From a file
  clickme script set 2 steal.js

  # From stdin
  echo 'alert(document.domain)' | clickme script set 2 -`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := "-"
		if len(args) == 2 {
			source = args[1]
		}
		data, err := readInput(cmd, source)
		if err != nil {
			return err
		}
		script := string(data)

		if err := changeStep(cmd, "Script updated", args[0], func(st editor.State, id settings.StepID) (editor.State, error) {
			return editor.SetScript(st, id, script)
		}); err != nil {
			return err
		}

		if errs := settings.LintScript(script); len(errs) > 0 {
			p := ui.NewPrinter(cmd.OutOrStdout())
			details := make([]ui.Detail, len(errs))
			for i, e := range errs {
				details[i] = ui.Detail{Key: "Error", Value: e.Error()}
			}
			p.PrintWarning("Script does not compile", details)
		}
		return nil
	},
}

var scriptRemoveCmd = &cobra.Command{
	Use:   "remove <step>",
	Short: "Remove a step's script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeStep(cmd, "Script removed", args[0], editor.RemoveScript)
	},
}

func init() {
	scriptCmd.AddCommand(scriptSetCmd)
	scriptCmd.AddCommand(scriptRemoveCmd)
}

// setCmd groups page-level settings
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change page-level settings",
}

// changePage applies a page-level edit and prints the page settings.
func changePage(cmd *cobra.Command, title string, fn func(editor.State) (editor.State, error)) error {
	p := ui.NewPrinter(cmd.OutOrStdout())

	next, err := mutate(fn)
	if err != nil {
		return fail(p, title+" failed", err)
	}

	s := next.Settings
	p.PrintSuccess(title, []ui.Detail{
		{Key: "Title", Value: s.Title()},
		{Key: "URL", Value: s.URL},
		{Key: "Background", Value: string(s.Background)},
		{Key: "Credentialless", Value: strconv.FormatBool(s.Credentialless)},
	})
	return nil
}

var setURLCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Set the framed page URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changePage(cmd, "URL updated", func(st editor.State) (editor.State, error) {
			return editor.SetURL(st, args[0])
		})
	},
}

var setBackgroundCmd = &cobra.Command{
	Use:       "background <none|white|social-media>",
	Short:     "Set the decoy background behind the frame",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(settings.BackgroundNone), string(settings.BackgroundWhite), string(settings.BackgroundSocialMedia)},
	RunE: func(cmd *cobra.Command, args []string) error {
		return changePage(cmd, "Background updated", func(st editor.State) (editor.State, error) {
			return editor.SetBackground(st, settings.Background(args[0]))
		})
	},
}

var setCredentiallessCmd = &cobra.Command{
	Use:   "credentialless <true|false>",
	Short: "Load the frame without cookies or credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := strconv.ParseBool(args[0])
		if err != nil {
			return settings.NewValidationError(fmt.Sprintf("credentialless must be true or false, got %q", args[0]))
		}
		return changePage(cmd, "Credentialless updated", func(st editor.State) (editor.State, error) {
			return editor.SetCredentialless(st, on), nil
		})
	},
}

var setTitleCmd = &cobra.Command{
	Use:   "title <title>",
	Short: "Set the demonstration page title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changePage(cmd, "Title updated", func(st editor.State) (editor.State, error) {
			return editor.SetPageTitle(st, args[0]), nil
		})
	},
}

func init() {
	setCmd.AddCommand(setURLCmd)
	setCmd.AddCommand(setBackgroundCmd)
	setCmd.AddCommand(setCredentiallessCmd)
	setCmd.AddCommand(setTitleCmd)
}
