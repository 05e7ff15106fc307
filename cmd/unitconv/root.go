package unitconv

import (
	"io"

	"github.com/arthur-debert/unitconv/internal/version"
	"github.com/arthur-debert/unitconv/pkg/cobrax/topics"
	"github.com/arthur-debert/unitconv/pkg/config"
	"github.com/arthur-debert/unitconv/pkg/logging"
	"github.com/arthur-debert/unitconv/pkg/output"
	"github.com/arthur-debert/unitconv/pkg/units"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	groupConvert = "convert"
	groupMisc    = "misc"
)

// app holds the state shared by all commands of one root command
type app struct {
	verbosity  int
	configPath string
	noColor    bool

	cfg  *config.Config
	conv *units.Converter
	fs   afero.Fs
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	initTemplateFormatting()

	a := &app{
		conv: units.New(),
		fs:   fs,
	}

	rootCmd := &cobra.Command{
		Use:               "unitconv",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Version:           version.Version,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: run the interactive menu
			return a.runMenu(cmd)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupConvert,
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupMisc,
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newMenuCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   &topicRenderer{app: a},
	}
	if _, err := topics.Initialize(rootCmd, Topics(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
	rootCmd.SetHelpCommandGroupID(groupMisc)

	return rootCmd
}

// setup configures logging and loads the configuration before any command
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logging.SetupLogger(a.verbosity, false)

	overrides := map[string]interface{}{}
	if a.noColor {
		overrides["output.color"] = string(config.ColorNever)
	}
	cfg, err := config.LoadWithOverrides(a.configPath, overrides)
	if err != nil {
		return err
	}
	if cfg.Log.File {
		logging.SetupLogger(a.verbosity, true)
	}
	a.cfg = cfg

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

// colorMode returns the effective color setting
func (a *app) colorMode() config.ColorMode {
	if a.noColor {
		return config.ColorNever
	}
	if a.cfg == nil {
		return config.ColorAuto
	}
	return a.cfg.Output.Color
}

// renderer creates an output renderer for w honoring the color setting
func (a *app) renderer(w io.Writer) *output.Renderer {
	return output.NewRenderer(w, a.colorMode())
}

// topicRenderer picks the glamour style once the color setting is known
type topicRenderer struct {
	app *app
}

func (r *topicRenderer) Render(content string, format string) string {
	g := topics.NewGlamourRenderer()
	if r.app.colorMode() == config.ColorNever {
		g.Style = topics.StyleNoTTY
	}
	return g.Render(content, format)
}
