package unitconv

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/unitconv/internal/version"
	"github.com/arthur-debert/unitconv/pkg/batch"
	"github.com/arthur-debert/unitconv/pkg/config"
	"github.com/arthur-debert/unitconv/pkg/errors"
	"github.com/arthur-debert/unitconv/pkg/logging"
	"github.com/arthur-debert/unitconv/pkg/menu"
	"github.com/arthur-debert/unitconv/pkg/output"
	"github.com/arthur-debert/unitconv/pkg/units"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// StdinArg makes batch read requests from standard input
const StdinArg = "-"

func (a *app) runMenu(cmd *cobra.Command) error {
	shell := menu.New(a.conv, cmd.InOrStdin(), a.renderer(cmd.OutOrStdout()), a.renderer(cmd.ErrOrStderr()))
	return shell.Run(cmd.Context())
}

// conversionNameCompletion completes the first argument with conversion names
func (a *app) conversionNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, name := range a.conv.Names() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		Short:   MsgMenuShort,
		Long:    MsgMenuLong,
		GroupID: groupConvert,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "convert NAME VALUE",
		Short:             MsgConvertShort,
		Long:              MsgConvertLong,
		Example:           MsgConvertExample,
		GroupID:           groupConvert,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: a.conversionNameCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, raw := args[0], args[1]
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return errors.Newf(errors.ErrInvalidInput, MsgErrInvalidValue, raw).
					WithDetail("value", raw)
			}

			logger := logging.GetLogger("cmd.convert")
			logger.Info().
				Str("conversion", name).
				Float64("value", value).
				Msg("Converting")

			result, err := a.conv.Convert(name, value)
			if err != nil {
				return err
			}

			r := a.renderer(cmd.OutOrStdout())
			r.Println(output.StyleResult, fmt.Sprintf("%.2f", result))
			return nil
		},
	}
	// Stop flag parsing at NAME so negative values are not read as flags
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var category, format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: groupConvert,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.conv.Entries()
			if category != "" {
				cat, ok := units.ParseCategory(category)
				if !ok {
					return errors.Newf(errors.ErrInvalidInput, MsgErrCategory, category).
						WithDetail("category", category)
				}
				entries = a.conv.ByCategory(cat)
			}

			f := a.cfg.Output.Format
			if cmd.Flags().Changed("format") {
				parsed, err := config.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			}

			out := cmd.OutOrStdout()
			return output.WriteTable(out, f, output.RowsFrom(entries), a.renderer(out))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", MsgFlagCategory)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)

	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(units.Categories))
		for _, c := range units.Categories {
			names = append(names, c.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(config.Formats))
		for _, f := range config.Formats {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "batch FILE|-",
		Short:   MsgBatchShort,
		Long:    MsgBatchLong,
		Example: MsgBatchExample,
		GroupID: groupConvert,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := batch.New(a.conv, a.fs)
			out := cmd.OutOrStdout()
			errOut := a.renderer(cmd.ErrOrStderr())

			var (
				summary batch.Summary
				err     error
			)
			if args[0] == StdinArg {
				summary, err = p.Process(cmd.Context(), cmd.InOrStdin(), out, errOut)
			} else {
				summary, err = p.ProcessFile(cmd.Context(), args[0], out, errOut)
			}
			if err != nil {
				return err
			}

			a.renderer(out).Println(output.StyleMuted, summary.String())
			if summary.Failed > 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrBatchFailed,
					summary.Failed, summary.Converted+summary.Failed)
			}
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               groupMisc,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man DIR",
		Short:   MsgManShort,
		GroupID: groupMisc,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", dir)
			}
			if err := doc.GenManTree(cmd.Root(), ManHeader(), dir); err != nil {
				return fmt.Errorf(MsgErrGenMan, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
}

// ManHeader returns the header used for generated man pages
func ManHeader() *doc.GenManHeader {
	return &doc.GenManHeader{
		Title:   "UNITCONV",
		Section: "1",
		Source:  "unitconv " + version.Version,
		Manual:  "unitconv manual",
	}
}
