package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/forgo/learnledger/api/internal/model"
)

func themeName(t model.ThemePreference) string {
	if t.DarkMode {
		return "dark"
	}
	return "light"
}

func themeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or set the theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				theme model.ThemePreference
				err   error
			)
			if len(args) == 0 {
				theme, err = opts.client().Theme(cmd.Context())
			} else {
				theme, err = opts.client().SetTheme(cmd.Context(), args[0] == "dark")
			}
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), theme, func(w io.Writer) {
				fmt.Fprintf(w, "Theme: %s\n", themeName(theme))
			})
		},
	}
}
