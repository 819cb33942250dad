package cmd

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// keyFile is the [keys] table of config.toml.
type keyFile struct {
	Keys map[string]string `toml:"keys"`
}

func newKeysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective keymap as a config.toml [keys] table",
		Long: `Load the configuration, apply its keybinding overrides, check them for
shortcut conflicts and print every binding. The output can be pasted into
config.toml and edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, km, err := loadSettings(opts)
			if err != nil {
				return err
			}
			out := keyFile{Keys: make(map[string]string)}
			for _, b := range km.Bindings() {
				out.Keys[strings.ToLower(string(b.Action))] = string(b.Chord)
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
}
