package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user-none/infoscreens/config"
)

// ErrConfigExists is returned when init-config would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "Write the default config and demo deck",
		Long:  `Writes the built-in config as YAML to file, or to stdout when no file is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return config.Write(cmd.OutOrStdout(), config.Default())
			}
			return writeConfigFile(args[0], force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func writeConfigFile(path string, force bool) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	}
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return config.Write(f, config.Default())
}
