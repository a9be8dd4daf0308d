package commands

import (
	"fmt"
	"io"
	"os/user"

	"github.com/de-tools/cost-radar/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	path string
	out  io.Writer
}

func NewProfilesCmd(out io.Writer) *cobra.Command {
	pc := &ProfilesCmd{out: out}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List AWS shared config profiles",
		RunE:  pc.run,
	}

	defaultPath := ""
	if usr, err := user.Current(); err == nil {
		defaultPath = fmt.Sprintf("%s/.aws/config", usr.HomeDir)
	}
	cmd.Flags().StringVar(&pc.path, "path", defaultPath, "Path to the AWS shared config file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(pc.path)
	if err != nil {
		return fmt.Errorf("failed to read AWS config at %s: %w", pc.path, err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	for _, profile := range profiles {
		fmt.Fprintln(pc.out, profile)
	}
	return nil
}
