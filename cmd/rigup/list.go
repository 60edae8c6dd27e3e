package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/installer"
	"github.com/rigup-dev/rigup/internal/messages"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sys := newSystemFunc(out, cmd.ErrOrStderr(), log.New(io.Discard))

			// Detection never reads config; a broken config file should
			// not keep list from working.
			cfg, err := config.Load("", sys)
			if err != nil {
				cfg = &config.Config{}
			}
			inst := installer.New(sys, cfg, out)

			for _, c := range component.All() {
				state := messages.ListStateNotInstalled
				if inst.Detected(c.ID) {
					state = color.GreenString(messages.ListStateInstalled)
				}
				_, _ = fmt.Fprintf(out, messages.ListLineFmt, c.ID, state, c.Label)
			}
			return nil
		},
	}
}
