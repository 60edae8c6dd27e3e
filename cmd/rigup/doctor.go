package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rigup-dev/rigup/internal/config"
	"github.com/rigup-dev/rigup/internal/doctor"
	"github.com/rigup-dev/rigup/internal/installer"
	"github.com/rigup-dev/rigup/internal/messages"
	"github.com/rigup-dev/rigup/internal/probe"
)

const tailscaleUnit = "tailscaled"

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sys := newSystemFunc(out, cmd.ErrOrStderr(), log.New(io.Discard))
			prober := &probe.Prober{Sys: sys, Out: out}

			cfg, err := config.Load("", sys)
			if err != nil {
				cfg = &config.Config{}
			}
			inst := installer.New(sys, cfg, out)

			var results []doctor.Result
			results = append(results, doctor.CheckPlatform(prober))
			results = append(results, doctor.CheckElevation(prober))
			results = append(results, doctor.CheckTools(sys, prerequisiteTools...)...)
			results = append(results, doctor.CheckService(sys, tailscaleUnit))
			results = append(results, doctor.CheckTailscale(inst))

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}
	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendPrefix, r.Recommendation)
	}
}
