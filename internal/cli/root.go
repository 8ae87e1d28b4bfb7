// Package cli wires the command line surface of scan2pdf: three mutually
// exclusive modes on a single cobra command, matching the classic usage
//
//	scan2pdf -L
//	scan2pdf --create-configuration DEVICE [CONFIG]
//	scan2pdf [--debug] [-C CONFIG] DEVICE [TARGET]
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tupyy/scan2pdf/internal/config"
	"github.com/tupyy/scan2pdf/internal/pdf"
	"github.com/tupyy/scan2pdf/internal/services"
	"github.com/tupyy/scan2pdf/pkg/device"
	"github.com/tupyy/scan2pdf/pkg/errors"
)

// flagDebug is persistent so Execute can surface wrapped causes after the
// command has already failed.
var flagDebug bool

// NewRootCommand builds the scan2pdf command.
func NewRootCommand() *cobra.Command {
	var (
		flagListDevices  bool
		flagCreateConfig bool
		flagConfig       string
	)

	cmd := &cobra.Command{
		Use:   "scan2pdf [flags] DEVICE [TARGET]",
		Short: "Scan documents into a multi-page PDF",
		Long: `scan2pdf drives a scanner device to produce a multi-page PDF.

Create a configuration file describing the device's options, edit it,
then scan with it applied:

  scan2pdf --create-configuration DEVICE scanner.conf
  scan2pdf -C scanner.conf DEVICE out.pdf`,
		Args:          cobra.RangeArgs(0, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := newLogger(settings, flagDebug)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagListDevices && flagCreateConfig {
				return fmt.Errorf("--list-devices and --create-configuration are mutually exclusive")
			}

			settings, err := config.Load()
			if err != nil {
				return err
			}
			backend, err := device.NewBackend(settings.Backend)
			if err != nil {
				return err
			}
			svc := services.NewScanner(backend, pdf.NewBuilder())
			ctx := cmd.Context()

			switch {
			case flagListDevices:
				if len(args) != 0 {
					return fmt.Errorf("--list-devices takes no arguments")
				}
				return svc.ListDevices(ctx, cmd.OutOrStdout())

			case flagCreateConfig:
				if len(args) < 1 {
					return fmt.Errorf("--create-configuration requires a DEVICE argument")
				}
				configPath := ""
				if len(args) == 2 {
					configPath = args[1]
				}
				return svc.CreateConfiguration(ctx, args[0], configPath)

			default:
				if len(args) < 1 {
					return fmt.Errorf("DEVICE argument required (or -L to list devices)")
				}
				if len(args) < 2 {
					return fmt.Errorf("TARGET argument required")
				}
				return svc.Scan(ctx, args[0], flagConfig, args[1])
			}
		},
	}

	cmd.Flags().BoolVarP(&flagListDevices, "list-devices", "L", false, "show available scanner devices")
	cmd.Flags().BoolVar(&flagCreateConfig, "create-configuration", false, "create a configuration file with the device defaults")
	cmd.Flags().StringVarP(&flagConfig, "configuration", "C", "", "configuration file to apply before scanning")
	cmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "print debug information on error")

	return cmd
}

// Execute runs the root command and returns the process exit code. Fatal
// errors are printed as a short user facing message; --debug adds the
// underlying technical cause.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		printError(err)
		return 1
	}
	return 0
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)

	if !flagDebug {
		return
	}
	var uerr *errors.Error
	if stderrors.As(err, &uerr) && uerr.Cause() != nil {
		fmt.Fprintf(os.Stderr, "caused by: %+v\n", uerr.Cause())
	}
}
