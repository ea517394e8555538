// Package cmd provides CLI commands for seismo.
//
// shells.go defines the `seismo shells` command group. Output rendering lives
// in shells_render.go.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/seismo/internal/config"
	"github.com/papapumpkin/seismo/internal/shell"
)

var shellsCmd = &cobra.Command{
	Use:   "shells",
	Short: "Inspect the Earth-model shell catalog",
}

var shellsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every shell with its radius and temporary phase codes",
	Long: `Lists the catalog in order. With --radius, only shells whose default radius
equals the given value (km) are shown; several shells share a radius where
boundaries coincide.

Codes shown as "-" are undefined for that shell; "" is a defined empty code.`,
	Args: cobra.NoArgs,
	RunE: runShellsList,
}

var shellsShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a single shell",
	Long: `Shows one shell by name. Names are matched case-insensitively and may use
'-' in place of '_', e.g. "moho-discontinuity".`,
	Args: cobra.ExactArgs(1),
	RunE: runShellsShow,
}

var shellsExportCmd = &cobra.Command{
	Use:   "export PATH",
	Short: "Write the catalog to a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runShellsExport,
}

var shellsVerifyCmd = &cobra.Command{
	Use:   "verify PATH",
	Short: "Check a TOML catalog file against the built-in catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runShellsVerify,
}

func init() {
	shellsListCmd.Flags().Float64("radius", -1, "only list shells at this default radius (km)")

	shellsCmd.AddCommand(shellsListCmd, shellsShowCmd, shellsExportCmd, shellsVerifyCmd)
	rootCmd.AddCommand(shellsCmd)
}

// outputOptions resolves the format and styling for the current command.
func outputOptions(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}
	return cfg, nil
}

func runShellsList(cmd *cobra.Command, _ []string) error {
	cfg, err := outputOptions(cmd)
	if err != nil {
		return err
	}

	shells := shell.All()
	if cmd.Flags().Changed("radius") {
		radius, _ := cmd.Flags().GetFloat64("radius")
		shells = shell.AtRadius(radius)
		logger.Debug("filtered shells by radius", zap.Float64("radius_km", radius), zap.Int("matches", len(shells)))
		if len(shells) == 0 {
			return fmt.Errorf("no shell at radius %g km", radius)
		}
	}

	return render(cmd.OutOrStdout(), cfg, shells)
}

func runShellsShow(cmd *cobra.Command, args []string) error {
	cfg, err := outputOptions(cmd)
	if err != nil {
		return err
	}

	s, err := shell.Parse(args[0])
	if err != nil {
		return err
	}
	logger.Debug("resolved shell", zap.String("input", args[0]), zap.Stringer("shell", s))

	return render(cmd.OutOrStdout(), cfg, []shell.Shell{s})
}

func runShellsExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	doc := shell.Snapshot()
	if err := shell.Save(path, doc); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	logger.Info("exported shell catalog", zap.String("path", path), zap.Int("shells", doc.Catalog.Count))

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runShellsVerify(cmd *cobra.Command, args []string) error {
	path := args[0]
	doc, err := shell.Load(path)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if err := doc.Verify(); err != nil {
		logger.Warn("catalog file does not match", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("verify %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d shells match\n", path, doc.Catalog.Count)
	return nil
}
