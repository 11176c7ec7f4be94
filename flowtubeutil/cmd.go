/*
Copyright © 2026 the FlowTube authors.
This file is part of FlowTube.

FlowTube is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

FlowTube is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with FlowTube.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package flowtubeutil provides the command-line interface and
// configuration handling for the flowtube command.
package flowtubeutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/atmoskinetics/flowtube"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Cfg = viper.New()

	// Options are the configuration options available to FlowTube.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the location of the TOML file describing
              the reactor geometry and experimental conditions.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "gamma",
			usage: `
              gamma specifies the hypothetical uptake coefficient for
              which the diffusion correction and reactant loss are
              calculated.`,
			shorthand:  "g",
			defaultVal: 0.01,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "data",
			usage: `
              data specifies a CSV file of observed reactant loss with
              two columns: exposure and concentration.`,
			shorthand:  "d",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{gammaCmd.Flags()},
		},
		{
			name: "exposure_units",
			usage: `
              exposure_units specifies the units of the exposure column
              in the data file: seconds ("s") or injector travel
              distance ("cm").`,
			defaultVal: "s",
			flagsets:   []*pflag.FlagSet{gammaCmd.Flags()},
		},
	}

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(gammaCmd)
}

// loadReactor builds an initialized reactor from the configuration
// file named by the config option. It returns the configuration along
// with the reactor so callers can tell whether Initialize has already
// printed a report.
func loadReactor() (Tube, *Config, error) {
	path := Cfg.GetString("config")
	if path == "" {
		return nil, nil, fmt.Errorf("flowtube: no configuration file specified; use the --config flag")
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}
	tube, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	if err := tube.Initialize(cfg.Conditions); err != nil {
		return nil, nil, err
	}
	return tube, cfg, nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "flowtube",
	Short: "Transport and uptake calculations for laminar flow reactors.",
	Long: `FlowTube calculates flow, diffusion, and uptake quantities for
coated-wall and boat flow reactor experiments, applying the method of
Knopf, Poeschl, and Shiraiwa (2015) to correct measured uptake
coefficients for radial diffusion limitations.

Reactor geometry and experimental conditions are read from a TOML
configuration file given with the --config flag. Refer to the
subcommand documentation for the remaining options.`,
	DisableAutoGenTag: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of FlowTube.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("FlowTube v%s\n", flowtube.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd initializes the configured reactor and reports the derived
// quantities and the diffusion-corrected uptake for a hypothetical
// uptake coefficient.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Calculate flow and uptake quantities for a reactor.",
	Long: `run initializes the reactor described in the configuration file,
prints the derived flow and transport quantities, and applies the
radial diffusion correction to the hypothetical uptake coefficient
given with the --gamma flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tube, cfg, err := loadReactor()
		if err != nil {
			return err
		}
		// Initialize already printed the report when display is set.
		if !cfg.Conditions.Display {
			tube.Report(os.Stdout)
		}

		gamma, err := cast.ToFloat64E(Cfg.Get("gamma"))
		if err != nil {
			return fmt.Errorf("flowtube: problem parsing gamma: %v", err)
		}
		correction, loss, err := tube.ReactantUptake(gamma)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "\nCorrection factor for gamma = %g: %.4g\n", gamma, correction)
		fmt.Fprintf(os.Stdout, "Reactant loss over the coated section: %.2f%%\n", loss*100.)
		return nil
	},
	DisableAutoGenTag: true,
}

// gammaCmd extracts an uptake coefficient from observed reactant loss.
var gammaCmd = &cobra.Command{
	Use:   "gamma",
	Short: "Fit an uptake coefficient to observed reactant loss.",
	Long: `gamma fits observed reactant concentrations against exposure to a
first-order kinetic model and converts the fitted loss rate to a
diffusion-corrected uptake coefficient. Observations are read from the
CSV file given with the --data flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tube, _, err := loadReactor()
		if err != nil {
			return err
		}
		// The regime quantities used by CalculateGamma are cached by
		// ReactantUptake; seed it with an uptake coefficient in the
		// middle of the measurable range.
		if _, _, err := tube.ReactantUptake(0.01); err != nil {
			return err
		}

		exposure, concentrations, err := ReadObservations(Cfg.GetString("data"))
		if err != nil {
			return err
		}
		fit, err := tube.CalculateGamma(concentrations, exposure, Cfg.GetString("exposure_units"))
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"slope":     fit.Slope,
			"R2":        fit.R2,
			"p":         fit.PValue,
			"slope_err": fit.SlopeStdErr,
		}).Info("first-order fit")
		fmt.Fprintf(os.Stdout, "Effective uptake coefficient: %.4g\n", fit.GammaEff)
		fmt.Fprintf(os.Stdout, "Diffusion-corrected uptake coefficient: %.4g\n", fit.Gamma)
		return nil
	},
	DisableAutoGenTag: true,
}
