package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"github.com/smasonuk/xform3d/internal/config"
	"github.com/smasonuk/xform3d/internal/render"
	"github.com/smasonuk/xform3d/internal/scene"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orrery",
		Short: "Wireframe orrery built on xform3d matrix stacks",
		Long: `Renders a small sun, earth, moon and mars system. Every body is
placed by composing rotate, translate and scale transforms while walking
the scene hierarchy with a matrix stack.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./xform3d.yaml or $HOME/.xform3d/xform3d.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		runCmd(),
		initCmd(),
		dumpCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the configuration and installs the logger it asks for.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := setupLogging(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setupLogging(cfg *config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func runCmd() *cobra.Command {
	var profileMode string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the orrery window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			switch profileMode {
			case "":
			case "cpu":
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
			case "mem":
				defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
			default:
				return fmt.Errorf("unknown profile mode %q, use cpu or mem", profileMode)
			}

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowTitle(cfg.Window.Title)

			slog.Info("Starting orrery",
				slog.Int("width", cfg.Window.Width),
				slog.Int("height", cfg.Window.Height),
				slog.Float64("daysPerSecond", cfg.Animation.DaysPerSecond))

			return ebiten.RunGame(NewGame(cfg))
		},
	}

	cmd.Flags().StringVar(&profileMode, "profile", "", "write a cpu or mem profile to the working directory")

	return cmd
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				path = filepath.Join(home, ".xform3d", config.FileName+".yaml")
			}

			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists, use --force to overwrite", path)
			}

			if err := config.Save(config.Default(), path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "overwrite an existing file")

	return cmd
}

func dumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the camera and world matrices without opening a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			days, _ := cmd.Flags().GetFloat64("days")
			yaw, _ := cmd.Flags().GetFloat64("yaw")

			return render.Dump(cmd.OutOrStdout(), cfg, scene.Orrery(scene.SolarSystem(), days), yaw)
		},
	}

	cmd.Flags().Float64("days", 0, "animation time in days")
	cmd.Flags().Float64("yaw", 0, "camera orbit angle in degrees")

	return cmd
}
