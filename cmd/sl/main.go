package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/sl/internal/analysis"
	"github.com/san-kum/sl/internal/config"
	"github.com/san-kum/sl/internal/logging"
	"github.com/san-kum/sl/internal/state"
	"github.com/san-kum/sl/internal/train"
	"github.com/san-kum/sl/internal/viz"
)

var (
	number     string
	flying     bool
	accident   bool
	c51        bool
	logo       bool
	directory  string
	escapable  bool
	frameRate  int
	climbRate  int
	themeName  string
	backend    string
	seed       uint64
	configFile string
	logFile    string
	debug      bool
	// path command
	viewWidth   int
	viewHeight  int
	graphHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sl",
		Short:         "a steam locomotive runs across your terminal",
		Version:       "6.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTrain,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&number, "number", "n", "", "select a specific animation to run")
	flags.BoolVarP(&flying, "flying", "f", false, "the train flies up as well as left")
	flags.BoolVarP(&accident, "accident", "a", false, "an accident happened")
	flags.BoolVarP(&c51, "c51", "c", false, "show the C51 train")
	flags.BoolVarP(&logo, "logo", "l", false, "show the LOGO train")
	flags.StringVarP(&directory, "directory", "d", "", "load a random train from a directory")
	flags.Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.IntVar(&climbRate, "climb-rate", config.DefaultClimbRate, "columns travelled per row climbed when flying")
	rootCmd.MarkFlagsMutuallyExclusive("accident", "c51", "logo", "number", "directory")

	rootCmd.Flags().BoolVarP(&escapable, "escapable", "e", false, "allow ctrl+c, q and esc to stop the train")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "terminal backend (tea, tcell)")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write a debug log to this file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log every viewport change")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list built-in trains",
		Args:  cobra.NoArgs,
		RunE:  listTrains,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				fmt.Println(name)
			}
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "plot the route a train takes without animating it",
		Args:  cobra.NoArgs,
		RunE:  plotPath,
	}
	pathCmd.Flags().IntVar(&viewWidth, "width", 80, "viewport width")
	pathCmd.Flags().IntVar(&viewHeight, "height", 24, "viewport height")
	pathCmd.Flags().IntVar(&graphHeight, "graph-height", 10, "chart height")

	rootCmd.AddCommand(listCmd, themesCmd, pathCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sl: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else if path, perr := config.DefaultPath(); perr == nil {
		cfg, err = config.LoadOptional(path)
	} else {
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("flying") {
		cfg.Flying = flying
	}
	if changed("escapable") {
		cfg.Escapable = escapable
	}
	if changed("fps") {
		cfg.FPS = frameRate
	}
	if changed("climb-rate") {
		cfg.ClimbRate = climbRate
	}
	if changed("theme") {
		cfg.Theme = themeName
	}
	if changed("backend") {
		cfg.Backend = backend
	}
	if changed("directory") {
		cfg.Directory = directory
	}
	if changed("log") {
		cfg.LogFile = logFile
	}
	return cfg, cfg.Validate()
}

// selectTrain picks the definition from the flags. A directory from the
// config file only applies when no train was asked for explicitly.
func selectTrain(cmd *cobra.Command, cfg *config.Config, rng *rand.Rand) (train.Definition, error) {
	switch {
	case accident:
		return train.Accident(), nil
	case c51:
		return train.C51(), nil
	case logo:
		return train.Logo(), nil
	case cmd.Flags().Changed("number"):
		return train.ByIndex(number)
	case cfg.Directory != "":
		return train.LoadRandom(rng, cfg.Directory)
	default:
		return train.Random(rng), nil
	}
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	logger, closeLog, err := logging.New(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	theme, ok := viz.GetTheme(cfg.Theme)
	if !ok {
		return fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}

	rng := rand.New(rand.NewPCG(seed, 0))
	def, err := selectTrain(cmd, cfg, rng)
	if err != nil {
		return err
	}
	st, err := state.New(def, cfg.Flying, state.WithClimbRate(cfg.ClimbRate))
	if err != nil {
		return err
	}
	logger.Info("departure", "train", def.Name, "flying", cfg.Flying, "backend", cfg.Backend, "fps", cfg.FPS)

	return viz.Run(st, viz.Options{
		FPS:       cfg.FPS,
		Theme:     theme,
		Backend:   cfg.Backend,
		Escapable: cfg.Escapable,
		Logger:    logger,
	})
}

func listTrains(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tFRAMES\tSIZE\tSMOKE")
	for i, def := range train.Builtins() {
		st, err := state.New(def, false)
		if err != nil {
			return err
		}
		body := st.Body()
		smoke := "no"
		if st.Smoke() != nil {
			smoke = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%dx%d\t%s\n", i, def.Name, body.Len(), body.Width(), body.Height(), smoke)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.Directory == "" {
		return nil
	}
	paths, err := train.ListFiles(cfg.Directory)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d custom trains in %s\n", len(paths), cfg.Directory)
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func plotPath(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if viewWidth < 1 || viewHeight < 1 {
		return errors.New("viewport must be at least 1x1")
	}

	rng := rand.New(rand.NewPCG(seed, 0))
	def, err := selectTrain(cmd, cfg, rng)
	if err != nil {
		return err
	}
	st, err := state.New(def, cfg.Flying, state.WithClimbRate(cfg.ClimbRate))
	if err != nil {
		return err
	}

	limit := 10 * (viewWidth + st.Body().Width() + 1)
	if sm := st.Smoke(); sm != nil {
		limit += 10 * sm.Animation.Width()
	}
	p, err := analysis.Trace(st, viewWidth, viewHeight, limit)
	if err != nil {
		return err
	}

	fmt.Println(analysis.Plot(p, def.Name, graphHeight))
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("ticks:   %d\n", p.Ticks())
	fmt.Printf("visible: %d\n", p.Visible(st.Body().Width(), st.Body().Height()))
	fmt.Printf("seconds: %.1f at %d fps\n", float64(p.Ticks())/float64(cfg.FPS), cfg.FPS)
	return nil
}
