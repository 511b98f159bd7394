package cmd

import (
	"fmt"
	"os"
	"strings"

	"riskcalc/pkg/config"
	"riskcalc/pkg/controlchecks"
	"riskcalc/pkg/formulas"
	"riskcalc/pkg/logger"
	"riskcalc/pkg/refdata"
	"riskcalc/pkg/reports"
	"riskcalc/pkg/riskposture"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	configFile string
	logLevel   string

	cfg    *config.Config
	log    *zap.Logger
	tables *refdata.Tables
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	a.log = logger.NewLogger(level, cmd.ErrOrStderr())
	if cfg.File != "" {
		a.log.Debug("config loaded", zap.String("file", cfg.File))
	}

	a.tables, err = cfg.Tables()
	return err
}

func (a *app) renderer() *reports.PDFRenderer {
	return &reports.PDFRenderer{
		PageSize: a.cfg.Report.PageSize,
		FontDir:  a.cfg.Report.FontDir,
		Compress: a.cfg.Report.Compress,
		Logger:   a.log,
	}
}

type calcOptions struct {
	sector     string
	asset      float64
	ef         float64
	aro        float64
	daily      float64
	coldDays   float64
	hotCost    float64
	hotHours   float64
	strategy   string
	mfa        bool
	phish      bool
	succession bool
	revenue    float64
	pdfPath    string
	htmlPath   string
	notes      string
}

func (o *calcOptions) inputs(cmd *cobra.Command) riskposture.Inputs {
	in := riskposture.Inputs{
		Sector:          o.sector,
		AssetValue:      o.asset,
		ExposurePercent: o.ef,
		Strategy:        o.strategy,
		Controls: controlchecks.Selection{
			MFA:        o.mfa,
			Phishing:   o.phish,
			Succession: o.succession,
		},
	}
	if cmd.Flags().Changed("aro") {
		aro := o.aro
		in.AROOverride = &aro
	}
	if cmd.Flags().Changed("revenue") {
		revenue := o.revenue
		in.Revenue = &revenue
	}
	return in
}

// NewRootCmd builds the riskcalc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	opts := &calcOptions{}

	rootCmd := &cobra.Command{
		Use:   "riskcalc",
		Short: "Cyber-risk ROI and BCDR calculator",
		Long: `Computes single and annualized loss expectancy, expected breach cost,
downtime loss for a disaster recovery strategy and the return on security
investment, then optionally writes a PDF or HTML report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, a, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default riskcalc.yaml in . or $HOME/.config/riskcalc)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	f := rootCmd.Flags()
	builtin := refdata.Default()
	f.StringVar(&opts.sector, "sector", "Retail", "business sector: "+strings.Join(builtin.SectorNames(), ", "))
	f.Float64Var(&opts.asset, "asset", 100000, "asset value")
	f.Float64Var(&opts.ef, "ef", 100, "exposure factor percent, clamped to 0-100")
	f.Float64Var(&opts.aro, "aro", 0, "override the sector annualized rate of occurrence")
	f.Float64Var(&opts.daily, "daily", 100000, "daily revenue for the hot site ROI example")
	f.Float64Var(&opts.coldDays, "cold-days", 14, "cold site recovery days for the hot site ROI example")
	f.Float64Var(&opts.hotCost, "hot-cost", 50000, "hot site fixed cost for the hot site ROI example")
	f.Float64Var(&opts.hotHours, "hot-hours", 4, "hot site recovery hours for the hot site ROI example")
	f.StringVar(&opts.strategy, "dr-strategy", refdata.ColdSite, "disaster recovery strategy: "+strings.Join(builtin.StrategyNames(), ", "))
	f.BoolVar(&opts.mfa, "mfa", false, "enable multi-factor authentication (halves the incident rate)")
	f.BoolVar(&opts.phish, "phish", false, "enable phishing training (incident rate -20%)")
	f.BoolVar(&opts.succession, "succession", false, "enable succession planning (downtime cost -10%)")
	f.Float64Var(&opts.revenue, "revenue", 0, "loss magnitude to use instead of the sector average breach cost")
	f.StringVar(&opts.pdfPath, "pdf", "", "write a PDF report to this path")
	f.StringVar(&opts.htmlPath, "html", "", "write an HTML report to this path")
	f.StringVar(&opts.notes, "notes", "", "free text notes added to the report")

	rootCmd.AddCommand(
		newSectorsCmd(a),
		newSensitivityCmd(a),
		newSampleCmd(a),
		newVerifyCmd(a),
	)
	return rootCmd
}

func runCalc(cmd *cobra.Command, a *app, opts *calcOptions) error {
	if _, ok := a.tables.LookupStrategy(opts.strategy); !ok {
		a.log.Warn("unknown DR strategy, using Cold Site", zap.String("strategy", opts.strategy))
	}

	assessment, err := riskposture.Assess(a.tables, opts.inputs(cmd))
	if err != nil {
		return err
	}
	a.log.Debug("assessment complete",
		zap.String("sector", assessment.Sector),
		zap.Float64("rosi", assessment.ROSI),
		zap.String("posture", string(assessment.Posture)),
	)

	printer := reports.NewConsolePrinter(cmd.OutOrStdout())
	printer.PrintAssessment(assessment)
	printer.PrintHotSite(formulas.HotSiteROI(opts.daily, opts.coldDays, opts.hotCost, opts.hotHours))

	if opts.pdfPath == "" && opts.htmlPath == "" {
		return nil
	}

	rec := reports.NewReportRecord(a.cfg.Report.Title, opts.notes, assessment)
	out := cmd.OutOrStdout()

	if opts.pdfPath != "" {
		if err := a.renderer().RenderFile(rec, opts.pdfPath); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Fprintf(out, "Wrote PDF report to: %s\n", opts.pdfPath)
	}
	if opts.htmlPath != "" {
		if err := reports.GenerateHTMLReport(rec, opts.htmlPath); err != nil {
			return fmt.Errorf("failed to write HTML: %w", err)
		}
		fmt.Fprintf(out, "Wrote HTML report to: %s\n", opts.htmlPath)
	}
	return nil
}

// execute runs root and prints a returned error once to its error stream.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

// Execute runs the root command.
func Execute() {
	if err := execute(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
