package main

import (
	"fmt"
	"os"

	"github.com/filetug/fileexp/pkg/catalog"
	"github.com/filetug/fileexp/pkg/fileexp"
	"github.com/filetug/fileexp/pkg/files"
	"github.com/filetug/fileexp/pkg/files/osfile"
	"github.com/filetug/fileexp/pkg/fspath"
	"github.com/filetug/fileexp/pkg/ftlog"
	"github.com/filetug/fileexp/pkg/ftsettings"
	"github.com/filetug/fileexp/pkg/navigator"
	"github.com/filetug/fileexp/pkg/profiling"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var osExit = os.Exit

var runExplorer = fileexp.Main

type flags struct {
	showHidden bool
	maxColumns int
	cpuProfile string
	memProfile string
	logFile    string
	verbose    bool
	sniffMIME  bool
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

func execute(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	var f flags
	rootCmd := &cobra.Command{
		Use:   "fileexp",
		Short: "Terminal file explorer",
		Long:  `fileexp browses directories in the terminal and shows what each file is.`,
		// Unknown arguments are ignored.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}
	addFlags(rootCmd.Flags(), &f)
	return rootCmd
}

func addFlags(fs *pflag.FlagSet, f *flags) {
	fs.BoolVar(&f.showHidden, "show_hidden", false, "show hidden files")
	fs.IntVar(&f.maxColumns, "max_columns", 0, "maximum number of listing columns (0 = fit to width)")
	fs.StringVar(&f.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&f.memProfile, "memprofile", "", "write memory profile to `file`")
	fs.StringVar(&f.logFile, "log-file", "", "write logs to `file`")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug messages")
	fs.BoolVar(&f.sniffMIME, "mime", true, "detect MIME types of regular files")
}

func run(cmd *cobra.Command, f flags) error {
	userDir, userDirErr := ftsettings.GetUserDir()
	settings, settingsErr := ftsettings.Load(userDir)

	changed := cmd.Flags().Changed
	if changed("show_hidden") {
		settings.ShowHidden = f.showHidden
	}
	if changed("max_columns") {
		settings.MaxColumns = f.maxColumns
	}
	if changed("log-file") {
		settings.LogFile = f.logFile
	}

	closeLog, err := ftlog.Setup(ftlog.Options{
		File:    settings.LogFile,
		Level:   settings.LogLevel,
		Verbose: f.verbose,
	})
	defer closeLog()
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "logging: %v\n", err)
	}
	if userDirErr != nil {
		log.Warnf("failed to get user dir: %v", userDirErr)
	}
	if settingsErr != nil {
		log.Warnf("using default settings: %v", settingsErr)
	}

	if f.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(f.cpuProfile)
		defer stopCPUProfiling()
	}
	if f.memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(f.memProfile)
		defer writeMemProfile()
	}

	cat := catalog.Reconcile(settings.DefaultCatalog, ftsettings.UserCatalogPath(userDir))
	log.WithField("types", cat.Len()).Debug("type catalog loaded")

	var store files.Store = osfile.NewStore()
	return runExplorer(fspath.OSEnv{}, store, cat,
		fileexp.WithMaxColumns(settings.MaxColumns),
		fileexp.WithNavigatorOptions(
			navigator.WithShowHidden(settings.ShowHidden),
			navigator.WithMIMESniffing(f.sniffMIME),
		),
	)
}
