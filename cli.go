package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

const appName = "widgetkit"

// app carries what every command needs once flags and config are resolved.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	noColor bool

	cfg      Config
	logger   *log.Logger
	registry *Registry
}

// run executes the command line and returns the first error.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   appName,
		Short: "A kit of small text, number, date, encoding and image tools",
		Long: `widgetkit is a collection of small utility tools: case conversion,
regex testing, base conversion, hashing, date math, JSON/YAML/CSV conversion,
unit conversion, image conversion and more.

Tools can be run once from the command line, chained in a pipe, fed line by
line, kept open as widgets in a workspace shared over a unix socket, or served
over HTTP with live websocket updates.

Quick Start:
  widgetkit list                         List all tools
  widgetkit find roman                   Fuzzy search tools
  widgetkit run roman-numeral 1994       Run a tool once
  echo Hello | widgetkit run case-converter -o mode=snake
  widgetkit repl --local                 Interactive workspace`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/widgetkit/config.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.StringP("format", "f", FormatText, "output format (text, table, json)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("socket", "", "unix socket path (default from config socket_path)")
	a.v.BindPFlag("format", pf.Lookup("format"))
	a.v.BindPFlag("log_level", pf.Lookup("log-level"))
	a.v.BindPFlag("socket_path", pf.Lookup("socket"))

	root.AddCommand(
		a.listCmd(),
		a.findCmd(),
		a.describeCmd(),
		a.runCmd(),
		a.pipeCmd(),
		a.batchCmd(),
		a.watchCmd(),
		a.serveCmd(),
		a.socketCmd(),
		a.sendCmd(),
		a.replCmd(),
		a.timerCmd(),
		a.clockCmd(),
		a.prefsCmd(),
	)
	return root
}

// init resolves configuration and builds the shared services.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if a.noColor || color.NoColor {
		cfg.Color = false
	}
	a.cfg = cfg

	a.logger = newLogger(cmd.ErrOrStderr(), parseLevel(cfg.LogLevel))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	cmd.SetContext(withLogger(cmd.Context(), a.logger))

	a.registry = NewRegistry(NewServices(cfg.preferences()))
	return nil
}

func (a *app) presenter(cmd *cobra.Command) *Presenter {
	return NewPresenter(cmd.OutOrStdout(), a.cfg.Color)
}

// ============================================================================
// Catalog
// ============================================================================

func (a *app) listCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tools",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools := a.registry.List()
			if category != "" {
				tools = a.registry.ByCategory(Category(category))
			}
			return a.presentTools(cmd, toolInfos(tools))
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list one category")
	return cmd
}

func (a *app) findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy search tool names and summaries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.presentTools(cmd, toolInfos(a.registry.Find(strings.Join(args, " "))))
		},
	}
}

func (a *app) presentTools(cmd *cobra.Command, tools []ToolInfo) error {
	p := a.presenter(cmd)
	if a.cfg.Format == FormatJSON {
		return p.JSON(tools)
	}
	return p.Tools(tools)
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <tool>",
		Short: "Show a tool and its options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			if a.cfg.Format == FormatJSON {
				return a.presenter(cmd).JSON(describe(t))
			}
			return a.presenter(cmd).Tool(describe(t))
		},
	}
}

// ============================================================================
// Running tools
// ============================================================================

// parseOptionFlags turns repeated name=value flags into a map.
func parseOptionFlags(pairs []string) (map[string]string, error) {
	options := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, newError(ErrCodeInvalidInput, "option %q is not name=value", pair)
		}
		options[name] = value
	}
	return options, nil
}

// readInput reads all of r, dropping one trailing newline.
func readInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func (a *app) runCmd() *cobra.Command {
	var (
		opts    []string
		file    string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "run <tool> [input...]",
		Short: "Run a tool once",
		Long: `Run a tool once. Input comes from the arguments, from --file, or from
stdin. Binary results (images) are written to --out.

Examples:
  widgetkit run base64 hello
  widgetkit run hash-generator -o algorithm=sha256 < notes.txt
  widgetkit run image-converter --file photo.png -o format=jpeg --out photo.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			options, err := parseOptionFlags(opts)
			if err != nil {
				return err
			}

			var raw RawInput
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				raw.FileName, raw.File = filepath.Base(file), data
			case len(args) > 1:
				raw.Text = strings.Join(args[1:], " ")
			case t.Input != InputNone:
				if raw.Text, err = readInput(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			loggerFromContext(cmd.Context()).Debug("running tool", "tool", t.Name, "options", options)
			res, err := a.registry.Run(t.Name, raw, options)
			if err != nil {
				return err
			}
			return a.emit(cmd, res, outPath)
		},
	}
	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "tool option as name=value (repeatable)")
	cmd.Flags().StringVar(&file, "file", "", "read file input from path")
	cmd.Flags().StringVar(&outPath, "out", "", "write the result to path")
	return cmd
}

// emit writes a result to outPath, or presents it.
func (a *app) emit(cmd *cobra.Command, res Result, outPath string) error {
	if outPath != "" {
		data := []byte(res.Text)
		if res.IsBinary() {
			data = res.Data
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return err
		}
		a.logger.Info("wrote result", "path", outPath, "bytes", len(data))
		return nil
	}
	if err := a.presenter(cmd).Render(res, a.cfg.Format); err != nil {
		return err
	}
	if res.IsBinary() && a.cfg.Format != FormatJSON {
		a.logger.Warn("binary result not written, use --out")
	}
	return nil
}

// pipeStep is one tool in a pipe with its options.
type pipeStep struct {
	tool    string
	options map[string]string
}

// parsePipeStep parses "tool" or "tool:name=value,name=value".
func parsePipeStep(s string) (pipeStep, error) {
	name, rest, _ := strings.Cut(s, ":")
	step := pipeStep{tool: name}
	if rest == "" {
		return step, nil
	}
	options, err := parseOptionFlags(strings.Split(rest, ","))
	if err != nil {
		return pipeStep{}, err
	}
	step.options = options
	return step, nil
}

func (a *app) pipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pipe <tool[:name=value,...]>...",
		Short: "Chain tools, feeding each one's text result to the next",
		Long: `Chain tools over stdin. Each tool's text result is the next tool's input.

Example:
  echo "Hello World" | widgetkit pipe case-converter:mode=lower slugify`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := make([]pipeStep, 0, len(args))
			for _, arg := range args {
				step, err := parsePipeStep(arg)
				if err != nil {
					return err
				}
				if _, err := a.registry.Lookup(step.tool); err != nil {
					return err
				}
				steps = append(steps, step)
			}

			text, err := readInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			res, err := runPipe(a.registry, steps, text)
			if err != nil {
				return err
			}
			return a.emit(cmd, res, "")
		},
	}
}

// runPipe runs steps in order. A failing step stops the pipe.
func runPipe(r *Registry, steps []pipeStep, text string) (Result, error) {
	var res Result
	for i, step := range steps {
		var err error
		res, err = r.Run(step.tool, RawInput{Text: text}, step.options)
		if err != nil {
			return Result{}, fmt.Errorf("step %d (%s): %w", i+1, step.tool, err)
		}
		text = res.Text
	}
	return res, nil
}

// batchLine is the outcome for one input line.
type batchLine struct {
	res Result
	err error
}

// runBatch runs a tool on every line with at most workers in flight. The
// outcomes keep input order.
func runBatch(ctx context.Context, r *Registry, tool string, options map[string]string, lines []string, workers int) ([]batchLine, error) {
	out := make([]batchLine, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Run(tool, RawInput{Text: line}, options)
			out[i] = batchLine{res: res, err: err}
			return nil
		})
	}
	return out, g.Wait()
}

func (a *app) batchCmd() *cobra.Command {
	var opts []string
	cmd := &cobra.Command{
		Use:   "batch <tool>",
		Short: "Run a tool on every line of stdin",
		Long: `Run a tool on every line of stdin concurrently. Results are printed in
input order; failing lines are reported on stderr.

Example:
  seq 1 20 | widgetkit batch roman-numeral`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.registry.Lookup(args[0]); err != nil {
				return err
			}
			options, err := parseOptionFlags(opts)
			if err != nil {
				return err
			}

			var lines []string
			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 64*1024), maxMessageSize)
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			results, err := runBatch(cmd.Context(), a.registry, args[0], options, lines, a.cfg.BatchWorkers)
			if err != nil {
				return err
			}

			p, failed := a.presenter(cmd), 0
			for i, line := range results {
				if line.err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %s: %s\n", i+1, errorCode(line.err), line.err.Error())
					continue
				}
				if err := p.Render(line.res, a.cfg.Format); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d lines failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "tool option as name=value (repeatable)")
	return cmd
}

func (a *app) watchCmd() *cobra.Command {
	var (
		opts    []string
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "watch <tool> <file>",
		Short: "Re-run a tool whenever a file changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}
			options, err := parseOptionFlags(opts)
			if err != nil {
				return err
			}
			fw, err := NewFileWatcher(args[1], a.cfg.Debounce, a.logger)
			if err != nil {
				return err
			}

			a.logger.Info("watching", "file", args[1], "tool", t.Name)
			return fw.Run(cmd.Context(), func(data []byte) {
				raw := RawInput{Text: string(data)}
				if t.Input == InputFile {
					raw = RawInput{FileName: filepath.Base(args[1]), File: data}
				}
				res, err := a.registry.Run(t.Name, raw, options)
				if err != nil {
					a.presenter(cmd).Error(err)
					return
				}
				if err := a.emit(cmd, res, outPath); err != nil {
					a.logger.Error("write result", "err", err)
				}
			})
		},
	}
	cmd.Flags().StringArrayVarP(&opts, "opt", "o", nil, "tool option as name=value (repeatable)")
	cmd.Flags().StringVar(&outPath, "out", "", "write each result to path")
	return cmd
}

// ============================================================================
// Servers and clients
// ============================================================================

func (a *app) serveCmd() *cobra.Command {
	var withSocket bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tools and a workspace over HTTP",
		Long: `Serve the tool catalog and a shared workspace over HTTP.

Endpoints:
  GET  /api/tools                    list (?q= fuzzy search, ?category=)
  GET  /api/tools/{name}             describe
  POST /api/tools/{name}/run         run once
  POST /api/tools/{name}/download    run once, answer with the raw result
  GET  /api/tools/{name}/live        websocket, recompute on every message
  /api/widgets...                    widget workspace
  POST /api/command                  socket protocol commands`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := NewWorkspace(a.registry)
			g, ctx := errgroup.WithContext(cmd.Context())

			if withSocket {
				ss := NewSocketServer(a.cfg.SocketPath, ws, a.logger)
				if err := ss.Start(ctx); err != nil {
					return err
				}
				g.Go(func() error {
					ss.Wait()
					return nil
				})
			}

			g.Go(func() error {
				return NewHTTPServer(ws, a.logger).ListenAndServe(ctx, a.cfg.HTTPAddr)
			})
			return g.Wait()
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from config http_addr)")
	a.v.BindPFlag("http_addr", cmd.Flags().Lookup("addr"))
	cmd.Flags().BoolVar(&withSocket, "with-socket", false, "also serve the workspace on the unix socket")
	return cmd
}

func (a *app) socketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "socket",
		Short: "Serve a workspace on a unix socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss := NewSocketServer(a.cfg.SocketPath, NewWorkspace(a.registry), a.logger)
			ss.SetUpdateCallback(func() { a.logger.Debug("workspace updated") })
			if err := ss.Start(cmd.Context()); err != nil {
				return err
			}
			ss.Wait()
			return nil
		},
	}
	return cmd
}

func (a *app) sendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [json...]",
		Short: "Send raw protocol commands to a running socket server",
		Long: `Send raw JSON commands to a running socket server and print the responses.
Commands come from the arguments, or one per line from stdin.

Example:
  widgetkit send '{"action":"create_widget","params":{"tool":"base64"}}'
  widgetkit send '{"action":"set_input","params":{"widget_id":"widget_0","text":"hi"}}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := NewSocketClient(a.cfg.SocketPath)
			if err != nil {
				return err
			}
			defer client.Close()

			p := a.presenter(cmd)
			send := func(line string) error {
				resp, err := client.Execute(line)
				if err != nil {
					return err
				}
				return p.JSON(resp)
			}

			if len(args) > 0 {
				for _, arg := range args {
					if err := send(arg); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Buffer(make([]byte, 64*1024), maxMessageSize)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := send(line); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
	return cmd
}

func (a *app) replCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive workspace",
		Long: `Interactive workspace. By default the REPL connects to a running socket
server ("widgetkit socket") so several front ends share widgets. With --local
it keeps its own in-process workspace.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return NewLocalREPLSession(NewWorkspace(a.registry), a.cfg.Color).Run()
			}
			session, err := NewREPLSession(a.cfg.SocketPath, a.cfg.Color)
			if err != nil {
				return fmt.Errorf("%w (start one with '%s socket' or use --local)", err, appName)
			}
			return session.Run()
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "use an in-process workspace")
	return cmd
}

// ============================================================================
// Timers and clock
// ============================================================================

func (a *app) timerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Stopwatch, countdown and pomodoro timers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stopwatch",
		Short: "Count up until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sw := NewStopwatch(time.Now)
			sw.Start()

			display := NewInterval(a.cfg.TickInterval)
			if err := display.Start(cmd.Context(), func(time.Time) {
				fmt.Fprintf(out, "\r%s", formatClock(sw.Elapsed()))
			}); err != nil {
				return err
			}
			<-cmd.Context().Done()
			display.Stop()
			sw.Stop()
			fmt.Fprintf(out, "\r%s\n", formatClock(sw.Elapsed()))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "countdown <duration>",
		Short: "Count down from a duration such as 90s or 5m",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := time.ParseDuration(args[0])
			if err != nil || total <= 0 {
				return newError(ErrCodeInvalidInput, "invalid duration %q", args[0])
			}
			return runCountdown(cmd.Context(), cmd.OutOrStdout(), total, a.cfg.TickInterval)
		},
	})

	pomodoro := DefaultPomodoroConfig
	pomodoroCmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Alternate work and break phases until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPomodoro(cmd.Context(), cmd.OutOrStdout(), pomodoro, a.cfg.TickInterval)
		},
	}
	pomodoroCmd.Flags().DurationVar(&pomodoro.Work, "work", pomodoro.Work, "work phase length")
	pomodoroCmd.Flags().DurationVar(&pomodoro.ShortBreak, "short", pomodoro.ShortBreak, "short break length")
	pomodoroCmd.Flags().DurationVar(&pomodoro.LongBreak, "long", pomodoro.LongBreak, "long break length")
	pomodoroCmd.Flags().IntVar(&pomodoro.RoundsBeforeLong, "rounds", pomodoro.RoundsBeforeLong, "work phases before a long break")
	cmd.AddCommand(pomodoroCmd)

	return cmd
}

// runCountdown shows the remaining time until the countdown ends or ctx is
// cancelled.
func runCountdown(ctx context.Context, out io.Writer, total, tick time.Duration) error {
	done := make(chan struct{})
	cd := NewCountdown(total, tick, time.Now, func() { close(done) })

	display := NewInterval(tick)
	if err := display.Start(ctx, func(time.Time) {
		fmt.Fprintf(out, "\r%s", formatClock(cd.Remaining()))
	}); err != nil {
		return err
	}
	defer display.Stop()

	if err := cd.Start(ctx); err != nil {
		return err
	}
	defer cd.Stop()

	select {
	case <-done:
	case <-ctx.Done():
	}
	display.Stop()
	if cd.Finished() {
		fmt.Fprintf(out, "\r%s  time's up\n", formatClock(0))
	} else {
		fmt.Fprintf(out, "\r%s  stopped\n", formatClock(cd.Remaining()))
	}
	return nil
}

// runPomodoro shows the current phase until ctx is cancelled.
func runPomodoro(ctx context.Context, out io.Writer, cfg PomodoroConfig, tick time.Duration) error {
	p := NewPomodoro(cfg, time.Now)
	last := PomodoroPhase("")

	display := NewInterval(tick)
	if err := display.Start(ctx, func(time.Time) {
		phase, left := p.Tick()
		if phase != last {
			if last != "" {
				fmt.Fprintln(out)
			}
			last = phase
		}
		fmt.Fprintf(out, "\r%-11s %s  (%d done)", phase, formatClock(left), p.Completed())
	}); err != nil {
		return err
	}
	<-ctx.Done()
	display.Stop()
	fmt.Fprintln(out)
	return nil
}

func (a *app) clockCmd() *cobra.Command {
	var (
		zones []string
		once  bool
	)
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "World clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(zones) == 0 {
				zones = a.cfg.WorldClockZones
			}
			options := map[string]string{"zones": strings.Join(zones, ",")}
			show := func() error {
				res, err := a.registry.Run("world-clock", RawInput{}, options)
				if err != nil {
					return err
				}
				return a.presenter(cmd).Render(res, a.cfg.Format)
			}

			if err := show(); err != nil || once {
				return err
			}

			var errOnce sync.Once
			var showErr error
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			iv := NewInterval(time.Second)
			if err := iv.Start(ctx, func(time.Time) {
				fmt.Fprintln(cmd.OutOrStdout())
				if err := show(); err != nil {
					errOnce.Do(func() { showErr = err; cancel() })
				}
			}); err != nil {
				return err
			}
			<-ctx.Done()
			iv.Stop()
			return showErr
		},
	}
	cmd.Flags().StringSliceVarP(&zones, "zones", "z", nil, "IANA zones (default from config world_clock_zones)")
	cmd.Flags().BoolVar(&once, "once", false, "print once and exit")
	return cmd
}

// ============================================================================
// Preferences
// ============================================================================

func (a *app) prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read and write remembered preferences",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the preferences file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.cfg.preferences().Path())
				return err
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print a preference",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, ok := a.cfg.preferences().Get(args[0])
				if !ok {
					return newError(ErrCodeInvalidInput, "preference %q is not set", args[0])
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), value)
				return err
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Store a preference",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cfg.preferences().Set(args[0], args[1])
			},
		},
	)
	return cmd
}
