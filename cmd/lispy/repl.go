// -----------------------------------------------------------------------------
// lispy is licensed under the MIT license. Please see the LICENSE file for
// your rights and obligations under this license.
// -----------------------------------------------------------------------------

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/lispyrun/lispy"
	"github.com/lispyrun/lispy/internal/config"
	"github.com/lispyrun/lispy/lispybuiltins"
	"github.com/lispyrun/lispy/lispyeval"
	"github.com/lispyrun/lispy/lispyreader"
)

// run builds the global environment, loads the prelude and any files named
// on the command line, then either exits (files were given) or starts the
// REPL (none were).
func run(cfg config.Config, logger *logrus.Logger, files []string, noPrelude bool) error {
	env := lispyeval.NewRootEnvironment()
	env.SetTrace(logger)
	lispybuiltins.BindAll(env)

	if !noPrelude {
		if err := lispybuiltins.LoadPrelude(env); err != nil {
			return fmt.Errorf("loading prelude: %w", err)
		}
	}
	for _, p := range cfg.Prelude {
		if err := loadAndReport(env, p); err != nil {
			return err
		}
	}

	if len(files) > 0 {
		for _, f := range files {
			if err := loadAndReport(env, f); err != nil {
				return err
			}
		}
		return nil
	}

	return repl(env, cfg)
}

// loadAndReport invokes the `load` built-in on path, exactly as a CLI
// argument is specified to behave (§6.4): "for each path, invoke the load
// built-in; print any resulting Error". load itself never stops partway
// through a file — it prints each form's Error and keeps going — so the
// only Error loadAndReport can observe here is a parse failure.
func loadAndReport(env *lispyeval.Environment, path string) error {
	call := lispy.NewSExpr(lispy.Symbol("load"), lispy.NewStr(path))
	result := lispyeval.Eval(env, call)
	if lispy.IsError(result) {
		fmt.Fprintln(os.Stderr, result)
	}
	return nil
}

// repl runs the interactive read-eval-print loop (§6.4), backed by
// chzyer/readline for line editing and history.
func repl(env *lispyeval.Environment, cfg config.Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	var pending string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if pending == "" {
				continue
			}
			pending = ""
			rl.SetPrompt(cfg.Prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		source := pending + line
		forms, perr := lispyreader.ReadProgram(source)
		if perr != nil {
			pending = source + "\n"
			rl.SetPrompt(cfg.ContinuationPrompt)
			continue
		}
		pending = ""
		rl.SetPrompt(cfg.Prompt)

		for _, form := range forms {
			result := lispyeval.Eval(env, form)
			fmt.Println(result)
		}
	}
}
