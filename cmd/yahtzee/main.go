// Package main provides a CLI that scores one dice hand against the rule
// catalog, either for a single rule or as a full scorecard.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/yahtzee/internal/config"
	"github.com/cory-johannsen/yahtzee/internal/game/dice"
	"github.com/cory-johannsen/yahtzee/internal/game/ruleset"
	"github.com/cory-johannsen/yahtzee/internal/observability"
	"github.com/cory-johannsen/yahtzee/internal/scripting"
)

// options are the parsed command-line flags.
type options struct {
	configPath string
	hand       string
	rule       string
	rulesPath  string
	scriptPath string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to configuration file (optional)")
	flag.StringVar(&opts.hand, "hand", "", `dice to score, e.g. "2,2,3,3,3"; empty rolls a new hand`)
	flag.StringVar(&opts.rule, "rule", "", "score a single rule by name; empty prints the whole card")
	flag.StringVar(&opts.rulesPath, "rules", "", "YAML rule table file or directory; overrides scoring.rules_path")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua script defining aggregate(hand)")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), logger)
	if err := run(opts, cfg, roller, logger, os.Stdout); err != nil {
		logger.Error("scoring failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run resolves the hand and rule catalog, then writes the requested scores to out.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: Returns nil after writing output, or the first error met.
func run(opts options, cfg config.Config, roller *dice.Roller, logger *zap.Logger, out io.Writer) error {
	rulesPath := cfg.Scoring.RulesPath
	if opts.rulesPath != "" {
		rulesPath = opts.rulesPath
	}
	rules, err := ruleset.Load(rulesPath)
	if err != nil {
		return err
	}
	logger.Info("rule catalog loaded",
		zap.String("path", rulesPath),
		zap.Int("rules", rules.Len()),
	)

	h, err := resolveHand(opts.hand, roller)
	if err != nil {
		return err
	}

	switch {
	case opts.scriptPath != "":
		engine := scripting.NewEngine(rules, cfg.Scripting.InstructionLimit, logger)
		defer engine.Close()
		if err := engine.LoadFile(opts.scriptPath); err != nil {
			return err
		}
		total, err := engine.Aggregate(h)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "hand %s\n  %s %d\n", h, scripting.AggregateHook, total)
	case opts.rule != "":
		score, err := rules.Evaluate(opts.rule, h)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "hand %s\n  %s %d\n", h, opts.rule, score)
	default:
		card, err := rules.Score(h)
		if err != nil {
			return err
		}
		fmt.Fprint(out, card)
	}
	return nil
}

func resolveHand(s string, roller *dice.Roller) (dice.Hand, error) {
	if s == "" {
		h, _ := roller.Roll()
		return h, nil
	}
	h, err := dice.ParseHand(s)
	if err != nil {
		return dice.Hand{}, fmt.Errorf("invalid -hand: %w", err)
	}
	return h, nil
}
