package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hcdiekmann/ZIMP/internal/assets"
	"github.com/hcdiekmann/ZIMP/internal/config"
	"github.com/hcdiekmann/ZIMP/internal/console"
	"github.com/hcdiekmann/ZIMP/internal/game"
	"github.com/hcdiekmann/ZIMP/internal/server"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	seed       = flag.Int64("seed", 0, "shuffle seed, 0 for time-based")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting ZIMP server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		os.Exit(0)
	}()

	shuffleSeed := *seed
	if shuffleSeed == 0 {
		shuffleSeed = time.Now().UnixNano()
	}

	supply, err := assets.Load(assets.DeckConfig{
		IndoorPath:   cfg.Assets.IndoorTiles,
		OutdoorPath:  cfg.Assets.OutdoorTiles,
		DevCardsPath: cfg.Assets.DevCards,
		ClockLabels:  cfg.Game.ClockLabels,
		Seed:         shuffleSeed,
	})
	if err != nil {
		logger.Fatal("failed to load assets", zap.Error(err))
	}
	logger.Info("assets loaded",
		zap.Int("indoor_tiles", supply.IndoorDeck().Count()),
		zap.Int("outdoor_tiles", supply.OutdoorDeck().Count()),
		zap.Int("dev_cards", len(supply.DevCards())),
	)

	hub := server.NewHub(logger)
	go hub.Run(ctx)
	go func() {
		if serveErr := hub.ListenAndServe(cfg.Server.WebSocketAddress); serveErr != nil {
			logger.Error("observer feed error", zap.Error(serveErr))
		}
	}()

	engine := game.NewEngine(rulesFromConfig(cfg.Game), logger)
	stdin := bufio.NewReader(os.Stdin)
	prompter := console.NewPrompter(stdin, os.Stdout)

	id, err := engine.NewGame(supply, prompter, shuffleSeed)
	if err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}
	g, err := engine.Game(id)
	if err != nil {
		logger.Fatal("failed to fetch game", zap.Error(err))
	}

	// Terminal renderer and websocket feed watch the same session.
	g.Attach(console.NewRenderer(os.Stdout))
	g.Attach(hub)

	logger.Info("ZIMP server initialized",
		zap.String("game_id", id),
		zap.String("websocket_address", cfg.Server.WebSocketAddress),
		zap.Int("board_size", cfg.Game.BoardSize),
	)

	for g.Result() == game.ResultNone {
		fmt.Print(">>> ")
		line, readErr := stdin.ReadString('\n')
		if readErr != nil && line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		dispatch(os.Stdout, g, fields)
	}

	logger.Info("session finished", zap.String("result", g.Result().String()))
	engine.Remove(id)
}

func dispatch(out io.Writer, g *game.Game, fields []string) {
	switch strings.ToLower(fields[0]) {
	case "go":
		if d, err := parseDirectionArg(out, fields); err == nil {
			reportErr(out, g.Move(d))
		}
	case "bash":
		if d, err := parseDirectionArg(out, fields); err == nil {
			reportErr(out, g.Bash(d))
		}
	case "cower":
		reportErr(out, g.Cower())
	case "totem":
		reportErr(out, g.FindOrBuryTotem())
	case "quit":
		fmt.Fprintln(out, "Goodbye")
		os.Exit(0)
	default:
		fmt.Fprintf(out, "Unknown command %q. Commands: go, bash, cower, totem, quit.\n", fields[0])
	}
}

// reportErr swallows rule rejections: the game already messaged the player
// through the observer.
func reportErr(out io.Writer, err error) {
	if err != nil && errors.Is(err, game.ErrGameOver) {
		fmt.Fprintln(out, "The game is over.")
	}
}

func parseDirectionArg(out io.Writer, fields []string) (game.Direction, error) {
	if len(fields) < 2 {
		fmt.Fprintln(out, "Give a direction: N, E, S or W.")
		return 0, fmt.Errorf("missing direction")
	}
	d, err := game.ParseDirection(fields[1])
	if err != nil {
		fmt.Fprintln(out, "Invalid direction. Please enter 'N', 'E', 'S', or 'W'.")
		return 0, err
	}
	return d, nil
}

func rulesFromConfig(cfg config.GameConfig) game.Rules {
	return game.Rules{
		StartHealth:     cfg.StartHealth,
		StartAttack:     cfg.StartAttack,
		ItemCapacity:    cfg.ItemCapacity,
		BashZombies:     cfg.BashZombies,
		MaxCombatDamage: cfg.MaxCombatDamage,
		CowerHeal:       cfg.CowerHeal,
		RunHealthCost:   cfg.RunHealthCost,
	}
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
