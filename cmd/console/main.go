package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hcdiekmann/ZIMP/internal/assets"
	"github.com/hcdiekmann/ZIMP/internal/config"
	"github.com/hcdiekmann/ZIMP/internal/console"
	"github.com/hcdiekmann/ZIMP/internal/game"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	seed       = flag.Int64("seed", 0, "shuffle seed, 0 for time-based")
)

const commands = `Commands:
  go <N|E|S|W>    move through an open exit
  bash <N|E|S|W>  bash through a wall (after a completed turn)
  cower           hide and heal (after a completed turn)
  totem           search for or bury the totem
  details         show player details
  quit            leave the game`

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

	engine := game.NewEngine(rulesFromConfig(cfg.Game), logger)
	// One buffered reader over stdin, shared between the command loop and
	// the in-turn prompter.
	stdin := bufio.NewReader(os.Stdin)
	prompter := console.NewPrompter(stdin, os.Stdout)
	renderer := console.NewRenderer(os.Stdout)

	id, err := engine.NewGame(supply, prompter, shuffleSeed)
	if err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}
	g, err := engine.Game(id)
	if err != nil {
		logger.Fatal("failed to fetch game", zap.Error(err))
	}

	fmt.Println(commands)
	g.Attach(renderer)

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

		switch strings.ToLower(fields[0]) {
		case "go":
			runDirectional(g.Move, fields)
		case "bash":
			runDirectional(g.Bash, fields)
		case "cower":
			reportErr(g.Cower())
		case "totem":
			reportErr(g.FindOrBuryTotem())
		case "details":
			printDetails(g.Snapshot())
		case "help":
			fmt.Println(commands)
		case "quit":
			fmt.Println("Goodbye")
			return
		default:
			fmt.Printf("Unknown command %q. Type 'help' for the command list.\n", fields[0])
		}
	}
}

func runDirectional(action func(game.Direction) error, fields []string) {
	if len(fields) < 2 {
		fmt.Println("Give a direction: N, E, S or W.")
		return
	}
	d, err := game.ParseDirection(fields[1])
	if err != nil {
		fmt.Println("Invalid direction. Please enter 'N', 'E', 'S', or 'W'.")
		return
	}
	reportErr(action(d))
}

// reportErr swallows rule rejections: the game already messaged the player
// through the observer.
func reportErr(err error) {
	if err != nil && errors.Is(err, game.ErrGameOver) {
		fmt.Println("The game is over.")
	}
}

func printDetails(s game.Snapshot) {
	fmt.Printf("Location: row %d, col %d (%s)\n", s.Location.Row, s.Location.Col, s.Room.Name)
	fmt.Printf("Health: %d  Attack: %d\n", s.Health, s.Attack)
	fmt.Printf("Items: [%s]  Totem: %v\n", strings.Join(s.Items, ", "), s.HasTotem)
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
	// Keep rule feedback and log lines apart on an interactive terminal.
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
