package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stylize-engine/backend/internal/app"
	"stylize-engine/backend/internal/discord"
	"stylize-engine/backend/pkg/config"
	"stylize-engine/backend/pkg/logger"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Required intents:
// - IntentsGuilds: Access to guild information
// - IntentsGuildMessages: Read messages in guild channels
// - IntentsDirectMessages: Read DM messages
// - IntentsMessageContent: Read the command text and attachments
const botIntents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting Discord bot...")

	if cfg.DiscordBotToken == "" {
		log.Fatal("DISCORD_BOT_TOKEN is required")
	}

	engine, err := app.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize engine", zap.Error(err))
	}
	if engine.Dispatcher == nil {
		log.Info("Generation backend not configured, replies will show payload previews")
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatal("Failed to create Discord session", zap.Error(err))
	}

	messageHandler := newMessageHandler(engine, log)
	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		messageHandler.HandleMessage(s, m)
	})

	dg.Identify.Intents = botIntents
	log.Info("Discord bot intents configured",
		zap.Bool("guilds", (dg.Identify.Intents&discordgo.IntentsGuilds) != 0),
		zap.Bool("guild_messages", (dg.Identify.Intents&discordgo.IntentsGuildMessages) != 0),
		zap.Bool("direct_messages", (dg.Identify.Intents&discordgo.IntentsDirectMessages) != 0),
		zap.Bool("message_content", (dg.Identify.Intents&discordgo.IntentsMessageContent) != 0),
	)

	// Open connection
	if err := dg.Open(); err != nil {
		log.Fatal("Failed to open Discord connection", zap.Error(err))
	}
	defer dg.Close()

	log.Info("Discord bot is running. Press CTRL-C to exit.")

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-shutdownChan

	log.Info("Shutting down Discord bot...")
}

// newMessageHandler keeps unconfigured collaborators as nil interfaces.
func newMessageHandler(engine *app.Engine, log *zap.Logger) *discord.Handler {
	var dispatcher discord.Dispatcher
	if engine.Dispatcher != nil {
		dispatcher = engine.Dispatcher
	}
	var enhancer discord.PromptEnhancer
	if engine.Enhancer != nil {
		enhancer = engine.Enhancer
	}
	return discord.NewHandler(engine.Builder, engine.Catalog, dispatcher, enhancer, log)
}
