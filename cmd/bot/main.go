package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/frostveil/frozenbridges/internal/dice"
	"github.com/frostveil/frozenbridges/internal/game"
	"github.com/frostveil/frozenbridges/internal/handlers/discord"
	"github.com/frostveil/frozenbridges/internal/repositories/settings"
	"github.com/frostveil/frozenbridges/internal/repositories/stats"
	"github.com/frostveil/frozenbridges/internal/timers"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	statsRepo, err := stats.NewRedis(&stats.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create stats repository")
	}

	settingsRepo, err := settings.NewRedis(&settings.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create settings repository")
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal().Msg("DISCORD_TOKEN environment variable is required")
	}

	// The session is created up front so the notifier and the admin
	// checker can share it with the bot
	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}

	notifier, err := discord.NewNotifier(session)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create notifier")
	}

	adminChecker, err := discord.NewAdminChecker(session)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin checker")
	}

	// Initialize dice roller and the phase timer scheduler
	diceRoller := dice.New(&dice.Config{})
	clock := clockwork.NewRealClock()
	scheduler := timers.New(&timers.Config{Clock: clock})

	// Initialize game service
	gameSvc, err := game.New(&game.Config{
		Notifier:     notifier,
		StatsRepo:    statsRepo,
		SettingsRepo: settingsRepo,
		AdminChecker: adminChecker,
		Scheduler:    scheduler,
		Clock:        clock,
		Roller:       diceRoller,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game service")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: applicationID,
		GuildID:       guildID,
		GameService:   gameSvc,
		Roller:        diceRoller,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("error stopping bot")
	}

	log.Info().Msg("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
