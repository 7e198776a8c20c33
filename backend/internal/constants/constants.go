package constants

import "time"

// Discord constants
const (
	// DiscordMaxMessageLength is the maximum character limit for Discord messages
	DiscordMaxMessageLength = 2000

	// CommandPrefix starts a stylize request in Discord messages
	CommandPrefix = "stylize"
)

// Generation request constants
const (
	// DefaultNumVariations is used when a request does not ask for more
	DefaultNumVariations = 1

	// MaxBatchItems caps how many payloads one batch request may build
	MaxBatchItems = 16

	// BatchConcurrency bounds concurrent builds inside a batch request
	BatchConcurrency = 4

	// MaxPromptLength caps free-text prompts before enhancement
	MaxPromptLength = 1000
)

// Job polling constants
const (
	// JobMaxPolls bounds how long the bot waits for a generation
	JobMaxPolls = 60

	// JobPollInterval is the delay between status checks
	JobPollInterval = 2 * time.Second
)
