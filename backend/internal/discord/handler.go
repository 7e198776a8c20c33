package discord

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"stylize-engine/backend/internal/catalog"
	"stylize-engine/backend/internal/constants"
	"stylize-engine/backend/internal/dispatch"
	"stylize-engine/backend/internal/router"
	apperrors "stylize-engine/backend/pkg/errors"
)

// PayloadBuilder is satisfied by *router.Builder.
type PayloadBuilder interface {
	Build(presetID, imageURL string, opts router.Options) (router.Payload, error)
	BuildFreeText(prompt, imageURL string, opts router.Options) (router.Payload, error)
}

// PresetLister is satisfied by *catalog.Catalog.
type PresetLister interface {
	Entries(f catalog.Family) []catalog.Entry
}

// Dispatcher is satisfied by *dispatch.Client.
type Dispatcher interface {
	Submit(ctx context.Context, payload router.Payload) (*dispatch.Job, error)
	Wait(ctx context.Context, jobID string, maxPolls int, pollInterval time.Duration) (*dispatch.Job, error)
}

// PromptEnhancer is satisfied by *enhance.Enhancer.
type PromptEnhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
}

// Sender posts replies. *discordgo.Session satisfies it.
type Sender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

const helpText = "**Stylize a photo**\n" +
	"Attach an image and send:\n" +
	"• `stylize <preset_id>` to apply a preset (add `x2` for two variations)\n" +
	"• `stylize \"your own prompt\"` for a free-text edit\n" +
	"• `stylize list [family]` to see presets (families: region, mood, reaction, glitch, pro)"

// Handler handles stylize commands from Discord messages
type Handler struct {
	builder    PayloadBuilder
	presets    PresetLister
	dispatcher Dispatcher
	enhancer   PromptEnhancer
	logger     *zap.Logger

	maxPolls     int
	pollInterval time.Duration
}

// NewHandler creates a new Discord message handler. dispatcher and enhancer may be nil.
func NewHandler(builder PayloadBuilder, presets PresetLister, dispatcher Dispatcher, enhancer PromptEnhancer, logger *zap.Logger) *Handler {
	return &Handler{
		builder:      builder,
		presets:      presets,
		dispatcher:   dispatcher,
		enhancer:     enhancer,
		logger:       logger,
		maxPolls:     constants.JobMaxPolls,
		pollInterval: constants.JobPollInterval,
	}
}

// HandleMessage processes a Discord message
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	content, ok := addressedContent(s.State.User.ID, m)
	if !ok {
		return
	}
	h.process(context.Background(), s, m.Message, content)
}

// addressedContent returns the message text with any leading bot mention removed, and
// whether the bot should look at the message at all (DMs and mentions only).
func addressedContent(botID string, m *discordgo.MessageCreate) (string, bool) {
	// Ignore messages from the bot itself
	if m.Author == nil || m.Author.ID == botID {
		return "", false
	}

	isDM := m.GuildID == ""
	isMentioned := false
	for _, mention := range m.Mentions {
		if mention.ID == botID {
			isMentioned = true
			break
		}
	}

	content := strings.TrimSpace(m.Content)
	for _, tag := range []string{"<@" + botID + ">", "<@!" + botID + ">"} {
		if strings.HasPrefix(content, tag) {
			isMentioned = true
			content = strings.TrimSpace(strings.TrimPrefix(content, tag))
		}
	}

	if !isDM && !isMentioned {
		return "", false
	}
	return content, content != ""
}

// process runs one command and replies on the message's channel.
func (h *Handler) process(ctx context.Context, s Sender, m *discordgo.Message, content string) {
	cmd, ok, err := parseCommand(content)
	if !ok {
		return
	}
	if err != nil {
		h.send(s, m.ChannelID, fmt.Sprintf("❌ %s\n\n%s", err.Error(), helpText))
		return
	}

	switch cmd.kind {
	case cmdHelp:
		h.send(s, m.ChannelID, helpText)
	case cmdList:
		h.send(s, m.ChannelID, h.listPresets(cmd.family))
	case cmdStylize:
		h.stylize(ctx, s, m, cmd)
	}
}

func (h *Handler) listPresets(rawFamily string) string {
	families := catalog.Families()
	if rawFamily != "" {
		f, err := catalog.ParseFamily(rawFamily)
		if err != nil {
			return "❌ Unknown family. Try one of: region, mood, reaction, glitch, pro."
		}
		families = []catalog.Family{f}
	}

	var b strings.Builder
	for _, f := range families {
		entries := h.presets.Entries(f)
		if len(entries) == 0 {
			continue
		}
		ids := make([]string, len(entries))
		for i, e := range entries {
			ids[i] = "`" + e.ID + "`"
		}
		fmt.Fprintf(&b, "**%s**: %s\n", displayFamily(f), strings.Join(ids, ", "))
	}
	return truncate(strings.TrimSpace(b.String()), constants.DiscordMaxMessageLength)
}

func (h *Handler) stylize(ctx context.Context, s Sender, m *discordgo.Message, cmd command) {
	requestID := uuid.New().String()
	log := h.logger.With(
		zap.String("request_id", requestID),
		zap.String("user_id", authorID(m)),
		zap.String("channel_id", m.ChannelID),
	)

	imageURL, ok := firstImageURL(m.Attachments)
	if !ok {
		h.send(s, m.ChannelID, "📎 Attach an image to stylize.")
		return
	}

	opts := router.Options{NumVariations: cmd.variations}
	var (
		payload router.Payload
		err     error
	)
	if cmd.presetID != "" {
		payload, err = h.builder.Build(cmd.presetID, imageURL, opts)
	} else {
		prompt := cmd.prompt
		if h.enhancer != nil {
			if prompt, err = h.enhancer.Enhance(ctx, prompt); err != nil {
				prompt = cmd.prompt
			}
		}
		payload, err = h.builder.BuildFreeText(prompt, imageURL, opts)
	}
	if err != nil {
		if apperrors.IsUnknownPreset(err) {
			log.Warn("Unknown preset requested", zap.String("preset_id", cmd.presetID))
		} else {
			log.Error("Failed to build payload", zap.Error(err))
		}
		h.send(s, m.ChannelID, "❌ Sorry, I "+apperrors.GenericGenerationMessage+".")
		return
	}

	log.Info("Payload built",
		zap.String("preset_id", cmd.presetID),
		zap.String("shape", string(payload.Shape())),
		zap.String("model", payload.Target()),
	)

	if h.dispatcher == nil {
		h.send(s, m.ChannelID, describePayload(payload))
		return
	}

	job, err := h.dispatcher.Submit(ctx, payload)
	if err != nil {
		log.Error("Dispatch failed", zap.Error(err))
		h.send(s, m.ChannelID, "❌ Sorry, I "+apperrors.GenericGenerationMessage+".")
		return
	}
	h.send(s, m.ChannelID, fmt.Sprintf("🎨 Generation started (job `%s`).", job.ID))

	done, err := h.dispatcher.Wait(ctx, job.ID, h.maxPolls, h.pollInterval)
	if err != nil {
		log.Error("Generation did not complete", zap.String("job_id", job.ID), zap.Error(err))
		h.send(s, m.ChannelID, "❌ The generation didn't finish. Please try again.")
		return
	}
	urls, err := dispatch.ImageURLs(done)
	if err != nil {
		log.Error("Job output has no images", zap.String("job_id", job.ID), zap.Error(err))
		h.send(s, m.ChannelID, "❌ The generation finished without an image.")
		return
	}
	h.send(s, m.ChannelID, truncate("✨ Done!\n"+strings.Join(urls, "\n"), constants.DiscordMaxMessageLength))
}

func (h *Handler) send(s Sender, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		h.logger.Error("Failed to send Discord message",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
	}
}

// describePayload summarizes a payload when no generation backend is configured.
func describePayload(p router.Payload) string {
	var b strings.Builder
	b.WriteString("🧪 Generation backend not configured. Payload preview:\n")
	switch v := p.(type) {
	case *router.EditPayload:
		fmt.Fprintf(&b, "model `%s`, strength %.2f\n", v.Model, v.Strength)
	case *router.DiffusionPayload:
		fmt.Fprintf(&b, "model `%s`, strength %.2f, guidance %.1f, variations %d\n",
			v.Model, v.Strength, v.GuidanceScale, v.NumVariations)
		if v.SubjectLock != nil {
			fmt.Fprintf(&b, "subject lock %.2f, %d control nets\n", v.SubjectLock.Weight, len(v.ControlNets))
		}
	}
	b.WriteString("> " + p.PromptText())
	return truncate(b.String(), constants.DiscordMaxMessageLength)
}

func displayFamily(f catalog.Family) string {
	switch f {
	case catalog.FamilyRegionAwareEditing:
		return "Backgrounds"
	case catalog.FamilyMoodMask:
		return "Moods"
	case catalog.FamilyReactionOverlay:
		return "Reactions"
	case catalog.FamilyGlitchOverlay:
		return "Glitch"
	case catalog.FamilyProfessional:
		return "Pro"
	default:
		return "Other"
	}
}

func authorID(m *discordgo.Message) string {
	if m.Author == nil {
		return ""
	}
	return m.Author.ID
}

// truncate cuts s to at most limit bytes, respecting rune boundaries.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit - len("…")
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
