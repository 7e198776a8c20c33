package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"stylize-engine/backend/internal/constants"
)

type commandKind int

const (
	cmdHelp commandKind = iota
	cmdList
	cmdStylize
)

// command is a parsed "stylize ..." message.
type command struct {
	kind       commandKind
	presetID   string
	prompt     string
	family     string
	variations int
}

// parseCommand reads messages of the forms
//
//	stylize <preset_id> [xN]
//	stylize "free text prompt" [xN]
//	stylize list [family]
//	stylize help
//
// ok is false when the message is not addressed to the stylize command at all.
func parseCommand(content string) (cmd command, ok bool, err error) {
	content = strings.TrimSpace(content)
	prefix := constants.CommandPrefix
	if len(content) < len(prefix) || !strings.EqualFold(content[:len(prefix)], prefix) {
		return command{}, false, nil
	}
	rest := content[len(prefix):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\n' && rest[0] != '\t' {
		// e.g. "stylized"
		return command{}, false, nil
	}
	rest = strings.TrimSpace(rest)

	if rest == "" || strings.EqualFold(rest, "help") {
		return command{kind: cmdHelp}, true, nil
	}

	fields := strings.Fields(rest)
	if strings.EqualFold(fields[0], "list") {
		cmd = command{kind: cmdList}
		if len(fields) > 1 {
			cmd.family = fields[1]
		}
		return cmd, true, nil
	}

	cmd = command{kind: cmdStylize, variations: constants.DefaultNumVariations}
	if strings.HasPrefix(rest, "\"") {
		end := strings.Index(rest[1:], "\"")
		if end < 0 {
			return command{}, true, fmt.Errorf("missing closing quote")
		}
		cmd.prompt = strings.TrimSpace(rest[1 : end+1])
		if cmd.prompt == "" {
			return command{}, true, fmt.Errorf("prompt is empty")
		}
		fields = strings.Fields(rest[end+2:])
	} else {
		cmd.presetID = fields[0]
		fields = fields[1:]
	}

	for _, f := range fields {
		n, perr := parseVariations(f)
		if perr != nil {
			return command{}, true, perr
		}
		cmd.variations = n
	}
	return cmd, true, nil
}

// parseVariations accepts "x2" style multipliers.
func parseVariations(s string) (int, error) {
	if len(s) < 2 || (s[0] != 'x' && s[0] != 'X') {
		return 0, fmt.Errorf("unexpected argument %q", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid variation count %q", s)
	}
	return n, nil
}

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".gif"}

// firstImageURL returns the URL of the first image attachment.
func firstImageURL(attachments []*discordgo.MessageAttachment) (string, bool) {
	for _, a := range attachments {
		if a == nil || a.URL == "" {
			continue
		}
		if strings.HasPrefix(a.ContentType, "image/") {
			return a.URL, true
		}
		name := strings.ToLower(a.Filename)
		for _, ext := range imageExtensions {
			if strings.HasSuffix(name, ext) {
				return a.URL, true
			}
		}
	}
	return "", false
}
