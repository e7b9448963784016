package notify

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// LogPort writes notifications to the structured log.
type LogPort struct {
	log *zap.Logger
}

func NewLogPort(log *zap.Logger) *LogPort {
	return &LogPort{log: log}
}

func (p *LogPort) Notify(_ context.Context, n Notification) error {
	fields := []zap.Field{
		zap.String("id", n.ID),
		zap.String("user", n.UserRef),
		zap.String("kind", n.Kind),
		zap.String("amount", n.Amount.StringFixed(2)),
	}
	for k, v := range n.Metadata {
		fields = append(fields, zap.String(k, v))
	}
	p.log.Info("account notification", fields...)
	return nil
}

// MessageSender is the part of *discordgo.Session the Discord port uses.
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordPort posts notifications to a Discord channel.
type DiscordPort struct {
	sender    MessageSender
	channelID string
}

func NewDiscordPort(sender MessageSender, channelID string) *DiscordPort {
	return &DiscordPort{sender: sender, channelID: channelID}
}

// NewDiscordSession opens a bot session usable as a MessageSender.
func NewDiscordSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return session, nil
}

func (p *DiscordPort) Notify(ctx context.Context, n Notification) error {
	_, err := p.sender.ChannelMessageSend(p.channelID, FormatMessage(n), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: discord: %v", ErrDelivery, err)
	}
	return nil
}

// FormatMessage renders a notification as a short human readable message.
func FormatMessage(n Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", n.Kind, n.UserRef, n.Amount.StringFixed(2))

	keys := make([]string, 0, len(n.Metadata))
	for k := range n.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n%s: %s", k, n.Metadata[k])
	}
	return b.String()
}

// MultiPort fans a notification out to several ports and joins their errors.
type MultiPort []Port

func (m MultiPort) Notify(ctx context.Context, n Notification) error {
	var errs []error
	for _, p := range m {
		if err := p.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %d of %d ports failed: %v", ErrDelivery, len(errs), len(m), errs)
	}
	return nil
}
