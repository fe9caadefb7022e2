package clients

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"

	"ProjectAdminAI/app/runtime"
)

var _ Interface = &DiscordClient{}

type DiscordClient struct {
	Client
	session   *discordgo.Session
	channelID string
	adminID   string
}

func NewDiscordClient() *DiscordClient {
	return newDiscordClient(os.Getenv("DISCORD_TOKEN"), os.Getenv("DISCORD_CHANNEL_ID"), os.Getenv("DISCORD_ADMIN"))
}

func NewDiscordClientFromConfig(cfg map[string]string) (*DiscordClient, error) {
	token := cfg["token"]
	if token == "" {
		token = os.Getenv("DISCORD_TOKEN")
	}
	dc := newDiscordClient(token, cfg["channel_id"], cfg["admin_id"])
	if dc == nil {
		return nil, fmt.Errorf("discord client requires a token")
	}
	return dc, nil
}

func newDiscordClient(token, channelID, adminID string) *DiscordClient {
	if token == "" {
		return nil
	}

	session, _ := discordgo.New("Bot " + token)
	dc := &DiscordClient{
		session:   session,
		channelID: channelID,
		adminID:   adminID,
	}

	session.AddHandler(dc.onMessageCreate)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages

	return dc
}

func (c *DiscordClient) Subscribe(rt *runtime.Runtime) {
	c.runtime = rt
	if err := c.Open(); err != nil {
		log.Printf("❌ Error opening Discord session: %v", err)
	}
}

func (c *DiscordClient) Open() error {
	if err := c.session.Open(); err != nil {
		return err
	}
	log.Println("Discord client started. Listening for messages...")
	return nil
}

func (c *DiscordClient) Close() error {
	return c.session.Close()
}

func (c *DiscordClient) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	if c.adminID != "" && m.Author.ID != c.adminID {
		return
	}
	if c.channelID != "" && m.ChannelID != c.channelID {
		return
	}

	content := strings.TrimSpace(m.Content)
	if content == "" {
		return
	}

	channelID := m.ChannelID
	c.runtime.QueueEvent(runtime.Event{
		Type: runtime.UserMessage,
		Text: content,
		Reply: func(answer string) {
			if err := c.SendMessage(channelID, answer); err != nil {
				log.Printf("⚠️ Error sending Discord reply: %v", err)
			}
		},
	})
}

func (c *DiscordClient) SendMessage(channelID, content string) error {
	if channelID == "" {
		return fmt.Errorf("channelID is empty")
	}
	if _, err := c.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
