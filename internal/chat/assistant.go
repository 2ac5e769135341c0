package chat

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"bostonhouse/internal/models"
)

// Greeting opens every transcript.
const Greeting = "Hello! I'm your Boston real estate assistant. How can I help you today?"

const defaultReply = "That's interesting! I specialize in Boston real estate. Feel free to ask about property prices, neighborhoods, or market trends."

// rule pairs a keyword set with its canned response. Rules are tested in
// order and the first match wins, so a message hitting several sets gets
// the earliest response.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"price", "predict"},
		reply:    "I can help you predict house prices! Use our ML prediction tool by entering property features like crime rate, number of rooms, and neighborhood characteristics.",
	},
	{
		keywords: []string{"neighborhood", "area"},
		reply:    "Boston has many great neighborhoods! Popular areas include Back Bay, Beacon Hill, and South End. Each has different characteristics affecting property values.",
	},
	{
		keywords: []string{"feature", "factor"},
		reply:    "Key factors affecting Boston house prices include: number of rooms (RM), crime rate (CRIM), proximity to employment centers (DIS), and neighborhood characteristics.",
	},
	{
		keywords: []string{"property", "house"},
		reply:    "Browse our property listings to find homes across Boston. You can filter by neighborhood, price range, bedrooms, and property type.",
	},
	{
		keywords: []string{"help", "how"},
		reply:    "I can help with property searches, price predictions, neighborhood information, and explaining housing market factors. What would you like to know?",
	},
}

// Reply selects the canned response for a single message. Matching is
// case-insensitive substring containment; there is no conversation memory.
func Reply(text string) string {
	msg := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(msg, kw) {
				return r.reply
			}
		}
	}
	return defaultReply
}

// Assistant keeps the append-only conversation transcript.
type Assistant struct {
	messages []models.ChatMessage
	logger   *logrus.Logger
}

func NewAssistant(logger *logrus.Logger) *Assistant {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Assistant{
		messages: []models.ChatMessage{{Speaker: models.SpeakerBot, Text: Greeting}},
		logger:   logger,
	}
}

// Send appends the user message and its generated reply, returning the
// reply. Blank input is ignored and returns the empty string.
func (a *Assistant) Send(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	reply := Reply(text)
	a.messages = append(a.messages,
		models.ChatMessage{Speaker: models.SpeakerUser, Text: text},
		models.ChatMessage{Speaker: models.SpeakerBot, Text: reply},
	)
	a.logger.WithField("messages", len(a.messages)).Debug("Chat message handled")
	return reply
}

// Transcript returns a copy of the conversation so far.
func (a *Assistant) Transcript() []models.ChatMessage {
	msgs := make([]models.ChatMessage, len(a.messages))
	copy(msgs, a.messages)
	return msgs
}
