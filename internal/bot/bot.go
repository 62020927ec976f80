// Package bot serves drill problems over Telegram using long polling.
// Each chat has at most one pending problem; answers arrive as inline
// keyboard callbacks.
package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/rie622skt/InfiniteDrill/internal/problemgen"
	"github.com/rie622skt/InfiniteDrill/internal/stats"
	"github.com/rie622skt/InfiniteDrill/internal/store"
)

const (
	cmdStart = "start"
	cmdNext  = "next"
	cmdStat  = "stat"
	cmdHelp  = "help"

	callbackPrefix = "answer:"
)

// AnswerLog is the store slice the bot needs; *store.Store satisfies it.
type AnswerLog interface {
	RecordAnswer(ctx context.Context, p *problemgen.Problem, correct bool) (*store.Answer, error)
	CategoryStats(ctx context.Context) (problemgen.AccuracyMap, error)
}

// Bot is the Telegram front end.
type Bot struct {
	api *tgbotapi.BotAPI
	gen *problemgen.Generator
	log AnswerLog

	mu      sync.Mutex
	pending map[int64]*problemgen.Problem
}

// New creates a Bot from a bot token.
func New(token string, gen *problemgen.Generator, answerLog AnswerLog) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}
	return &Bot{
		api:     api,
		gen:     gen,
		log:     answerLog,
		pending: make(map[int64]*problemgen.Problem),
	}, nil
}

// Start runs the long-polling loop until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	log.Printf("bot authorized as @%s, polling...", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.CallbackQuery != nil {
				b.handleCallback(ctx, update.CallbackQuery)
			} else if update.Message != nil {
				b.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	switch {
	case strings.HasPrefix(message.Text, "/"+cmdStart):
		b.sendText(message.Chat.ID, welcomeText)
		b.sendProblem(message.Chat.ID)
	case strings.HasPrefix(message.Text, "/"+cmdNext):
		b.sendProblem(message.Chat.ID)
	case strings.HasPrefix(message.Text, "/"+cmdStat):
		b.handleStat(ctx, message.Chat.ID)
	case strings.HasPrefix(message.Text, "/"+cmdHelp):
		b.sendText(message.Chat.ID, helpText)
	default:
		b.sendText(message.Chat.ID, "Unknown command. Use /next for a problem or /help for assistance.")
	}
}

const welcomeText = `Welcome to the structural mechanics drill bot!

I generate practice problems on beams, trusses, sections, buckling, frames and deflection, with four options each.

/next - new problem
/stat - your accuracy per topic
/help - this list`

const helpText = `/next - new problem
/stat - your accuracy per topic
/help - this list

Pick an answer by tapping one of the A-D buttons.`

// sendProblem generates a problem, stores it as pending for the chat
// and posts it with an A-D inline keyboard.
func (b *Bot) sendProblem(chatID int64) {
	p := b.gen.Generate(problemgen.Request{})

	b.mu.Lock()
	b.pending[chatID] = p
	b.mu.Unlock()

	msg := tgbotapi.NewMessage(chatID, FormatProblem(p))
	msg.ReplyMarkup = choiceKeyboard(p)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send problem: %v", err)
	}
}

func (b *Bot) handleStat(ctx context.Context, chatID int64) {
	m, err := b.log.CategoryStats(ctx)
	if err != nil {
		log.Printf("load stats: %v", err)
		b.sendText(chatID, "Could not load your stats, try again later.")
		return
	}
	b.sendText(chatID, stats.Build(m).Format())
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	idx, ok := ParseCallback(callback.Data)
	if !ok {
		log.Printf("invalid callback data: %s", callback.Data)
		return
	}

	// Acknowledge immediately so Telegram stops the spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("ack callback: %v", err)
	}

	chatID := callback.Message.Chat.ID
	b.mu.Lock()
	p := b.pending[chatID]
	delete(b.pending, chatID)
	b.mu.Unlock()

	if p == nil || idx < 0 || idx >= len(p.Choices) {
		b.sendText(chatID, "That problem has expired. Use /next for a fresh one.")
		return
	}

	correct := idx == p.CorrectIndex()
	if _, err := b.log.RecordAnswer(ctx, p, correct); err != nil {
		log.Printf("record answer: %v", err)
	}

	b.sendText(chatID, FormatResult(p, idx, correct))
}

func (b *Bot) sendText(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send message: %v", err)
	}
}

// choiceKeyboard builds the one-button-per-row A-D keyboard.
func choiceKeyboard(p *problemgen.Problem) tgbotapi.InlineKeyboardMarkup {
	labels := []string{"A", "B", "C", "D"}
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, c := range p.Choices {
		text := fmt.Sprintf("%s) %s", labels[i], strconv.FormatFloat(c, 'f', -1, 64))
		data := fmt.Sprintf("%s%d", callbackPrefix, i)
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(text, data),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// ParseCallback extracts the chosen option index from callback data.
func ParseCallback(data string) (int, bool) {
	if !strings.HasPrefix(data, callbackPrefix) {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimPrefix(data, callbackPrefix))
	if err != nil {
		return 0, false
	}
	return idx, true
}

// FormatProblem renders the problem text for a chat message.
func FormatProblem(p *problemgen.Problem) string {
	return fmt.Sprintf("[%s · %s]\n\n%s", p.Category.DisplayName(), p.Difficulty, p.Text)
}

// FormatResult renders the verdict plus the worked explanation.
func FormatResult(p *problemgen.Problem, chosen int, correct bool) string {
	labels := []string{"A", "B", "C", "D"}
	verdict := "Correct!"
	if !correct {
		verdict = fmt.Sprintf("Not quite. You picked %s; the right answer is %s) %s.",
			labels[chosen],
			labels[p.CorrectIndex()],
			strconv.FormatFloat(p.Answer, 'f', -1, 64))
	}
	return verdict + "\n\n" + p.Explanation + "\n\nUse /next for another problem."
}
