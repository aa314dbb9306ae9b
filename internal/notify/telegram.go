// Package notify delivers end-of-run summaries to operators.
package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"chefwire/aggregator-service/internal/model"
)

// Telegram sends run summaries to a Telegram chat. Construction fails on a
// bad token; sending failures are left to the caller's logs.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram authenticates the bot once at startup.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// NotifyRun implements worker.Notifier.
func (t *Telegram) NotifyRun(_ context.Context, stats model.RunStats) error {
	excluded := stats.ExcludedByCompany + stats.ExcludedByFastFood +
		stats.ExcludedByRestaurantChain + stats.ExcludedByHourly +
		stats.ExcludedBySalaryName + stats.ExcludedByDomain

	text := fmt.Sprintf(
		"Aggregation run %s\n"+
			"Fetched: %d\n"+
			"Excluded: %d (company %d, fast food %d, chain %d, hourly %d, salary-name %d, domain %d)\n"+
			"Duplicates: %d in batch, %d against store\n"+
			"Enriched: %d\n"+
			"Emitted: %d (%d new, %d updated)\n"+
			"Errors: %d",
		stats.RunID, stats.TotalFetched,
		excluded, stats.ExcludedByCompany, stats.ExcludedByFastFood,
		stats.ExcludedByRestaurantChain, stats.ExcludedByHourly,
		stats.ExcludedBySalaryName, stats.ExcludedByDomain,
		stats.DuplicatesWithinBatch, stats.DuplicatesAgainstStore,
		stats.Enriched,
		stats.Emitted, stats.Inserted, stats.Updated,
		stats.ProcessingErrors,
	)

	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
