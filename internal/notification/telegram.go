package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CarRental/internal/domain"
	"github.com/stpnv0/CarRental/internal/pricing"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, customer *domain.Customer, car *domain.Car, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование подтверждено!*\n\n"+"Автомобиль: %s\n"+"Период (UTC): %s - %s\n"+"К оплате: %s (скидка %s)",
		carTitle(car),
		b.StartDate.Format(dateLayout), b.EndDate.Format(dateLayout),
		pricing.Format(b.FinalAmount), pricing.Format(b.DiscountAmount),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, customer *domain.Customer, car *domain.Car, b *domain.Booking, fee int64) {
	text := fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Автомобиль: %s\n"+"Начало (UTC): %s",
		carTitle(car), b.StartDate.Format(dateLayout),
	)
	if fee > 0 {
		text += fmt.Sprintf("\nШтраф за позднюю отмену: %s", pricing.Format(fee))
	}
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExtended(ctx context.Context, customer *domain.Customer, car *domain.Car, b *domain.Booking, charge int64) {
	text := fmt.Sprintf(
		"*Бронирование продлено*\n\n"+"Автомобиль: %s\n"+"Новая дата окончания (UTC): %s\n"+"Доплата: %s, итого: %s",
		carTitle(car), b.EndDate.Format(dateLayout),
		pricing.Format(charge), pricing.Format(b.FinalAmount),
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func carTitle(car *domain.Car) string {
	return fmt.Sprintf("%s %s (%d)", car.Make, car.Model, car.Year)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
