package handler

import (
	"errors"

	"stockadmin/internal/domain"
	"stockadmin/internal/editor"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText feeds text messages into the user's open dialog
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID

	ctx, cancel := h.context()
	defer cancel()

	return h.withSession(userID, func(s *editor.Session) error {
		before := s.State()
		err := s.Input(ctx, c.Text())
		switch {
		case err == nil:
		case errors.Is(err, editor.ErrUnexpectedInput):
			return c.Send(msgUseMenu, screenMarkup(s))
		default:
			var userErr *domain.UserError
			if !errors.As(err, &userErr) {
				h.logger.Error("Failed to apply input",
					zap.Error(err),
					zap.Int64("user_id", userID),
					zap.String("state", string(before)),
				)
			}
			if sendErr := c.Send(userMessage(err, msgSaveError)); sendErr != nil {
				return sendErr
			}
			return h.show(c, s)
		}

		if before == domain.StateReceiptQty {
			if err := c.Send(msgReceived); err != nil {
				return err
			}
		}
		return h.show(c, s)
	})
}

// screenMarkup returns the keyboard of the current screen for
// messages that do not belong to a field
func screenMarkup(s *editor.Session) *tele.ReplyMarkup {
	switch s.State() {
	case domain.StateConfirm:
		return formMarkup(s)
	case domain.StateConfirmDelete:
		return deleteMarkup()
	case domain.StateStock:
		return stockMarkup(s.Target())
	case domain.StateReceiptProduct:
		return productsMarkup(s.Products())
	}
	return mainMenuMarkup()
}
