package handler

import (
	"stockadmin/internal/domain"
	"stockadmin/internal/editor"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	return h.withSession(userID, func(s *editor.Session) error {
		s.Reset()
		return c.Send(msgMainMenu, mainMenuMarkup())
	})
}

func (h *Handler) handleStoresCommand(c tele.Context) error {
	return h.showList(c, domain.KindStore)
}

func (h *Handler) handleWarehousesCommand(c tele.Context) error {
	return h.showList(c, domain.KindWarehouse)
}

// showList sends the list of stores or warehouses
func (h *Handler) showList(c tele.Context, kind domain.Kind) error {
	ctx, cancel := h.context()
	defer cancel()

	points, err := h.points(ctx, kind)
	if err != nil {
		h.logger.Error("Failed to list points", zap.Error(err), zap.String("kind", string(kind)))
		return h.reply(c, userMessage(err, msgLoadError), nil)
	}
	return h.reply(c, renderPoints(kind, points), pointsMarkup(kind, points))
}

// show renders the screen for the session's current state
func (h *Handler) show(c tele.Context, s *editor.Session) error {
	switch state := s.State(); state {
	case domain.StateEnterName, domain.StateEnterAddress, domain.StateEnterPhone, domain.StateEnterArea:
		return h.reply(c, s.Title()+"\n\n"+prompt(state), cancelMarkup())

	case domain.StateConfirm:
		return h.reply(c, renderForm(s.Title(), s.Point()), formMarkup(s))

	case domain.StateConfirmDelete:
		return h.reply(c, deleteQuestion(s.Kind()), deleteMarkup())

	case domain.StateStock:
		return h.reply(c, renderStock(s.Target(), s.Rows(), s.IsLow), stockMarkup(s.Target()))

	case domain.StateReceiptProduct:
		target := s.Target()
		text := target.Kind.ReceiptTitle(target.Title) + "\n\nВыберите товар:"
		if len(s.Products()) == 0 {
			text = target.Kind.ReceiptTitle(target.Title) + "\n\n" + msgNoData
		}
		return h.reply(c, text, productsMarkup(s.Products()))

	case domain.StateReceiptQty:
		target := s.Target()
		product, _ := s.Product()
		text := target.Kind.ReceiptTitle(target.Title) + "\n\nТовар: " + product.Name + "\n" + prompt(state)
		return h.reply(c, text, cancelMarkup())

	default:
		return h.reply(c, msgMainMenu, mainMenuMarkup())
	}
}

// reply edits the message under a pressed button or sends a new one
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	opts := []interface{}{}
	if markup != nil {
		opts = append(opts, markup)
	}

	if c.Callback() != nil {
		if err := c.Edit(text, opts...); err != nil {
			if handleErr := h.handleEditError(err, c); handleErr == nil {
				return nil
			}
			return c.Send(text, opts...)
		}
		return c.Respond()
	}
	return c.Send(text, opts...)
}
