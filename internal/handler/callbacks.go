package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"stockadmin/internal/domain"
	"stockadmin/internal/editor"
	"stockadmin/internal/phonemask"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseCallback splits cleaned "unique|payload" button data
func parseCallback(data string) (unique, payload string) {
	unique, payload, _ = strings.Cut(data, "|")
	return unique, payload
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", c.Sender().ID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	unique, payload := callback.Unique, cleanCallbackData(callback.Data)
	if unique == "" {
		unique, payload = parseCallback(payload)
	}

	h.logger.Debug("Processing callback",
		zap.String("unique", unique),
		zap.String("payload", payload),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch unique {
	case cbMenu:
		return h.withSession(c.Sender().ID, func(s *editor.Session) error {
			s.Reset()
			return h.reply(c, msgMainMenu, mainMenuMarkup())
		})
	case cbList:
		kind, err := domain.ParseKind(payload)
		if err != nil {
			return h.badCallback(c, unique, payload, err)
		}
		return h.withSession(c.Sender().ID, func(s *editor.Session) error {
			s.Reset()
			return h.showList(c, kind)
		})
	case cbAdd:
		kind, err := domain.ParseKind(payload)
		if err != nil {
			return h.badCallback(c, unique, payload, err)
		}
		return h.withSession(c.Sender().ID, func(s *editor.Session) error {
			s.OpenAdd(kind)
			return h.show(c, s)
		})
	case cbOpen:
		return h.handleOpen(c, payload)
	case cbStock:
		return h.handleStock(c, payload)
	}

	return h.withSession(c.Sender().ID, func(s *editor.Session) error {
		return h.handleSessionCallback(c, s, unique, payload)
	})
}

// handleSessionCallback handles buttons that act on the current dialog
func (h *Handler) handleSessionCallback(c tele.Context, s *editor.Session, unique, payload string) error {
	ctx, cancel := h.context()
	defer cancel()

	switch unique {
	case cbField:
		if err := s.EditField(payload); err != nil {
			return h.sessionError(c, s, err, msgGenericError)
		}
		return h.show(c, s)

	case cbSave:
		kind := s.Kind()
		if err := s.Save(ctx); err != nil {
			return h.sessionError(c, s, err, msgSaveError)
		}
		return h.listWithNotice(ctx, c, kind, msgSaved)

	case cbDelete:
		if err := s.RequestDelete(); err != nil {
			return h.sessionError(c, s, err, msgGenericError)
		}
		return h.show(c, s)

	case cbDeleteYes:
		kind := s.Kind()
		if err := s.Delete(ctx); err != nil {
			return h.sessionError(c, s, err, msgDeleteError)
		}
		return h.listWithNotice(ctx, c, kind, msgDeleted)

	case cbCancel:
		s.Cancel()
		return h.show(c, s)

	case cbReceipt:
		if err := s.OpenReceipt(ctx); err != nil {
			return h.sessionError(c, s, err, msgLoadError)
		}
		return h.show(c, s)

	case cbProduct:
		id, err := strconv.ParseInt(payload, 10, 64)
		if err != nil {
			return h.badCallback(c, unique, payload, err)
		}
		if err := s.SelectProduct(id); err != nil {
			return h.sessionError(c, s, err, msgGenericError)
		}
		return h.show(c, s)

	case cbContact:
		return h.sendContact(c, s)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("unique", unique),
		zap.String("payload", payload),
	)
	return c.Respond()
}

func (h *Handler) handleOpen(c tele.Context, payload string) error {
	kind, id, err := parsePointPayload(payload)
	if err != nil {
		return h.badCallback(c, cbOpen, payload, err)
	}

	ctx, cancel := h.context()
	defer cancel()

	return h.withSession(c.Sender().ID, func(s *editor.Session) error {
		if err := s.OpenEdit(ctx, kind, id); err != nil {
			h.logger.Error("Failed to open point",
				zap.Error(err),
				zap.String("kind", string(kind)),
				zap.Int64("point_id", id),
			)
			return h.notify(c, userMessage(err, msgLoadError))
		}
		return h.show(c, s)
	})
}

func (h *Handler) handleStock(c tele.Context, payload string) error {
	kind, id, err := parsePointPayload(payload)
	if err != nil {
		return h.badCallback(c, cbStock, payload, err)
	}

	ctx, cancel := h.context()
	defer cancel()

	target := domain.StockTarget{Kind: kind, ID: id, Title: h.pointName(ctx, kind, id)}
	return h.withSession(c.Sender().ID, func(s *editor.Session) error {
		if err := s.OpenStock(ctx, target); err != nil {
			h.logger.Error("Failed to load stock",
				zap.Error(err),
				zap.String("kind", string(kind)),
				zap.Int64("point_id", id),
			)
			return h.notify(c, userMessage(err, msgLoadError))
		}
		return h.show(c, s)
	})
}

// sendContact sends the phone of the open form in E.164, which Telegram
// shows as a tappable number
func (h *Handler) sendContact(c tele.Context, s *editor.Session) error {
	p := s.Point()
	phone, err := phonemask.E164(p.Phone)
	if err != nil {
		h.logger.Debug("No valid phone to share", zap.Error(err), zap.String("phone", p.Phone))
		return h.notify(c, msgNoPhone)
	}

	_ = c.Respond()
	return c.Send(contactText(p.Name, phone))
}

// listWithNotice shows a list after a completed action
func (h *Handler) listWithNotice(ctx context.Context, c tele.Context, kind domain.Kind, notice string) error {
	points, err := h.points(ctx, kind)
	if err != nil {
		h.logger.Error("Failed to list points", zap.Error(err), zap.String("kind", string(kind)))
		return h.reply(c, notice, mainMenuMarkup())
	}
	return h.reply(c, notice+"\n\n"+renderPoints(kind, points), pointsMarkup(kind, points))
}

// sessionError reports a failed dialog action and keeps the current screen
func (h *Handler) sessionError(c tele.Context, s *editor.Session, err error, fallback string) error {
	if errors.Is(err, editor.ErrInvalidState) {
		h.logger.Debug("Stale button pressed",
			zap.Error(err),
			zap.String("state", string(s.State())),
			zap.Int64("user_id", c.Sender().ID),
		)
		return h.show(c, s)
	}

	var userErr *domain.UserError
	if !errors.As(err, &userErr) {
		h.logger.Error("Dialog action failed",
			zap.Error(err),
			zap.String("state", string(s.State())),
			zap.Int64("user_id", c.Sender().ID),
		)
	}
	return h.notify(c, userMessage(err, fallback))
}

// notify answers a callback with an alert or sends the text as a message
func (h *Handler) notify(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

func (h *Handler) badCallback(c tele.Context, unique, payload string, err error) error {
	h.logger.Warn("Malformed callback",
		zap.Error(err),
		zap.String("unique", unique),
		zap.String("payload", payload),
	)
	return c.Respond()
}

func contactText(name, phone string) string {
	if strings.TrimSpace(name) == "" {
		return "📞 " + phone
	}
	return "📞 " + name + ": " + phone
}
