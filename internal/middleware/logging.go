package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging logs every update with its outcome
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{zap.Duration("duration", time.Since(start))}
			if sender := c.Sender(); sender != nil {
				fields = append(fields,
					zap.Int64("user_id", sender.ID),
					zap.String("username", sender.Username),
				)
			}
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("callback", cb.Unique), zap.String("data", cb.Data))
			} else if c.Message() != nil && len(c.Text()) > 0 && c.Text()[0] == '/' {
				fields = append(fields, zap.String("command", c.Text()))
			}

			if err != nil {
				logger.Error("Update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}
