package systems

import (
	"fmt"

	"github.com/Goluxas/roguelike-tutorial/internal/domain"
	"github.com/Goluxas/roguelike-tutorial/pkg/logger"
	"github.com/sirupsen/logrus"
)

// SendMessage formats a message printf-style and delivers it to recipient.
// Entities without the MessageRecipient trait silently get nothing.
func SendMessage(recipient *domain.Entity, format string, args ...interface{}) {
	if recipient == nil || !recipient.HasTrait(domain.TraitMessageRecipient) {
		return
	}
	recipient.ReceiveMessage(fmt.Sprintf(format, args...))
}

// SendMessageNearby formats once and delivers to every recipient inside the
// NearbyRadius square around (x, y). Levels are not filtered: a recipient
// directly above or below the point hears it too.
func SendMessageNearby(world *domain.World, x, y, z int, format string, args ...interface{}) {
	if world == nil {
		return
	}
	message := fmt.Sprintf(format, args...)

	delivered := 0
	for _, e := range world.EntitiesWithinRadius(x, y, z, domain.NearbyRadius) {
		if e.HasTrait(domain.TraitMessageRecipient) {
			e.ReceiveMessage(message)
			delivered++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "messaging",
		"x":          x,
		"y":          y,
		"z":          z,
		"recipients": delivered,
	}).Debug("Nearby message broadcast.")
}

// Deliver - the MessageRecipient behavior: queue the message in the inbox.
func Deliver(e *domain.Entity, message string) {
	if e.Inbox == nil {
		e.Inbox = &domain.InboxComponent{}
	}
	e.Inbox.Push(message)
}
