package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sai-Sandilya/DBA-sub001/internal/domain"
)

const (
	eventUserChance       = 0.70
	eventAnonymousChance  = 0.30
	pageReferrerChance    = 0.50
	eventLocationChance   = 0.80
	sessionDurationChance = 0.60
)

func (g *Generator) generateEvents(ctx context.Context) ([]domain.AnalyticsEvent, error) {
	eventPool := newIDPool("evt", eventIDWidth, g.cfg.EventCount)
	events := make([]domain.AnalyticsEvent, 0, g.cfg.EventCount)

	for i := 0; i < g.cfg.EventCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		eventType := g.s.pick(g.vocab.eventTypes)
		path := g.s.pick(g.vocab.pagePaths)

		event := domain.AnalyticsEvent{
			ID:        eventPool.at(i),
			Timestamp: baseTime.Add(-time.Duration(g.s.intBetween(1, 30*24*60)) * time.Minute),
			EventType: eventType,
			SessionID: deterministicUUID(g.cfg.Seed, "sess", i),
			Page: domain.PageInfo{
				URL:   "https://shop.example.com" + path,
				Title: pageTitle(path),
			},
			Device: domain.DeviceInfo{
				Type:    g.s.pick(g.vocab.deviceTypes),
				OS:      g.s.pick(g.vocab.oses),
				Browser: g.s.pick(g.vocab.browsers),
			},
			UserAgent: g.s.pick(g.vocab.userAgents),
			IPAddress: fmt.Sprintf("%d.%d.%d.%d", g.s.intBetween(1, 223), g.s.r.Intn(256), g.s.r.Intn(256), g.s.r.Intn(256)),
		}

		// User and anonymous ids are independent draws: an event may
		// carry both, either, or neither.
		if g.profilePool.size() > 0 && g.s.chance(eventUserChance) {
			event.UserID = ptr(g.profilePool.pick(g.s.r))
		}
		if g.s.chance(eventAnonymousChance) {
			event.AnonymousID = ptr(deterministicUUID(g.cfg.Seed, "anon", i))
		}

		if g.s.chance(pageReferrerChance) {
			event.Page.Referrer = ptr("https://" + g.s.pick(g.vocab.referrers) + ".example.com")
		}
		if g.s.chance(eventLocationChance) {
			loc := g.vocab.cities[g.s.r.Intn(len(g.vocab.cities))]
			event.Location = &domain.EventLocation{Country: loc.country, City: loc.name}
		}
		if g.s.chance(sessionDurationChance) {
			event.SessionDuration = ptr(g.s.intBetween(10, 7200))
		}

		event.Properties = g.buildEventProperties(eventType)
		events = append(events, event)
	}

	return events, nil
}

// buildEventProperties fills the payload fields that make sense for the
// already-fixed event type. Product references are soft: they resolve
// into the product pool when one exists, and stay absent otherwise.
func (g *Generator) buildEventProperties(eventType string) domain.EventProperties {
	props := domain.EventProperties{}
	switch eventType {
	case "search":
		props.SearchQuery = ptr(g.s.pick(g.vocab.searchTerms))
	case "click", "add_to_cart":
		if g.productPool.size() > 0 {
			props.ProductID = ptr(g.productPool.pick(g.s.r))
		}
	case "purchase":
		if g.productPool.size() > 0 {
			props.ProductID = ptr(g.productPool.pick(g.s.r))
		}
		props.Revenue = ptr(g.s.money(10, 600))
		props.Currency = ptr("USD")
	}
	return props
}

// deterministicUUID derives a stable UUID from the run seed, so fixed
// seeds reproduce identical documents.
func deterministicUUID(seed int64, kind string, n int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s-%d-%d", kind, seed, n))).String()
}

func pageTitle(path string) string {
	if path == "/" {
		return "Home"
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "_", " ")
		if p != "" {
			p = strings.ToUpper(p[:1]) + p[1:]
		}
		parts[i] = p
	}
	return strings.Join(parts, " · ")
}
