package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sai-Sandilya/DBA-sub001/internal/domain"
)

// Fixed presence probabilities for optional profile fields.
const (
	twitterChance   = 0.50
	linkedInChance  = 0.40
	gitHubChance    = 0.30
	lastLoginChance = 0.80
	activeChance    = 0.85
)

// Cardinality bounds for set-valued profile fields.
const (
	minInterests = 2
	maxInterests = 5
	minUserTags  = 1
	maxUserTags  = 3
)

func (g *Generator) generateProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	profiles := make([]domain.UserProfile, 0, g.cfg.ProfileCount)

	for i := 0; i < g.cfg.ProfileCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := g.profilePool.at(i)
		first := g.s.pick(g.vocab.firstNames)
		last := g.s.pick(g.vocab.lastNames)
		// Sequence suffix keeps usernames and emails unique across the
		// pool regardless of name collisions.
		username := fmt.Sprintf("%s_%s_%d", strings.ToLower(first), strings.ToLower(last), i+1)
		email := fmt.Sprintf("%s.%s.%d@%s", strings.ToLower(first), strings.ToLower(last), i+1, g.s.pick(g.vocab.emailDomains))

		loc := g.vocab.cities[g.s.r.Intn(len(g.vocab.cities))]

		interests, err := g.s.sampleSet(g.vocab.interests, minInterests, maxInterests)
		if err != nil {
			return nil, fmt.Errorf("profile %s interests: %w", id, err)
		}
		tags, err := g.s.sampleSet(g.vocab.userTags, minUserTags, maxUserTags)
		if err != nil {
			return nil, fmt.Errorf("profile %s tags: %w", id, err)
		}

		social := domain.SocialHandles{}
		if g.s.chance(twitterChance) {
			social.Twitter = ptr("@" + username)
		}
		if g.s.chance(linkedInChance) {
			social.LinkedIn = ptr("https://linkedin.com/in/" + username)
		}
		if g.s.chance(gitHubChance) {
			social.GitHub = ptr("https://github.com/" + username)
		}

		createdAt := baseTime.Add(-time.Duration(g.s.intBetween(1, 730*24)) * time.Hour)
		profile := domain.UserProfile{
			ID:       id,
			Username: username,
			Email:    email,
			Profile: domain.ProfileDetails{
				FirstName: first,
				LastName:  last,
				Age:       g.s.intBetween(18, 70),
				Location: domain.GeoLocation{
					City:        loc.name,
					Country:     loc.country,
					Coordinates: [2]float64{loc.lon, loc.lat},
				},
				Interests: interests,
				Social:    social,
			},
			Preferences: domain.Preferences{
				Theme:    g.s.pick(g.vocab.themes),
				Language: g.s.pick(g.vocab.languages),
				Notifications: domain.NotificationFlags{
					Email: g.s.chance(0.7),
					SMS:   g.s.chance(0.3),
					Push:  g.s.chance(0.5),
				},
			},
			Tags:      tags,
			IsActive:  g.s.chance(activeChance),
			CreatedAt: createdAt,
		}
		if g.s.chance(lastLoginChance) {
			profile.LastLoginAt = ptr(createdAt.Add(time.Duration(g.s.intBetween(1, 90*24)) * time.Hour))
		}

		profiles = append(profiles, profile)
	}

	return profiles, nil
}
