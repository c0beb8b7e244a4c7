package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sai-Sandilya/DBA-sub001/internal/domain"
)

const (
	featuredImageChance = 0.70
	galleryChance       = 0.40
	videoChance         = 0.20
	scheduledChance     = 0.30
	modifiedChance      = 0.50
	requiresLoginChance = 0.20
	userGroupsChance    = 0.30

	minKeywords          = 2
	maxKeywords          = 5
	minContentCategories = 1
	maxContentCategories = 2
	minContentTags       = 1
	maxContentTags       = 4
	minBodySentences     = 5
	maxBodySentences     = 15
)

// wordsPerMinute drives the derived reading-time metric.
const wordsPerMinute = 200

func (g *Generator) generateContent(ctx context.Context) ([]domain.ContentDocument, error) {
	contentPool := newIDPool("cont", contentIDWidth, g.cfg.ContentCount)
	docs := make([]domain.ContentDocument, 0, g.cfg.ContentCount)

	for i := 0; i < g.cfg.ContentCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := contentPool.at(i)
		title := fmt.Sprintf("%s %s: %s", g.s.pick(g.vocab.adjectives), g.s.pick(g.vocab.nouns), g.s.pick(g.vocab.brands))
		// Sequence suffix keeps slugs unique despite title collisions.
		slug := fmt.Sprintf("%s-%d", slugify(title), i+1)

		body := g.buildBody()
		excerpt := body[:strings.Index(body, ".")+1]
		wordCount := len(strings.Fields(body))

		keywords, err := g.s.sampleSet(g.vocab.contentTags, minKeywords, maxKeywords)
		if err != nil {
			return nil, fmt.Errorf("content %s keywords: %w", id, err)
		}
		categories, err := g.s.sampleSet(g.vocab.contentCategories, minContentCategories, maxContentCategories)
		if err != nil {
			return nil, fmt.Errorf("content %s categories: %w", id, err)
		}
		tags, err := g.s.sampleSet(g.vocab.contentTags, minContentTags, maxContentTags)
		if err != nil {
			return nil, fmt.Errorf("content %s tags: %w", id, err)
		}

		status := g.s.pick(g.vocab.contentStatuses)
		roster := g.vocab.authors[g.s.r.Intn(len(g.vocab.authors))]

		createdAt := baseTime.Add(-time.Duration(g.s.intBetween(1, 540*24)) * time.Hour)
		publishing := domain.PublishingInfo{CreatedAt: createdAt}
		// Published and archived documents always carry a publication
		// time; drafts and reviews may carry a schedule instead.
		switch status {
		case "published", "archived":
			publishing.PublishedAt = ptr(createdAt.Add(time.Duration(g.s.intBetween(1, 14*24)) * time.Hour))
		default:
			if g.s.chance(scheduledChance) {
				publishing.ScheduledFor = ptr(baseTime.Add(time.Duration(g.s.intBetween(1, 30*24)) * time.Hour))
			}
		}
		if g.s.chance(modifiedChance) {
			publishing.LastModified = ptr(createdAt.Add(time.Duration(g.s.intBetween(1, 60*24)) * time.Hour))
		}

		media := domain.MediaInfo{}
		if g.s.chance(featuredImageChance) {
			media.FeaturedImage = ptr(fmt.Sprintf("https://cdn.example.com/img/%s-hero.jpg", slug))
		}
		if g.s.chance(galleryChance) {
			count := g.s.intBetween(2, 4)
			gallery := make([]string, 0, count)
			for n := 0; n < count; n++ {
				gallery = append(gallery, fmt.Sprintf("https://cdn.example.com/img/%s-%d.jpg", slug, n+1))
			}
			media.Gallery = gallery
		}
		if g.s.chance(videoChance) {
			media.VideoURL = ptr(fmt.Sprintf("https://video.example.com/v/%s", slug))
		}

		access := domain.AccessControl{
			IsPublic:      status == "published",
			RequiresLogin: g.s.chance(requiresLoginChance),
		}
		if !access.IsPublic && g.s.chance(userGroupsChance) {
			groups, err := g.s.sampleSet(g.vocab.userGroups, 1, 2)
			if err != nil {
				return nil, fmt.Errorf("content %s user groups: %w", id, err)
			}
			access.UserGroups = groups
		}

		views := g.s.intBetween(0, 20000)
		docs = append(docs, domain.ContentDocument{
			ID:          id,
			Title:       title,
			Slug:        slug,
			ContentType: g.s.pick(g.vocab.contentTypes),
			Status:      status,
			Author:      domain.Author{ID: roster.id, Name: roster.name, Email: roster.email},
			Content: domain.ContentBody{
				Body:           body,
				Excerpt:        excerpt,
				WordCount:      wordCount,
				ReadingTimeMin: readingTime(wordCount),
			},
			SEO: domain.SEOInfo{
				MetaTitle:       title,
				MetaDescription: excerpt,
				Keywords:        keywords,
			},
			Media:      media,
			Publishing: publishing,
			Categories: categories,
			Tags:       tags,
			Engagement: domain.Engagement{
				Views:    views,
				Likes:    g.s.intBetween(0, views/10+1),
				Shares:   g.s.intBetween(0, views/50+1),
				Comments: g.s.intBetween(0, views/100+1),
			},
			AccessControl: access,
		})
	}

	return docs, nil
}

func (g *Generator) buildBody() string {
	count := g.s.intBetween(minBodySentences, maxBodySentences)
	parts := make([]string, 0, count)
	for i := 0; i < count; i++ {
		parts = append(parts, g.s.pick(g.vocab.sentences))
	}
	return strings.Join(parts, " ")
}

// readingTime is word count at wordsPerMinute, rounded up, never zero.
func readingTime(wordCount int) int {
	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func slugify(title string) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	prevDash := false
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
