package domain

import "time"

// Author identifies a content author from the fixed editorial roster.
// Authors are not user profiles; they live in their own small namespace.
type Author struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// ContentBody nests the text payload and its derived reading metrics.
type ContentBody struct {
	Body           string `json:"body" bson:"body"`
	Excerpt        string `json:"excerpt" bson:"excerpt"`
	WordCount      int    `json:"word_count" bson:"word_count"`
	ReadingTimeMin int    `json:"reading_time_min" bson:"reading_time_min"`
}

// SEOInfo nests search-engine metadata.
type SEOInfo struct {
	MetaTitle       string   `json:"meta_title" bson:"meta_title"`
	MetaDescription string   `json:"meta_description" bson:"meta_description"`
	Keywords        []string `json:"keywords" bson:"keywords"`
}

// MediaInfo nests optional media attachments.
type MediaInfo struct {
	FeaturedImage *string  `json:"featured_image,omitempty" bson:"featured_image,omitempty"`
	Gallery       []string `json:"gallery,omitempty" bson:"gallery,omitempty"`
	VideoURL      *string  `json:"video_url,omitempty" bson:"video_url,omitempty"`
}

// PublishingInfo carries the lifecycle timestamps of a document. Each
// field beyond CreatedAt is independently present or absent.
type PublishingInfo struct {
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	PublishedAt  *time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty" bson:"scheduled_for,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty" bson:"last_modified,omitempty"`
}

// Engagement holds interaction counters.
type Engagement struct {
	Views    int `json:"views" bson:"views"`
	Likes    int `json:"likes" bson:"likes"`
	Shares   int `json:"shares" bson:"shares"`
	Comments int `json:"comments" bson:"comments"`
}

// AccessControl describes who may read a document.
type AccessControl struct {
	IsPublic      bool     `json:"is_public" bson:"is_public"`
	RequiresLogin bool     `json:"requires_login" bson:"requires_login"`
	UserGroups    []string `json:"user_groups,omitempty" bson:"user_groups,omitempty"`
}

// ContentDocument is the canonical document stored in the content
// collection.
type ContentDocument struct {
	ID            string         `json:"_id" bson:"_id"`
	Title         string         `json:"title" bson:"title"`
	Slug          string         `json:"slug" bson:"slug"`
	ContentType   string         `json:"content_type" bson:"content_type"`
	Status        string         `json:"status" bson:"status"`
	Author        Author         `json:"author" bson:"author"`
	Content       ContentBody    `json:"content" bson:"content"`
	SEO           SEOInfo        `json:"seo" bson:"seo"`
	Media         MediaInfo      `json:"media" bson:"media"`
	Publishing    PublishingInfo `json:"publishing" bson:"publishing"`
	Categories    []string       `json:"categories" bson:"categories"`
	Tags          []string       `json:"tags" bson:"tags"`
	Engagement    Engagement     `json:"engagement" bson:"engagement"`
	AccessControl AccessControl  `json:"access_control" bson:"access_control"`
}
