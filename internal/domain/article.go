package domain

import "time"

// Article represents an article entity in the system. FavoritesCount is
// denormalized state owned by the article row and mutated only through
// the favorite repository's transactional operations.
type Article struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	Body           string    `json:"body"`
	AuthorID       string    `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	FavoritesCount int       `json:"favorites_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ArticleView is an article enriched for presentation: author profile,
// tag set, and the viewer's personal favorite flag.
type ArticleView struct {
	Article
	Author    Profile  `json:"author"`
	Tags      []string `json:"tags"`
	Favorited bool     `json:"favorited"`
}

// ArticleFilter restricts a listing. A nil field imposes no restriction;
// set fields combine conjunctively.
type ArticleFilter struct {
	Tag       *string
	Author    *string
	Favorited *string
}

// ArticleChanges holds the optional fields of an article update.
// A nil field leaves the stored value unchanged.
type ArticleChanges struct {
	Slug        *string
	Title       *string
	Description *string
	Body        *string
}

// Empty reports whether the update would change nothing.
func (c ArticleChanges) Empty() bool {
	return c.Slug == nil && c.Title == nil && c.Description == nil && c.Body == nil
}
