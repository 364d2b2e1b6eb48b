package handler

import "time"

// TimeFormat is the time format for article timestamps in API responses (RFC3339)
const TimeFormat = time.RFC3339

// slugParam is the route parameter carrying the article slug.
const slugParam = "slug"
