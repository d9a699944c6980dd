package yakumd

import "time"

// Document represents a fetched web page. It is created around a
// fetch, consumed once by extraction, and then discarded; nothing is
// persisted and no field is mutated after creation.
type Document struct {
	// URL is the origin of the page, when fetched from the network.
	URL string

	// HTML is the raw page markup as returned by the Fetcher.
	HTML string

	// FetchedAt records when the page was retrieved.
	FetchedAt time.Time
}
