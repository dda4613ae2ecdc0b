package dispatch

import (
	"context"

	"github.com/RenaudDev/PaperPause/internal/domain"
)

// Payload is the JSON body posted to the distribution endpoint.
type Payload struct {
	Collection string `json:"collection"`
	BoardName  string `json:"board_name"`
	FeedURL    string `json:"rss_url"`
}

// Dispatcher abstracts the hand-off of one queue item to the external
// distribution channel. Mocking this interface in tests gives full control
// over endpoint behaviour without making real HTTP calls.
type Dispatcher interface {
	Dispatch(ctx context.Context, item domain.QueueItem) error
}
