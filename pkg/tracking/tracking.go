package tracking

import (
	"net/http"

	"github.com/propstack/estate-finder/pkg/types"
)

type Tracking interface {
	TrackSession(sessionId int, r *http.Request)
	TrackSearch(sessionId int, criteria *types.SearchCriteria, resultLen int, page int, r *http.Request)
	TrackListingClick(sessionId int, listingId types.ListingId, position int)
}
