package types

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/schema"
)

const (
	DefaultPageSize = 9
	MaxPageSize     = 100
)

type SearchRequest struct {
	Criteria     *SearchCriteria `json:"criteria" schema:"-"`
	Sort         string          `json:"sort" schema:"sort,default:newest"`
	Page         int             `json:"page" schema:"page"`
	PageSize     int             `json:"pageSize" schema:"size,default:9"`
	SkipTracking bool            `json:"skipTracking" schema:"nt"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func clamp[T int | int64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (s *SearchRequest) Sanitize() {
	if s.Criteria == nil {
		s.Criteria = NewSearchCriteria()
	}
	s.Criteria.Sanitize()
	if !SortKey(s.Sort).Valid() {
		s.Sort = string(SortNewest)
	}
	if s.Page < 0 {
		s.Page = 0
	}
	if s.PageSize <= 0 {
		CurrentSettings.RLock()
		s.PageSize = CurrentSettings.PageSize
		CurrentSettings.RUnlock()
	}
	s.PageSize = clamp(s.PageSize, 1, MaxPageSize)
}

func makeBaseSearchRequest() *SearchRequest {
	return &SearchRequest{
		Criteria: NewSearchCriteria(),
		Sort:     string(SortNewest),
		Page:     0,
		PageSize: DefaultPageSize,
	}
}

// GetQueryFromRequest decodes a search from the URL on GET and from a JSON
// body otherwise. Decoding is total, malformed parameters fall back to their
// defaults instead of failing the request.
func GetQueryFromRequest(r *http.Request) *SearchRequest {
	sr := makeBaseSearchRequest()
	if r.Method == http.MethodGet {
		queryFromRequestQuery(r.URL.Query(), sr)
	} else {
		_ = json.NewDecoder(r.Body).Decode(sr)
	}
	sr.Sanitize()
	return sr
}

func queryFromRequestQuery(query url.Values, result *SearchRequest) {
	// schema reports per field conversion errors, fields it could not
	// convert keep their defaults which is exactly the fallback we want
	_ = decoder.Decode(result, query)
	result.Criteria = DecodeCriteria(query)
}

// EncodeQuery renders the canonical query string for a request, used for
// history pushes and as the result cache key.
func (s *SearchRequest) EncodeQuery() string {
	query := url.Values{}
	EncodeCriteria(s.Criteria, query)
	if s.Sort != string(SortNewest) {
		query.Set("sort", s.Sort)
	}
	if s.Page > 0 {
		query.Set("page", strconv.Itoa(s.Page))
	}
	if s.PageSize != DefaultPageSize {
		query.Set("size", strconv.Itoa(s.PageSize))
	}
	return query.Encode()
}
