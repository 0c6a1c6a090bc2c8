package stremio

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the IMDB component of a video id does not
// carry the "tt" prefix. It maps to HTTP 400 at the API layer.
var ErrInvalidID = errors.New("invalid IMDB ID format")

// VideoID is the compound identifier Stremio sends for subtitle requests:
// "ttXXXXXXX", optionally followed by ":season" and ":episode".
// A zero Season or Episode means the component was absent.
type VideoID struct {
	IMDB    string
	Season  int
	Episode int
}

// String reassembles the compound form.
func (v VideoID) String() string {
	s := v.IMDB
	if v.Season > 0 {
		s += ":" + strconv.Itoa(v.Season)
	}
	if v.Episode > 0 {
		if v.Season == 0 {
			s += ":"
		}
		s += ":" + strconv.Itoa(v.Episode)
	}
	return s
}

// ParseVideoID splits a compound id. Only the "tt" prefix is mandatory;
// season and episode are independently optional and silently dropped when
// not a positive integer.
func ParseVideoID(s string) (VideoID, error) {
	parts := strings.Split(s, ":")

	id := VideoID{IMDB: parts[0]}
	if !strings.HasPrefix(id.IMDB, "tt") {
		return VideoID{}, ErrInvalidID
	}

	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
			id.Season = n
		}
	}
	if len(parts) > 2 {
		if n, err := strconv.Atoi(parts[2]); err == nil && n > 0 {
			id.Episode = n
		}
	}

	return id, nil
}
