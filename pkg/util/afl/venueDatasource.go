package afl

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/bairdj/afl-crowds/internal/logger"
	"github.com/bairdj/afl-crowds/pkg/transport"
)

// VenueDatasource scrapes the venue directory page from the attendance
// source's site. The directory is used as a cross-check only: it tells
// us which venue names the crowd records can carry, so unknown venues
// in the schedule can be flagged before linking rather than after.
type VenueDatasource struct {
	URL   string
	Names []string
}

var (
	venueInstance *VenueDatasource
	venueOnce     sync.Once
)

// GetVenueInstance returns the singleton instance of VenueDatasource
func GetVenueInstance() *VenueDatasource {
	venueOnce.Do(func() {
		venueInstance = &VenueDatasource{
			URL: Config.VenueDirectoryURL,
		}
	})
	return venueInstance
}

// GetVenueNames returns the venue names listed in the source's venue
// directory. Failure here is not fatal: the directory is diagnostic
// only, so callers get an empty slice and a warning instead.
func (v *VenueDatasource) GetVenueNames() []string {
	if v.Names != nil {
		return v.Names
	}

	cacheFilename := Config.CachePath + "venues.html"

	var raw []byte
	if cacheData, err := os.ReadFile(cacheFilename); err == nil {
		logger.Debug("Loaded venue directory from cache:", cacheFilename)
		raw = cacheData
	} else {
		logger.Info("Fetching venue directory from", v.URL)
		raw, err = transport.Get(v.URL)
		if err != nil {
			logger.Warn("Failed to fetch venue directory, venue cross-check disabled:", err)
			v.Names = []string{}
			return v.Names
		}
		if err := os.WriteFile(cacheFilename, raw, 0644); err != nil {
			logger.Warn("Failed to write cache file", cacheFilename, err)
		}
	}

	names, err := ExtractVenueNames(raw)
	if err != nil {
		logger.Warn("Failed to parse venue directory, venue cross-check disabled:", err)
		v.Names = []string{}
		return v.Names
	}
	v.Names = names
	return v.Names
}

// ExtractVenueNames pulls the venue names out of the directory page.
// Each venue is an anchor into a per-venue stats page.
func ExtractVenueNames(html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("error parsing venue directory HTML: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	doc.Find("a").Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !strings.HasSuffix(href, ".html") {
			return
		}
		name := strings.TrimSpace(s.Text())
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	})

	if len(names) == 0 {
		return nil, fmt.Errorf("no venue links found in directory page")
	}
	return names, nil
}

// VerifyVenues warns about schedule venues that appear neither in the
// lookup tables nor in the scraped directory. These are the venues most
// likely to produce unmatched records downstream.
func VerifyVenues(matches []*Match, directory []string, data *Data) {
	known := make(map[string]bool, len(directory))
	for _, name := range directory {
		known[strings.ToLower(name)] = true
	}

	warned := make(map[string]bool)
	for _, m := range matches {
		if m.Venue == "" || warned[m.Venue] {
			continue
		}
		if _, err := data.GetDataForVenue(m.Venue); err == nil {
			continue
		}
		if len(known) > 0 && known[strings.ToLower(m.Venue)] {
			continue
		}
		warned[m.Venue] = true
		logger.Warn("Venue not in lookup tables or venue directory:", m.Venue)
	}
}
