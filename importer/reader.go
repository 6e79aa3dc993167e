package importer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/swarmtrail/api-go/types"
)

// Reader locates and parses the JSON documents of one export directory.
// Check-ins and photos are split across numbered files matched by glob; every
// other family is a single fixed filename. A missing file is an empty result,
// not an error. The found return reports whether any file for the family
// exists, so the orchestrator can tell "skipped" apart from "empty".
type Reader struct {
	Dir string
}

// readDocument decodes one export file into doc. found is false when the
// file does not exist on disk.
func readDocument(path string, doc any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return true, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// Checkins returns the items of every checkins*.json file. File order is
// filesystem order; callers must not depend on it.
func (r Reader) Checkins() (items []types.CheckinItem, found bool, err error) {
	files, err := filepath.Glob(filepath.Join(r.Dir, "checkins*.json"))
	if err != nil {
		return nil, false, err
	}
	for _, f := range files {
		var doc types.CheckinsDocument
		if _, err := readDocument(f, &doc); err != nil {
			return nil, true, err
		}
		items = append(items, doc.Items...)
	}
	return items, len(files) > 0, nil
}

// Photos returns the items of every photos*.json file.
func (r Reader) Photos() (items []types.PhotoItem, found bool, err error) {
	files, err := filepath.Glob(filepath.Join(r.Dir, "photos*.json"))
	if err != nil {
		return nil, false, err
	}
	for _, f := range files {
		var doc types.PhotosDocument
		if _, err := readDocument(f, &doc); err != nil {
			return nil, true, err
		}
		items = append(items, doc.Items...)
	}
	return items, len(files) > 0, nil
}

func (r Reader) Users() (*types.UsersDocument, bool, error) {
	var doc types.UsersDocument
	found, err := readDocument(filepath.Join(r.Dir, "users.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return &doc, true, nil
}

func (r Reader) Visits() ([]types.VisitItem, bool, error) {
	var doc types.VisitsDocument
	found, err := readDocument(filepath.Join(r.Dir, "visits.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return doc.Items, true, nil
}

func (r Reader) UnconfirmedVisits() ([]types.UnconfirmedVisitItem, bool, error) {
	var doc types.UnconfirmedVisitsDocument
	found, err := readDocument(filepath.Join(r.Dir, "unconfirmed_visits.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return doc.Items, true, nil
}

func (r Reader) Tips() ([]types.TipItem, bool, error) {
	var doc types.TipsDocument
	found, err := readDocument(filepath.Join(r.Dir, "tips.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return doc.Items, true, nil
}

func (r Reader) Comments() ([]types.CommentItem, bool, error) {
	var doc types.CommentsDocument
	found, err := readDocument(filepath.Join(r.Dir, "comments.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return doc.Items, true, nil
}

// VenueRatings reads venueRatings.json, whose top-level list key is
// "venueLikes" rather than the usual "items".
func (r Reader) VenueRatings() ([]types.VenueLikeItem, bool, error) {
	var doc types.VenueRatingsDocument
	found, err := readDocument(filepath.Join(r.Dir, "venueRatings.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return doc.VenueLikes, true, nil
}

func (r Reader) Expertise() ([]types.ExpertiseItem, bool, error) {
	var doc types.ExpertiseDocument
	found, err := readDocument(filepath.Join(r.Dir, "expertise.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return doc.Items, true, nil
}

func (r Reader) Plans() ([]types.PlanItem, bool, error) {
	var doc types.PlansDocument
	found, err := readDocument(filepath.Join(r.Dir, "plans.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return doc.Items, true, nil
}

func (r Reader) Shares() ([]types.ShareItem, bool, error) {
	var doc types.SharesDocument
	found, err := readDocument(filepath.Join(r.Dir, "shares.json"), &doc)
	if err != nil || !found {
		return nil, found, err
	}
	return doc.Items, true, nil
}
