package importer

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/swarmtrail/api-go/config"
	"github.com/swarmtrail/api-go/models"
)

// Config carries the inputs of one pipeline run.
type Config struct {
	// ExportDir is the directory holding the export's JSON documents.
	ExportDir string
	// DBPath is the SQLite store the run writes into.
	DBPath string
	// PixDir is the directory photo files are stored under, recorded on
	// photo rows as their local path.
	PixDir string
}

// Importer runs the ingestion pipeline: one linear pass over the export,
// one family at a time, in a fixed dependency order. Venues run first so
// every later family can reference resolved venues; nothing else orders the
// families beyond parent-before-child. There is no retry or resume state.
type Importer struct {
	cfg    Config
	store  config.Store
	reader Reader
	rec    Reconciler
	log    zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Importer {
	if cfg.PixDir == "" {
		cfg.PixDir = "pix"
	}
	return &Importer{
		cfg:    cfg,
		store:  config.Store{Path: cfg.DBPath},
		reader: Reader{Dir: cfg.ExportDir},
		log:    log,
	}
}

// Run executes the pipeline once. Schema initialization failure is the only
// fatal condition; every other failure is scoped to a family or a record and
// the run keeps going. Each family commits in its own transaction, so a
// crash mid-family loses only that family's uncommitted work.
func (i *Importer) Run(ctx context.Context) (*Report, error) {
	db, err := i.store.Create()
	if err != nil {
		return nil, err
	}
	defer config.Close(db)
	db = db.WithContext(ctx)

	report := newReport()
	i.importVenues(db, report)
	i.importCheckins(db, report)
	i.importPhotos(db, report)
	i.importUsers(db, report)
	i.importVisits(db, report)
	i.importUnconfirmedVisits(db, report)
	i.importTips(db, report)
	i.importComments(db, report)
	i.importVenueRatings(db, report)
	i.importExpertise(db, report)
	i.importPlans(db, report)
	i.importShares(db, report)

	i.log.Info().
		Str("run_id", report.RunID).
		Int("total_inserted", report.TotalInserted()).
		Msg("import run finished")
	return report, nil
}

// importVenues merges venue sightings out of the four families that carry
// them. Each source is read independently: a missing or malformed source
// skips just that source, and the family counts as present if any source is.
func (i *Importer) importVenues(db *gorm.DB, report *Report) {
	fr := report.start("venues")

	type venueSource struct {
		name string
		read func() ([]VenueObservation, bool, error)
	}
	sources := []venueSource{
		{"checkins", func() ([]VenueObservation, bool, error) {
			items, found, err := i.reader.Checkins()
			return observe(items, venueFromCheckin), found, err
		}},
		{"unconfirmed_visits", func() ([]VenueObservation, bool, error) {
			items, found, err := i.reader.UnconfirmedVisits()
			return observe(items, venueFromUnconfirmedVisit), found, err
		}},
		{"tips", func() ([]VenueObservation, bool, error) {
			items, found, err := i.reader.Tips()
			return observe(items, venueFromTip), found, err
		}},
		{"venueRatings", func() ([]VenueObservation, bool, error) {
			items, found, err := i.reader.VenueRatings()
			return observe(items, venueFromRating), found, err
		}},
	}

	anyFound := false
	for _, src := range sources {
		obs, found, err := src.read()
		if err != nil {
			i.log.Warn().Err(err).Str("source", src.name).Msg("venue source unreadable, skipping it")
			continue
		}
		if !found {
			i.log.Info().Str("source", src.name).Msg("venue source absent")
			continue
		}
		anyFound = true
		txErr := db.Transaction(func(tx *gorm.DB) error {
			for _, o := range obs {
				outcome, err := i.rec.Apply(tx, o)
				if err != nil {
					fr.Errors++
					i.log.Warn().Err(err).Str("venue_id", o.ID).Msg("skipping venue record")
					continue
				}
				switch outcome {
				case VenueInserted:
					fr.Inserted++
				case VenueFilled:
					fr.Filled++
				}
			}
			return nil
		})
		if txErr != nil {
			i.log.Error().Err(txErr).Str("source", src.name).Msg("venue source import failed")
		}
	}
	if !anyFound {
		fr.skip()
	}
	i.logFamily(fr)
}

// observe maps source items to venue observations, dropping items without a
// venue id.
func observe[T any](items []T, build func(T) (VenueObservation, bool)) []VenueObservation {
	var out []VenueObservation
	for _, item := range items {
		if obs, ok := build(item); ok {
			out = append(out, obs)
		}
	}
	return out
}

func (i *Importer) importCheckins(db *gorm.DB, report *Report) {
	items, found, err := i.reader.Checkins()
	fr := report.start("checkins")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newCheckin(item)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

func (i *Importer) importPhotos(db *gorm.DB, report *Report) {
	items, found, err := i.reader.Photos()
	fr := report.start("photos")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newPhoto(item, i.cfg.PixDir)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

// importUsers loads the self record and the friend edges out of the single
// users.json document.
func (i *Importer) importUsers(db *gorm.DB, report *Report) {
	doc, found, err := i.reader.Users()
	fr := report.start("users")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		if doc.Self == nil || doc.Self.ID == "" {
			return nil
		}
		rec := newUser(*doc.Self)
		i.write(tx, fr, rec.ID, &rec)
		for _, friend := range doc.Friends.Items {
			edge := newFriend(doc.Self.ID, friend)
			i.write(tx, fr, edge.FriendID, &edge)
		}
		return nil
	}))
}

func (i *Importer) importVisits(db *gorm.DB, report *Report) {
	items, found, err := i.reader.Visits()
	fr := report.start("visits")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newVisit(item)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

func (i *Importer) importUnconfirmedVisits(db *gorm.DB, report *Report) {
	items, found, err := i.reader.UnconfirmedVisits()
	fr := report.start("unconfirmed_visits")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newUnconfirmedVisit(item)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

func (i *Importer) importTips(db *gorm.DB, report *Report) {
	items, found, err := i.reader.Tips()
	fr := report.start("tips")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newTip(item)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

func (i *Importer) importComments(db *gorm.DB, report *Report) {
	items, found, err := i.reader.Comments()
	fr := report.start("comments")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newComment(item)
			// Comments have no external id, so the generated key can never
			// collide. Re-runs stay no-ops by treating the full field tuple
			// as the identity instead.
			var seen int64
			err := tx.Model(&models.Comment{}).
				Where("user_id IS ? AND time IS ? AND comment IS ?", rec.UserID, rec.Time, rec.Comment).
				Count(&seen).Error
			if err != nil {
				fr.Errors++
				i.log.Warn().Err(err).Str("family", fr.Family).Msg("skipping record")
				continue
			}
			if seen > 0 {
				continue
			}
			i.write(tx, fr, "", &rec)
		}
		return nil
	}))
}

func (i *Importer) importVenueRatings(db *gorm.DB, report *Report) {
	items, found, err := i.reader.VenueRatings()
	fr := report.start("venue_ratings")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newVenueRating(item)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

func (i *Importer) importExpertise(db *gorm.DB, report *Report) {
	items, found, err := i.reader.Expertise()
	fr := report.start("expertise")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newExpertise(item)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

func (i *Importer) importPlans(db *gorm.DB, report *Report) {
	items, found, err := i.reader.Plans()
	fr := report.start("plans")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newPlan(item)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

func (i *Importer) importShares(db *gorm.DB, report *Report) {
	items, found, err := i.reader.Shares()
	fr := report.start("shares")
	if !i.begin(fr, found, err) {
		return
	}
	i.commit(fr, db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			rec := newShare(item)
			i.write(tx, fr, rec.ID, &rec)
		}
		return nil
	}))
}

// begin settles the read outcome of a family. A parse failure abandons the
// family, a missing file skips it; either way the run moves on.
func (i *Importer) begin(fr *FamilyResult, found bool, err error) bool {
	if err != nil {
		fr.fail()
		i.log.Warn().Err(err).Str("family", fr.Family).Msg("family import abandoned")
		return false
	}
	if !found {
		fr.skip()
		i.log.Info().Str("family", fr.Family).Msg("no source file, skipping family")
		return false
	}
	return true
}

// write applies an insert-or-ignore for one record, logging and counting
// failures without stopping the family's loop.
func (i *Importer) write(tx *gorm.DB, fr *FamilyResult, id string, record any) {
	inserted, err := insertIgnore(tx, record)
	if err != nil {
		fr.Errors++
		i.log.Warn().Err(err).Str("family", fr.Family).Str("id", id).Msg("skipping record")
		return
	}
	if inserted {
		fr.Inserted++
	}
}

func (i *Importer) commit(fr *FamilyResult, txErr error) {
	if txErr != nil {
		fr.fail()
		i.log.Error().Err(txErr).Str("family", fr.Family).Msg("family transaction failed")
		return
	}
	i.logFamily(fr)
}

func (i *Importer) logFamily(fr *FamilyResult) {
	i.log.Info().
		Str("family", fr.Family).
		Str("status", string(fr.Status)).
		Int("inserted", fr.Inserted).
		Int("filled", fr.Filled).
		Int("errors", fr.Errors).
		Msg("family finished")
}
