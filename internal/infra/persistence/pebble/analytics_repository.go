package pebble

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"linkvault/internal/domain/entity"
	"linkvault/internal/domain/repository"
	"linkvault/internal/errors"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
)

// Key layout. Every value is a decimal string except events, which hold JSON.
// {doc} is query-escaped so a document id can never run into the next segment.
//
//	views:{doc}                  total views
//	clicks:{doc}:{link}          clicks per link
//	daily:{doc}:{YYYY-MM-DD}     views per UTC day
//	loc:{doc}:{country}          views per country
//	ref:{doc}:{referrer}         views per referrer
//	event:{doc}:{seq}            JSON(AnalyticsEvent), seq zero padded
//	meta:seq                     last event sequence number
const (
	prefixViews  = "views"
	prefixClicks = "clicks"
	prefixDaily  = "daily"
	prefixLoc    = "loc"
	prefixRef    = "ref"
	prefixEvent  = "event"
	keySequence  = "meta:seq"

	dateLayout = "2006-01-02"
)

// analyticsRepository implements repository.AnalyticsRepository.
type analyticsRepository struct {
	db  *pebble.DB
	mu  sync.Mutex
	seq uint64
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *pebble.DB) (repository.AnalyticsRepository, error) {
	seq, err := getInt(db, keySequence)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load event sequence")
	}

	return &analyticsRepository{db: db, seq: uint64(seq)}, nil
}

// RecordView increments the view counters of documentID in a single batch.
func (repo *analyticsRepository) RecordView(ctx context.Context, documentID string, visit entity.Visit, at time.Time) (*entity.AnalyticsEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	event := &entity.AnalyticsEvent{
		ID:         uuid.NewString(),
		Type:       entity.EventView,
		DocumentID: documentID,
		Country:    visit.Country,
		Referrer:   visit.Referrer,
		At:         at.UTC(),
	}

	keys := []string{
		join(prefixViews, docSegment(documentID)),
		join(prefixDaily, docSegment(documentID), event.At.Format(dateLayout)),
	}
	if visit.Country != "" {
		keys = append(keys, join(prefixLoc, docSegment(documentID), visit.Country))
	}
	if visit.Referrer != "" {
		keys = append(keys, join(prefixRef, docSegment(documentID), visit.Referrer))
	}

	if err := repo.apply(keys, event); err != nil {
		return nil, errors.Wrap(err, "failed to record view")
	}

	return event, nil
}

// RecordClick increments the (documentID, linkID) click counter.
func (repo *analyticsRepository) RecordClick(ctx context.Context, documentID, linkID string, at time.Time) (*entity.AnalyticsEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	event := &entity.AnalyticsEvent{
		ID:         uuid.NewString(),
		Type:       entity.EventClick,
		DocumentID: documentID,
		LinkID:     linkID,
		At:         at.UTC(),
	}

	if err := repo.apply([]string{join(prefixClicks, docSegment(documentID), linkID)}, event); err != nil {
		return nil, errors.Wrap(err, "failed to record click")
	}

	return event, nil
}

// apply increments every counter key by one and appends event, committing all writes together.
func (repo *analyticsRepository) apply(counterKeys []string, event *entity.AnalyticsEvent) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	batch := repo.db.NewBatch()
	defer batch.Close()

	for _, key := range counterKeys {
		current, err := getInt(repo.db, key)
		if err != nil {
			return err
		}
		if err := batch.Set([]byte(key), []byte(strconv.FormatInt(current+1, 10)), nil); err != nil {
			return errors.WithStack(err)
		}
	}

	seq := repo.seq + 1
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := batch.Set([]byte(eventKey(event.DocumentID, seq)), data, nil); err != nil {
		return errors.WithStack(err)
	}
	if err := batch.Set([]byte(keySequence), []byte(strconv.FormatUint(seq, 10)), nil); err != nil {
		return errors.WithStack(err)
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return errors.WithStack(err)
	}
	repo.seq = seq

	return nil
}

// GetCounters reads every counter of documentID.
func (repo *analyticsRepository) GetCounters(ctx context.Context, documentID string) (*entity.AnalyticsCounters, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	counters := entity.NewAnalyticsCounters()

	views, err := getInt(repo.db, join(prefixViews, docSegment(documentID)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read views")
	}
	counters.Views = views

	scans := []struct {
		prefix string
		into   map[string]int64
	}{
		{prefixClicks, counters.Clicks},
		{prefixDaily, counters.Daily},
		{prefixLoc, counters.Locations},
		{prefixRef, counters.Referrers},
	}
	for _, scan := range scans {
		if err := repo.scanCounters(join(scan.prefix, docSegment(documentID))+":", scan.into); err != nil {
			return nil, errors.Wrapf(err, "failed to read %s counters", scan.prefix)
		}
	}

	return counters, nil
}

func (repo *analyticsRepository) scanCounters(prefix string, into map[string]int64) error {
	iter, err := repo.db.NewIter(prefixOptions(prefix))
	if err != nil {
		return errors.WithStack(err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		value, err := strconv.ParseInt(string(iter.Value()), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "corrupt counter %s", iter.Key())
		}
		into[strings.TrimPrefix(string(iter.Key()), prefix)] = value
	}

	return errors.WithStack(iter.Error())
}

// ListEvents returns the events of documentID in write order.
func (repo *analyticsRepository) ListEvents(ctx context.Context, documentID string) ([]entity.AnalyticsEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	iter, err := repo.db.NewIter(prefixOptions(join(prefixEvent, docSegment(documentID)) + ":"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer iter.Close()

	events := make([]entity.AnalyticsEvent, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		var event entity.AnalyticsEvent
		if err := json.Unmarshal(iter.Value(), &event); err != nil {
			return nil, errors.Wrapf(err, "corrupt event %s", iter.Key())
		}
		events = append(events, event)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.WithStack(err)
	}

	return events, nil
}

func join(parts ...string) string {
	return strings.Join(parts, ":")
}

func docSegment(documentID string) string {
	return url.QueryEscape(documentID)
}

func eventKey(documentID string, seq uint64) string {
	return join(prefixEvent, docSegment(documentID), fmt.Sprintf("%020d", seq))
}

func getInt(db *pebble.DB, key string) (int64, error) {
	value, closer, err := db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer closer.Close()

	n, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "corrupt counter %s", key)
	}

	return n, nil
}

func prefixOptions(prefix string) *pebble.IterOptions {
	return &pebble.IterOptions{
		LowerBound: []byte(prefix),
		UpperBound: upperBound([]byte(prefix)),
	}
}

// upperBound returns the smallest key greater than every key starting with prefix.
func upperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}

	return nil
}
