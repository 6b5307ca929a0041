// Package service contains likes workflows
package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	perr "setlist/internal/platform/errors"
	"setlist/internal/platform/logger"
	"setlist/internal/services/api/likes/domain"
)

// Service defines the service contract for likes
type Service interface{ domain.ServicePort }

// Svc writes through every configured store and reads from the
// preferred one, degrading to the others and finally to an in-process
// journal
type Svc struct {
	stores   []domain.Store
	readPref string
	journal  *journal
	log      logger.Logger
}

// New creates a likes service over zero or more stores. readPref names
// the store tried first on reads; unknown names fall back to store
// order. With no stores the service runs journal-only
func New(stores []domain.Store, readPref string) *Svc {
	return &Svc{
		stores:   stores,
		readPref: readPref,
		journal:  newJournal(),
		log:      *logger.Named("likes"),
	}
}

// RecordLike writes the like to every store, each in its own
// transaction. A store failure is absorbed with a diagnostic; only when
// every store fails does the call error
func (s *Svc) RecordLike(ctx context.Context, userID, songName string) error {
	userID = strings.TrimSpace(userID)
	songName = strings.TrimSpace(songName)
	if userID == "" || songName == "" {
		return perr.Newf(perr.ErrorCodeInvalidArgument, "user id and song name are required")
	}

	var ok int
	for _, st := range s.stores {
		if err := st.Upsert(ctx, userID, songName); err != nil {
			s.log.Warn().Err(err).Str("store", st.Name()).Str("user", userID).Msg("like write failed")
			continue
		}
		ok++
	}
	if ok == 0 && len(s.stores) > 0 {
		return perr.Persistencef("like write failed in all %d stores", len(s.stores))
	}
	s.journal.add(userID, songName, time.Now().UTC())
	return nil
}

// LoadLikes reads from the preferred store, then any other store, then
// the journal. A degraded read is logged, never surfaced
func (s *Svc) LoadLikes(ctx context.Context, userID string) []domain.UserLikeRecord {
	for _, st := range s.readOrder() {
		recs, err := st.List(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Str("store", st.Name()).Str("user", userID).Msg("like read failed, degrading")
			continue
		}
		return recs
	}
	return s.journal.list(userID)
}

func (s *Svc) readOrder() []domain.Store {
	out := make([]domain.Store, 0, len(s.stores))
	for _, st := range s.stores {
		if st.Name() == s.readPref {
			out = append(out, st)
		}
	}
	for _, st := range s.stores {
		if st.Name() != s.readPref {
			out = append(out, st)
		}
	}
	return out
}

// journal is the in-process fallback of successfully recorded likes
type journal struct {
	mu   sync.RWMutex
	data map[string]map[string]time.Time // user -> song -> first seen
}

func newJournal() *journal {
	return &journal{data: make(map[string]map[string]time.Time)}
}

func (j *journal) add(userID, songName string, at time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	songs, found := j.data[userID]
	if !found {
		songs = make(map[string]time.Time)
		j.data[userID] = songs
	}
	if _, found := songs[songName]; !found {
		songs[songName] = at
	}
}

func (j *journal) list(userID string) []domain.UserLikeRecord {
	j.mu.RLock()
	defer j.mu.RUnlock()
	songs := j.data[userID]
	out := make([]domain.UserLikeRecord, 0, len(songs))
	for song, at := range songs {
		out = append(out, domain.UserLikeRecord{UserID: userID, SongName: song, CreatedAt: at})
	}
	sort.Slice(out, func(i, k int) bool {
		if !out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].CreatedAt.Before(out[k].CreatedAt)
		}
		return out[i].SongName < out[k].SongName
	})
	return out
}
