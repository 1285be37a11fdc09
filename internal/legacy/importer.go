// Package legacy implements the one-time import of the pre-relational
// key/value data set into the structured schema.
package legacy

import (
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/tidwall/gjson"

	"github.com/example/typist/internal/database"
	"github.com/example/typist/pkg/models"
)

// Importer ingests a legacy payload through the entity repositories inside
// one transaction. Every insert is insert-if-absent, so running the same
// payload twice leaves the store unchanged.
type Importer struct {
	db       *database.Database
	users    *database.UserRepository
	settings *database.SettingsRepository
	stats    *database.StatsRepository
	lessons  *database.LessonProgressRepository
	courses  *database.CourseProgressRepository
	snippets *database.SnippetRepository
	daily    *database.DailyResultRepository
	activity *database.ActivityRepository
}

// NewImporter creates an importer over the shared storage handle
func NewImporter(db *database.Database) *Importer {
	return &Importer{
		db:       db,
		users:    database.NewUserRepository(db),
		settings: database.NewSettingsRepository(db),
		stats:    database.NewStatsRepository(db),
		lessons:  database.NewLessonProgressRepository(db),
		courses:  database.NewCourseProgressRepository(db),
		snippets: database.NewSnippetRepository(db),
		daily:    database.NewDailyResultRepository(db),
		activity: database.NewActivityRepository(db),
	}
}

// Result summarizes what an import run processed. Skipped collects notes
// for records dropped by the tolerant-parsing policy; they are a defined
// degradation, not failures.
type Result struct {
	Users        int
	Settings     int
	Stats        int
	LessonRows   int
	CourseRows   int
	Snippets     int
	ActivityRows int
	DailyResults int
	Skipped      []string
}

func (res *Result) skip(category, key, reason string) {
	res.Skipped = append(res.Skipped, fmt.Sprintf("%s[%s]: %s", category, key, reason))
}

// NeedsMigration reports whether the one-time import should run: true
// exactly when no users exist. Deliberately coarse; idempotency of the
// import itself is the real safety net.
func (im *Importer) NeedsMigration() (bool, error) {
	count, err := im.users.Count()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Import runs the whole pipeline in one transaction. Parsing problems are
// recovered locally per record; only storage failures roll everything back.
func (im *Importer) Import(payload *models.LegacyPayload) (*Result, error) {
	result := &Result{}
	err := im.db.WithTx(func(tx *sqlx.Tx) error {
		for _, user := range payload.Users {
			if err := im.users.ImportTx(tx, user); err != nil {
				return err
			}
			result.Users++
		}

		// Blob maps may reference user ids that exist neither in the
		// payload nor in the store; those entries are skipped rather
		// than tripping foreign keys mid-transaction.
		known, err := knownUserIDs(tx)
		if err != nil {
			return err
		}

		if err := im.importSettings(tx, payload.Settings, known, result); err != nil {
			return err
		}
		if err := im.importStats(tx, payload.Stats, known, result); err != nil {
			return err
		}
		if err := im.importLessons(tx, payload.Progress, known, result); err != nil {
			return err
		}
		if err := im.importCourses(tx, payload.Courses, known, result); err != nil {
			return err
		}
		if err := im.importSnippets(tx, payload.Snippets, known, result); err != nil {
			return err
		}
		if err := im.importActivity(tx, payload.Activity, known, result); err != nil {
			return err
		}

		for _, item := range payload.DailyResults {
			if !known[item.UserID] {
				result.skip("dailyResults", strconv.FormatInt(item.UserID, 10), "unknown user")
				continue
			}
			if err := im.daily.ImportTx(tx, item); err != nil {
				return err
			}
			result.DailyResults++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func knownUserIDs(tx *sqlx.Tx) (map[int64]bool, error) {
	var ids []int64
	if err := tx.Select(&ids, "SELECT id FROM users"); err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	known := make(map[int64]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return known, nil
}

// eachBlob walks a user-keyed blob map, yielding only entries with a
// parseable user id that is present in the store and a parseable JSON blob.
// Everything else becomes a skip note on result.
func eachBlob(blobs map[string]*string, known map[int64]bool, category string, result *Result, fn func(userID int64, v gjson.Result) error) error {
	for key, blob := range blobs {
		userID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			result.skip(category, key, "unparseable user id")
			continue
		}
		if blob == nil {
			continue
		}
		if !known[userID] {
			result.skip(category, key, "unknown user")
			continue
		}
		if !gjson.Valid(*blob) {
			result.skip(category, key, "malformed JSON")
			continue
		}
		if err := fn(userID, gjson.Parse(*blob)); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) importSettings(tx *sqlx.Tx, blobs map[string]*string, known map[int64]bool, result *Result) error {
	// Settings blobs are stored verbatim, so only the user id needs to
	// check out; the blob itself is never parsed.
	for key, blob := range blobs {
		userID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			result.skip("settings", key, "unparseable user id")
			continue
		}
		if blob == nil {
			continue
		}
		if !known[userID] {
			result.skip("settings", key, "unknown user")
			continue
		}
		if err := im.settings.ImportTx(tx, userID, *blob); err != nil {
			return err
		}
		result.Settings++
	}
	return nil
}

func (im *Importer) importStats(tx *sqlx.Tx, blobs map[string]*string, known map[int64]bool, result *Result) error {
	return eachBlob(blobs, known, "stats", result, func(userID int64, v gjson.Result) error {
		stats := parseStats(v)
		if err := im.stats.ImportTx(tx, userID, &stats); err != nil {
			return err
		}
		result.Stats++
		return nil
	})
}

func (im *Importer) importLessons(tx *sqlx.Tx, blobs map[string]*string, known map[int64]bool, result *Result) error {
	return eachBlob(blobs, known, "progress", result, func(userID int64, v gjson.Result) error {
		var txErr error
		v.ForEach(func(lessonID, entry gjson.Result) bool {
			item := parseLessonProgress(lessonID.String(), entry)
			if err := im.lessons.ImportTx(tx, userID, item); err != nil {
				txErr = err
				return false
			}
			result.LessonRows++
			return true
		})
		return txErr
	})
}

func (im *Importer) importCourses(tx *sqlx.Tx, blobs map[string]*string, known map[int64]bool, result *Result) error {
	return eachBlob(blobs, known, "courses", result, func(userID int64, v gjson.Result) error {
		var txErr error
		v.ForEach(func(courseID, entry gjson.Result) bool {
			item := parseCourseProgress(courseID.String(), entry)
			if err := im.courses.ImportTx(tx, userID, item); err != nil {
				txErr = err
				return false
			}
			result.CourseRows++
			return true
		})
		return txErr
	})
}

func (im *Importer) importSnippets(tx *sqlx.Tx, blobs map[string]*string, known map[int64]bool, result *Result) error {
	return eachBlob(blobs, known, "snippets", result, func(userID int64, v gjson.Result) error {
		var txErr error
		v.ForEach(func(_, entry gjson.Result) bool {
			item := parseSnippet(entry)
			if item.ID == "" {
				// A snippet without an id has no stable identity to
				// dedupe on; dropping it keeps re-runs idempotent.
				result.skip("snippets", strconv.FormatInt(userID, 10), "snippet without id")
				return true
			}
			if err := im.snippets.ImportTx(tx, userID, item); err != nil {
				txErr = err
				return false
			}
			result.Snippets++
			return true
		})
		return txErr
	})
}

func (im *Importer) importActivity(tx *sqlx.Tx, blobs map[string]*string, known map[int64]bool, result *Result) error {
	return eachBlob(blobs, known, "activity", result, func(userID int64, v gjson.Result) error {
		var txErr error
		v.ForEach(func(date, entry gjson.Result) bool {
			item := parseActivity(date.String(), entry)
			if err := im.activity.ImportTx(tx, userID, item); err != nil {
				txErr = err
				return false
			}
			result.ActivityRows++
			return true
		})
		return txErr
	})
}
