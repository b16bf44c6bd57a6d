package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crewtime/models"

	"gorm.io/gorm"
)

// ErrNotFound reports a referenced entry id with no matching row.
var ErrNotFound = errors.New("entry not found")

// Limits on the two listing paths, matching what the client renders.
const (
	latestLimit   = 15
	filteredLimit = 25
)

// Store is the persistence layer for entries and users. It holds the shared
// database handle, opened once at process start and injected into request
// handlers.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CreateEntry writes the entry row and its child rows as one transaction and
// returns the newly assigned id. On failure no partial rows persist.
func (s *Store) CreateEntry(ctx context.Context, entry models.Entry, times []models.EntryEmployeeTime, hours []models.EntryEmployeeHours) (uint, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return insertChildren(tx, entry.ID, times, hours)
	})
	if err != nil {
		return 0, fmt.Errorf("create entry: %w", err)
	}
	return entry.ID, nil
}

// GetEntry loads the entry row and both child row sets.
func (s *Store) GetEntry(ctx context.Context, id uint) (models.Entry, []models.EntryEmployeeTime, []models.EntryEmployeeHours, error) {
	var entry models.Entry
	if err := s.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entry, nil, nil, ErrNotFound
		}
		return entry, nil, nil, fmt.Errorf("get entry: %w", err)
	}

	var times []models.EntryEmployeeTime
	if err := s.db.WithContext(ctx).Where("entry_id = ?", id).Find(&times).Error; err != nil {
		return entry, nil, nil, fmt.Errorf("get entry times: %w", err)
	}
	var hours []models.EntryEmployeeHours
	if err := s.db.WithContext(ctx).Where("entry_id = ?", id).Find(&hours).Error; err != nil {
		return entry, nil, nil, fmt.Errorf("get entry hours: %w", err)
	}
	return entry, times, hours, nil
}

// UpdateEntry overwrites the header fields and replaces the full child row
// sets in one transaction. Existing child rows are deleted before the new
// set is inserted, so a prior worker set never bleeds into the new one.
func (s *Store) UpdateEntry(ctx context.Context, id uint, entry models.Entry, times []models.EntryEmployeeTime, hours []models.EntryEmployeeHours) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Entry
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		entry.ID = id
		entry.CreatedAt = existing.CreatedAt
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return insertChildren(tx, id, times, hours)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// DeleteEntry removes the entry row together with its child rows, leaving no
// dangling child references.
func (s *Store) DeleteEntry(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Entry{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// ListLatest returns the most recent entries by insertion id, newest first.
func (s *Store) ListLatest(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	if err := s.db.WithContext(ctx).Order("id desc").Limit(latestLimit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list latest entries: %w", err)
	}
	return entries, nil
}

// ListFiltered returns entries matching every provided predicate, newest
// date first. A weekStart filter covers the seven days from weekStart
// inclusive.
func (s *Store) ListFiltered(ctx context.Context, filter models.EntryFilter) ([]models.Entry, error) {
	query := s.db.WithContext(ctx).Model(&models.Entry{})
	if filter.ForemanID != 0 {
		query = query.Where("foreman_id = ?", filter.ForemanID)
	}
	if filter.PropertyName != "" {
		query = query.Where("property_name = ?", filter.PropertyName)
	}
	if filter.WeekStart != "" {
		start, err := time.Parse("2006-01-02", filter.WeekStart)
		if err != nil {
			return nil, fmt.Errorf("list entries: bad week start %q: %w", filter.WeekStart, err)
		}
		weekEnd := start.AddDate(0, 0, 6).Format("2006-01-02")
		query = query.Where("date BETWEEN ? AND ?", filter.WeekStart, weekEnd)
	}

	var entries []models.Entry
	if err := query.Order("date desc").Limit(filteredLimit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListForemen returns every known user as a foreman choice.
func (s *Store) ListForemen(ctx context.Context) ([]models.Foreman, error) {
	var foremen []models.Foreman
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Select("id, username").
		Order("username asc").
		Scan(&foremen).Error
	if err != nil {
		return nil, fmt.Errorf("list foremen: %w", err)
	}
	return foremen, nil
}

// ListDistinctProperties returns the distinct non-empty property names seen
// across all entries.
func (s *Store) ListDistinctProperties(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&models.Entry{}).
		Distinct().
		Where("property_name <> ''").
		Order("property_name asc").
		Pluck("property_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return names, nil
}

// ClearEntries wipes all entry data, children first, in one transaction.
// Used by the offline maintenance command only.
func (s *Store) ClearEntries(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.EntryEmployeeTime{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.EntryEmployeeHours{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Entry{}).Error
	})
	if err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}

func insertChildren(tx *gorm.DB, entryID uint, times []models.EntryEmployeeTime, hours []models.EntryEmployeeHours) error {
	for i := range times {
		times[i].ID = 0
		times[i].EntryID = entryID
	}
	for i := range hours {
		hours[i].ID = 0
		hours[i].EntryID = entryID
	}
	if len(times) > 0 {
		if err := tx.Create(&times).Error; err != nil {
			return err
		}
	}
	if len(hours) > 0 {
		if err := tx.Create(&hours).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteChildren(tx *gorm.DB, entryID uint) error {
	if err := tx.Where("entry_id = ?", entryID).Delete(&models.EntryEmployeeTime{}).Error; err != nil {
		return err
	}
	return tx.Where("entry_id = ?", entryID).Delete(&models.EntryEmployeeHours{}).Error
}
