// Package localstore holds the device-side working copy of a user's data.
//
// The store is the authoritative copy in a local-first setup: every edit
// lands here first and reaches the server only on an explicit push. State
// is persisted as a single JSON file that is rewritten atomically after
// each mutation.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	apperrors "spendly/internal/errors"
	"spendly/internal/models"
	"spendly/internal/snapshot"
	"spendly/internal/uuid"
	"spendly/internal/validator"
)

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrNotSignedIn is returned by operations that need a user id.
var ErrNotSignedIn = errors.New("not signed in; run `spendly login` first")

// state is the on-disk document.
type state struct {
	UserID   string             `json:"userId,omitempty"`
	Theme    Theme              `json:"theme"`
	Expenses []snapshot.Expense `json:"expenses"`
	Budgets  []snapshot.Budget  `json:"budgets"`
	Goals    []snapshot.Goal    `json:"goals"`
	Profile  *snapshot.Profile  `json:"profile,omitempty"`
	SyncedAt *time.Time         `json:"syncedAt,omitempty"`
}

// Store is a file-backed local data set. It is safe for concurrent use.
type Store struct {
	path string
	now  func() time.Time

	mu    sync.RWMutex
	state state
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now, state: state{Theme: ThemeLight}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading local store: %w", err)
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		return nil, fmt.Errorf("decoding local store %s: %w", path, err)
	}
	if s.state.Theme == "" {
		s.state.Theme = ThemeLight
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// UserID returns the signed-in user id, or "" when signed out.
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UserID
}

// Theme returns the display theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}

// SyncedAt returns when the store last completed a push or pull.
func (s *Store) SyncedAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SyncedAt
}

// Data returns a copy of the current data set with budget spent derived
// from expenses.
func (s *Store) Data() *snapshot.Data {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := &snapshot.Data{
		Expenses: append([]snapshot.Expense(nil), s.state.Expenses...),
		Budgets:  snapshot.RecomputeSpent(s.state.Budgets, s.state.Expenses, s.now()),
		Goals:    append([]snapshot.Goal(nil), s.state.Goals...),
	}
	if s.state.Profile != nil {
		p := *s.state.Profile
		d.Profile = &p
	}
	d.Normalize()
	return d
}

// Snapshot returns the push payload for userID.
func (s *Store) Snapshot(userID string) *snapshot.PushRequest {
	d := s.Data()
	return &snapshot.PushRequest{
		UserID:   userID,
		Expenses: d.Expenses,
		Budgets:  d.Budgets,
		Goals:    d.Goals,
		Profile:  d.Profile,
	}
}

// Replace swaps in pulled data. Expenses, budgets and goals are replaced
// wholesale; the profile only when data carries one. Budget spent is
// recomputed from the new expenses.
func (s *Store) Replace(data *snapshot.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.state.Expenses = append([]snapshot.Expense{}, data.Expenses...)
	s.state.Budgets = snapshot.RecomputeSpent(data.Budgets, data.Expenses, now)
	s.state.Goals = append([]snapshot.Goal{}, data.Goals...)
	if data.Profile != nil {
		p := *data.Profile
		s.state.Profile = &p
	}
	s.state.SyncedAt = &now
	return s.saveLocked()
}

// MarkSynced records a successful push.
func (s *Store) MarkSynced() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.state.SyncedAt = &now
	return s.saveLocked()
}

// AddExpense records a new expense. An empty id or date is filled in.
func (s *Store) AddExpense(e snapshot.Expense) (snapshot.Expense, error) {
	e.Category = strings.TrimSpace(e.Category)
	if e.Category == "" {
		return snapshot.Expense{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if e.Amount < 0 {
		return snapshot.Expense{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e.Date == "" {
		e.Date = now.Format(models.DateLayout)
	} else if _, err := models.ParseDate(e.Date); err != nil {
		return snapshot.Expense{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD")
	}
	if e.ID == "" {
		e.ID = uuid.New()
	}
	if e.CreatedAt == nil {
		created := now.UTC()
		e.CreatedAt = &created
	}

	s.state.Expenses = append(s.state.Expenses, e)
	if err := s.saveLocked(); err != nil {
		return snapshot.Expense{}, err
	}
	return e, nil
}

// DeleteExpense removes an expense locally. Deletions are not propagated
// by push.
func (s *Store) DeleteExpense(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.state.Expenses {
		if e.ID == id {
			s.state.Expenses = append(s.state.Expenses[:i], s.state.Expenses[i+1:]...)
			return s.saveLocked()
		}
	}
	return apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf("expense %s not found", id))
}

// SetBudget creates or updates the budget for category. An empty period
// means monthly.
func (s *Store) SetBudget(category string, limit float64, period models.BudgetPeriod) (snapshot.Budget, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return snapshot.Budget{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if limit < 0 {
		return snapshot.Budget{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must not be negative")
	}
	if period == "" {
		period = snapshot.DefaultBudgetPeriod
	}
	if !period.Valid() {
		return snapshot.Budget{}, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown budget period %q", period))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var b snapshot.Budget
	idx := -1
	for i := range s.state.Budgets {
		if s.state.Budgets[i].Category == category {
			idx = i
			break
		}
	}
	if idx >= 0 {
		b = s.state.Budgets[idx]
	} else {
		b = snapshot.Budget{ID: uuid.New(), Category: category}
	}
	b.Limit = limit
	b.Period = string(period)
	b.Spent = snapshot.SpentFor(b, s.state.Expenses, s.now())

	if idx >= 0 {
		s.state.Budgets[idx] = b
	} else {
		s.state.Budgets = append(s.state.Budgets, b)
	}
	if err := s.saveLocked(); err != nil {
		return snapshot.Budget{}, err
	}
	return b, nil
}

// BudgetStatus returns every budget with spent derived from the current
// expenses.
func (s *Store) BudgetStatus() []snapshot.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot.RecomputeSpent(s.state.Budgets, s.state.Expenses, s.now())
}

// AddGoal records a new savings goal.
func (s *Store) AddGoal(g snapshot.Goal) (snapshot.Goal, error) {
	g.Name = strings.TrimSpace(g.Name)
	if g.Name == "" {
		return snapshot.Goal{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if g.TargetAmount < 0 || g.CurrentAmount < 0 {
		return snapshot.Goal{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts must not be negative")
	}
	if g.Deadline != "" {
		if _, err := models.ParseDate(g.Deadline); err != nil {
			return snapshot.Goal{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "deadline must be YYYY-MM-DD")
		}
	}
	if g.ID == "" {
		g.ID = uuid.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Goals = append(s.state.Goals, g)
	if err := s.saveLocked(); err != nil {
		return snapshot.Goal{}, err
	}
	return g, nil
}

// Contribute adds amount to a goal's current amount.
func (s *Store) Contribute(goalID string, amount float64) (snapshot.Goal, error) {
	if amount <= 0 {
		return snapshot.Goal{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "contribution must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Goals {
		if s.state.Goals[i].ID != goalID {
			continue
		}
		g := &s.state.Goals[i]
		g.CurrentAmount = snapshot.ToFloat(snapshot.ToDecimal(g.CurrentAmount).Add(snapshot.ToDecimal(amount)))
		if err := s.saveLocked(); err != nil {
			return snapshot.Goal{}, err
		}
		return *g, nil
	}
	return snapshot.Goal{}, apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf("goal %s not found", goalID))
}

// GoalComplete reports whether the goal has reached its target.
func (s *Store) GoalComplete(goalID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.state.Goals {
		if g.ID == goalID {
			return g.Complete(), nil
		}
	}
	return false, apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf("goal %s not found", goalID))
}

// SetProfile replaces the local profile.
func (s *Store) SetProfile(p snapshot.Profile) error {
	if p.MonthlyIncome < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly income must not be negative")
	}
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency != "" && !validator.ValidCurrency(p.Currency) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown currency %q", p.Currency))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Profile = &p
	return s.saveLocked()
}

// SetTheme changes the display theme.
func (s *Store) SetTheme(theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown theme %q", theme))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Theme = theme
	return s.saveLocked()
}

// SignIn binds the store to a user. Switching to a different user drops
// the previous user's data.
func (s *Store) SignIn(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return apperrors.ErrUserIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.UserID != "" && s.state.UserID != userID {
		s.clearLocked()
	}
	s.state.UserID = userID
	return s.saveLocked()
}

// SignOut clears the user id and all user data. The theme is kept.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()
	s.state.UserID = ""
	return s.saveLocked()
}

func (s *Store) clearLocked() {
	s.state.Expenses = nil
	s.state.Budgets = nil
	s.state.Goals = nil
	s.state.Profile = nil
	s.state.SyncedAt = nil
}

// saveLocked writes the state to a temp file in the same directory and
// renames it over the target, so readers never see a partial file.
func (s *Store) saveLocked() error {
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding local store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".spendly-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing local store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing local store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing local store: %w", err)
	}
	return nil
}
