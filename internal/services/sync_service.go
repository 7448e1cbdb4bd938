package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	apperrors "spendly/internal/errors"
	"spendly/internal/logger"
	"spendly/internal/models"
	"spendly/internal/snapshot"
)

// syncService implements push and pull on top of the per-table services.
type syncService struct {
	schema   SchemaServicer
	users    UserServicer
	expenses ExpenseServicer
	budgets  BudgetServicer
	goals    GoalServicer
	settings SettingsServicer
	audit    AuditServicer
}

// NewSyncService creates a new SyncServicer.
func NewSyncService(
	schema SchemaServicer,
	users UserServicer,
	expenses ExpenseServicer,
	budgets BudgetServicer,
	goals GoalServicer,
	settings SettingsServicer,
	audit AuditServicer,
) SyncServicer {
	return &syncService{
		schema:   schema,
		users:    users,
		expenses: expenses,
		budgets:  budgets,
		goals:    goals,
		settings: settings,
		audit:    audit,
	}
}

// pushBatch is a push request already mapped to rows.
type pushBatch struct {
	userID   string
	user     *models.User
	settings models.SettingsData
	expenses []models.Expense
	budgets  []models.Budget
	goals    []models.Goal
}

// Push upserts every record in req. Records are written one at a time in
// the order profile, expenses, budgets, goals; the first failure stops the
// push and leaves earlier writes in place.
func (s *syncService) Push(ctx context.Context, req *snapshot.PushRequest, ipAddress string) (*snapshot.SyncedCounts, error) {
	if req.UserID == "" {
		return nil, apperrors.ErrUserIDRequired
	}

	batch, err := preparePush(req)
	if err != nil {
		return nil, err
	}

	var counts snapshot.SyncedCounts
	err = s.applyPush(ctx, batch, &counts)
	s.record(ctx, req.UserID, models.SyncDirectionPush, counts, ipAddress, err)

	if err != nil {
		logger.Get().Errorw("push failed",
			"error", err,
			"user_id", req.UserID,
			"expenses", counts.Expenses,
			"budgets", counts.Budgets,
			"goals", counts.Goals,
		)
		return nil, err
	}

	logger.Get().Infow("push completed",
		"user_id", req.UserID,
		"expenses", counts.Expenses,
		"budgets", counts.Budgets,
		"goals", counts.Goals,
		"profile", counts.Profile,
	)
	return &counts, nil
}

// preparePush maps every record before anything is written, so a malformed
// record rejects the whole push.
func preparePush(req *snapshot.PushRequest) (*pushBatch, error) {
	batch := &pushBatch{userID: req.UserID}

	if req.Profile != nil {
		user := snapshot.ProfileToUser(req.UserID, *req.Profile)
		batch.user = &user
		batch.settings = snapshot.ProfileToSettings(*req.Profile)
	}

	for i, e := range req.Expenses {
		if e.ID == "" {
			return nil, invalidRecord("expenses", i, "id is required")
		}
		row, err := snapshot.ExpenseToRemote(req.UserID, e)
		if err != nil {
			return nil, invalidRecord("expenses", i, err.Error())
		}
		batch.expenses = append(batch.expenses, row)
	}

	for i, b := range req.Budgets {
		if b.ID == "" {
			return nil, invalidRecord("budgets", i, "id is required")
		}
		row := snapshot.BudgetToRemote(req.UserID, b)
		if !row.Period.Valid() {
			return nil, invalidRecord("budgets", i, fmt.Sprintf("unknown period %q", b.Period))
		}
		batch.budgets = append(batch.budgets, row)
	}

	for i, g := range req.Goals {
		if g.ID == "" {
			return nil, invalidRecord("goals", i, "id is required")
		}
		row, err := snapshot.GoalToRemote(req.UserID, g)
		if err != nil {
			return nil, invalidRecord("goals", i, err.Error())
		}
		batch.goals = append(batch.goals, row)
	}

	return batch, nil
}

func invalidRecord(kind string, index int, reason string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("%s[%d]: %s", kind, index, reason))
}

func (s *syncService) applyPush(ctx context.Context, batch *pushBatch, counts *snapshot.SyncedCounts) error {
	if err := s.schema.InitializeTables(ctx); err != nil {
		return err
	}
	if err := s.users.EnsureUser(ctx, batch.userID); err != nil {
		return err
	}

	if batch.user != nil {
		if err := s.users.CreateUser(ctx, batch.user); err != nil {
			return err
		}
		if err := s.settings.SaveSettings(ctx, batch.userID, batch.settings); err != nil {
			return err
		}
		counts.Profile = true
	}

	for i := range batch.expenses {
		if err := s.expenses.CreateExpense(ctx, &batch.expenses[i]); err != nil {
			return err
		}
		counts.Expenses++
	}
	for i := range batch.budgets {
		if err := s.budgets.CreateBudget(ctx, &batch.budgets[i]); err != nil {
			return err
		}
		counts.Budgets++
	}
	for i := range batch.goals {
		if err := s.goals.CreateGoal(ctx, &batch.goals[i]); err != nil {
			return err
		}
		counts.Goals++
	}
	return nil
}

// Pull reads all of a user's data and maps it to the local shape. The
// reads run concurrently. Budgets come back with spent = 0 and profile is
// nil when the user never saved settings.
func (s *syncService) Pull(ctx context.Context, userID, ipAddress string) (*snapshot.Data, error) {
	if userID == "" {
		return nil, apperrors.ErrUserIDRequired
	}

	data, err := s.pull(ctx, userID)

	var counts snapshot.SyncedCounts
	if data != nil {
		counts = snapshot.SyncedCounts{
			Expenses: len(data.Expenses),
			Budgets:  len(data.Budgets),
			Goals:    len(data.Goals),
			Profile:  data.Profile != nil,
		}
	}
	s.record(ctx, userID, models.SyncDirectionPull, counts, ipAddress, err)

	if err != nil {
		logger.Get().Errorw("pull failed", "error", err, "user_id", userID)
		return nil, err
	}

	logger.Get().Infow("pull completed",
		"user_id", userID,
		"expenses", counts.Expenses,
		"budgets", counts.Budgets,
		"goals", counts.Goals,
		"profile", counts.Profile,
	)
	return data, nil
}

func (s *syncService) pull(ctx context.Context, userID string) (*snapshot.Data, error) {
	if err := s.schema.InitializeTables(ctx); err != nil {
		return nil, err
	}

	var (
		expenses []models.Expense
		budgets  []models.Budget
		goals    []models.Goal
		settings *models.UserSettings
		user     *models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenses.GetExpenses(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgets.GetBudgets(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = s.goals.GetGoals(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.settings.GetSettings(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = s.users.GetUser(gctx, userID)
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	data := &snapshot.Data{
		Expenses: make([]snapshot.Expense, 0, len(expenses)),
		Budgets:  make([]snapshot.Budget, 0, len(budgets)),
		Goals:    make([]snapshot.Goal, 0, len(goals)),
		Profile:  snapshot.ProfileFromRemote(user, settings),
	}
	for _, e := range expenses {
		data.Expenses = append(data.Expenses, snapshot.ExpenseFromRemote(e))
	}
	for _, b := range budgets {
		data.Budgets = append(data.Budgets, snapshot.BudgetFromRemote(b))
	}
	for _, gl := range goals {
		data.Goals = append(data.Goals, snapshot.GoalFromRemote(gl))
	}
	return data, nil
}

func (s *syncService) record(ctx context.Context, userID string, direction models.SyncDirection, counts snapshot.SyncedCounts, ipAddress string, err error) {
	event := &models.SyncEvent{
		UserID:    userID,
		Direction: direction,
		Expenses:  counts.Expenses,
		Budgets:   counts.Budgets,
		Goals:     counts.Goals,
		Profile:   counts.Profile,
		Success:   err == nil,
		IPAddress: ipAddress,
	}
	if err != nil {
		event.Error = err.Error()
	}
	s.audit.Record(context.WithoutCancel(ctx), event)
}
