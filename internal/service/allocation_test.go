package service

import (
	"path/filepath"
	"strconv"
	"testing"

	"piggie_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh SQLite database for one test
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Wallet{}, &domain.Allocation{},
		&domain.Goal{}, &domain.Transaction{}, &domain.Roundup{},
	))
	return db
}

// seedUser creates a user to apply round-ups against
func seedUser(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	user := domain.User{
		PublicID: "testuser01",
		Email:    "test@example.com",
		Password: "x",
		Name:     "Test",
		School:   "Test High",
		GradYear: 2027,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func TestGetOrCreateAllocationDefault(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)

	// First access materializes the 40/30/30 default
	alloc, err := GetOrCreateAllocation(db, user.PublicID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, alloc.SavingsPercent)
	assert.Equal(t, 30.0, alloc.InvestingPercent)
	assert.Equal(t, 30.0, alloc.GoalsPercent)

	// Second access sees the same persisted default, not a fresh record
	again, err := GetOrCreateAllocation(db, user.PublicID)
	require.NoError(t, err)
	assert.Equal(t, alloc.ID, again.ID)
	assert.Equal(t, 40.0, again.SavingsPercent)

	var count int64
	require.NoError(t, db.Model(&domain.Allocation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetOrCreateWallet(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)

	wallet, err := GetOrCreateWallet(db, user.PublicID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.SavingsCents)
	assert.Equal(t, int64(0), wallet.InvestingCents)

	again, err := GetOrCreateWallet(db, user.PublicID)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, again.ID)
}

func TestApplyRoundupWithDefaultGoal(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	goal := domain.Goal{UserPublicID: user.PublicID, Name: "Laptop", TargetCents: 50000, IsDefault: true}
	require.NoError(t, db.Create(&goal).Error)

	// $12.34 purchase → 66 cent round-up under 40/30/30
	record, err := ApplyRoundup(db, user, "txn_1", 66, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(66), record.RoundupCents)
	assert.Equal(t, int64(26), record.SavingsCents)
	assert.Equal(t, int64(19), record.InvestingCents)
	assert.Equal(t, int64(21), record.GoalsCents)
	require.NotNil(t, record.GoalID)
	assert.Equal(t, goal.ID, *record.GoalID)

	// Wallet credited with the savings and investing shares
	var wallet domain.Wallet
	require.NoError(t, db.Where("user_public_id = ?", user.PublicID).First(&wallet).Error)
	assert.Equal(t, int64(26), wallet.SavingsCents)
	assert.Equal(t, int64(19), wallet.InvestingCents)

	// Goal credited with the goals share
	var updated domain.Goal
	require.NoError(t, db.First(&updated, goal.ID).Error)
	assert.Equal(t, int64(21), updated.CurrentCents)
}

func TestApplyRoundupWithRequestedGoal(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	defaultGoal := domain.Goal{UserPublicID: user.PublicID, Name: "Default", TargetCents: 10000, IsDefault: true}
	require.NoError(t, db.Create(&defaultGoal).Error)
	requested := domain.Goal{UserPublicID: user.PublicID, Name: "Trip", TargetCents: 20000}
	require.NoError(t, db.Create(&requested).Error)

	// An explicitly requested goal wins over the default
	record, err := ApplyRoundup(db, user, "txn_1", 100, &requested.ID)
	require.NoError(t, err)
	require.NotNil(t, record.GoalID)
	assert.Equal(t, requested.ID, *record.GoalID)

	var updated domain.Goal
	require.NoError(t, db.First(&updated, requested.ID).Error)
	assert.Equal(t, int64(30), updated.CurrentCents)
	// The default goal is untouched
	var untouched domain.Goal
	require.NoError(t, db.First(&untouched, defaultGoal.ID).Error)
	assert.Equal(t, int64(0), untouched.CurrentCents)
}

func TestApplyRoundupGoalFallback(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)

	// No goals exist: the goals share folds into wallet savings
	record, err := ApplyRoundup(db, user, "txn_1", 66, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(47), record.SavingsCents) // 26 + 21 folded in
	assert.Equal(t, int64(19), record.InvestingCents)
	assert.Equal(t, int64(0), record.GoalsCents)
	assert.Nil(t, record.GoalID)
	// Conservation holds through the fallback
	assert.Equal(t, record.RoundupCents, record.SavingsCents+record.InvestingCents+record.GoalsCents)

	var wallet domain.Wallet
	require.NoError(t, db.Where("user_public_id = ?", user.PublicID).First(&wallet).Error)
	assert.Equal(t, int64(47), wallet.SavingsCents)
	assert.Equal(t, int64(19), wallet.InvestingCents)
}

func TestApplyRoundupUnknownGoalFallsBack(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	// A goal owned by someone else must not be credited
	other := domain.Goal{UserPublicID: "otheruser99", Name: "Theirs", TargetCents: 1000}
	require.NoError(t, db.Create(&other).Error)

	// Requesting the unowned goal degrades to the fallback, not an error
	record, err := ApplyRoundup(db, user, "txn_1", 66, &other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), record.GoalsCents)
	assert.Nil(t, record.GoalID)
	assert.Equal(t, int64(47), record.SavingsCents)

	// The other user's goal is untouched
	var updated domain.Goal
	require.NoError(t, db.First(&updated, other.ID).Error)
	assert.Equal(t, int64(0), updated.CurrentCents)
}

func TestApplyRoundupRejectsNonPositive(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)

	_, err := ApplyRoundup(db, user, "txn_1", 0, nil)
	assert.ErrorIs(t, err, ErrNonPositiveRoundup)
	_, err = ApplyRoundup(db, user, "txn_1", -5, nil)
	assert.ErrorIs(t, err, ErrNonPositiveRoundup)

	// Nothing was created
	var count int64
	require.NoError(t, db.Model(&domain.Roundup{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestApplyRoundupDuplicateRollsBack(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)

	_, err := ApplyRoundup(db, user, "txn_1", 66, nil)
	require.NoError(t, err)

	var before domain.Wallet
	require.NoError(t, db.Where("user_public_id = ?", user.PublicID).First(&before).Error)

	// A second application for the same transaction fails atomically
	_, err = ApplyRoundup(db, user, "txn_1", 66, nil)
	assert.ErrorIs(t, err, ErrRoundupExists)

	// No balance moved and no second record was written
	var after domain.Wallet
	require.NoError(t, db.Where("user_public_id = ?", user.PublicID).First(&after).Error)
	assert.Equal(t, before.SavingsCents, after.SavingsCents)
	assert.Equal(t, before.InvestingCents, after.InvestingCents)
	var count int64
	require.NoError(t, db.Model(&domain.Roundup{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyRoundupRollsBackAfterPartialWrites(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	goal := domain.Goal{UserPublicID: user.PublicID, Name: "Laptop", TargetCents: 50000, IsDefault: true}
	require.NoError(t, db.Create(&goal).Error)

	// Establish non-zero wallet and goal balances
	_, err := ApplyRoundup(db, user, "txn_1", 66, nil)
	require.NoError(t, err)

	var walletBefore domain.Wallet
	require.NoError(t, db.Where("user_public_id = ?", user.PublicID).First(&walletBefore).Error)
	var goalBefore domain.Goal
	require.NoError(t, db.First(&goalBefore, goal.ID).Error)

	// Block the audit-record insert so the failure hits after the goal and
	// wallet have already been credited inside the transaction
	require.NoError(t, db.Exec(`CREATE TRIGGER block_roundup_insert BEFORE INSERT ON roundups
		BEGIN SELECT RAISE(ABORT, 'insert blocked'); END`).Error)

	_, err = ApplyRoundup(db, user, "txn_2", 66, nil)
	require.Error(t, err)

	// The earlier credits inside the failed transaction were rolled back
	var walletAfter domain.Wallet
	require.NoError(t, db.Where("user_public_id = ?", user.PublicID).First(&walletAfter).Error)
	assert.Equal(t, walletBefore.SavingsCents, walletAfter.SavingsCents)
	assert.Equal(t, walletBefore.InvestingCents, walletAfter.InvestingCents)
	var goalAfter domain.Goal
	require.NoError(t, db.First(&goalAfter, goal.ID).Error)
	assert.Equal(t, goalBefore.CurrentCents, goalAfter.CurrentCents)

	// And no record exists for the failed application
	var count int64
	require.NoError(t, db.Model(&domain.Roundup{}).Where("transaction_id = ?", "txn_2").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestApplyRoundupCreatesDefaultAllocationOnce(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)

	// Two applications for a user with no explicit allocation both use the
	// same persisted 40/30/30 default
	first, err := ApplyRoundup(db, user, "txn_1", 66, nil)
	require.NoError(t, err)
	second, err := ApplyRoundup(db, user, "txn_2", 66, nil)
	require.NoError(t, err)
	assert.Equal(t, first.InvestingCents, second.InvestingCents)

	var count int64
	require.NoError(t, db.Model(&domain.Allocation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApplyRoundupConservationAcrossPolicies(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	require.NoError(t, db.Create(&domain.Allocation{
		UserPublicID:     user.PublicID,
		SavingsPercent:   33.33,
		InvestingPercent: 33.33,
		GoalsPercent:     33.34,
	}).Error)
	goal := domain.Goal{UserPublicID: user.PublicID, Name: "G", TargetCents: 1000, IsDefault: true}
	require.NoError(t, db.Create(&goal).Error)

	// Every record conserves the round-up exactly, for every amount
	for r := int64(1); r <= 100; r++ {
		record, err := ApplyRoundup(db, user, "txn_"+strconv.FormatInt(r, 10), r, nil)
		require.NoError(t, err)
		require.Equal(t, r, record.SavingsCents+record.InvestingCents+record.GoalsCents)
	}
}
