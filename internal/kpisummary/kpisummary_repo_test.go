package kpisummary_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"go-pms/internal/kpisummary"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (kpisummary.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return kpisummary.NewRepository(gdb), mock, db
}

func TestSummaryRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo, mock, db := setupRepoTest(t)
	defer db.Close()

	empID := uuid.New()
	upsertSQL := `INSERT INTO "kpi_summaries" .*` +
		regexp.QuoteMeta(`ON CONFLICT ("employee_id","period") DO UPDATE SET "output_score"="excluded"."output_score","kpi_count"="excluded"."kpi_count","computed_at"="excluded"."computed_at","updated_at"="excluded"."updated_at"`)

	// a rerun for the same employee and period lands on the same conflict
	// target and overwrites the scores
	for _, score := range []float64{42.5, 61.25} {
		mock.ExpectQuery(upsertSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

		err := repo.Upsert(ctx, &kpisummary.KpiSummary{
			EmployeeID:  empID,
			Period:      kpisummary.DefaultPeriod,
			OutputScore: score,
			KPICount:    5,
			ComputedAt:  time.Now(),
		})
		require.NoError(t, err)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryRepository_FindByEmployeePeriod(t *testing.T) {
	ctx := context.Background()
	empID := uuid.NewString()
	selectSQL := `SELECT \* FROM "kpi_summaries" WHERE employee_id = \$1 AND period = \$2`

	t.Run("missing summary is nil without error", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectQuery(selectSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		s, err := repo.FindByEmployeePeriod(ctx, empID, kpisummary.DefaultPeriod)

		require.NoError(t, err)
		assert.Nil(t, s)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stored summary", func(t *testing.T) {
		repo, mock, db := setupRepoTest(t)
		defer db.Close()

		mock.ExpectQuery(selectSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "period", "output_score", "kpi_count"}).
				AddRow(uuid.NewString(), empID, kpisummary.DefaultPeriod, 63.7, 5))

		s, err := repo.FindByEmployeePeriod(ctx, empID, kpisummary.DefaultPeriod)

		require.NoError(t, err)
		require.NotNil(t, s)
		assert.Equal(t, 63.7, s.OutputScore)
		assert.Equal(t, 5, s.KPICount)
	})
}
