package db_test

import (
	"context"
	"database/sql"
	"eoatracker/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	Code string `gorm:"primaryKey"`
	Name string
}

type groupRow struct {
	Value string
	Total int64
}

var _ = Describe("GormDB", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = db.New(gormDB)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("NewGormDB", func() {
		It("should reject unknown drivers", func() {
			_, err := db.NewGormDB("sqlite", "file::memory:")
			Expect(err).To(MatchError(db.ErrUnsupportedDriver))
		})
	})

	Describe("InsertIgnore", func() {
		var (
			inserted bool
			err      error
		)

		JustBeforeEach(func() {
			inserted, err = testDB.InsertIgnore(ctx, &Test{Code: "a", Name: "Alice"}, "code")
		})

		When("the row is new", func() {
			BeforeEach(func() {
				mock.ExpectExec(`^INSERT INTO "tests" \("code","name"\) VALUES \(\$1,\$2\) ON CONFLICT \("code"\) DO NOTHING$`).
					WithArgs("a", "Alice").
					WillReturnResult(sqlmock.NewResult(0, 1))
			})

			It("should report the insert", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the row already exists", func() {
			BeforeEach(func() {
				mock.ExpectExec(`^INSERT INTO "tests" .* ON CONFLICT \("code"\) DO NOTHING$`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			})

			It("should not report an insert", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the statement fails", func() {
			BeforeEach(func() {
				mock.ExpectExec(`^INSERT INTO "tests"`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err.Error()).To(ContainSubstring("insert to table"))
				Expect(inserted).To(BeFalse())
			})
		})
	})

	Describe("Upsert", func() {
		BeforeEach(func() {
			mock.ExpectExec(`^INSERT INTO "tests" \("code","name"\) VALUES \(\$1,\$2\) ON CONFLICT \("code"\) DO UPDATE SET "name"="excluded"\."name"$`).
				WithArgs("a", "Alice").
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		It("should update the listed columns on conflict", func() {
			err := testDB.Upsert(ctx, &Test{Code: "a", Name: "Alice"}, []string{"code"}, []string{"name"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Find", func() {
		When("records match", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests" WHERE "name" = \$1 ORDER BY code ASC`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"code", "name"}).
						AddRow("a", "Alice").
						AddRow("b", "Alice"))
			})

			It("should return them in order", func() {
				var results []Test
				err := testDB.Find(ctx, &results, db.Filter{
					Where:   map[string]any{"name": "Alice"},
					OrderBy: "code ASC",
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(Equal([]Test{{Code: "a", Name: "Alice"}, {Code: "b", Name: "Alice"}}))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests"`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.Find(ctx, &results, db.Filter{})
				Expect(err).To(MatchError(ContainSubstring("find records")))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests" WHERE code = \$1 LIMIT \$2`).
					WithArgs("a", 1).
					WillReturnRows(sqlmock.NewRows([]string{"code", "name"}).AddRow("a", "Alice"))
			})

			It("should fill the destination", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "code", "a", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Name).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests" WHERE code = \$1 LIMIT \$2`).
					WithArgs("ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"code", "name"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "code", "ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
			})
		})
	})

	Describe("GroupCount", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`^SELECT name AS value, COUNT\(\*\) AS total FROM "tests" WHERE "code" = \$1 GROUP BY "name" ORDER BY total DESC,name ASC LIMIT \$2`).
				WithArgs("a", 2).
				WillReturnRows(sqlmock.NewRows([]string{"value", "total"}).
					AddRow("Alice", 7).
					AddRow("Bob", 3))
		})

		It("should return the largest groups first", func() {
			var rows []groupRow
			err := testDB.GroupCount(ctx, &Test{}, "name", db.Filter{
				Where: map[string]any{"code": "a"},
				Limit: 2,
			}, &rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal([]groupRow{{Value: "Alice", Total: 7}, {Value: "Bob", Total: 3}}))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
