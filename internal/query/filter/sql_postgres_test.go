package filter_test

import (
	"crm-server/internal/query/filter"
	"crm-server/internal/shared_kernel/domain"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("ToSQL through gorm on postgres", func() {
	var (
		mock   sqlmock.Sqlmock
		gormDB *gorm.DB
	)

	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(db.Close)
		mock = m

		gormDB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should bind every literal as a numbered parameter", func() {
		expr := filter.NewCompiler(filter.ContactCatalog(), time.UTC).Compile(filter.Query{
			OwnerID: "owner-1",
			Filters: []filter.ColumnFilter{
				{ColumnID: "company", Operator: filter.OperatorStartsWith, Value: "Acme"},
				{ColumnID: "budget", Operator: filter.OperatorGt, Value: "100"},
			},
		}, []filter.Definition{{Key: "budget", Type: domain.FieldTypeNumber}})

		query, args, err := filter.ToSQL(expr, filter.DialectPostgres)
		Expect(err).NotTo(HaveOccurred())

		mock.ExpectQuery(`SELECT count\(\*\) FROM "contacts" WHERE .*owner_id = \$1 AND LOWER\(company\) LIKE LOWER\(\$2\).*custom_fields ->> \$3.*> \$6`).
			WithArgs("owner-1", "Acme%", "budget", sqlmock.AnyArg(), "budget", 100.0).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		var total int64
		Expect(gormDB.Table("contacts").Where(query, args...).Count(&total).Error).To(Succeed())
		Expect(total).To(Equal(int64(2)))
		Expect(mock.ExpectationsWereMet()).To(Succeed())
	})
})
