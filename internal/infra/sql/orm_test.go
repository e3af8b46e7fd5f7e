package sql_test

import (
	"context"
	"errors"
	"tagback-server/internal/infra/sql"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type counterRow struct {
	ID    string `gorm:"primaryKey"`
	Code  string `gorm:"uniqueIndex"`
	Count int64
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		orm, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(orm.AutoMigrate(&counterRow{})).To(gomega.Succeed())
		ctx = context.Background()
	})

	ginkgo.It("should isolate memory databases from each other", func() {
		other, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(other.AutoMigrate(&counterRow{})).To(gomega.Succeed())

		gomega.Expect(orm.WithContext(ctx).Create(&counterRow{ID: "1", Code: "A"}).Error()).To(gomega.Succeed())

		var count int64
		gomega.Expect(other.WithContext(ctx).Model(&counterRow{}).Count(&count).Error()).To(gomega.Succeed())
		gomega.Expect(count).To(gomega.BeZero())
	})

	ginkgo.It("should translate missing rows", func() {
		var row counterRow
		err := orm.WithContext(ctx).Where("id = ?", "nope").First(&row).Error()
		gomega.Expect(errors.Is(err, sql.ErrRecordNotFound)).To(gomega.BeTrue())
	})

	ginkgo.It("should translate unique violations", func() {
		gomega.Expect(orm.WithContext(ctx).Create(&counterRow{ID: "1", Code: "A"}).Error()).To(gomega.Succeed())

		err := orm.WithContext(ctx).Create(&counterRow{ID: "2", Code: "A"}).Error()
		gomega.Expect(errors.Is(err, sql.ErrDuplicatedKey)).To(gomega.BeTrue())
	})

	ginkgo.It("should increment atomically and report affected rows", func() {
		gomega.Expect(orm.WithContext(ctx).Create(&counterRow{ID: "1", Code: "A"}).Error()).To(gomega.Succeed())

		tx := orm.WithContext(ctx).Model(&counterRow{}).Where("id = ?", "1").
			Updates(map[string]any{"count": sql.Expr("count + ?", 1)})
		gomega.Expect(tx.Error()).To(gomega.Succeed())
		gomega.Expect(tx.RowsAffected()).To(gomega.Equal(int64(1)))

		var row counterRow
		gomega.Expect(orm.WithContext(ctx).First(&row, "id = ?", "1").Error()).To(gomega.Succeed())
		gomega.Expect(row.Count).To(gomega.Equal(int64(1)))
	})

	ginkgo.It("should roll back a failed transaction", func() {
		err := orm.Transaction(func(tx sql.ORM) error {
			if err := tx.WithContext(ctx).Create(&counterRow{ID: "1", Code: "A"}).Error(); err != nil {
				return err
			}
			return errors.New("boom")
		})
		gomega.Expect(err).To(gomega.HaveOccurred())

		var count int64
		gomega.Expect(orm.WithContext(ctx).Model(&counterRow{}).Count(&count).Error()).To(gomega.Succeed())
		gomega.Expect(count).To(gomega.BeZero())
	})

	ginkgo.It("should work with WithTimeout", func() {
		var count int64
		err := orm.WithTimeout(ctx, 2*time.Second).Model(&counterRow{}).Count(&count).Error()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})
})
