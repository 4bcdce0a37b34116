package persistence_test

import (
	"context"
	"crm-server/internal/columns/domain"
	"crm-server/internal/columns/persistence"
	"crm-server/internal/columns/usecases"
	"crm-server/internal/infra/cache"
	"crm-server/internal/infra/sql"
	"crm-server/internal/infra/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func behavesLikeStateStorage(newStorage func() usecases.StateStorage) {
	var (
		storage usecases.StateStorage
		ctx     context.Context
		key     usecases.StateKey
	)

	BeforeEach(func() {
		storage = newStorage()
		ctx = context.Background()
		key = usecases.StateKey{OwnerID: "user-1", List: domain.ContactListColumns}
	})

	It("should report missing state", func() {
		_, found, err := storage.Read(ctx, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
	})

	It("should return the last written payload", func() {
		Expect(storage.Write(ctx, key, []byte(`[{"id":"name"}]`))).To(Succeed())
		Expect(storage.Write(ctx, key, []byte(`[{"id":"email"}]`))).To(Succeed())

		payload, found, err := storage.Read(ctx, key)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(payload).To(MatchJSON(`[{"id":"email"}]`))
	})

	It("should keep lists apart", func() {
		Expect(storage.Write(ctx, key, []byte(`[]`))).To(Succeed())

		_, found, err := storage.Read(ctx, usecases.StateKey{OwnerID: "user-1", List: domain.DealListColumns})
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeFalse())
	})
}

var _ = Describe("GormStateStorage", func() {
	behavesLikeStateStorage(func() usecases.StateStorage {
		orm, err := sql.NewMemoryORM("column_state_" + utils.GenerateUUID())
		Expect(err).NotTo(HaveOccurred())
		storage, err := persistence.NewGormStateStorage(orm)
		Expect(err).NotTo(HaveOccurred())
		return storage
	})
})

var _ = Describe("CacheStateStorage", func() {
	behavesLikeStateStorage(func() usecases.StateStorage {
		store, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(store.Close)
		return persistence.NewCacheStateStorage(store, 0)
	})
})
