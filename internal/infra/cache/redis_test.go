package cache_test

import (
	"context"
	"crm-server/internal/infra/cache"
	mockcache "crm-server/test/unit/doubles/infra/cache"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("RedisCache", func() {
	var (
		redisCache      *cache.RedisCache
		mockCacheClient *mockcache.MockCacheClient
		ctrl            *gomock.Controller
		ctx             context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockCacheClient = mockcache.NewMockCacheClient(ctrl)
		redisCache = cache.NewRedisCacheWithClient(mockCacheClient, &cache.RedisConfig{Addr: "localhost:6379"})
		ctx = context.Background()
	})

	found := func(value string) *redis.StringCmd {
		cmd := redis.NewStringCmd(ctx, "get")
		cmd.SetVal(value)
		return cmd
	}

	missing := func() *redis.StringCmd {
		cmd := redis.NewStringCmd(ctx, "get")
		cmd.SetErr(redis.Nil)
		return cmd
	}

	ginkgo.It("should store values as JSON with their ttl", func() {
		mockCacheClient.EXPECT().
			Set(gomock.Any(), "stats:contacts:owner-1", []byte(`"payload"`), time.Minute).
			Return(redis.NewStatusCmd(ctx, "OK"))

		gomega.Expect(redisCache.Set(ctx, "stats:contacts:owner-1", "payload", time.Minute)).To(gomega.BeTrue())
	})

	ginkgo.It("should decode stored JSON", func() {
		mockCacheClient.EXPECT().Get(gomock.Any(), "key").Return(found(`"payload"`))

		value, ok := redisCache.Get(ctx, "key")
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(value).To(gomega.Equal("payload"))
	})

	ginkgo.It("should report a miss on redis.Nil", func() {
		mockCacheClient.EXPECT().Get(gomock.Any(), "key").Return(missing())

		_, ok := redisCache.Get(ctx, "key")
		gomega.Expect(ok).To(gomega.BeFalse())
	})

	ginkgo.It("should report a failed write", func() {
		cmd := redis.NewStatusCmd(ctx)
		cmd.SetErr(context.DeadlineExceeded)
		mockCacheClient.EXPECT().Set(gomock.Any(), "key", gomock.Any(), time.Duration(0)).Return(cmd)

		gomega.Expect(redisCache.Set(ctx, "key", "value", 0)).To(gomega.BeFalse())
	})

	ginkgo.It("should delete keys", func() {
		mockCacheClient.EXPECT().Del(gomock.Any(), "key").Return(redis.NewIntCmd(ctx, 1))

		redisCache.Delete(ctx, "key")
	})

	ginkgo.It("should load and store a missing value", func() {
		mockCacheClient.EXPECT().Get(gomock.Any(), "key").Return(missing())
		mockCacheClient.EXPECT().Set(gomock.Any(), "key", gomock.Any(), time.Minute).Return(redis.NewStatusCmd(ctx, "OK"))

		value, err := redisCache.GetOrSet(ctx, "key", time.Minute, func() (any, error) { return "loaded", nil })
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(value).To(gomega.Equal("loaded"))
	})

	ginkgo.It("should hand JSON text back to typed readers", func() {
		mockCacheClient.EXPECT().Get(gomock.Any(), "counters").Return(found(`"{\"total\":4,\"companies\":1}"`))

		value, ok, err := cache.GetJSON[counters](ctx, redisCache, "counters")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(value).To(gomega.Equal(counters{Total: 4, Companies: 1}))
	})

	ginkgo.It("should list keys by pattern", func() {
		cmd := redis.NewStringSliceCmd(ctx, "keys", "column-config:*")
		cmd.SetVal([]string{"column-config:u1:contact-list-columns"})
		mockCacheClient.EXPECT().Keys(gomock.Any(), "column-config:*").Return(cmd)

		keys, err := redisCache.Keys(ctx, "column-config:*")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(keys).To(gomega.ConsistOf("column-config:u1:contact-list-columns"))
	})

	ginkgo.It("should ping the server", func() {
		mockCacheClient.EXPECT().Ping(gomock.Any()).Return(redis.NewStatusCmd(ctx, "PONG"))

		gomega.Expect(redisCache.PingWithContext(ctx)).To(gomega.Succeed())
	})
})
