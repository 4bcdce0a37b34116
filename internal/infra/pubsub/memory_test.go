package pubsub_test

import (
	"context"
	"crm-server/internal/infra/pubsub"
	"errors"
	"sync/atomic"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type received struct {
	key     pubsub.Key
	message pubsub.Prototype
}

func collect(into chan<- received) pubsub.MessageHandler {
	return func(_ context.Context, key pubsub.Key, message pubsub.Prototype) error {
		into <- received{key, message}
		return nil
	}
}

var _ = ginkgo.Describe("Memory pubsub", func() {
	var broker *pubsub.MemoryBroker
	var ctx context.Context
	var cancel context.CancelFunc
	var publisher pubsub.Publisher

	ginkgo.BeforeEach(func() {
		broker = pubsub.NewMemoryBroker()
		ctx, cancel = context.WithCancel(context.Background())
		var err error
		publisher, err = pubsub.NewMemoryPublisherFactory(broker).New(pubsub.RecordChangesTopic, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		cancel()
	})

	ginkgo.It("should deliver a message with its key", func() {
		messages := make(chan received, 1)
		consumer := pubsub.NewMemoryConsumerFactory(broker, "pipeline").New()
		gomega.Expect(consumer.Consume(ctx, pubsub.RecordChangesTopic, collect(messages), nil)).To(gomega.Succeed())

		gomega.Expect(publisher.Publish(ctx, "deal-1", "moved")).To(gomega.Succeed())

		gomega.Eventually(messages).Should(gomega.Receive(gomega.Equal(received{"deal-1", "moved"})))
	})

	ginkgo.It("should deliver once per group", func() {
		pipeline := make(chan received, 4)
		audit := make(chan received, 4)
		for range 2 {
			consumer := pubsub.NewMemoryConsumerFactory(broker, "pipeline").New()
			_ = consumer.Consume(ctx, pubsub.RecordChangesTopic, collect(pipeline), nil)
		}
		_ = pubsub.NewMemoryConsumerFactory(broker, "audit").New().Consume(ctx, pubsub.RecordChangesTopic, collect(audit), nil)

		gomega.Expect(publisher.Publish(ctx, "deal-1", "moved")).To(gomega.Succeed())

		gomega.Eventually(pipeline).Should(gomega.Receive())
		gomega.Eventually(audit).Should(gomega.Receive())
		gomega.Consistently(pipeline, 50*time.Millisecond).ShouldNot(gomega.Receive())
	})

	ginkgo.It("should stop delivering once the consumer context is done", func() {
		messages := make(chan received, 1)
		consumerCtx, stop := context.WithCancel(ctx)
		_ = pubsub.NewMemoryConsumerFactory(broker, "pipeline").New().Consume(consumerCtx, pubsub.RecordChangesTopic, collect(messages), nil)

		stop()
		time.Sleep(20 * time.Millisecond)
		gomega.Expect(publisher.Publish(ctx, "deal-1", "moved")).To(gomega.Succeed())

		gomega.Consistently(messages, 50*time.Millisecond).ShouldNot(gomega.Receive())
	})

	ginkgo.It("should survive failing and panicking handlers", func() {
		var calls atomic.Int32
		failing := func(context.Context, pubsub.Key, pubsub.Prototype) error {
			calls.Add(1)
			return errors.New("boom")
		}
		panicking := func(context.Context, pubsub.Key, pubsub.Prototype) error {
			calls.Add(1)
			panic("boom")
		}
		_ = pubsub.NewMemoryConsumerFactory(broker, "failing").New().Consume(ctx, pubsub.RecordChangesTopic, failing, nil)
		_ = pubsub.NewMemoryConsumerFactory(broker, "panicking").New().Consume(ctx, pubsub.RecordChangesTopic, panicking, nil)

		gomega.Expect(publisher.Publish(ctx, "deal-1", "moved")).To(gomega.Succeed())

		gomega.Eventually(calls.Load).Should(gomega.Equal(int32(2)))
	})

	ginkgo.It("should select the memory implementation for the local environment", func() {
		factory := pubsub.NewFactory(pubsub.FactoryOptions{Environment: "local", ConsumerGroup: "pipeline"})

		gomega.Expect(factory.GetPublisherFactory()).To(gomega.BeAssignableToTypeOf(&pubsub.MemoryPublisherFactory{}))
		gomega.Expect(factory.GetConsumerFactory()).To(gomega.BeAssignableToTypeOf(&pubsub.MemoryConsumerFactory{}))
	})
})
