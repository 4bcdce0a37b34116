package pubsub

// Factory creates the appropriate pubsub implementation based on environment
type Factory struct {
	publisherFactory PublisherFactory
	consumerFactory  ConsumerFactory
}

// NewFactory uses the in-memory broker for the "local" environment and Kafka
// for every other one.
func NewFactory(opts FactoryOptions) *Factory {
	if opts.Environment == "local" {
		broker := GetMemoryBroker()
		return &Factory{
			publisherFactory: NewMemoryPublisherFactory(broker),
			consumerFactory:  NewMemoryConsumerFactory(broker, opts.ConsumerGroup),
		}
	}

	return &Factory{
		publisherFactory: NewKafkaPublisherFactory(KafkaPublisherFactoryOptions{
			Brokers:           opts.KafkaBrokers,
			SchemaRegistryURL: opts.SchemaRegistryURL,
		}),
		consumerFactory: NewKafkaConsumerFactory(opts.KafkaBrokers, opts.ConsumerGroup, opts.SchemaRegistryURL),
	}
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	ConsumerGroup     string
	SchemaRegistryURL string
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

func (f *Factory) GetConsumerFactory() ConsumerFactory {
	return f.consumerFactory
}

func (f *Factory) NewPublisher(topic Topic, prototype Message) (Publisher, error) {
	return f.publisherFactory.New(topic, prototype)
}

func (f *Factory) NewConsumer() Consumer {
	return f.consumerFactory.New()
}
