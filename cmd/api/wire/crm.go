//go:build wireinject
// +build wireinject

package wire

import (
	columnshttpapi "crm-server/internal/columns/httpapi"
	columnsusecases "crm-server/internal/columns/usecases"
	contactshttpapi "crm-server/internal/contacts/httpapi"
	contactspersistence "crm-server/internal/contacts/persistence"
	contactsusecases "crm-server/internal/contacts/usecases"
	customfieldshttpapi "crm-server/internal/customfields/httpapi"
	customfieldspersistence "crm-server/internal/customfields/persistence"
	customfieldsusecases "crm-server/internal/customfields/usecases"
	dealshttpapi "crm-server/internal/deals/httpapi"
	dealspersistence "crm-server/internal/deals/persistence"
	dealsusecases "crm-server/internal/deals/usecases"
	"crm-server/internal/infra/async"
	"crm-server/internal/infra/sql"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"

	"github.com/google/wire"
)

var InfraSet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	provideLocation,
	providePubSubFactory,
	providePublisherFactory,
	provideStatsCache,
)

var CustomFieldSet = wire.NewSet(
	customfieldspersistence.NewDefinitionRepository,
	wire.Bind(new(customfieldsusecases.DefinitionRepository), new(*customfieldspersistence.SimpleDefinitionRepository)),
	customfieldsusecases.NewCustomFieldService,
	wire.Bind(new(customfieldsusecases.CustomFieldService), new(*customfieldsusecases.SimpleCustomFieldService)),
)

var ColumnSet = wire.NewSet(
	provideStateStorage,
	columnsusecases.NewStore,
	columnsusecases.NewColumnConfigService,
	wire.Bind(new(columnsusecases.ColumnConfigService), new(*columnsusecases.SimpleColumnConfigService)),
)

var ContactServiceSet = wire.NewSet(
	provideContactSettings,
	contactspersistence.NewContactRepository,
	wire.Bind(new(contactsusecases.ContactRepository), new(*contactspersistence.SimpleContactRepository)),
	wire.Bind(new(contactsusecases.CustomFieldCatalog), new(*customfieldsusecases.SimpleCustomFieldService)),
	wire.Bind(new(contactsusecases.SortProvider), new(*columnsusecases.SimpleColumnConfigService)),
	contactsusecases.NewContactService,
	wire.Bind(new(contactsusecases.ContactService), new(*contactsusecases.SimpleContactService)),
)

var DealRepositorySet = wire.NewSet(
	dealspersistence.NewDealRepository,
	wire.Bind(new(dealsusecases.DealRepository), new(*dealspersistence.SimpleDealRepository)),
)

var DealServiceSet = wire.NewSet(
	provideDealSettings,
	DealRepositorySet,
	wire.Bind(new(dealsusecases.CustomFieldCatalog), new(*customfieldsusecases.SimpleCustomFieldService)),
	wire.Bind(new(dealsusecases.SortProvider), new(*columnsusecases.SimpleColumnConfigService)),
	dealsusecases.NewDealService,
	wire.Bind(new(dealsusecases.DealService), new(*dealsusecases.SimpleDealService)),
)

func InitializeDatabase() (sql.ORM, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
	)
	return nil, nil
}

func InitializeCustomFieldController() (*customfieldshttpapi.CustomFieldController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		CustomFieldSet,
		customfieldshttpapi.NewCustomFieldController,
	)
	return nil, nil
}

func InitializeColumnConfigController() (*columnshttpapi.ColumnConfigController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		ColumnSet,
		columnshttpapi.NewColumnConfigController,
	)
	return nil, nil
}

func InitializeContactController() (*contactshttpapi.ContactController, error) {
	wire.Build(
		InfraSet,
		CustomFieldSet,
		ColumnSet,
		ContactServiceSet,
		contactshttpapi.NewContactController,
	)
	return nil, nil
}

func InitializeDealController() (*dealshttpapi.DealController, error) {
	wire.Build(
		InfraSet,
		CustomFieldSet,
		ColumnSet,
		DealServiceSet,
		dealshttpapi.NewDealController,
	)
	return nil, nil
}

func InitializeLiveQueryController() (*sharedhttpapi.LiveQueryController, error) {
	wire.Build(
		InfraSet,
		CustomFieldSet,
		ColumnSet,
		ContactServiceSet,
		DealServiceSet,
		contactshttpapi.NewContactLiveSource,
		dealshttpapi.NewDealLiveSource,
		provideLiveQueryController,
	)
	return nil, nil
}

func InitializePipelineStreamController(broker async.InternalBroker) (*dealshttpapi.PipelineStreamController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideLocation,
		CustomFieldSet,
		wire.Bind(new(dealsusecases.CustomFieldCatalog), new(*customfieldsusecases.SimpleCustomFieldService)),
		dealshttpapi.NewPipelineStreamController,
	)
	return nil, nil
}

func InitializePipelineWorker(broker async.InternalBroker) (*dealsusecases.PipelineWorker, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePubSubFactory,
		providePublisherFactory,
		provideConsumerFactory,
		DealRepositorySet,
		dealsusecases.NewPipelineWorker,
	)
	return nil, nil
}

func InitializeOverdueDealWorker(broker async.InternalBroker) (*dealsusecases.OverdueDealWorker, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideLocation,
		providePubSubFactory,
		providePublisherFactory,
		DealRepositorySet,
		provideOverdueDealWorker,
	)
	return nil, nil
}
