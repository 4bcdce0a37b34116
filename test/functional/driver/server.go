package driver

import (
	columnshttpapi "crm-server/internal/columns/httpapi"
	columnspersistence "crm-server/internal/columns/persistence"
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
	"crm-server/internal/infra/cache"
	"crm-server/internal/infra/httpserver"
	"crm-server/internal/infra/pubsub"
	"crm-server/internal/infra/sql"
	"crm-server/internal/logger"
	sharedhttpapi "crm-server/internal/shared_kernel/httpapi"
	"fmt"
	"net/http/httptest"
	"time"
)

// Server is the whole HTTP surface running in process on an in-memory
// database.
type Server struct {
	*httptest.Server
	shutdown []func()
}

func (s *Server) Close() {
	for _, fn := range s.shutdown {
		fn()
	}
	s.Server.Close()
}

func NewServer() (*Server, error) {
	orm, err := sql.NewMemoryORM("functional")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	events := pubsub.NewMemoryBroker()
	publisherFactory := pubsub.NewMemoryPublisherFactory(events)
	internalBroker := async.NewLocalBroker()

	statsCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, err
	}

	definitions, err := customfieldspersistence.NewDefinitionRepository(orm)
	if err != nil {
		return nil, err
	}
	customFields := customfieldsusecases.NewCustomFieldService(definitions)

	stateStorage, err := columnspersistence.NewGormStateStorage(orm)
	if err != nil {
		return nil, err
	}
	columns := columnsusecases.NewColumnConfigService(columnsusecases.NewStore(stateStorage))

	contactRepository, err := contactspersistence.NewContactRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	contacts := contactsusecases.NewContactService(contactRepository, customFields, columns, statsCache, contactsusecases.Settings{Location: time.UTC})

	dealRepository, err := dealspersistence.NewDealRepository(publisherFactory, orm)
	if err != nil {
		return nil, err
	}
	deals := dealsusecases.NewDealService(dealRepository, customFields, columns, statsCache, dealsusecases.Settings{Location: time.UTC})

	pipelineStream, err := dealshttpapi.NewPipelineStreamController(internalBroker, customFields, time.UTC)
	if err != nil {
		return nil, err
	}
	liveQuery := sharedhttpapi.NewLiveQueryController(50*time.Millisecond, map[string]sharedhttpapi.LiveQuerySource{
		"contacts": contactshttpapi.NewContactLiveSource(contacts),
		"deals":    dealshttpapi.NewDealLiveSource(deals),
	})

	router := httpserver.NewRouter(
		httpserver.ServerConfig{
			Readiness: []httpserver.Pinger{orm},
			AccessLog: logger.NewNopLogger(),
		},
		customfieldshttpapi.NewCustomFieldController(customFields),
		columnshttpapi.NewColumnConfigController(columns),
		contactshttpapi.NewContactController(contacts),
		dealshttpapi.NewDealController(deals, time.UTC),
		pipelineStream,
		liveQuery,
	)

	return &Server{
		Server:   httptest.NewServer(router),
		shutdown: []func(){liveQuery.Shutdown, pipelineStream.Shutdown, internalBroker.Stop},
	}, nil
}
