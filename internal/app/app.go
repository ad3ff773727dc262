package app

import (
	"github.com/cleitonmarx/symbiont"

	"github.com/festpass/festpass/internal/adapters/inbound/http"
	"github.com/festpass/festpass/internal/adapters/inbound/mcp"
	"github.com/festpass/festpass/internal/adapters/inbound/workers"
	"github.com/festpass/festpass/internal/adapters/outbound/apispec"
	"github.com/festpass/festpass/internal/adapters/outbound/config"
	"github.com/festpass/festpass/internal/adapters/outbound/llmapi"
	"github.com/festpass/festpass/internal/adapters/outbound/log"
	"github.com/festpass/festpass/internal/adapters/outbound/messaging"
	"github.com/festpass/festpass/internal/adapters/outbound/postgres"
	"github.com/festpass/festpass/internal/adapters/outbound/pubsub"
	"github.com/festpass/festpass/internal/adapters/outbound/time"
	"github.com/festpass/festpass/internal/agent"
	"github.com/festpass/festpass/internal/formatter"
	"github.com/festpass/festpass/internal/telemetry"
	"github.com/festpass/festpass/internal/usecases"
)

// NewFestPassApp creates and returns a new instance of the FestPass application.
func NewFestPassApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitEventRepository{},
			&postgres.InitTicketCategoryRepository{},
			&postgres.InitUserRepository{},
			&postgres.InitConversationRepository{},
			&postgres.InitMessageRepository{},
			&postgres.InitEventDigestRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&messaging.InitSegmentGateway{},
			&llmapi.InitModelClient{},
			&apispec.InitToolCatalog{},

			&agent.InitToolExecutor{},
			&agent.InitAgentOrchestrator{},
			&formatter.InitResponseFormatter{},

			&usecases.InitChatWithAgent{},
			&usecases.InitListAgentTools{},
			&usecases.InitExecuteAgentTool{},
			&usecases.InitListEvents{},
			&usecases.InitGetEvent{},
			&usecases.InitListTicketCategories{},
			&usecases.InitGetUserCredits{},
			&usecases.InitGenerateEventDigest{},
			&usecases.InitGetEventDigest{},
			&usecases.InitListConversations{},
			&usecases.InitUpdateConversation{},
			&usecases.InitDeleteConversation{},
			&usecases.InitListMessages{},
			&usecases.InitRelayOutbox{},
			&usecases.InitDeliverSegment{},
		).
		Host(
			&http.FestPassServer{},
			&mcp.ToolServer{},
			&workers.MessageRelay{},
			&workers.DigestScheduler{},
			&workers.SegmentDeliveryWorker{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
