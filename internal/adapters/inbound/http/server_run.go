package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/festpass/festpass/internal/telemetry"
	"github.com/festpass/festpass/internal/usecases"
)

// FestPassServer is the REST API HTTP server of the FestPass backend.
type FestPassServer struct {
	Port                      int                           `config:"HTTP_PORT" default:"8080"`
	Logger                    *log.Logger                   `resolve:""`
	ChatWithAgentUseCase      usecases.ChatWithAgent        `resolve:""`
	ListAgentToolsUseCase     usecases.ListAgentTools       `resolve:""`
	ExecuteAgentToolUseCase   usecases.ExecuteAgentTool     `resolve:""`
	ListEventsUseCase         usecases.ListEvents           `resolve:""`
	GetEventUseCase           usecases.GetEvent             `resolve:""`
	ListTicketCategories      usecases.ListTicketCategories `resolve:""`
	GetUserCreditsUseCase     usecases.GetUserCredits       `resolve:""`
	GetEventDigestUseCase     usecases.GetEventDigest       `resolve:""`
	ListConversationsUseCase  usecases.ListConversations    `resolve:""`
	UpdateConversationUseCase usecases.UpdateConversation   `resolve:""`
	DeleteConversationUseCase usecases.DeleteConversation   `resolve:""`
	ListMessagesUseCase       usecases.ListMessages         `resolve:""`
}

// routes wires every endpoint into a mux.
func (api FestPassServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", api.Health)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	mux.HandleFunc("POST /chat", api.Chat)

	mux.HandleFunc("GET /agent/tools", api.ListAgentTools)
	mux.HandleFunc("POST /agent/tools/execute", api.ExecuteAgentTool)

	mux.HandleFunc("GET /events", api.ListEvents)
	mux.HandleFunc("GET /events/{event_id}", api.GetEvent)
	mux.HandleFunc("GET /events/{event_id}/ticket-categories", api.ListEventTicketCategories)
	mux.HandleFunc("GET /users/{user_id}/credits", api.GetUserCredits)
	mux.HandleFunc("GET /digest", api.GetEventDigest)

	mux.HandleFunc("GET /conversations", api.ListConversations)
	mux.HandleFunc("PATCH /conversations/{conversation_id}", api.UpdateConversation)
	mux.HandleFunc("DELETE /conversations/{conversation_id}", api.DeleteConversation)
	mux.HandleFunc("GET /conversations/{conversation_id}/messages", api.ListMessages)

	return mux
}

// Run starts the HTTP server for the FestPassServer.
func (api FestPassServer) Run(ctx context.Context) error {
	var h http.Handler = telemetry.Middleware("festpass-api")(api.routes())

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("FestPassServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("FestPassServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("FestPassServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// Health reports liveness.
func (api FestPassServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// IsReady checks if the FestPassServer is ready by performing a health check.
func (api FestPassServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
