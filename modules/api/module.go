package api

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/task-intake-demo/modules/task"
	"github.com/example/task-intake-demo/modules/user"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const defaultPort = "3000"

// APIModule is the driving adapter that exposes the intake endpoint. It
// resolves the acting owner through the user module and calls the core
// domain through the TaskPort interface.
type APIModule struct {
	app       *fiber.App
	taskPort  task.TaskPort
	ownerPort user.OwnerPort
	port      string
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule. The listen port comes from the PORT
// environment variable, defaulting to 3000.
func NewModule() *APIModule {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	return &APIModule{port: port}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"task", "user"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "task":
		m.taskPort = task.NewTaskAdapter(container)
	case "user":
		m.ownerPort = user.NewOwnerAdapter(container)
	}
}

// buildApp constructs the Fiber application with middleware and routes.
// Split from Start so handler tests can exercise the exact same app.
func (m *APIModule) buildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestID())
	m.setupRoutes(app)
	return app
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.taskPort == nil {
		return fmt.Errorf("taskPort dependency not set")
	}
	if m.ownerPort == nil {
		return fmt.Errorf("ownerPort dependency not set")
	}

	m.app = m.buildApp()

	// Start server in goroutine.
	// Server availability is verified via Health() method.
	go func() {
		if err := m.app.Listen(":" + m.port); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%s", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// errorHandler turns anything the handlers let through into the generic 5xx
// envelope. Rejections never reach here; they are answered inline with 400.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Erro interno do servidor"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Success: false,
		Message: message,
		Code:    "INTERNAL_ERROR",
	})
}
