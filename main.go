package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-intake-demo/modules/api"
	"github.com/example/task-intake-demo/modules/notification"
	"github.com/example/task-intake-demo/modules/task"
	"github.com/example/task-intake-demo/modules/user"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Task Intake Service ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies.
	app.Register(user.NewModule())         // Owner identity provider (no dependencies)
	app.Register(notification.NewModule()) // Event consumer (subscribes to task events)
	app.Register(task.NewModule())         // Core domain (depends on user, emits events)
	app.Register(api.NewModule())          // Driving adapter (depends on task, user)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("REST API Endpoints (http://localhost:3000):")
	log.Println("  POST   /api/v1/internal/task   - Create a task")
	log.Println("  GET    /api/v1/internal/tasks  - List all tasks (diagnostic)")
	log.Println("  GET    /health                 - Health check")
	log.Println("")
	log.Println("Creation payload fields: titulo, descricao, data_vencimento (AAAA-MM-DD), prioridade (alta|média|baixa)")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
