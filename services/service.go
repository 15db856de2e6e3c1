package services

import (
	"context"
	"log"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Service interface
type Service interface {
	ID() string
	Run(ctx context.Context) error
}

// ServiceInit interface, for services with setup that can fail before
// anything starts running.
type ServiceInit interface {
	Service
	Init() error
}

func SetupLogging() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetOutput(os.Stdout)
}

// Launch initialises then runs every service concurrently. The first
// service to fail cancels the rest, and its error is returned. A nil return
// means ctx was cancelled and everything stopped cleanly.
func Launch(ctx context.Context, ss ...Service) error {
	for _, service := range ss {
		if service, ok := service.(ServiceInit); ok {
			if err := service.Init(); err != nil {
				return errors.Wrapf(err, "init service %s", service.ID())
			}
			log.Printf("Initialized %s\n", service.ID())
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, service := range ss {
		service := service
		log.Printf("Starting %s\n", service.ID())
		g.Go(func() error {
			if err := service.Run(ctx); err != nil {
				return errors.Wrapf(err, "running service %s", service.ID())
			}
			return nil
		})
	}
	return g.Wait()
}
