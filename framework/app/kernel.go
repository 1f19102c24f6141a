package app

import (
	"log"
	"net"
	"net/http"

	"github.com/weld-framework/weld/framework/config"
	"github.com/weld-framework/weld/framework/container"
	"github.com/weld-framework/weld/framework/providers"
	"github.com/weld-framework/weld/framework/routing"
)

// Application is the top-level kernel. It runs the provider phases, builds
// the auto-wiring container over the contributed instance pool, and serves
// the router.
type Application struct {
	registry  *providers.Registry
	container *container.AutoContainer
}

// New bootstraps the application: core providers first (config, router),
// then the user's providers, then container assembly and the Boot phase.
//
//	application, err := app.New(&AppProvider{})
//	application.Router().Get("/", handler)
//	application.Run()
func New(userProviders ...providers.Provider) (*Application, error) {
	registry := providers.NewRegistry()
	registry.Register(&providers.ConfigProvider{})
	registry.Register(&providers.RouterProvider{})
	for _, p := range userProviders {
		registry.Register(p)
	}

	c, err := registry.Build()
	if err != nil {
		return nil, err
	}
	if err := registry.Boot(c); err != nil {
		return nil, err
	}

	return &Application{registry: registry, container: c}, nil
}

// MustNew is New for main functions where a bootstrap failure is fatal.
func MustNew(userProviders ...providers.Provider) *Application {
	a, err := New(userProviders...)
	if err != nil {
		panic(err)
	}
	return a
}

// Container returns the assembled auto-wiring container.
func (a *Application) Container() *container.AutoContainer { return a.container }

// Resolver returns the container as the plain capability contract.
func (a *Application) Resolver() container.Resolver { return a.container }

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.MustResolveAs[*config.Config](a.container)
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.MustResolveAs[*routing.Router](a.container)
}

// Run starts the HTTP server with the configured host, port and timeouts.
func (a *Application) Run() error {
	cfg := a.Config()
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      a.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	log.Printf("%s listening on %s [%s]", cfg.App.Name, srv.Addr, cfg.App.Env)
	return srv.ListenAndServe()
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
