package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/km-arc/go-httpfactory/framework/capability"
	"github.com/km-arc/go-httpfactory/framework/config"
	"github.com/km-arc/go-httpfactory/framework/container"
	"github.com/km-arc/go-httpfactory/framework/httpmsg"
	"github.com/km-arc/go-httpfactory/framework/providers"
	"github.com/km-arc/go-httpfactory/framework/routing"

	// Make the built-in factories discoverable.
	_ "github.com/km-arc/go-httpfactory/framework/httpmsg/native"
)

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so user code can
// call app.Bind(), app.Singleton(), app.Register() directly —
// exactly like $app in Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates and bootstraps the application: config first, then the HTTP
// message factory bindings (implementations chosen via HTTP_FACTORY_* env
// variables), then routing.
//
// Returns an error when a configured factory implementation fails its
// conformance check — no partially wired application is produced.
func New(envFiles ...string) (*Application, error) {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	cfg := container.Resolve[*config.Config](c, "config")

	factoryProvider, err := providers.NewHTTPFactoryProvider(providers.HTTPFactoryImplementations{
		Request:       cfg.HTTPFactory.Request,
		Response:      cfg.HTTPFactory.Response,
		ServerRequest: cfg.HTTPFactory.ServerRequest,
		Stream:        cfg.HTTPFactory.Stream,
		UploadedFile:  cfg.HTTPFactory.UploadedFile,
		URI:           cfg.HTTPFactory.URI,
	})
	if err != nil {
		return nil, err
	}
	registry.Register(factoryProvider)
	registry.Register(&providers.RoutingServiceProvider{})

	return &Application{Container: c, Providers: registry}, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// ── Factory accessors ─────────────────────────────────────────────────────────

// RequestFactory resolves the bound httpmsg.RequestFactory.
func (a *Application) RequestFactory() httpmsg.RequestFactory {
	return container.Resolve[httpmsg.RequestFactory](a.Container, string(capability.Request))
}

// ResponseFactory resolves the bound httpmsg.ResponseFactory.
func (a *Application) ResponseFactory() httpmsg.ResponseFactory {
	return container.Resolve[httpmsg.ResponseFactory](a.Container, string(capability.Response))
}

// StreamFactory resolves the bound httpmsg.StreamFactory.
func (a *Application) StreamFactory() httpmsg.StreamFactory {
	return container.Resolve[httpmsg.StreamFactory](a.Container, string(capability.Stream))
}

// URIFactory resolves the bound httpmsg.URIFactory.
func (a *Application) URIFactory() httpmsg.URIFactory {
	return container.Resolve[httpmsg.URIFactory](a.Container, string(capability.URI))
}

// ServerRequestCreator resolves the composite server-request creator.
func (a *Application) ServerRequestCreator() *httpmsg.ServerRequestCreator {
	return container.Resolve[*httpmsg.ServerRequestCreator](a.Container, string(capability.ServerRequestCreator))
}

// ── Runtime ───────────────────────────────────────────────────────────────────

// Run starts the HTTP server on APP_PORT (default 8000).
func (a *Application) Run() {
	cfg := a.Config()
	router := a.Router()
	addr := ":" + cfg.App.Port
	fmt.Printf("🚀  %s running on http://localhost%s  [%s]\n",
		cfg.App.Name, addr, cfg.App.Env)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
