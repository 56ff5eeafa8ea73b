package providers

import (
	"github.com/km-arc/go-httpfactory/framework/config"
	"github.com/km-arc/go-httpfactory/framework/container"
	"github.com/km-arc/go-httpfactory/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound abstracts:
//   - "config"  → *config.Config
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	EnvFiles []string
}

func (p *ConfigServiceProvider) Bindings() map[string]container.Factory {
	envFiles := p.EnvFiles
	return map[string]container.Factory{
		"config": func(c *container.Container) any {
			return config.Load(envFiles...)
		},
	}
}

func (p *ConfigServiceProvider) Extensions() map[string]container.Extender { return nil }

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router"  → *routing.Router
//
// Laravel equivalent:
//
//	// Illuminate\Routing\RoutingServiceProvider
//	$app->singleton('router', fn($app) => new Router($app['events'], $app));
type RoutingServiceProvider struct{}

func (p *RoutingServiceProvider) Bindings() map[string]container.Factory {
	return map[string]container.Factory{
		"router": func(c *container.Container) any {
			return routing.New()
		},
	}
}

func (p *RoutingServiceProvider) Extensions() map[string]container.Extender { return nil }
